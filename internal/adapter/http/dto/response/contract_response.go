package response

import (
	"time"

	"saude_conecta/internal/domain/entities"
)

type ContractResponse struct {
	ID               string            `json:"id"`
	ContractNumber   string            `json:"contract_number"`
	ContractableType string            `json:"contractable_type"`
	ContractableID   string            `json:"contractable_id"`
	Status           string            `json:"status"`
	TemplateData     map[string]string `json:"template_data,omitempty"`
	IsSigned         bool              `json:"is_signed"`
	SignedAt         *time.Time        `json:"signed_at,omitempty"`
	RejectedStep     string            `json:"rejected_step,omitempty"`
	StartDate        time.Time         `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
	Version          int64             `json:"version"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:               c.ID,
		ContractNumber:   c.ContractNumber,
		ContractableType: string(c.ContractableType),
		ContractableID:   c.ContractableID,
		Status:           string(c.Status),
		TemplateData:     c.TemplateData,
		IsSigned:         c.IsSigned,
		SignedAt:         c.SignedAt,
		RejectedStep:     string(c.RejectedStep),
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		Version:          c.Version,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// TransitionResponse is the compact body of the workflow routes: the
// caller mainly needs the new status and the version to use next.

type TransitionResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	RejectedStep string `json:"rejected_step,omitempty"`
	Version      int64  `json:"version"`
}

func FromTransition(c entities.Contract) TransitionResponse {
	return TransitionResponse{
		ID:           c.ID,
		Status:       string(c.Status),
		RejectedStep: string(c.RejectedStep),
		Version:      c.Version,
	}
}

type SignResponse struct {
	ID       string     `json:"id"`
	SignedAt *time.Time `json:"signed_at"`
	Version  int64      `json:"version"`
}

func FromSignedContract(c entities.Contract) SignResponse {
	return SignResponse{ID: c.ID, SignedAt: c.SignedAt, Version: c.Version}
}
