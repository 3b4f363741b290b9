package request

import (
	"strings"
	"time"

	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/usecase"
)

// ContractCreateRequest is the draft-ingestion payload used by the
// contract-creation flow of the admin platform.

type ContractCreateRequest struct {
	ContractNumber   string            `json:"contract_number"`
	ContractableType string            `json:"contractable_type" binding:"required"`
	ContractableID   string            `json:"contractable_id" binding:"required"`
	TemplateData     map[string]string `json:"template_data"`
	StartDate        time.Time         `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
}

func (r ContractCreateRequest) ToCommand() usecase.CreateContractCommand {
	return usecase.CreateContractCommand{
		ContractNumber:   strings.TrimSpace(r.ContractNumber),
		ContractableType: entities.ContractableType(strings.TrimSpace(r.ContractableType)),
		ContractableID:   strings.TrimSpace(r.ContractableID),
		TemplateData:     r.TemplateData,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
	}
}

// ReviewActionRequest is the shared payload of the submit, approve and
// reject routes. expected_version is the version the caller read before
// acting; the engine refuses the write if it moved.

type ReviewActionRequest struct {
	ActorRole        string `json:"actor_role" binding:"required"`
	ActorID          string `json:"actor_id" binding:"required"`
	Notes            string `json:"notes" binding:"required"`
	SuggestedChanges string `json:"suggested_changes"`
	ExpectedVersion  int64  `json:"expected_version" binding:"required"`
}

func (r ReviewActionRequest) ToCommand(contractID string) usecase.ReviewCommand {
	return usecase.ReviewCommand{
		ContractID:       strings.TrimSpace(contractID),
		ActorRole:        entities.Role(strings.TrimSpace(r.ActorRole)),
		ActorID:          strings.TrimSpace(r.ActorID),
		Notes:            r.Notes,
		SuggestedChanges: r.SuggestedChanges,
		ExpectedVersion:  r.ExpectedVersion,
	}
}

// SignRequest is the one-time signing payload. Token is optional; the
// credential collaborator decides whether the contract mandates one.

type SignRequest struct {
	Token           string `json:"token"`
	ExpectedVersion int64  `json:"expected_version" binding:"required"`
}

func (r SignRequest) ToCommand(contractID string) usecase.SignCommand {
	return usecase.SignCommand{
		ContractID:      strings.TrimSpace(contractID),
		Token:           r.Token,
		ExpectedVersion: r.ExpectedVersion,
	}
}
