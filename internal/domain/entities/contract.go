package entities

import "time"

// ContractStatus represents the lifecycle of a contract in the approval
// workflow.
//
// Domain notes:
//   - The contracts-service is the source of truth for workflow state.
//   - Status is mutated exclusively by the approval workflow and the
//     signature flow; never by the admin console directly.

type ContractStatus string

const (
	ContractStatusDraft            ContractStatus = "draft"
	ContractStatusPendingApproval  ContractStatus = "pending_approval"
	ContractStatusLegalReview      ContractStatus = "legal_review"
	ContractStatusCommercialReview ContractStatus = "commercial_review"
	ContractStatusApproved         ContractStatus = "approved"
	ContractStatusRejected         ContractStatus = "rejected"
)

// IsTerminal reports whether no further review transitions are accepted.
// Signing is gated separately and only applies to approved contracts.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusApproved || s == ContractStatusRejected
}

// ContractableType identifies which kind of external party the contract
// binds. The party record itself is owned by the entity directory; we
// only keep the foreign key.

type ContractableType string

const (
	ContractableHealthPlan   ContractableType = "health_plan"
	ContractableClinic       ContractableType = "clinic"
	ContractableProfessional ContractableType = "professional"
)

func (t ContractableType) Valid() bool {
	switch t {
	case ContractableHealthPlan, ContractableClinic, ContractableProfessional:
		return true
	}
	return false
}

// Contract is the legal document record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Concurrency:
//   - Version is a monotonically increasing counter, incremented on every
//     accepted transition and on signing. All writes are conditional on the
//     stored version matching the caller's expected_version (CAS).
//
// TemplateData is an opaque snapshot owned by the template-rendering
// collaborator; the engine never interprets it.

type Contract struct {
	ID               string            `json:"id"`
	ContractNumber   string            `json:"contract_number"`
	ContractableType ContractableType  `json:"contractable_type"`
	ContractableID   string            `json:"contractable_id"`
	Status           ContractStatus    `json:"status"`
	TemplateData     map[string]string `json:"template_data,omitempty"`

	IsSigned           bool       `json:"is_signed"`
	SignedAt           *time.Time `json:"signed_at,omitempty"`
	SignatureTokenHash string     `json:"signature_token_hash,omitempty"`

	// RejectedStep points at the review stage the contract failed, set
	// together with status=rejected.
	RejectedStep ApprovalStep `json:"rejected_step,omitempty"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
