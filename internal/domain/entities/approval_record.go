package entities

import "time"

// ApprovalStep identifies the workflow stage an ApprovalRecord belongs to.

type ApprovalStep string

const (
	StepSubmission       ApprovalStep = "submission"
	StepLegalReview      ApprovalStep = "legal_review"
	StepCommercialReview ApprovalStep = "commercial_review"
	StepDirectorApproval ApprovalStep = "director_approval"
	StepSignature        ApprovalStep = "signature"
)

// ApprovalAction is the action an actor took at a stage.

type ApprovalAction string

const (
	ActionSubmit  ApprovalAction = "submit"
	ActionApprove ApprovalAction = "approve"
	ActionReject  ApprovalAction = "reject"
	ActionSign    ApprovalAction = "sign"
)

// Role is the workflow authority of an actor. Admin and super admin may
// act at any stage (break-glass); the other roles are bound to the stage
// matching their name.

type Role string

const (
	RoleLegal             Role = "legal"
	RoleCommercialManager Role = "commercial_manager"
	RoleDirector          Role = "director"
	RoleAdmin             Role = "admin"
	RoleSuperAdmin        Role = "super_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleLegal, RoleCommercialManager, RoleDirector, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsBreakGlass reports whether the role bypasses stage gating.
func (r Role) IsBreakGlass() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ApprovalRecord is one immutable row of the audit ledger: a transition
// the engine accepted. Compliance requirement: records are never updated
// or deleted, and replaying them from draft reproduces the contract's
// current status.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: contract_id-index (PK: contract_id)
//
// ResultingVersion is the contract version produced by the transition;
// for one contract the sequence of versions across records is strictly
// increasing with no gaps.

type ApprovalRecord struct {
	ID               string         `json:"id"`
	ContractID       string         `json:"contract_id"`
	Step             ApprovalStep   `json:"step"`
	Action           ApprovalAction `json:"action"`
	ActorID          string         `json:"actor_id"`
	ActorRole        Role           `json:"actor_role"`
	Notes            string         `json:"notes"`
	SuggestedChanges string         `json:"suggested_changes,omitempty"`
	ResultingStatus  ContractStatus `json:"resulting_status"`
	ResultingVersion int64          `json:"resulting_version"`
	CreatedAt        time.Time      `json:"created_at"`
}
