// Package workflow holds the pure transition policy for the contract
// approval graph. It has no I/O and no knowledge of persistence; the
// usecase layer feeds it the current snapshot and enforces its verdict.
package workflow

import "saude_conecta/internal/domain/entities"

// DecisionReason explains why a transition was disallowed.

type DecisionReason string

const (
	ReasonAllowed                 DecisionReason = ""
	ReasonUnknownRole             DecisionReason = "unknown_role"
	ReasonTerminalState           DecisionReason = "terminal_state"
	ReasonForbiddenForRole        DecisionReason = "forbidden_for_role"
	ReasonInvalidActionForStatus  DecisionReason = "invalid_action_for_status"
	ReasonSuggestedChangesInvalid DecisionReason = "suggested_changes_not_allowed"
)

// Decision is the policy verdict for one requested transition.

type Decision struct {
	Allowed bool
	Next    entities.ContractStatus
	Step    entities.ApprovalStep
	Reason  DecisionReason
}

func denied(reason DecisionReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// stageGate is one row of the review chain: who may act at a status and
// where approve/reject lead. The graph is fixed and small, so it is
// encoded as a table rather than a configurable rules engine.
type stageGate struct {
	role      entities.Role
	step      entities.ApprovalStep
	onApprove entities.ContractStatus
}

var reviewChain = map[entities.ContractStatus]stageGate{
	entities.ContractStatusPendingApproval: {
		role:      entities.RoleLegal,
		step:      entities.StepLegalReview,
		onApprove: entities.ContractStatusLegalReview,
	},
	entities.ContractStatusLegalReview: {
		role:      entities.RoleCommercialManager,
		step:      entities.StepCommercialReview,
		onApprove: entities.ContractStatusCommercialReview,
	},
	entities.ContractStatusCommercialReview: {
		role:      entities.RoleDirector,
		step:      entities.StepDirectorApproval,
		onApprove: entities.ContractStatusApproved,
	},
}

// Decide maps (current status, actor role, action) to the allowed next
// status, or the reason the transition is disallowed.
//
// Forward graph (approve):
//
//	pending_approval --legal--> legal_review --commercial_manager-->
//	commercial_review --director--> approved
//
// Reject at any review stage moves the contract to rejected, recording
// the stage it failed as the record step. Submit is valid only from
// draft. suggested_changes is accepted only for legal-stage rejections.
func Decide(current entities.ContractStatus, role entities.Role, action entities.ApprovalAction, withSuggestedChanges bool) Decision {
	if !role.Valid() {
		return denied(ReasonUnknownRole)
	}
	if withSuggestedChanges && !(role == entities.RoleLegal && action == entities.ActionReject) {
		return denied(ReasonSuggestedChangesInvalid)
	}

	if action == entities.ActionSubmit {
		if current.IsTerminal() {
			return denied(ReasonTerminalState)
		}
		if current != entities.ContractStatusDraft {
			return denied(ReasonInvalidActionForStatus)
		}
		// Any known role may submit a draft; ownership of who is allowed
		// to edit the draft belongs to the contract-creation flow.
		return Decision{
			Allowed: true,
			Next:    entities.ContractStatusPendingApproval,
			Step:    entities.StepSubmission,
		}
	}

	if current.IsTerminal() {
		return denied(ReasonTerminalState)
	}

	gate, ok := reviewChain[current]
	if !ok {
		// draft (and any unknown status) accepts no review actions.
		return denied(ReasonInvalidActionForStatus)
	}
	if role != gate.role && !role.IsBreakGlass() {
		return denied(ReasonForbiddenForRole)
	}

	switch action {
	case entities.ActionApprove:
		return Decision{Allowed: true, Next: gate.onApprove, Step: gate.step}
	case entities.ActionReject:
		return Decision{Allowed: true, Next: entities.ContractStatusRejected, Step: gate.step}
	default:
		return denied(ReasonInvalidActionForStatus)
	}
}
