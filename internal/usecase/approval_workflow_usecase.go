package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/domain/workflow"
	"saude_conecta/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound        = errors.New("contract not found")
	ErrInvalidContractID       = errors.New("invalid contract id")
	ErrInvalidActorID          = errors.New("invalid actor_id")
	ErrInvalidExpectedVersion  = errors.New("invalid expected_version")
	ErrNotesTooShort           = errors.New("notes must have at least 5 characters")
	ErrUnknownRole             = errors.New("unknown actor_role")
	ErrForbiddenForRole        = errors.New("role not entitled to act at this stage")
	ErrInvalidTransition       = errors.New("invalid transition for current status")
	ErrSuggestedChangesInvalid = errors.New("suggested_changes only allowed on legal rejections")

	// ErrStorage wraps persistence-layer failures during the atomic
	// status+ledger write. It is the only unrecoverable error of the
	// engine; everything else is a typed, recoverable outcome.
	ErrStorage = errors.New("contract storage failure")
)

const minNotesLen = 5

// ReviewCommand carries one workflow request against a contract.
//
// ExpectedVersion is the version the caller read before deciding to act;
// the store only accepts the write if it still matches (optimistic
// concurrency). Losers of a race get interfaces.ErrVersionConflict and
// must re-fetch and retry — the engine never merges silently.

type ReviewCommand struct {
	ContractID       string
	ActorRole        entities.Role
	ActorID          string
	Notes            string
	SuggestedChanges string
	ExpectedVersion  int64
}

// IApprovalWorkflowUseCase exposes the role-gated review chain:
//
//	draft --submit--> pending_approval --legal--> legal_review
//	  --commercial_manager--> commercial_review --director--> approved
//
// with rejection from any review stage landing in rejected.

type IApprovalWorkflowUseCase interface {
	Submit(ctx context.Context, cmd ReviewCommand) (entities.Contract, error)
	Approve(ctx context.Context, cmd ReviewCommand) (entities.Contract, error)
	Reject(ctx context.Context, cmd ReviewCommand) (entities.Contract, error)
}

type ApprovalWorkflowUseCase struct {
	store      interfaces.IContractStore
	dispatcher interfaces.INotificationDispatcher
}

var _ IApprovalWorkflowUseCase = (*ApprovalWorkflowUseCase)(nil)

func NewApprovalWorkflowUseCase(store interfaces.IContractStore, dispatcher interfaces.INotificationDispatcher) *ApprovalWorkflowUseCase {
	return &ApprovalWorkflowUseCase{store: store, dispatcher: dispatcher}
}

func (u *ApprovalWorkflowUseCase) Submit(ctx context.Context, cmd ReviewCommand) (entities.Contract, error) {
	return u.transition(ctx, cmd, entities.ActionSubmit)
}

func (u *ApprovalWorkflowUseCase) Approve(ctx context.Context, cmd ReviewCommand) (entities.Contract, error) {
	return u.transition(ctx, cmd, entities.ActionApprove)
}

func (u *ApprovalWorkflowUseCase) Reject(ctx context.Context, cmd ReviewCommand) (entities.Contract, error) {
	return u.transition(ctx, cmd, entities.ActionReject)
}

func (u *ApprovalWorkflowUseCase) transition(ctx context.Context, cmd ReviewCommand, action entities.ApprovalAction) (entities.Contract, error) {
	cmd.ContractID = strings.TrimSpace(cmd.ContractID)
	cmd.ActorID = strings.TrimSpace(cmd.ActorID)
	cmd.Notes = strings.TrimSpace(cmd.Notes)
	cmd.SuggestedChanges = strings.TrimSpace(cmd.SuggestedChanges)

	if cmd.ContractID == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if cmd.ActorID == "" {
		return entities.Contract{}, ErrInvalidActorID
	}
	if cmd.ExpectedVersion < 1 {
		return entities.Contract{}, ErrInvalidExpectedVersion
	}
	if len([]rune(cmd.Notes)) < minNotesLen {
		return entities.Contract{}, ErrNotesTooShort
	}

	c, err := u.store.GetByID(ctx, cmd.ContractID)
	if err != nil {
		return entities.Contract{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}

	decision := workflow.Decide(c.Status, cmd.ActorRole, action, cmd.SuggestedChanges != "")
	if !decision.Allowed {
		log.Printf("[workflow][usecase] transition denied contract_id=%s status=%s role=%s action=%s reason=%s",
			c.ID, c.Status, cmd.ActorRole, action, decision.Reason)
		return entities.Contract{}, mapDecisionReason(decision.Reason)
	}

	// The CAS below would catch a stale expected_version anyway; failing
	// early avoids burning a transact write on a request we know lost.
	if c.Version != cmd.ExpectedVersion {
		return entities.Contract{}, interfaces.ErrVersionConflict
	}

	now := time.Now().UTC()
	oldStatus := c.Status

	updated := c
	updated.Status = decision.Next
	updated.Version = cmd.ExpectedVersion + 1
	updated.UpdatedAt = now
	if decision.Next == entities.ContractStatusRejected {
		updated.RejectedStep = decision.Step
	}

	rec := entities.ApprovalRecord{
		ID:               uuid.NewString(),
		ContractID:       c.ID,
		Step:             decision.Step,
		Action:           action,
		ActorID:          cmd.ActorID,
		ActorRole:        cmd.ActorRole,
		Notes:            cmd.Notes,
		SuggestedChanges: cmd.SuggestedChanges,
		ResultingStatus:  decision.Next,
		ResultingVersion: updated.Version,
		CreatedAt:        now,
	}

	committed, err := u.store.CommitTransition(ctx, updated, cmd.ExpectedVersion, rec)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[workflow][usecase] version conflict contract_id=%s expected=%d", c.ID, cmd.ExpectedVersion)
			return entities.Contract{}, err
		}
		return entities.Contract{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	log.Printf("[workflow][usecase] transition accepted contract_id=%s %s->%s version=%d actor=%s",
		committed.ID, oldStatus, committed.Status, committed.Version, cmd.ActorID)

	u.dispatch(ctx, entities.WorkflowEvent{
		ContractID: committed.ID,
		OldStatus:  oldStatus,
		NewStatus:  committed.Status,
		ActorID:    cmd.ActorID,
		Timestamp:  now,
	})

	return committed, nil
}

func (u *ApprovalWorkflowUseCase) dispatch(ctx context.Context, ev entities.WorkflowEvent) {
	if u.dispatcher == nil {
		return
	}
	if err := u.dispatcher.DispatchWorkflowAdvanced(ctx, ev); err != nil {
		// Delivery is the dispatcher's responsibility; the transition is
		// already committed and must not be reported as failed.
		log.Printf("[workflow][usecase] notification dispatch failed contract_id=%s err=%v", ev.ContractID, err)
	}
}

func mapDecisionReason(reason workflow.DecisionReason) error {
	switch reason {
	case workflow.ReasonUnknownRole:
		return ErrUnknownRole
	case workflow.ReasonForbiddenForRole:
		return ErrForbiddenForRole
	case workflow.ReasonSuggestedChangesInvalid:
		return ErrSuggestedChangesInvalid
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTransition, reason)
	}
}
