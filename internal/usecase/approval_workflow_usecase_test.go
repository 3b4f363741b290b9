package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/usecase/interfaces"
	mock_interfaces "saude_conecta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingContract(version int64) entities.Contract {
	return entities.Contract{
		ID:               "c-1",
		ContractNumber:   "CT-2026-ABCD1234",
		ContractableType: entities.ContractableHealthPlan,
		ContractableID:   "hp-9",
		Status:           entities.ContractStatusPendingApproval,
		Version:          version,
	}
}

func reviewCmd(notes string) ReviewCommand {
	return ReviewCommand{
		ContractID:      "c-1",
		ActorRole:       entities.RoleLegal,
		ActorID:         "user-7",
		Notes:           notes,
		ExpectedVersion: 1,
	}
}

func TestApprovalWorkflowUseCase_Validation(t *testing.T) {
	t.Run("empty contract id", func(t *testing.T) {
		uc := NewApprovalWorkflowUseCase(nil, nil)
		cmd := reviewCmd("all good")
		cmd.ContractID = "   "
		_, err := uc.Approve(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("empty actor id", func(t *testing.T) {
		uc := NewApprovalWorkflowUseCase(nil, nil)
		cmd := reviewCmd("all good")
		cmd.ActorID = ""
		_, err := uc.Approve(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
	})

	t.Run("expected version below 1", func(t *testing.T) {
		uc := NewApprovalWorkflowUseCase(nil, nil)
		cmd := reviewCmd("all good")
		cmd.ExpectedVersion = 0
		_, err := uc.Approve(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidExpectedVersion) {
			t.Fatalf("expected ErrInvalidExpectedVersion, got %v", err)
		}
	})

	t.Run("notes too short leaves no trace", func(t *testing.T) {
		// "ok" must fail validation without touching the store.
		uc := NewApprovalWorkflowUseCase(nil, nil)
		_, err := uc.Approve(context.Background(), reviewCmd("ok"))
		if !errors.Is(err, ErrNotesTooShort) {
			t.Fatalf("expected ErrNotesTooShort, got %v", err)
		}
	})
}

func TestApprovalWorkflowUseCase_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	uc := NewApprovalWorkflowUseCase(store, nil)

	store.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{}, nil)

	_, err := uc.Approve(context.Background(), reviewCmd("looks fine"))
	if !errors.Is(err, ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
}

func TestApprovalWorkflowUseCase_LoadFailureIsStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	uc := NewApprovalWorkflowUseCase(store, nil)

	store.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{}, errors.New("dynamo down"))

	_, err := uc.Approve(context.Background(), reviewCmd("looks fine"))
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestApprovalWorkflowUseCase_PolicyDenials(t *testing.T) {
	cases := []struct {
		name    string
		status  entities.ContractStatus
		role    entities.Role
		suggest string
		want    error
	}{
		{"wrong role at stage", entities.ContractStatusPendingApproval, entities.RoleDirector, "", ErrForbiddenForRole},
		{"terminal approved", entities.ContractStatusApproved, entities.RoleLegal, "", ErrInvalidTransition},
		{"terminal rejected", entities.ContractStatusRejected, entities.RoleLegal, "", ErrInvalidTransition},
		{"draft accepts no review", entities.ContractStatusDraft, entities.RoleLegal, "", ErrInvalidTransition},
		{"unknown role", entities.ContractStatusPendingApproval, entities.Role("auditor"), "", ErrUnknownRole},
		{"suggested changes on approve", entities.ContractStatusPendingApproval, entities.RoleLegal, "tighten clause 4", ErrSuggestedChangesInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mock_interfaces.NewMockIContractStore(ctrl)
			uc := NewApprovalWorkflowUseCase(store, nil)

			c := pendingContract(1)
			c.Status = tc.status
			store.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)

			cmd := reviewCmd("review notes")
			cmd.ActorRole = tc.role
			cmd.SuggestedChanges = tc.suggest
			_, err := uc.Approve(context.Background(), cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestApprovalWorkflowUseCase_StaleExpectedVersionShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	uc := NewApprovalWorkflowUseCase(store, nil)

	store.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingContract(5), nil)

	cmd := reviewCmd("approving now")
	cmd.ExpectedVersion = 3
	_, err := uc.Approve(context.Background(), cmd)
	if !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

// Scenario: legal approves a pending contract with valid notes; status
// moves to legal_review, version 1->2, one record appended, event emitted.
func TestApprovalWorkflowUseCase_ApproveSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
	uc := NewApprovalWorkflowUseCase(store, dispatcher)

	store.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingContract(1), nil)
	store.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Contract, expected int64, rec entities.ApprovalRecord) (entities.Contract, error) {
			if c.Status != entities.ContractStatusLegalReview || c.Version != 2 {
				t.Fatalf("unexpected contract write: status=%s version=%d", c.Status, c.Version)
			}
			if rec.ID == "" || rec.ContractID != "c-1" {
				t.Fatalf("unexpected record identity: %+v", rec)
			}
			if rec.Step != entities.StepLegalReview || rec.Action != entities.ActionApprove {
				t.Fatalf("unexpected record step/action: %+v", rec)
			}
			if rec.ResultingStatus != entities.ContractStatusLegalReview || rec.ResultingVersion != 2 {
				t.Fatalf("unexpected record result: %+v", rec)
			}
			if rec.ActorID != "user-7" || rec.ActorRole != entities.RoleLegal {
				t.Fatalf("unexpected record actor: %+v", rec)
			}
			return c, nil
		},
	)
	dispatcher.EXPECT().DispatchWorkflowAdvanced(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev entities.WorkflowEvent) error {
			if ev.ContractID != "c-1" || ev.OldStatus != entities.ContractStatusPendingApproval || ev.NewStatus != entities.ContractStatusLegalReview {
				t.Fatalf("unexpected event: %+v", ev)
			}
			if ev.ActorID != "user-7" || ev.Timestamp.IsZero() {
				t.Fatalf("unexpected event actor/timestamp: %+v", ev)
			}
			return nil
		},
	)

	res, err := uc.Approve(context.Background(), reviewCmd("ok to proceed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.ContractStatusLegalReview || res.Version != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// Scenario: commercial manager rejects at legal_review; contract lands in
// rejected with the failed stage recorded as commercial_review.
func TestApprovalWorkflowUseCase_RejectRecordsFailedStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	uc := NewApprovalWorkflowUseCase(store, nil)

	c := pendingContract(2)
	c.Status = entities.ContractStatusLegalReview
	store.EXPECT().GetByID(gomock.Any(), "c-1").Return(c, nil)
	store.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Contract, expected int64, rec entities.ApprovalRecord) (entities.Contract, error) {
			if c.Status != entities.ContractStatusRejected || c.RejectedStep != entities.StepCommercialReview {
				t.Fatalf("unexpected contract write: %+v", c)
			}
			if rec.Step != entities.StepCommercialReview || rec.Action != entities.ActionReject {
				t.Fatalf("unexpected record: %+v", rec)
			}
			return c, nil
		},
	)

	cmd := reviewCmd("missing clause")
	cmd.ActorRole = entities.RoleCommercialManager
	cmd.ExpectedVersion = 2
	res, err := uc.Reject(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.ContractStatusRejected {
		t.Fatalf("expected rejected, got %s", res.Status)
	}
}

func TestApprovalWorkflowUseCase_LegalRejectionCarriesSuggestedChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIContractStore(ctrl)
	uc := NewApprovalWorkflowUseCase(store, nil)

	store.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingContract(1), nil)
	store.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Contract, _ int64, rec entities.ApprovalRecord) (entities.Contract, error) {
			if rec.SuggestedChanges != "reword the exclusivity clause" {
				t.Fatalf("expected suggested changes on record, got %+v", rec)
			}
			return c, nil
		},
	)

	cmd := reviewCmd("exclusivity clause is too broad")
	cmd.SuggestedChanges = "reword the exclusivity clause"
	if _, err := uc.Reject(context.Background(), cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApprovalWorkflowUseCase_CommitOutcomes(t *testing.T) {
	t.Run("version conflict from store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		uc := NewApprovalWorkflowUseCase(store, nil)

		store.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingContract(1), nil)
		store.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			Return(entities.Contract{}, interfaces.ErrVersionConflict)

		_, err := uc.Approve(context.Background(), reviewCmd("approving"))
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewApprovalWorkflowUseCase(store, dispatcher)

		store.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingContract(1), nil)
		store.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			Return(entities.Contract{}, errors.New("transact canceled"))

		// No event may leak for a failed commit.
		_, err := uc.Approve(context.Background(), reviewCmd("approving"))
		if !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("dispatcher failure does not fail the transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
		uc := NewApprovalWorkflowUseCase(store, dispatcher)

		store.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingContract(1), nil)
		store.EXPECT().CommitTransition(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contract, _ int64, _ entities.ApprovalRecord) (entities.Contract, error) {
				return c, nil
			},
		)
		dispatcher.EXPECT().DispatchWorkflowAdvanced(gomock.Any(), gomock.Any()).Return(errors.New("webhook 503"))

		if _, err := uc.Approve(context.Background(), reviewCmd("approving")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// Two parallel approvals at the same expected version: exactly one wins,
// the other gets a version conflict and no second record is written.
func TestApprovalWorkflowUseCase_ConcurrentApprovals(t *testing.T) {
	store := newMemStore()
	uc := NewApprovalWorkflowUseCase(store, nil)

	seed := pendingContract(3)
	seed.Status = entities.ContractStatusCommercialReview
	if _, err := store.Create(context.Background(), seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cmd := reviewCmd("final approval")
	cmd.ActorRole = entities.RoleDirector
	cmd.ExpectedVersion = 3

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Approve(context.Background(), cmd)
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, interfaces.ErrVersionConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || conflicts != 1 {
		t.Fatalf("expected 1 win and 1 conflict, got wins=%d conflicts=%d", wins, conflicts)
	}

	final, _ := store.GetByID(context.Background(), "c-1")
	if final.Status != entities.ContractStatusApproved || final.Version != 4 {
		t.Fatalf("unexpected final state: %+v", final)
	}
	records, _ := store.ListByContractID(context.Background(), "c-1")
	if len(records) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(records))
	}
}

// Full walk of the chain against the in-memory store: versions are
// strictly increasing without gaps and the latest record's resulting
// status always matches the contract.
func TestApprovalWorkflowUseCase_LedgerReplaysToCurrentStatus(t *testing.T) {
	store := newMemStore()
	uc := NewApprovalWorkflowUseCase(store, nil)
	ctx := context.Background()

	seed := pendingContract(1)
	seed.Status = entities.ContractStatusDraft
	if _, err := store.Create(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	steps := []struct {
		role entities.Role
		call func(context.Context, ReviewCommand) (entities.Contract, error)
	}{
		{entities.RoleAdmin, uc.Submit},
		{entities.RoleLegal, uc.Approve},
		{entities.RoleCommercialManager, uc.Approve},
		{entities.RoleDirector, uc.Approve},
	}

	version := int64(1)
	for _, s := range steps {
		cmd := reviewCmd("moving the contract forward")
		cmd.ActorRole = s.role
		cmd.ExpectedVersion = version
		res, err := s.call(ctx, cmd)
		if err != nil {
			t.Fatalf("step %s: %v", s.role, err)
		}
		version = res.Version
	}

	final, _ := store.GetByID(ctx, "c-1")
	if final.Status != entities.ContractStatusApproved || final.Version != 5 {
		t.Fatalf("unexpected final state: %+v", final)
	}

	records, _ := store.ListByContractID(ctx, "c-1")
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	wantStatuses := []entities.ContractStatus{
		entities.ContractStatusPendingApproval,
		entities.ContractStatusLegalReview,
		entities.ContractStatusCommercialReview,
		entities.ContractStatusApproved,
	}
	for i, rec := range records {
		if rec.ResultingVersion != int64(i)+2 {
			t.Fatalf("record %d: expected version %d, got %d", i, i+2, rec.ResultingVersion)
		}
		if rec.ResultingStatus != wantStatuses[i] {
			t.Fatalf("record %d: expected status %s, got %s", i, wantStatuses[i], rec.ResultingStatus)
		}
	}
	if records[len(records)-1].ResultingStatus != final.Status {
		t.Fatalf("latest record %s does not match contract status %s", records[len(records)-1].ResultingStatus, final.Status)
	}
}
