package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"saude_conecta/internal/domain/entities"
	mock_interfaces "saude_conecta/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func createCmd() CreateContractCommand {
	return CreateContractCommand{
		ContractableType: entities.ContractableClinic,
		ContractableID:   "clinic-12",
		TemplateData:     map[string]string{"party_name": "Clínica Vida"},
		StartDate:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestContractUseCase_CreateDraft(t *testing.T) {
	t.Run("invalid contractable type", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil)
		cmd := createCmd()
		cmd.ContractableType = "supplier"
		_, err := uc.CreateDraft(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidContractableType) {
			t.Fatalf("expected ErrInvalidContractableType, got %v", err)
		}
	})

	t.Run("missing contractable id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil)
		cmd := createCmd()
		cmd.ContractableID = "  "
		_, err := uc.CreateDraft(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidContractableID) {
			t.Fatalf("expected ErrInvalidContractableID, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil)
		cmd := createCmd()
		cmd.EndDate = cmd.StartDate.AddDate(0, -1, 0)
		_, err := uc.CreateDraft(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidValidityWindow) {
			t.Fatalf("expected ErrInvalidValidityWindow, got %v", err)
		}
	})

	t.Run("success assigns id, number, draft and version 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		uc := NewContractUseCase(store, nil)

		store.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.ID == "" || !strings.HasPrefix(c.ContractNumber, "CT-") {
					t.Fatalf("unexpected identity: %+v", c)
				}
				if c.Status != entities.ContractStatusDraft || c.Version != 1 {
					t.Fatalf("unexpected initial state: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		res, err := uc.CreateDraft(context.Background(), createCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsSigned || res.SignedAt != nil {
			t.Fatalf("new draft must not carry signature state: %+v", res)
		}
	})

	t.Run("caller-provided contract number is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		uc := NewContractUseCase(store, nil)

		store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.ContractNumber != "HP-0042/2026" {
					t.Fatalf("expected caller number, got %q", c.ContractNumber)
				}
				return c, nil
			},
		)

		cmd := createCmd()
		cmd.ContractNumber = "HP-0042/2026"
		if _, err := uc.CreateDraft(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContractUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		uc := NewContractUseCase(store, nil)

		store.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Contract{}, nil)

		if _, err := uc.GetByID(context.Background(), "c-404"); !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}

func TestContractUseCase_History(t *testing.T) {
	t.Run("unknown contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		uc := NewContractUseCase(store, nil)

		store.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Contract{}, nil)

		if _, err := uc.History(context.Background(), "c-404"); !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("returns ordered ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIContractStore(ctrl)
		ledger := mock_interfaces.NewMockIApprovalLedger(ctrl)
		uc := NewContractUseCase(store, ledger)

		store.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingContract(2), nil)
		ledger.EXPECT().ListByContractID(gomock.Any(), "c-1").Return([]entities.ApprovalRecord{
			{ID: "r-1", ContractID: "c-1", ResultingVersion: 2},
		}, nil)

		records, err := uc.History(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 || records[0].ID != "r-1" {
			t.Fatalf("unexpected records: %+v", records)
		}
	})
}
