package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidContractableType = errors.New("invalid contractable_type")
	ErrInvalidContractableID   = errors.New("invalid contractable_id")
	ErrInvalidValidityWindow   = errors.New("end_date must be after start_date")
)

// CreateContractCommand is the ingestion payload used by the
// contract-creation flow to persist a new draft. The engine assigns id,
// contract number, draft status and version 1; it never creates a
// contract in any other state.

type CreateContractCommand struct {
	ContractNumber   string
	ContractableType entities.ContractableType
	ContractableID   string
	TemplateData     map[string]string
	StartDate        time.Time
	EndDate          time.Time
}

// IContractUseCase exposes the read side plus draft ingestion.

type IContractUseCase interface {
	CreateDraft(ctx context.Context, cmd CreateContractCommand) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	History(ctx context.Context, contractID string) ([]entities.ApprovalRecord, error)
}

type ContractUseCase struct {
	store  interfaces.IContractStore
	ledger interfaces.IApprovalLedger
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(store interfaces.IContractStore, ledger interfaces.IApprovalLedger) *ContractUseCase {
	return &ContractUseCase{store: store, ledger: ledger}
}

func (u *ContractUseCase) CreateDraft(ctx context.Context, cmd CreateContractCommand) (entities.Contract, error) {
	cmd.ContractNumber = strings.TrimSpace(cmd.ContractNumber)
	cmd.ContractableID = strings.TrimSpace(cmd.ContractableID)

	if !cmd.ContractableType.Valid() {
		return entities.Contract{}, ErrInvalidContractableType
	}
	if cmd.ContractableID == "" {
		return entities.Contract{}, ErrInvalidContractableID
	}
	if !cmd.EndDate.IsZero() && !cmd.EndDate.After(cmd.StartDate) {
		return entities.Contract{}, ErrInvalidValidityWindow
	}

	now := time.Now().UTC()
	id := uuid.NewString()

	number := cmd.ContractNumber
	if number == "" {
		number = newContractNumber(now, id)
	}

	c := entities.Contract{
		ID:               id,
		ContractNumber:   number,
		ContractableType: cmd.ContractableType,
		ContractableID:   cmd.ContractableID,
		Status:           entities.ContractStatusDraft,
		TemplateData:     cmd.TemplateData,
		StartDate:        cmd.StartDate,
		EndDate:          cmd.EndDate,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.store.Create(ctx, c)
	if err != nil {
		return entities.Contract{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return created, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.store.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

// History returns the contract's approval records ordered by created_at
// ascending: the append-only audit trail of every accepted transition.
func (u *ContractUseCase) History(ctx context.Context, contractID string) ([]entities.ApprovalRecord, error) {
	if _, err := u.GetByID(ctx, contractID); err != nil {
		return nil, err
	}

	records, err := u.ledger.ListByContractID(ctx, strings.TrimSpace(contractID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return records, nil
}

// newContractNumber derives the human-facing identifier assigned when
// the creation flow does not bring its own (e.g. CT-2026-1A2B3C4D).
func newContractNumber(now time.Time, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("CT-%d-%s", now.Year(), suffix)
}
