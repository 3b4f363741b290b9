package interfaces

import (
	"context"

	"saude_conecta/internal/domain/entities"
)

// IApprovalLedger is the read side of the audit ledger. Records are
// appended through IContractStore.CommitTransition so that the status
// write and the ledger row land in one atomic unit; this interface never
// exposes update or delete (compliance: records are immutable).

type IApprovalLedger interface {
	ListByContractID(ctx context.Context, contractID string) ([]entities.ApprovalRecord, error)
}
