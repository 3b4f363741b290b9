package interfaces

import (
	"context"
	"errors"

	"saude_conecta/internal/domain/entities"
)

// ErrVersionConflict is returned by CommitTransition when the stored
// contract version no longer matches the caller's expected version. It is
// distinct from not-found so the usecase can tell a lost CAS race apart
// from a missing contract.
var ErrVersionConflict = errors.New("contract version conflict")

// IContractStore abstracts DynamoDB persistence for Contract.
//
// The engine needs to:
//   - create a draft contract (contract-creation flow ingestion)
//   - load a consistent snapshot by id
//   - commit an accepted transition: a compare-and-swap on version that
//     writes the new contract state and appends the approval record in
//     the same atomic unit (both or neither)
//
// CommitTransition receives the contract already carrying its new state
// (status, signing fields, version = expectedVersion+1) plus the ledger
// record describing the transition.

type IContractStore interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	CommitTransition(ctx context.Context, c entities.Contract, expectedVersion int64, rec entities.ApprovalRecord) (entities.Contract, error)
}
