package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"

	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/usecase/interfaces"
)

// memStore is an in-memory IContractStore/IApprovalLedger with the same
// CAS discipline as the DynamoDB adapter, used by the concurrency and
// replay tests where gomock expectations would over-constrain ordering.
type memStore struct {
	mu        sync.Mutex
	contracts map[string]entities.Contract
	records   map[string][]entities.ApprovalRecord
}

var (
	_ interfaces.IContractStore  = (*memStore)(nil)
	_ interfaces.IApprovalLedger = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		contracts: map[string]entities.Contract{},
		records:   map[string][]entities.ApprovalRecord{},
	}
}

func (s *memStore) Create(_ context.Context, c entities.Contract) (entities.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contracts[c.ID]; ok {
		return entities.Contract{}, errors.New("contract already exists")
	}
	s.contracts[c.ID] = c
	return c, nil
}

func (s *memStore) GetByID(_ context.Context, id string) (entities.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contracts[id], nil
}

func (s *memStore) CommitTransition(_ context.Context, c entities.Contract, expectedVersion int64, rec entities.ApprovalRecord) (entities.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.contracts[c.ID]
	if !ok {
		return entities.Contract{}, errors.New("contract does not exist")
	}
	if cur.Version != expectedVersion {
		return entities.Contract{}, interfaces.ErrVersionConflict
	}
	s.contracts[c.ID] = c
	s.records[c.ID] = append(s.records[c.ID], rec)
	return c, nil
}

func (s *memStore) ListByContractID(_ context.Context, contractID string) ([]entities.ApprovalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]entities.ApprovalRecord(nil), s.records[contractID]...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ResultingVersion < out[j].ResultingVersion
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
