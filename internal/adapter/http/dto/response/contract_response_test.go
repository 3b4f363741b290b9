package response

import (
	"testing"
	"time"

	"saude_conecta/internal/domain/entities"
)

func TestFromContract(t *testing.T) {
	now := time.Now().UTC()
	signedAt := now.Add(-time.Hour)
	c := entities.Contract{
		ID:               "c-1",
		ContractNumber:   "CT-2026-ABCD1234",
		ContractableType: entities.ContractableHealthPlan,
		ContractableID:   "hp-1",
		Status:           entities.ContractStatusApproved,
		IsSigned:         true,
		SignedAt:         &signedAt,
		Version:          6,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res := FromContract(c)
	if res.ID != "c-1" || res.ContractNumber != "CT-2026-ABCD1234" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ContractableType != "health_plan" || res.Status != "approved" {
		t.Fatalf("unexpected mapped enums: %+v", res)
	}
	if !res.IsSigned || res.SignedAt == nil || !res.SignedAt.Equal(signedAt) {
		t.Fatalf("unexpected signature fields: %+v", res)
	}
	if res.Version != 6 || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected version or dates: %+v", res)
	}
}

func TestFromTransition(t *testing.T) {
	c := entities.Contract{
		ID:           "c-2",
		Status:       entities.ContractStatusRejected,
		RejectedStep: entities.StepLegalReview,
		Version:      3,
	}

	res := FromTransition(c)
	if res.Status != "rejected" || res.RejectedStep != "legal_review" || res.Version != 3 {
		t.Fatalf("unexpected transition response: %+v", res)
	}
}
