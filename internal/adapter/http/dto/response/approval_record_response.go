package response

import (
	"time"

	"saude_conecta/internal/domain/entities"
)

type ApprovalRecordResponse struct {
	ID               string    `json:"id"`
	ContractID       string    `json:"contract_id"`
	Step             string    `json:"step"`
	Action           string    `json:"action"`
	ActorID          string    `json:"actor_id,omitempty"`
	ActorRole        string    `json:"actor_role,omitempty"`
	Notes            string    `json:"notes"`
	SuggestedChanges string    `json:"suggested_changes,omitempty"`
	ResultingStatus  string    `json:"resulting_status"`
	ResultingVersion int64     `json:"resulting_version"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromApprovalRecord(rec entities.ApprovalRecord) ApprovalRecordResponse {
	return ApprovalRecordResponse{
		ID:               rec.ID,
		ContractID:       rec.ContractID,
		Step:             string(rec.Step),
		Action:           string(rec.Action),
		ActorID:          rec.ActorID,
		ActorRole:        string(rec.ActorRole),
		Notes:            rec.Notes,
		SuggestedChanges: rec.SuggestedChanges,
		ResultingStatus:  string(rec.ResultingStatus),
		ResultingVersion: rec.ResultingVersion,
		CreatedAt:        rec.CreatedAt,
	}
}

func FromApprovalRecords(records []entities.ApprovalRecord) []ApprovalRecordResponse {
	out := make([]ApprovalRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromApprovalRecord(rec))
	}
	return out
}
