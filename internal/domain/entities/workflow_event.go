package entities

import "time"

// WorkflowEvent is emitted after every accepted transition (including
// signing) for the notification dispatcher to consume. Delivery and retry
// semantics belong to the dispatcher, not to the engine.

type WorkflowEvent struct {
	ContractID string         `json:"contract_id"`
	OldStatus  ContractStatus `json:"old_status"`
	NewStatus  ContractStatus `json:"new_status"`
	ActorID    string         `json:"actor_id"`
	Timestamp  time.Time      `json:"timestamp"`
}
