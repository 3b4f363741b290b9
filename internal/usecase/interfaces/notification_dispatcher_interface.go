package interfaces

import (
	"context"

	"saude_conecta/internal/domain/entities"
)

// INotificationDispatcher hands accepted transitions to the notification
// collaborator. Delivery/retry semantics are its problem; the engine only
// emits after the store commit succeeded and logs (but does not fail) on
// dispatch errors.

type INotificationDispatcher interface {
	DispatchWorkflowAdvanced(ctx context.Context, ev entities.WorkflowEvent) error
}
