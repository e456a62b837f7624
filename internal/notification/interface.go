package notification

import "context"

// UseCase defines the business logic interface for the notification domain.
type UseCase interface {
	// Dispatch turns one inbound workflow event into zero-or-more delivered
	// messages plus one audit record. A *ValidationError is returned for a
	// malformed payload; lookup misses (unknown repository, inactive project,
	// no subscribers) are not errors and yield a Skipped output.
	Dispatch(ctx context.Context, payload WebhookPayload) (DispatchOutput, error)

	// History returns a page of processed-event audit records.
	History(ctx context.Context, input ListWebhooksInput) (ListWebhooksOutput, error)
}

// Sender is the message-delivery channel consumed by the dispatcher.
// Implementations must report failures via the error return, never panic.
type Sender interface {
	SendMessageWithMode(ctx context.Context, chatID, text, parseMode string) error
}
