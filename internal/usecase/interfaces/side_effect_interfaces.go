package interfaces

//go:generate mockgen -source=side_effect_interfaces.go -destination=mocks/side_effect_interfaces_mock.go -package=mock_interfaces

import "context"

// Request update kinds sent to providers.
const (
	RequestUpdateAssigned  = "assigned"
	RequestUpdateReopened  = "reopened"
	RequestUpdateCancelled = "cancelled"
	RequestUpdateCompleted = "completed"
	RequestUpdateRejected  = "rejected"
)

// IMessenger posts system messages into the conversation between two profiles.
type IMessenger interface {
	PostSystemMessage(ctx context.Context, senderID, receiverID, requestID, text string) error
}

// INotifier delivers push-style notifications.
type INotifier interface {
	NotifyQuoteAcceptance(ctx context.Context, quoteID, actingProfileID string, isRequester bool) error
	NotifyProviderOfRequestUpdate(ctx context.Context, requestID, kind string) error
}

// ISideEffects is the fire-and-forget boundary the use cases talk to. Calls
// never block on delivery and never report failures back.
type ISideEffects interface {
	PostSystemMessage(senderID, receiverID, requestID, text string)
	NotifyQuoteAcceptance(quoteID, actingProfileID string, isRequester bool)
	NotifyProviderOfRequestUpdate(requestID, kind string)
}
