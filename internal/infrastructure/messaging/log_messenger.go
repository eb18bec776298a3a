package messaging

import (
	"context"
	"log"

	"engagement_service/internal/usecase/interfaces"
)

// LogMessenger writes system messages to the service log. Used when no
// message store is configured.
type LogMessenger struct{}

var _ interfaces.IMessenger = LogMessenger{}

func (LogMessenger) PostSystemMessage(ctx context.Context, senderID, receiverID, requestID, text string) error {
	_ = ctx
	log.Printf("[messaging][log] system message request_id=%s sender_id=%s receiver_id=%s text=%q", requestID, senderID, receiverID, text)
	return nil
}
