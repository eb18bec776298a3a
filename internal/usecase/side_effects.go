package usecase

import "engagement_service/internal/usecase/interfaces"

// effectBatch collects side effects while a request lock is held. They are
// flushed after the lock is released and only when the change set committed.
type effectBatch []func(interfaces.ISideEffects)

func (b *effectBatch) message(senderID, receiverID, requestID, text string) {
	*b = append(*b, func(s interfaces.ISideEffects) {
		s.PostSystemMessage(senderID, receiverID, requestID, text)
	})
}

func (b *effectBatch) quoteAcceptance(quoteID, actingID string, isRequester bool) {
	*b = append(*b, func(s interfaces.ISideEffects) {
		s.NotifyQuoteAcceptance(quoteID, actingID, isRequester)
	})
}

func (b *effectBatch) requestUpdate(requestID, kind string) {
	*b = append(*b, func(s interfaces.ISideEffects) {
		s.NotifyProviderOfRequestUpdate(requestID, kind)
	})
}

func (b effectBatch) flush(sink interfaces.ISideEffects) {
	if sink == nil {
		return
	}
	for _, emit := range b {
		emit(sink)
	}
}
