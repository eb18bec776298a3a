package messaging

import (
	"context"
	"fmt"
	"time"

	"engagement_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SystemMessage is a lifecycle message stored in the conversation between a
// requester and a provider.
type SystemMessage struct {
	ID         string    `bson:"_id"`
	RequestID  string    `bson:"request_id"`
	SenderID   string    `bson:"sender_id"`
	ReceiverID string    `bson:"receiver_id"`
	Text       string    `bson:"text"`
	System     bool      `bson:"system"`
	CreatedAt  time.Time `bson:"created_at"`
}

type MongoMessenger struct {
	coll *mongo.Collection
	now  func() time.Time
}

var _ interfaces.IMessenger = (*MongoMessenger)(nil)

func NewMongoMessenger(client *mongo.Client, dbName, collName string) *MongoMessenger {
	return &MongoMessenger{
		coll: client.Database(dbName).Collection(collName),
		now:  time.Now,
	}
}

func (m *MongoMessenger) EnsureIndexes(ctx context.Context) error {
	_, err := m.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "request_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}

func (m *MongoMessenger) PostSystemMessage(ctx context.Context, senderID, receiverID, requestID, text string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	msg := SystemMessage{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		System:     true,
		CreatedAt:  m.now().UTC(),
	}
	if _, err := m.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert system message: %w", err)
	}
	return nil
}
