package adapter

import (
	"context"
	"errors"
	"fmt"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const conversationCollection = "conversations"

// MongoConversationRepository stores each conversation as a single document
// with the message array embedded, mirroring the keyed-record layout the
// domain model describes. Optimistic concurrency rides on the document's
// version field: replacements filter on both _id and the version that was
// read, so a racing writer's replacement simply matches nothing.
type MongoConversationRepository struct {
	coll *mongo.Collection
}

// mongoConversation adds the lookup key the adapter maintains alongside the
// domain document.
type mongoConversation struct {
	messaging.Conversation `bson:",inline"`
	ParticipantKey         string `bson:"participant_key"`
}

func NewMongoConversationRepository(db *mongo.Database) *MongoConversationRepository {
	return &MongoConversationRepository{coll: db.Collection(conversationCollection)}
}

// Ensure interface compliance at compile time
var _ repository.ConversationRepository = (*MongoConversationRepository)(nil)

// EnsureIndexes creates the unique participant-pair index. The index is what
// turns a racing double-create for the same pair into a typed duplicate
// error instead of a second conversation.
func (r *MongoConversationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "participant_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "participants", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("mongo: create indexes: %w", err)
	}
	return nil
}

func (r *MongoConversationRepository) Create(ctx context.Context, c messaging.Conversation) error {
	doc := mongoConversation{Conversation: c, ParticipantKey: c.ParticipantKey()}
	_, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateParticipants
	}
	if err != nil {
		return fmt.Errorf("mongo: insert conversation: %w", err)
	}
	return nil
}

func (r *MongoConversationRepository) Get(ctx context.Context, id string) (*messaging.Conversation, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoConversationRepository) FindByParticipants(ctx context.Context, userA, userB string) (*messaging.Conversation, error) {
	return r.findOne(ctx, bson.M{"participant_key": messaging.ParticipantKey(userA, userB)})
}

func (r *MongoConversationRepository) findOne(ctx context.Context, filter bson.M) (*messaging.Conversation, error) {
	var doc mongoConversation
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: find conversation: %w", err)
	}
	return &doc.Conversation, nil
}

func (r *MongoConversationRepository) ListByParticipant(ctx context.Context, userID string) ([]messaging.Conversation, error) {
	cur, err := r.coll.Find(ctx, bson.M{"participants": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo: list conversations: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoConversation
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode conversations: %w", err)
	}
	out := make([]messaging.Conversation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Conversation)
	}
	return out, nil
}

func (r *MongoConversationRepository) Update(ctx context.Context, c messaging.Conversation) error {
	next := c
	next.Version = c.Version + 1
	doc := mongoConversation{Conversation: next, ParticipantKey: next.ParticipantKey()}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID, "version": c.Version}, doc)
	if err != nil {
		return fmt.Errorf("mongo: replace conversation: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the version moved on or the document is gone; tell them apart
		// so NotFound does not masquerade as a retryable conflict.
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": c.ID})
		if err != nil {
			return fmt.Errorf("mongo: verify conversation: %w", err)
		}
		if n == 0 {
			return repository.ErrNotFound
		}
		return repository.ErrVersionConflict
	}
	return nil
}
