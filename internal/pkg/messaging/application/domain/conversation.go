package messaging

import (
	"sort"
	"strings"
	"time"
)

// Conversation is the aggregate root: a two-party thread owning its ordered
// message history. The participant pair is fixed at creation; messages are
// append-only except for deletion by their original sender.
//
// Version is the optimistic-concurrency stamp. Every persisted mutation of a
// conversation compares against the version it read and bumps it by one, so
// two racing writers can never silently overwrite each other's messages.
type Conversation struct {
	ID           string    `json:"id" bson:"_id"`
	Participants []string  `json:"participants" bson:"participants"`
	Messages     []Message `json:"messages" bson:"messages"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	Version      int64     `json:"-" bson:"version"`
}

// NewConversation opens an empty conversation between two distinct users.
// Participants are stored in canonical (sorted) order so lookups are
// insensitive to argument order.
func NewConversation(userA, userB string, now time.Time) (Conversation, error) {
	if userA == "" || userB == "" || userA == userB {
		return Conversation{}, ErrInvalidParticipant
	}
	return Conversation{
		Participants: canonicalPair(userA, userB),
		Messages:     []Message{},
		CreatedAt:    now.UTC(),
	}, nil
}

// ParticipantKey returns the canonical identity of the participant pair.
// Two conversations are the same conversation iff their keys are equal
// (exact set equality, not mere membership).
func (c *Conversation) ParticipantKey() string {
	return ParticipantKey(c.Participants[0], c.Participants[1])
}

// ParticipantKey canonicalizes a pair of user ids into a stable lookup key.
func ParticipantKey(userA, userB string) string {
	pair := canonicalPair(userA, userB)
	return strings.Join(pair, "|")
}

func canonicalPair(userA, userB string) []string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return pair
}

// HasParticipant tells whether userID is one of the two parties.
func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Append adds a validated message to the end of the history. Both parties of
// the message must belong to this conversation.
func (c *Conversation) Append(m Message) error {
	if !c.HasParticipant(m.SenderID) || !c.HasParticipant(m.RecipientID) {
		return ErrInvalidParticipant
	}
	c.Messages = append(c.Messages, m)
	return nil
}

// FindMessage returns a pointer into the history for in-place mutation.
func (c *Conversation) FindMessage(messageID string) (*Message, error) {
	for i := range c.Messages {
		if c.Messages[i].ID == messageID {
			return &c.Messages[i], nil
		}
	}
	return nil, ErrMessageNotFound
}

// RemoveMessage deletes a message permanently, embedded offer included.
func (c *Conversation) RemoveMessage(messageID string) error {
	for i := range c.Messages {
		if c.Messages[i].ID == messageID {
			c.Messages = append(c.Messages[:i], c.Messages[i+1:]...)
			return nil
		}
	}
	return ErrMessageNotFound
}
