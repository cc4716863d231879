package messaging

import (
	"strings"
	"time"
)

// Message is an entry in a conversation's history. Content and the
// sender/recipient pair are fixed at send time; the only mutable part is the
// embedded offer's sub-lifecycle.
type Message struct {
	ID          string    `json:"id" bson:"id"`
	SenderID    string    `json:"sender_id" bson:"sender_id"`
	RecipientID string    `json:"recipient_id" bson:"recipient_id"`
	Content     string    `json:"content" bson:"content"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	Offer       *Offer    `json:"offer,omitempty" bson:"offer,omitempty"`
}

// NewMessage builds a plain message, trimming and rejecting empty content.
func NewMessage(id, senderID, recipientID, content string, now time.Time) (Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, ErrEmptyContent
	}
	return Message{
		ID:          id,
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		CreatedAt:   now.UTC(),
	}, nil
}

// NewOfferMessage builds a message carrying a fresh offer in the pending
// state. The associated post may be supplied up front or left for the
// recipient to link when responding.
func NewOfferMessage(id, senderID, recipientID, content string, offer Offer, now time.Time) (Message, error) {
	m, err := NewMessage(id, senderID, recipientID, content, now)
	if err != nil {
		return Message{}, err
	}
	if offer.Company == "" || offer.Product == "" {
		return Message{}, ErrInvalidOffer
	}
	if offer.DurationDays <= 0 {
		return Message{}, ErrInvalidDuration
	}
	offer.Status = OfferPending
	offer.CreatedAt = m.CreatedAt
	offer.Response = nil
	m.Offer = &offer
	return m, nil
}
