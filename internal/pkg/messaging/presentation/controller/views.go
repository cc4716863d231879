package controller

import (
	"time"

	messaging "go-parley/internal/pkg/messaging/application/domain"
)

// Response DTOs. Offers carry a derived expired flag so clients can honor
// the advisory proposal window without reimplementing the date math.

type offerView struct {
	Company          string    `json:"company"`
	Product          string    `json:"product"`
	DurationDays     int       `json:"duration_days"`
	CreatedAt        time.Time `json:"created_at"`
	Status           string    `json:"status"`
	Response         *string   `json:"response,omitempty"`
	AssociatedPostID *string   `json:"associated_post_id,omitempty"`
	Expired          bool      `json:"expired"`
}

type messageView struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"sender_id"`
	RecipientID string     `json:"recipient_id"`
	Content     string     `json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	Offer       *offerView `json:"offer,omitempty"`
}

type conversationView struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	Messages     int       `json:"message_count"`
}

func viewMessage(m messaging.Message, now time.Time) messageView {
	v := messageView{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
	if m.Offer != nil {
		v.Offer = &offerView{
			Company:          m.Offer.Company,
			Product:          m.Offer.Product,
			DurationDays:     m.Offer.DurationDays,
			CreatedAt:        m.Offer.CreatedAt,
			Status:           string(m.Offer.Status),
			Response:         m.Offer.Response,
			AssociatedPostID: m.Offer.AssociatedPostID,
			Expired:          m.Offer.Expired(now),
		}
	}
	return v
}

func viewMessages(msgs []messaging.Message) []messageView {
	now := time.Now()
	out := make([]messageView, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, viewMessage(m, now))
	}
	return out
}

func viewConversation(c messaging.Conversation) conversationView {
	return conversationView{
		ID:           c.ID,
		Participants: c.Participants,
		CreatedAt:    c.CreatedAt,
		Messages:     len(c.Messages),
	}
}
