package messaging

// Guard predicates evaluated before every mutation. Each returns
// ErrNotAuthorized on failure; callers must not translate that into anything
// more specific, so a rejected caller cannot learn conversation membership.

// RequireParticipant checks that userID is a party to the conversation.
func RequireParticipant(c *Conversation, userID string) error {
	if !c.HasParticipant(userID) {
		return ErrNotAuthorized
	}
	return nil
}

// RequireSender checks that userID originally sent the message. Deleting a
// message and deciding its offer are sender-only transitions.
func RequireSender(m *Message, userID string) error {
	if m.SenderID != userID {
		return ErrNotAuthorized
	}
	return nil
}

// RequireRecipient checks that userID is the message's recipient. Responding
// to an offer is a recipient-only transition.
func RequireRecipient(m *Message, userID string) error {
	if m.RecipientID != userID {
		return ErrNotAuthorized
	}
	return nil
}
