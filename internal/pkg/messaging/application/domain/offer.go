package messaging

import "time"

// OfferStatus tags where an offer sits in its lifecycle. The graph only moves
// forward: pending -> responded -> approved | denied. There is no path back
// to pending, but a denied offer may be re-opened by a fresh response (the
// original product behavior, kept deliberately permissive).
type OfferStatus string

const (
	OfferPending   OfferStatus = "pending"
	OfferResponded OfferStatus = "responded"
	OfferApproved  OfferStatus = "approved"
	OfferDenied    OfferStatus = "denied"
)

// DeniedNote is the system-supplied response recorded when an offer is denied.
const DeniedNote = "Offer denied."

// Offer is a collaboration proposal embedded in exactly one message. The
// proposing party (the message sender) sends it; the recipient responds with
// a post link; the proposer then approves or denies.
type Offer struct {
	Company          string      `json:"company" bson:"company"`
	Product          string      `json:"product" bson:"product"`
	DurationDays     int         `json:"duration_days" bson:"duration_days"`
	CreatedAt        time.Time   `json:"created_at" bson:"created_at"`
	Status           OfferStatus `json:"status" bson:"status"`
	Response         *string     `json:"response,omitempty" bson:"response,omitempty"`
	AssociatedPostID *string     `json:"associated_post_id,omitempty" bson:"associated_post_id,omitempty"`
}

// Respond records the recipient's counter: free-text plus the post proposed
// as the subject of the collaboration. Responding again overwrites the
// previous response and post link, including after a terminal decision.
func (o *Offer) Respond(postID, response string) {
	o.Response = &response
	o.AssociatedPostID = &postID
	o.Status = OfferResponded
}

// Approve marks the offer approved. It reports ErrIncompleteOffer, leaving
// the offer untouched, when no post is linked yet; approval never holds
// without an associated post. Approving an already-approved offer is a no-op.
func (o *Offer) Approve() error {
	if o.Status == OfferApproved {
		return nil
	}
	if o.AssociatedPostID == nil {
		return ErrIncompleteOffer
	}
	o.Status = OfferApproved
	return nil
}

// Deny is terminal: it clears the post link and records the system note,
// overwriting any prior response. Only a fresh Respond can move the offer
// out of this state.
func (o *Offer) Deny() {
	note := DeniedNote
	o.Status = OfferDenied
	o.AssociatedPostID = nil
	o.Response = &note
}

// Expired reports whether the proposal window (CreatedAt + DurationDays) has
// passed. Advisory only; nothing enforces it.
func (o *Offer) Expired(now time.Time) bool {
	return now.After(o.CreatedAt.AddDate(0, 0, o.DurationDays))
}
