package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOffer() Offer {
	return Offer{
		Company:      "Acme",
		Product:      "Widget",
		DurationDays: 7,
		CreatedAt:    time.Now().UTC(),
		Status:       OfferPending,
	}
}

func TestOfferRespondMovesToResponded(t *testing.T) {
	o := pendingOffer()
	o.Respond("post-2", "counter")

	assert.Equal(t, OfferResponded, o.Status)
	require.NotNil(t, o.AssociatedPostID)
	assert.Equal(t, "post-2", *o.AssociatedPostID)
	require.NotNil(t, o.Response)
	assert.Equal(t, "counter", *o.Response)
}

func TestOfferRespondOverwritesPreviousResponse(t *testing.T) {
	o := pendingOffer()
	o.Respond("post-1", "first")
	o.Respond("post-2", "second")

	assert.Equal(t, OfferResponded, o.Status)
	assert.Equal(t, "post-2", *o.AssociatedPostID)
	assert.Equal(t, "second", *o.Response)
}

func TestOfferApproveRequiresAssociatedPost(t *testing.T) {
	o := pendingOffer()

	err := o.Approve()
	assert.ErrorIs(t, err, ErrIncompleteOffer)
	assert.Equal(t, OfferPending, o.Status)
}

func TestOfferApproveAfterRespond(t *testing.T) {
	o := pendingOffer()
	o.Respond("post-1", "ok")

	require.NoError(t, o.Approve())
	assert.Equal(t, OfferApproved, o.Status)
	assert.Equal(t, "post-1", *o.AssociatedPostID)
}

func TestOfferApproveIsIdempotent(t *testing.T) {
	o := pendingOffer()
	o.Respond("post-1", "ok")
	require.NoError(t, o.Approve())

	before := o
	require.NoError(t, o.Approve())
	assert.Equal(t, before, o)
}

func TestOfferDenyClearsPostAndRecordsNote(t *testing.T) {
	o := pendingOffer()
	o.Respond("post-1", "ok")
	o.Deny()

	assert.Equal(t, OfferDenied, o.Status)
	assert.Nil(t, o.AssociatedPostID)
	require.NotNil(t, o.Response)
	assert.Equal(t, DeniedNote, *o.Response)
}

func TestOfferDenyAfterApproveIsPermitted(t *testing.T) {
	o := pendingOffer()
	o.Respond("post-1", "ok")
	require.NoError(t, o.Approve())

	o.Deny()
	assert.Equal(t, OfferDenied, o.Status)
	assert.Nil(t, o.AssociatedPostID)
}

func TestOfferRespondReopensDeniedOffer(t *testing.T) {
	o := pendingOffer()
	o.Respond("post-1", "ok")
	o.Deny()

	o.Respond("post-3", "try again")
	assert.Equal(t, OfferResponded, o.Status)
	assert.Equal(t, "post-3", *o.AssociatedPostID)

	require.NoError(t, o.Approve())
	assert.Equal(t, OfferApproved, o.Status)
}

func TestOfferExpired(t *testing.T) {
	o := pendingOffer()
	o.CreatedAt = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	o.DurationDays = 7

	assert.False(t, o.Expired(time.Date(2026, 1, 8, 11, 0, 0, 0, time.UTC)))
	assert.True(t, o.Expired(time.Date(2026, 1, 8, 13, 0, 0, 0, time.UTC)))
}
