// Package compose builds a new shoutout from user input.
package compose

import (
	"errors"
	"slices"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/api"
)

// ErrEmptyMessage is returned when the draft's message is empty after
// trimming. The message is the only field validated client-side; everything
// else is the server's call.
var ErrEmptyMessage = errors.New("please enter a message")

// Draft accumulates the fields of a shoutout before submission.
type Draft struct {
	Message      string
	Department   string // empty means the server uses the sender's own
	ImageURL     string
	recipientIDs []int
}

// ToggleRecipient adds the user to the recipient set if absent, or removes
// them if present.
func (d *Draft) ToggleRecipient(id int) {
	if i := slices.Index(d.recipientIDs, id); i >= 0 {
		d.recipientIDs = slices.Delete(d.recipientIDs, i, i+1)
		return
	}
	d.recipientIDs = append(d.recipientIDs, id)
}

// HasRecipient reports whether the user is in the recipient set.
func (d *Draft) HasRecipient(id int) bool {
	return slices.Contains(d.recipientIDs, id)
}

// RecipientIDs returns a copy of the recipient set in toggle order.
func (d *Draft) RecipientIDs() []int {
	return slices.Clone(d.recipientIDs)
}

// Validate checks the draft for client-side errors.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// Request assembles the create request. Optional fields are omitted when
// empty so the server applies its defaults.
func (d *Draft) Request() api.CreateShoutoutRequest {
	return api.CreateShoutoutRequest{
		Message:      d.Message,
		Department:   d.Department,
		RecipientIDs: d.RecipientIDs(),
		ImageURL:     d.ImageURL,
	}
}

// Reset returns the draft to its empty state, ready for the next shoutout.
func (d *Draft) Reset() {
	*d = Draft{}
}
