package tui

import (
	"github.com/Sruthika-k/Bragboard/internal/admin"
	"github.com/Sruthika-k/Bragboard/internal/api"
)

// loginResultMsg carries the outcome of a credential exchange.
type loginResultMsg struct {
	resp *api.LoginResponse
	err  error
}

// registerResultMsg carries the outcome of account creation.
type registerResultMsg struct {
	resp *api.RegisterResponse
	err  error
}

// navbarLoadedMsg carries the dashboard chrome data: the department list
// and the current user's identity. Either may be missing; the navbar
// renders regardless.
type navbarLoadedMsg struct {
	departments []string
	me          *api.User
}

// signupDataMsg carries the department list for the signup form's
// department picker.
type signupDataMsg struct {
	departments []string
}

// feedLoadedMsg signals that a feed load finished. The synchronizer already
// holds (or discarded) the result; the view just re-reads its snapshot.
type feedLoadedMsg struct {
	committed bool
}

// reactionToggledMsg signals that a reaction round trip finished.
type reactionToggledMsg struct{}

// commentsLoadedMsg signals that a comment thread finished loading.
type commentsLoadedMsg struct {
	shoutoutID int
}

// commentPostedMsg reports whether a comment submission was accepted; the
// composer clears its input only when it was.
type commentPostedMsg struct {
	shoutoutID int
	accepted   bool
}

// composeDataMsg carries the directory and department list for the compose
// overlay, re-fetched on every open.
type composeDataMsg struct {
	users       []api.User
	departments []string
}

// composeResultMsg carries the outcome of posting a new shoutout.
type composeResultMsg struct {
	err error
}

// adminTabLoadedMsg signals that an admin tab's buckets are in place.
type adminTabLoadedMsg struct {
	tab admin.Tab
}

// adminNoticeMsg carries a transient admin console notice, such as the
// dismiss confirmation message.
type adminNoticeMsg struct {
	text string
}

// adminGateMsg carries the identity check that guards the admin page.
type adminGateMsg struct {
	me  *api.User
	err error
}
