// Package feed keeps the shoutout feed for one department scope in sync
// with the server and joins it against the user directory.
//
// A Synchronizer owns the feed for a single view instance. Loads triggered
// by scope changes or refresh signals may overlap; each load takes a
// generation token, and only the load still holding the current generation
// commits its result. Superseded loads are discarded regardless of arrival
// order, so the displayed state always corresponds to the most recent
// trigger. In-flight requests are not cancelled, only their commit is
// suppressed.
//
// Reaction toggles are blind: the client does not know whether the current
// user already reacted, so it sends the toggle and replaces the item's
// counts wholesale with the server's response. Counts are never incremented
// locally, which keeps the display correct in the face of concurrent
// reactions by other users.
package feed
