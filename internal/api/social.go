package api

import (
	"context"
	"fmt"
	"net/url"
)

// Users returns the full user directory.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Departments returns the known department names.
func (c *Client) Departments(ctx context.Context) ([]string, error) {
	var resp struct {
		Departments []string `json:"departments"`
	}
	if err := c.get(ctx, "/departments", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Departments, nil
}

// Feed lists shoutouts for a department scope. The scope travels as a
// request parameter ("all", "mine", or a department name); any further
// narrowing is the caller's business, client-side.
func (c *Client) Feed(ctx context.Context, department string) ([]Shoutout, error) {
	query := url.Values{}
	if department != "" {
		query.Set("department", department)
	}
	var resp struct {
		Items []Shoutout `json:"items"`
	}
	if err := c.get(ctx, "/shoutout/feed", query, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// CreateShoutout posts a new shoutout.
func (c *Client) CreateShoutout(ctx context.Context, req CreateShoutoutRequest) error {
	return c.post(ctx, "/shoutout/create", req, nil)
}

// ToggleReaction toggles the caller's reaction of the given type on a
// shoutout and returns the server's updated aggregate counts. Callers must
// replace their local counts with the returned value rather than increment,
// so concurrent reactions by other users are never lost.
func (c *Client) ToggleReaction(ctx context.Context, shoutoutID int, typ ReactionType) (ReactionCounts, error) {
	body := struct {
		ShoutoutID int          `json:"shoutout_id"`
		Type       ReactionType `json:"type"`
	}{ShoutoutID: shoutoutID, Type: typ}

	var resp struct {
		Counts ReactionCounts `json:"counts"`
	}
	if err := c.post(ctx, "/reaction/toggle", body, &resp); err != nil {
		return ReactionCounts{}, err
	}
	return resp.Counts, nil
}

// Comments lists the comments on one shoutout, in server order.
func (c *Client) Comments(ctx context.Context, shoutoutID int) ([]Comment, error) {
	var resp struct {
		Items []Comment `json:"items"`
	}
	if err := c.get(ctx, fmt.Sprintf("/comment/fetch/%d", shoutoutID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddComment creates a comment on a shoutout.
func (c *Client) AddComment(ctx context.Context, shoutoutID int, content string) error {
	body := struct {
		ShoutoutID int    `json:"shoutout_id"`
		Content    string `json:"content"`
	}{ShoutoutID: shoutoutID, Content: content}
	return c.post(ctx, "/comment/add", body, nil)
}

// ReportShoutout files a report against a shoutout.
func (c *Client) ReportShoutout(ctx context.Context, shoutoutID int, reason string) error {
	body := struct {
		ShoutoutID int    `json:"shoutout_id"`
		Reason     string `json:"reason"`
	}{ShoutoutID: shoutoutID, Reason: reason}
	return c.post(ctx, "/shoutout/report", body, nil)
}

// ReportComment files a report against a comment.
func (c *Client) ReportComment(ctx context.Context, commentID int, reason string) error {
	body := struct {
		CommentID int    `json:"comment_id"`
		Reason    string `json:"reason"`
	}{CommentID: commentID, Reason: reason}
	return c.post(ctx, "/comment/report", body, nil)
}
