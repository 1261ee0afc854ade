package api

import (
	"context"
	"fmt"
)

// AdminUsers lists all users for moderation.
func (c *Client) AdminUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminDeleteUser removes a user account.
func (c *Client) AdminDeleteUser(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/admin/users/%d", id))
}

// AdminShoutouts lists all shoutouts for moderation.
func (c *Client) AdminShoutouts(ctx context.Context) ([]Shoutout, error) {
	var shoutouts []Shoutout
	if err := c.get(ctx, "/admin/shoutouts", nil, &shoutouts); err != nil {
		return nil, err
	}
	return shoutouts, nil
}

// AdminDeleteShoutout removes a shoutout.
func (c *Client) AdminDeleteShoutout(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/admin/shoutouts/%d", id))
}

// AdminReports lists open reports.
func (c *Client) AdminReports(ctx context.Context) ([]Report, error) {
	var reports []Report
	if err := c.get(ctx, "/admin/reports", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// AdminDismissReport resolves a report and returns the server's message, or
// an empty string when the body carries none.
func (c *Client) AdminDismissReport(ctx context.Context, id int) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, fmt.Sprintf("/admin/reports/%d/dismiss", id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// AdminAnalytics returns the aggregate stats view.
func (c *Client) AdminAnalytics(ctx context.Context) (*Analytics, error) {
	var analytics Analytics
	if err := c.get(ctx, "/admin/analytics", nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
