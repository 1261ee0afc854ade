// Package admin holds the state behind the admin console tabs. Each tab
// fetches its own data independently; delete and dismiss mutations remove
// the affected row from local state on success without re-fetching the
// whole list.
package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/logging"
)

// Tab identifies one admin console view.
type Tab string

const (
	TabOverview  Tab = "overview"
	TabUsers     Tab = "users"
	TabShoutouts Tab = "shoutouts"
	TabReports   Tab = "reports"
	TabAnalytics Tab = "analytics"
)

// Tabs lists the console tabs in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabUsers, TabShoutouts, TabReports, TabAnalytics}
}

// API is the slice of the BragBoard client the console needs.
type API interface {
	AdminUsers(ctx context.Context) ([]api.User, error)
	AdminShoutouts(ctx context.Context) ([]api.Shoutout, error)
	AdminDeleteShoutout(ctx context.Context, id int) error
	AdminReports(ctx context.Context) ([]api.Report, error)
	AdminDismissReport(ctx context.Context, id int) (string, error)
	AdminAnalytics(ctx context.Context) (*api.Analytics, error)
}

// Console owns the data buckets behind the admin tabs. Safe for concurrent
// use.
type Console struct {
	client API
	log    *logging.Logger

	mu        sync.Mutex
	users     []api.User
	shoutouts []api.Shoutout
	reports   []api.Report
	analytics api.Analytics
	loadErr   error
}

// NewConsole creates a Console over the given client. A nil logger disables
// logging.
func NewConsole(client API, log *logging.Logger) *Console {
	if log == nil {
		log = logging.Nop()
	}
	return &Console{client: client, log: log}
}

// LoadTab fetches whatever the given tab displays. Overview and analytics
// also load users so analytics rows can be joined to names.
func (c *Console) LoadTab(ctx context.Context, tab Tab) {
	switch tab {
	case TabOverview, TabAnalytics:
		c.LoadAnalytics(ctx)
		c.LoadUsers(ctx)
	case TabUsers:
		c.LoadUsers(ctx)
	case TabShoutouts:
		c.LoadShoutouts(ctx)
		c.LoadUsers(ctx)
	case TabReports:
		c.LoadReports(ctx)
		c.LoadUsers(ctx)
	}
}

// LoadUsers refreshes the user bucket.
func (c *Console) LoadUsers(ctx context.Context) {
	users, err := c.client.AdminUsers(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loadErr = fmt.Errorf("failed to load users: %w", err)
		return
	}
	c.loadErr = nil
	c.users = users
}

// LoadShoutouts refreshes the shoutout bucket.
func (c *Console) LoadShoutouts(ctx context.Context) {
	shoutouts, err := c.client.AdminShoutouts(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loadErr = fmt.Errorf("failed to load shoutouts: %w", err)
		return
	}
	c.loadErr = nil
	c.shoutouts = shoutouts
}

// LoadReports refreshes the report bucket.
func (c *Console) LoadReports(ctx context.Context) {
	reports, err := c.client.AdminReports(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loadErr = fmt.Errorf("failed to load reports: %w", err)
		return
	}
	c.loadErr = nil
	c.reports = reports
}

// LoadAnalytics refreshes the aggregate stats.
func (c *Console) LoadAnalytics(ctx context.Context) {
	analytics, err := c.client.AdminAnalytics(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loadErr = fmt.Errorf("failed to load analytics: %w", err)
		return
	}
	c.loadErr = nil
	c.analytics = *analytics
}

// DeleteShoutout removes a shoutout server-side and, on success, drops the
// row from local state without a re-fetch. Failures leave the row in place.
func (c *Console) DeleteShoutout(ctx context.Context, id int) {
	if err := c.client.AdminDeleteShoutout(ctx, id); err != nil {
		c.log.Debug("best-effort mutation failed", "op", "delete shoutout", "error", err.Error())
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shoutouts = deleteByID(c.shoutouts, func(s api.Shoutout) bool { return s.ID == id })
}

// DismissReport resolves a report server-side and, on success, drops the
// row locally. Returns the server's message ("Report Resolved" fallback)
// and whether the dismiss succeeded.
func (c *Console) DismissReport(ctx context.Context, id int) (string, bool) {
	msg, err := c.client.AdminDismissReport(ctx, id)
	if err != nil {
		c.log.Debug("best-effort mutation failed", "op", "dismiss report", "error", err.Error())
		return "", false
	}
	if msg == "" {
		msg = "Report Resolved"
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = deleteByID(c.reports, func(r api.Report) bool { return r.ID == id })
	return msg, true
}

func deleteByID[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Users returns the current user bucket.
func (c *Console) Users() []api.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.User, len(c.users))
	copy(out, c.users)
	return out
}

// Shoutouts returns the current shoutout bucket.
func (c *Console) Shoutouts() []api.Shoutout {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.Shoutout, len(c.shoutouts))
	copy(out, c.shoutouts)
	return out
}

// Reports returns the current report bucket.
func (c *Console) Reports() []api.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.Report, len(c.reports))
	copy(out, c.reports)
	return out
}

// Analytics returns the current aggregate stats.
func (c *Console) Analytics() api.Analytics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analytics
}

// Err returns the most recent load error, or nil.
func (c *Console) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// UserName joins a user id against the loaded user bucket, with the
// console's "Unknown User" fallback.
func (c *Console) UserName(id int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, u := range c.users {
		if u.ID == id {
			return u.Name
		}
	}
	return "Unknown User"
}

// MaxUserCount returns the largest count in an analytics row set, never
// less than 1 so bar widths divide cleanly.
func MaxUserCount(rows []api.UserCount) int {
	max := 0
	for _, r := range rows {
		if r.Count > max {
			max = r.Count
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

// MaxDepartmentCount is MaxUserCount for department rows.
func MaxDepartmentCount(rows []api.DepartmentCount) int {
	max := 0
	for _, r := range rows {
		if r.Count > max {
			max = r.Count
		}
	}
	if max == 0 {
		return 1
	}
	return max
}
