package api

import (
	"fmt"
	"strings"
	"time"
)

// Role is a user's access level.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// ReactionType is one of the fixed set of named approvals on a shoutout.
type ReactionType string

const (
	ReactionLike ReactionType = "like"
	ReactionClap ReactionType = "clap"
	ReactionStar ReactionType = "star"
)

// ReactionTypes lists all reaction types in display order.
func ReactionTypes() []ReactionType {
	return []ReactionType{ReactionLike, ReactionClap, ReactionStar}
}

// Timestamp wraps time.Time to tolerate the server's timestamp formats.
// The backend emits ISO 8601 with or without a timezone offset and with
// optional fractional seconds.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON parses a JSON string into a Timestamp. Null and the empty
// string decode to the zero Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON encodes the Timestamp as an RFC 3339 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// User is a directory entry. Other entities reference users by id; only
// display fields are duplicated here.
type User struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       Role   `json:"role"`
}

// ReactionCounts holds the aggregate reaction counts for a shoutout. The
// per-user reacted state is not exposed by the API, so toggling is a blind
// request whose response replaces these counts wholesale.
type ReactionCounts struct {
	Like int `json:"like"`
	Clap int `json:"clap"`
	Star int `json:"star"`
}

// Count returns the count for a single reaction type.
func (r ReactionCounts) Count(t ReactionType) int {
	switch t {
	case ReactionLike:
		return r.Like
	case ReactionClap:
		return r.Clap
	case ReactionStar:
		return r.Star
	}
	return 0
}

// Shoutout is a recognition post from one sender to one or more recipients.
type Shoutout struct {
	ID            int            `json:"id"`
	SenderID      int            `json:"sender_id"`
	Recipients    []User         `json:"recipients"`
	Department    string         `json:"department"`
	Message       string         `json:"message"`
	ImageURL      string         `json:"image_url,omitempty"`
	CreatedAt     Timestamp      `json:"created_at"`
	Reactions     ReactionCounts `json:"reactions"`
	CommentsCount int            `json:"comments_count"`
}

// Comment belongs to exactly one shoutout. Ordering is server-provided.
type Comment struct {
	ID         int       `json:"id"`
	ShoutoutID int       `json:"shoutout_id"`
	User       *User     `json:"user"`
	Content    string    `json:"content"`
	CreatedAt  Timestamp `json:"created_at"`
}

// Report targets exactly one of a shoutout or a comment.
type Report struct {
	ID         int    `json:"id"`
	ShoutoutID *int   `json:"shoutout_id"`
	CommentID  *int   `json:"comment_id"`
	Reason     string `json:"reason"`
	ReportedBy int    `json:"reported_by"`
}

// LoginResponse is the credential exchange result.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department,omitempty"`
	Role       Role   `json:"role,omitempty"`
}

// RegisterResponse acknowledges account creation.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

// CreateShoutoutRequest builds a new shoutout. Department and ImageURL are
// optional; an omitted department defaults to the sender's own server-side.
type CreateShoutoutRequest struct {
	Message      string `json:"message"`
	Department   string `json:"department,omitempty"`
	RecipientIDs []int  `json:"recipient_ids"`
	ImageURL     string `json:"image_url,omitempty"`
}

// UserCount is an analytics row keyed by user.
type UserCount struct {
	UserID int `json:"user_id"`
	Count  int `json:"count"`
}

// DepartmentCount is an analytics row keyed by department.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// Analytics is the aggregate stats view for admins.
type Analytics struct {
	TopContributors   []UserCount       `json:"top_contributors"`
	MostTagged        []UserCount       `json:"most_tagged"`
	ActiveDepartments []DepartmentCount `json:"active_departments"`
}
