package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/Sruthika-k/Bragboard/internal/admin"
	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/Sruthika-k/Bragboard/internal/config"
	"github.com/Sruthika-k/Bragboard/internal/logging"
	"github.com/Sruthika-k/Bragboard/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang-jwt/jwt/v5"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "plain address", value: "alice@example.com", want: true},
		{name: "subdomain", value: "alice@mail.example.co", want: true},
		{name: "missing at", value: "alice.example.com", want: false},
		{name: "missing domain dot", value: "alice@example", want: false},
		{name: "embedded space", value: "alice smith@example.com", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validEmail(tt.value); got != tt.want {
				t.Errorf("validEmail(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNextTabWraps(t *testing.T) {
	tabs := admin.Tabs()

	if got := nextTab(tabs[0], 1); got != tabs[1] {
		t.Errorf("forward from %q = %q, want %q", tabs[0], got, tabs[1])
	}
	if got := nextTab(tabs[len(tabs)-1], 1); got != tabs[0] {
		t.Errorf("forward from last tab = %q, want %q", got, tabs[0])
	}
	if got := nextTab(tabs[0], -1); got != tabs[len(tabs)-1] {
		t.Errorf("backward from first tab = %q, want %q", got, tabs[len(tabs)-1])
	}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return raw
}

func TestNewAppRoutesOnSessionState(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  page
	}{
		{name: "no session", token: "", want: pageLogin},
		{
			name:  "live session",
			token: signToken(t, jwt.MapClaims{"sub": "1", "exp": now.Add(time.Hour).Unix()}),
			want:  pageDashboard,
		},
		{
			name:  "expired session",
			token: signToken(t, jwt.MapClaims{"sub": "1", "exp": now.Add(-time.Hour).Unix()}),
			want:  pageLogin,
		},
		{name: "opaque token", token: "not-a-jwt", want: pageDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := session.NewStore(t.TempDir())
			if err != nil {
				t.Fatalf("NewStore returned error: %v", err)
			}
			if tt.token != "" {
				if err := store.Save(tt.token, "bearer"); err != nil {
					t.Fatalf("Save returned error: %v", err)
				}
			}

			app := NewApp(config.Default(), nil, store, logging.Nop())
			if app.page != tt.want {
				t.Errorf("start page = %d, want %d", app.page, tt.want)
			}
		})
	}
}

func TestNavbarFallsBackToStandaloneIdentity(t *testing.T) {
	m := newDashboardModel(config.Default(), nil, nil, logging.Nop())

	if got := m.viewNavbar(); !strings.Contains(got, "not signed in") {
		t.Fatalf("fresh navbar = %q, want signed-out placeholder", got)
	}

	m.Update(navbarLoadedMsg{me: &api.User{ID: 7, Name: "Alice", Role: api.RoleAdmin}})

	if got := m.viewNavbar(); !strings.Contains(got, "Alice") {
		t.Errorf("navbar after identity fetch = %q, want it to show Alice", got)
	}
	if me := m.currentUser(); me == nil || me.Role != api.RoleAdmin {
		t.Error("admin gate should see the standalone identity fetch")
	}
}

func TestSupersededFeedLoadKeepsCursor(t *testing.T) {
	m := newDashboardModel(config.Default(), nil, nil, logging.Nop())
	m.cursor = 3

	m.Update(feedLoadedMsg{committed: false})
	if m.cursor != 3 {
		t.Errorf("cursor after superseded load = %d, want 3", m.cursor)
	}

	m.Update(feedLoadedMsg{committed: true})
	if m.cursor != 0 {
		t.Errorf("cursor after committed load = %d, want 0", m.cursor)
	}
}

func TestFeedCardTruncatesStyledHeader(t *testing.T) {
	m := newDashboardModel(config.Default(), nil, nil, logging.Nop())
	m.cfg.TUI.MessageWidth = 24

	item := api.Shoutout{
		ID:         1,
		SenderID:   9,
		Department: strings.Repeat("Interplanetary Logistics ", 4),
		Message:    "hi",
	}

	if got := m.viewCard(item, false); !strings.Contains(got, "...") {
		t.Errorf("card header should be clipped to the card width, got %q", got)
	}
}

func TestSignupDepartmentPicker(t *testing.T) {
	m := newSignupModel(nil, logging.Nop())
	m.Update(signupDataMsg{departments: []string{"Engineering", "Design"}})
	m.setFocus(signupFieldDepartment)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.inputs[signupFieldDepartment].Value(); got != "Engineering" {
		t.Errorf("department after first cycle = %q, want %q", got, "Engineering")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.inputs[signupFieldDepartment].Value(); got != "Design" {
		t.Errorf("department after second cycle = %q, want %q", got, "Design")
	}
}

func TestDashboardScopesOrder(t *testing.T) {
	m := &dashboardModel{departments: []string{"Engineering", "Design"}}

	got := m.scopes()
	want := []string{"all", "mine", "Engineering", "Design"}
	if len(got) != len(want) {
		t.Fatalf("scopes() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scopes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
