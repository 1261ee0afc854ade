package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type staticTokens struct {
	token string
	typ   string
}

func (s staticTokens) Token() (string, string) { return s.token, s.typ }

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, staticTokens{token: "tok-1", typ: "bearer"}, nil)
	if _, err := client.Users(context.Background()); err != nil {
		t.Fatalf("Users returned error: %v", err)
	}

	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-1")
	}
	if gotRequestID == "" {
		t.Error("expected an X-Request-Id header on every request")
	}
}

func TestNoTokenMeansNoAuthHeader(t *testing.T) {
	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, staticTokens{}, nil)
	if _, err := client.Users(context.Background()); err != nil {
		t.Fatalf("Users returned error: %v", err)
	}
	if sawAuth {
		t.Error("request should not carry an Authorization header without a token")
	}
}

func TestErrorCarriesServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Incorrect email or password"}`))
	}))
	defer server.Close()

	client := New(server.URL, nil, nil)
	_, err := client.Login(context.Background(), "a@b.c", "nope")
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", apiErr.Status)
	}
	if apiErr.Detail != "Incorrect email or password" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
	if !IsAuthError(err) {
		t.Error("IsAuthError should be true for a 401")
	}
	if got := ErrorDetail(err, "fallback"); got != "Incorrect email or password" {
		t.Errorf("ErrorDetail = %q", got)
	}
}

func TestErrorDetailFallback(t *testing.T) {
	err := &Error{Status: http.StatusBadGateway}
	if got := ErrorDetail(err, "generic failure"); got != "generic failure" {
		t.Errorf("ErrorDetail = %q, want the fallback", got)
	}
	if got := ErrorDetail(errors.New("plain"), "generic failure"); got != "generic failure" {
		t.Errorf("ErrorDetail on a non-API error = %q, want the fallback", got)
	}
}

func TestFeedUnwrapsItemsAndSendsScope(t *testing.T) {
	var gotDept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDept = r.URL.Query().Get("department")
		w.Write([]byte(`{"items": [
			{"id": 1, "sender_id": 2, "message": "great work",
			 "reactions": {"like": 1, "clap": 0, "star": 2},
			 "created_at": "2025-03-01T10:00:00"}
		]}`))
	}))
	defer server.Close()

	client := New(server.URL, nil, nil)
	items, err := client.Feed(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("Feed returned error: %v", err)
	}

	if gotDept != "Engineering" {
		t.Errorf("department query = %q", gotDept)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Reactions.Star != 2 {
		t.Errorf("star count = %d, want 2", items[0].Reactions.Star)
	}
	if items[0].CreatedAt.IsZero() {
		t.Error("created_at without timezone should still parse")
	}
}

func TestDepartmentsUnwrapsList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"departments": ["Engineering", "Human Resources", "Marketing", "Design", "Finance", "Operations"]}`))
	}))
	defer server.Close()

	client := New(server.URL, nil, nil)
	departments, err := client.Departments(context.Background())
	if err != nil {
		t.Fatalf("Departments returned error: %v", err)
	}

	want := []string{"Engineering", "Human Resources", "Marketing", "Design", "Finance", "Operations"}
	if len(departments) != len(want) {
		t.Fatalf("expected %d departments, got %d", len(want), len(departments))
	}
	for i := range want {
		if departments[i] != want[i] {
			t.Errorf("departments[%d] = %q, want %q", i, departments[i], want[i])
		}
	}
}

func TestToggleReactionReturnsServerCounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reaction/toggle" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"counts": {"like": 4, "clap": 1, "star": 0}}`))
	}))
	defer server.Close()

	client := New(server.URL, nil, nil)
	counts, err := client.ToggleReaction(context.Background(), 7, ReactionLike)
	if err != nil {
		t.Fatalf("ToggleReaction returned error: %v", err)
	}
	if counts.Like != 4 || counts.Clap != 1 || counts.Star != 0 {
		t.Errorf("counts = %+v", counts)
	}
}

func TestLoginHonorsAuthTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New(server.URL, nil, &Options{AuthTimeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := client.Login(context.Background(), "a@b.c", "pw")
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("login took %v, auth timeout not applied", elapsed)
	}
}

func TestLoginDefaultsTokenType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "tok"}`))
	}))
	defer server.Close()

	client := New(server.URL, nil, nil)
	resp, err := client.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("TokenType = %q, want bearer default", resp.TokenType)
	}
}

func TestAdminDismissReportMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/reports/3/dismiss" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"message": "Report Resolved"}`))
	}))
	defer server.Close()

	client := New(server.URL, nil, nil)
	msg, err := client.AdminDismissReport(context.Background(), 3)
	if err != nil {
		t.Fatalf("AdminDismissReport returned error: %v", err)
	}
	if msg != "Report Resolved" {
		t.Errorf("message = %q", msg)
	}
}
