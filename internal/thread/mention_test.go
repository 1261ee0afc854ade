package thread

import (
	"testing"

	"github.com/Sruthika-k/Bragboard/internal/api"
)

func TestMatchQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		query string
		ok    bool
	}{
		{
			name:  "mention at end",
			input: "Thanks @al",
			query: "al",
			ok:    true,
		},
		{
			name:  "bare at sign",
			input: "Thanks @",
			query: "",
			ok:    true,
		},
		{
			name:  "mention at start of string",
			input: "@bo",
			query: "bo",
			ok:    true,
		},
		{
			name:  "no mention",
			input: "Thanks everyone",
			ok:    false,
		},
		{
			name:  "mention mid-text does not trigger",
			input: "Thanks @alice for the",
			ok:    false,
		},
		{
			name:  "at sign inside a word does not trigger",
			input: "mail me a@b",
			ok:    false,
		},
		{
			name:  "empty input",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, ok := MatchQuery(tt.input)
			if ok != tt.ok {
				t.Fatalf("MatchQuery(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && query != tt.query {
				t.Errorf("MatchQuery(%q) = %q, want %q", tt.input, query, tt.query)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	directory := []api.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Albert"},
		{ID: 3, Name: "Bob"},
	}

	got := Suggest(directory, "al", 8)
	if len(got) != 2 || got[0].Name != "Alice" || got[1].Name != "Albert" {
		t.Errorf("Suggest(al) = %v, want [Alice Albert]", got)
	}

	// Case-insensitive, substring anywhere in the name.
	got = Suggest(directory, "LB", 8)
	if len(got) != 1 || got[0].Name != "Albert" {
		t.Errorf("Suggest(LB) = %v, want [Albert]", got)
	}

	// Empty query matches everyone.
	got = Suggest(directory, "", 8)
	if len(got) != 3 {
		t.Errorf("Suggest(\"\") returned %d users, want all 3", len(got))
	}
}

func TestSuggestCap(t *testing.T) {
	var directory []api.User
	for i := 0; i < 20; i++ {
		directory = append(directory, api.User{ID: i, Name: "Match"})
	}
	if got := Suggest(directory, "match", 8); len(got) != 8 {
		t.Errorf("suggestions should cap at 8, got %d", len(got))
	}
}

func TestInsertMention(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		user     string
		expected string
	}{
		{
			name:     "replaces trailing token",
			text:     "Thanks @al",
			user:     "Alice",
			expected: "Thanks @Alice ",
		},
		{
			name:     "bare at sign",
			text:     "Thanks @",
			user:     "Bob",
			expected: "Thanks @Bob ",
		},
		{
			name:     "targets the last at sign",
			text:     "cc @bob and @al",
			user:     "Alice",
			expected: "cc @bob and @Alice ",
		},
		{
			name:     "text after the token is preserved before the trailing space",
			text:     "hey @al!",
			user:     "Alice",
			expected: "hey @Alice! ",
		},
		{
			name:     "no at sign leaves text unchanged",
			text:     "no mention here",
			user:     "Alice",
			expected: "no mention here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsertMention(tt.text, tt.user); got != tt.expected {
				t.Errorf("InsertMention(%q, %q) = %q, want %q", tt.text, tt.user, got, tt.expected)
			}
		})
	}
}
