package api

import (
	"encoding/json"
	"testing"
)

func TestTimestampParsing(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		zero    bool
	}{
		{name: "rfc3339 with zone", input: `"2025-03-01T10:00:00Z"`},
		{name: "rfc3339 with offset", input: `"2025-03-01T10:00:00+05:30"`},
		{name: "no zone", input: `"2025-03-01T10:00:00"`},
		{name: "fractional seconds no zone", input: `"2025-03-01T10:00:00.123456"`},
		{name: "null", input: `null`, zero: true},
		{name: "empty string", input: `""`, zero: true},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ts.IsZero() != tt.zero {
				t.Errorf("IsZero() = %v, want %v", ts.IsZero(), tt.zero)
			}
		})
	}
}

func TestReactionCountsCount(t *testing.T) {
	counts := ReactionCounts{Like: 1, Clap: 2, Star: 3}

	tests := []struct {
		typ  ReactionType
		want int
	}{
		{ReactionLike, 1},
		{ReactionClap, 2},
		{ReactionStar, 3},
		{ReactionType("wave"), 0},
	}
	for _, tt := range tests {
		if got := counts.Count(tt.typ); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestReportTargetIsOptional(t *testing.T) {
	var report Report
	err := json.Unmarshal([]byte(`{"id": 1, "comment_id": 9, "reason": "spam", "reported_by": 2}`), &report)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if report.ShoutoutID != nil {
		t.Error("shoutout_id should be nil when absent")
	}
	if report.CommentID == nil || *report.CommentID != 9 {
		t.Errorf("comment_id = %v, want 9", report.CommentID)
	}
}
