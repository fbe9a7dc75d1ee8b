package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMemoryStore_SaveAndListByUser(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	older := ResultRecord{
		ID:              "r1",
		AnonymousUserID: "user-a",
		TestName:        "phq9",
		Result:          json.RawMessage(`{"rawScore":7}`),
		CompletedAt:     time.Now().UTC().Add(-time.Hour),
	}
	newer := ResultRecord{
		ID:              "r2",
		AnonymousUserID: "user-a",
		TestName:        "gad7",
		Result:          json.RawMessage(`{"rawScore":3}`),
		CompletedAt:     time.Now().UTC(),
	}
	other := ResultRecord{ID: "r3", AnonymousUserID: "user-b", TestName: "phq9", CompletedAt: time.Now().UTC()}

	for _, rec := range []ResultRecord{older, newer, other} {
		if err := m.SaveResult(ctx, rec); err != nil {
			t.Fatalf("SaveResult(%s): %v", rec.ID, err)
		}
	}

	got, err := m.ResultsByUser(ctx, "user-a")
	if err != nil {
		t.Fatalf("ResultsByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != "r2" || got[1].ID != "r1" {
		t.Errorf("order = %s,%s, want newest first", got[0].ID, got[1].ID)
	}

	empty, err := m.ResultsByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("ResultsByUser(nobody): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no records, got %d", len(empty))
	}
}

func TestMemoryStore_FailSaves(t *testing.T) {
	m := NewMemoryStore()
	m.FailSaves = true
	if err := m.SaveResult(context.Background(), ResultRecord{ID: "r1"}); err == nil {
		t.Fatal("expected save error")
	}
}

func TestMemoryStore_RecordSubmissionAggregates(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if _, err := m.UserAnalytics(ctx, "user-a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before any submission, got %v", err)
	}

	submissions := []struct{ test, lang, level string }{
		{"phq9", "en", "low"},
		{"phq9", "en", "moderate"},
		{"gad7", "ks", "low"},
		{"mbti", "ks", ""},
	}
	for _, s := range submissions {
		if err := m.RecordSubmission(ctx, "user-a", s.test, s.lang, s.level); err != nil {
			t.Fatalf("RecordSubmission: %v", err)
		}
	}

	ua, err := m.UserAnalytics(ctx, "user-a")
	if err != nil {
		t.Fatalf("UserAnalytics: %v", err)
	}
	if ua.TotalTestsTaken != 4 {
		t.Errorf("totalTestsTaken = %d, want 4", ua.TotalTestsTaken)
	}
	if ua.TestsByType["phq9"] != 2 || ua.TestsByType["gad7"] != 1 {
		t.Errorf("testsByType = %v", ua.TestsByType)
	}
	if ua.PreferredLanguage != "ks" {
		t.Errorf("preferredLanguage = %q, want most recent lang", ua.PreferredLanguage)
	}
	if ua.LastActiveAt.IsZero() {
		t.Error("lastActiveAt not set")
	}

	stats, err := m.DailyStats(ctx, 7)
	if err != nil {
		t.Fatalf("DailyStats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d daily stats, want 1", len(stats))
	}
	day := stats[0]
	if day.TotalTests != 4 {
		t.Errorf("totalTests = %d, want 4", day.TotalTests)
	}
	if day.LanguageUsage["en"] != 2 || day.LanguageUsage["ks"] != 2 {
		t.Errorf("languageUsage = %v", day.LanguageUsage)
	}
	// Submissions without a severity level stay out of the breakdown.
	if got := day.SeverityBreakdown["low"] + day.SeverityBreakdown["moderate"]; got != 3 {
		t.Errorf("severity breakdown = %v", day.SeverityBreakdown)
	}
}

func TestMemoryStore_AppendEvent(t *testing.T) {
	m := NewMemoryStore()
	if err := m.AppendEvent(context.Background(), Event{Type: "ResultSaved", Key: "r1", DataJSON: "{}"}); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}
	events := m.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Type != "ResultSaved" || events[0].CreatedAt == 0 {
		t.Errorf("event = %+v", events[0])
	}
}

func TestMemoryStore_DeleteResultsBefore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	now := time.Now().UTC()

	m.SaveResult(ctx, ResultRecord{ID: "old", AnonymousUserID: "u", CompletedAt: now.AddDate(0, 0, -100)})
	m.SaveResult(ctx, ResultRecord{ID: "new", AnonymousUserID: "u", CompletedAt: now})

	removed, err := m.DeleteResultsBefore(ctx, now.AddDate(0, 0, -90))
	if err != nil {
		t.Fatalf("DeleteResultsBefore: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	left, _ := m.ResultsByUser(ctx, "u")
	if len(left) != 1 || left[0].ID != "new" {
		t.Errorf("remaining = %+v", left)
	}
}
