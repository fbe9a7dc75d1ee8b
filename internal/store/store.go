// Package store persists scored results, per-user analytics and daily
// aggregate statistics. The scoring engine never touches this package; a
// submission's result is valid and returnable whether or not persistence
// succeeds.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ResultRecord is one stored submission: the raw answers, the scored result
// (as produced by the engine, serialized whole) and privacy-preserving
// request hashes.
type ResultRecord struct {
	ID              string             `json:"id"`
	AnonymousUserID string             `json:"anonymousUserId"`
	TestName        string             `json:"testName"`
	TestType        string             `json:"testType"`
	Answers         map[string]float64 `json:"answers"`
	Result          json.RawMessage    `json:"results"`
	Language        string             `json:"language"`
	CompletedAt     time.Time          `json:"completedAt"`
	IPHash          string             `json:"-"`
	DeviceHash      string             `json:"-"`
}

// UserAnalytics aggregates one anonymous user's activity.
type UserAnalytics struct {
	AnonymousUserID   string         `json:"anonymousUserId"`
	TotalTestsTaken   int            `json:"totalTestsTaken"`
	TestsByType       map[string]int `json:"testsByType"`
	PreferredLanguage string         `json:"preferredLanguage"`
	LastActiveAt      time.Time      `json:"lastActiveDate"`
}

// DailyStat is one day of anonymized system-wide aggregates. No personal
// data is kept at this level.
type DailyStat struct {
	Day               string         `json:"date"`
	TotalTests        int            `json:"totalTests"`
	TestBreakdown     map[string]int `json:"testBreakdown"`
	LanguageUsage     map[string]int `json:"languageUsage"`
	SeverityBreakdown map[string]int `json:"severityDistribution"`
}

// Event is one append-only audit entry, written alongside every persisted
// submission.
type Event struct {
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// Store is the persistence contract. The SQL implementation backs the
// server; the in-memory one backs tests.
type Store interface {
	SaveResult(ctx context.Context, rec ResultRecord) error
	ResultsByUser(ctx context.Context, anonID string) ([]ResultRecord, error)

	UserAnalytics(ctx context.Context, anonID string) (UserAnalytics, error)
	RecordSubmission(ctx context.Context, anonID, testName, lang, severityLevel string) error

	DailyStats(ctx context.Context, days int) ([]DailyStat, error)
	AppendEvent(ctx context.Context, e Event) error

	DeleteResultsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Ping(ctx context.Context) error
}
