package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is the in-memory Store used by tests and by the engine's
// persistence-agnostic contract.
type MemoryStore struct {
	mu        sync.RWMutex
	results   []ResultRecord
	analytics map[string]UserAnalytics
	daily     map[string]DailyStat
	events    []Event

	// FailSaves makes SaveResult return an error, for exercising the
	// degraded persist-failure path.
	FailSaves bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		analytics: map[string]UserAnalytics{},
		daily:     map[string]DailyStat{},
	}
}

var errSaveFailed = &memErr{"save failed"}

type memErr struct{ s string }

func (e *memErr) Error() string { return e.s }

func (m *MemoryStore) SaveResult(_ context.Context, rec ResultRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return errSaveFailed
	}
	m.results = append(m.results, rec)
	return nil
}

func (m *MemoryStore) ResultsByUser(_ context.Context, anonID string) ([]ResultRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []ResultRecord
	for _, r := range m.results {
		if r.AnonymousUserID == anonID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out, nil
}

func (m *MemoryStore) UserAnalytics(_ context.Context, anonID string) (UserAnalytics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ua, ok := m.analytics[anonID]
	if !ok {
		return UserAnalytics{}, ErrNotFound
	}
	return ua, nil
}

func (m *MemoryStore) RecordSubmission(_ context.Context, anonID, testName, lang, severityLevel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()

	ua, ok := m.analytics[anonID]
	if !ok {
		ua = UserAnalytics{AnonymousUserID: anonID, TestsByType: map[string]int{}}
	}
	ua.TotalTestsTaken++
	ua.TestsByType[testName]++
	ua.PreferredLanguage = lang
	ua.LastActiveAt = now
	m.analytics[anonID] = ua

	day := now.Format("2006-01-02")
	st, ok := m.daily[day]
	if !ok {
		st = DailyStat{Day: day, TestBreakdown: map[string]int{}, LanguageUsage: map[string]int{}, SeverityBreakdown: map[string]int{}}
	}
	st.TotalTests++
	st.TestBreakdown[testName]++
	st.LanguageUsage[lang]++
	if severityLevel != "" {
		st.SeverityBreakdown[severityLevel]++
	}
	m.daily[day] = st
	return nil
}

func (m *MemoryStore) DailyStats(_ context.Context, days int) ([]DailyStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if days <= 0 {
		days = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
	var out []DailyStat
	for day, st := range m.daily {
		if day >= since {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out, nil
}

func (m *MemoryStore) AppendEvent(_ context.Context, e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}
	m.events = append(m.events, e)
	return nil
}

func (m *MemoryStore) DeleteResultsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.results[:0]
	var removed int64
	for _, r := range m.results {
		if r.CompletedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	m.results = kept
	return removed, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

// Events returns a copy of the appended event log.
func (m *MemoryStore) Events() []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}
