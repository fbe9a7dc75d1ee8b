package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore persists records through database/sql. Placeholders use the $n
// form, which both the pgx and modernc sqlite drivers accept.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) SaveResult(ctx context.Context, rec ResultRecord) error {
	aj, err := json.Marshal(rec.Answers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO results
		(id, anonymous_user_id, test_name, test_type, answers_json, result_json, language, completed_at, ip_hash, device_hash)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		rec.ID, rec.AnonymousUserID, rec.TestName, rec.TestType,
		string(aj), string(rec.Result), rec.Language, rec.CompletedAt.Unix(),
		rec.IPHash, rec.DeviceHash)
	return err
}

func (s *SQLStore) ResultsByUser(ctx context.Context, anonID string) ([]ResultRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, anonymous_user_id, test_name, test_type, answers_json, result_json, language, completed_at
		FROM results WHERE anonymous_user_id=$1 ORDER BY completed_at DESC`, anonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		var aj, rj string
		var completed int64
		if err := rows.Scan(&rec.ID, &rec.AnonymousUserID, &rec.TestName, &rec.TestType, &aj, &rj, &rec.Language, &completed); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(aj), &rec.Answers); err != nil {
			return nil, err
		}
		rec.Result = json.RawMessage(rj)
		rec.CompletedAt = time.Unix(completed, 0).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLStore) UserAnalytics(ctx context.Context, anonID string) (UserAnalytics, error) {
	row := s.db.QueryRowContext(ctx, `SELECT anonymous_user_id, total_tests, tests_by_type_json, preferred_language, last_active_at
		FROM user_analytics WHERE anonymous_user_id=$1`, anonID)
	var ua UserAnalytics
	var byType string
	var lastActive int64
	if err := row.Scan(&ua.AnonymousUserID, &ua.TotalTestsTaken, &byType, &ua.PreferredLanguage, &lastActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserAnalytics{}, ErrNotFound
		}
		return UserAnalytics{}, err
	}
	if err := json.Unmarshal([]byte(byType), &ua.TestsByType); err != nil {
		return UserAnalytics{}, err
	}
	ua.LastActiveAt = time.Unix(lastActive, 0).UTC()
	return ua, nil
}

// RecordSubmission bumps the submitting user's analytics row and the day's
// aggregate row. Both are read-modify-write over small JSON columns; lost
// updates under heavy concurrency only skew counters, never results.
func (s *SQLStore) RecordSubmission(ctx context.Context, anonID, testName, lang, severityLevel string) error {
	now := time.Now().UTC()

	ua, err := s.UserAnalytics(ctx, anonID)
	if errors.Is(err, ErrNotFound) {
		ua = UserAnalytics{AnonymousUserID: anonID, TestsByType: map[string]int{}}
	} else if err != nil {
		return err
	}
	if ua.TestsByType == nil {
		ua.TestsByType = map[string]int{}
	}
	ua.TotalTestsTaken++
	ua.TestsByType[testName]++
	ua.PreferredLanguage = lang
	byType, _ := json.Marshal(ua.TestsByType)

	_, err = s.db.ExecContext(ctx, `INSERT INTO user_analytics
		(anonymous_user_id, total_tests, tests_by_type_json, preferred_language, last_active_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (anonymous_user_id) DO UPDATE SET
		  total_tests=EXCLUDED.total_tests,
		  tests_by_type_json=EXCLUDED.tests_by_type_json,
		  preferred_language=EXCLUDED.preferred_language,
		  last_active_at=EXCLUDED.last_active_at`,
		anonID, ua.TotalTestsTaken, string(byType), ua.PreferredLanguage, now.Unix())
	if err != nil {
		return err
	}

	return s.bumpDaily(ctx, now.Format("2006-01-02"), testName, lang, severityLevel)
}

func (s *SQLStore) bumpDaily(ctx context.Context, day, testName, lang, severityLevel string) error {
	st := DailyStat{
		Day:               day,
		TestBreakdown:     map[string]int{},
		LanguageUsage:     map[string]int{},
		SeverityBreakdown: map[string]int{},
	}
	row := s.db.QueryRowContext(ctx, `SELECT total_tests, test_breakdown_json, language_json, severity_json
		FROM daily_stats WHERE day=$1`, day)
	var tb, lj, sj string
	err := row.Scan(&st.TotalTests, &tb, &lj, &sj)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return err
	default:
		_ = json.Unmarshal([]byte(tb), &st.TestBreakdown)
		_ = json.Unmarshal([]byte(lj), &st.LanguageUsage)
		_ = json.Unmarshal([]byte(sj), &st.SeverityBreakdown)
	}

	st.TotalTests++
	st.TestBreakdown[testName]++
	st.LanguageUsage[lang]++
	if severityLevel != "" {
		st.SeverityBreakdown[severityLevel]++
	}

	tbj, _ := json.Marshal(st.TestBreakdown)
	ljj, _ := json.Marshal(st.LanguageUsage)
	sjj, _ := json.Marshal(st.SeverityBreakdown)
	_, err = s.db.ExecContext(ctx, `INSERT INTO daily_stats
		(day, total_tests, test_breakdown_json, language_json, severity_json)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (day) DO UPDATE SET
		  total_tests=EXCLUDED.total_tests,
		  test_breakdown_json=EXCLUDED.test_breakdown_json,
		  language_json=EXCLUDED.language_json,
		  severity_json=EXCLUDED.severity_json`,
		day, st.TotalTests, string(tbj), string(ljj), string(sjj))
	return err
}

func (s *SQLStore) DailyStats(ctx context.Context, days int) ([]DailyStat, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")
	rows, err := s.db.QueryContext(ctx, `SELECT day, total_tests, test_breakdown_json, language_json, severity_json
		FROM daily_stats WHERE day >= $1 ORDER BY day DESC`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyStat
	for rows.Next() {
		var st DailyStat
		var tb, lj, sj string
		if err := rows.Scan(&st.Day, &st.TotalTests, &tb, &lj, &sj); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(tb), &st.TestBreakdown)
		_ = json.Unmarshal([]byte(lj), &st.LanguageUsage)
		_ = json.Unmarshal([]byte(sj), &st.SeverityBreakdown)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *SQLStore) AppendEvent(ctx context.Context, e Event) error {
	created := e.CreatedAt
	if created == 0 {
		created = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at) VALUES ($1,$2,$3,$4)`,
		e.Type, e.Key, e.DataJSON, created)
	return err
}

func (s *SQLStore) DeleteResultsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE completed_at < $1`, cutoff.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQLStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
