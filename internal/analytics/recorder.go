// Package analytics updates per-user and system-wide aggregates off the
// request path. A submission handler hands the recorder one event and moves
// on; analytics failures are logged, never surfaced to the submitter.
package analytics

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Akhand0ps/SIH-tests/internal/store"
)

// Submission is the fact recorded per scored test.
type Submission struct {
	ResultID        string `json:"resultId"`
	AnonymousUserID string `json:"anonymousUserId"`
	TestName        string `json:"testName"`
	Language        string `json:"language"`
	SeverityLevel   string `json:"severityLevel,omitempty"`
}

// Recorder feeds submissions to a bounded worker pool that bumps the stored
// aggregates and appends an audit event.
type Recorder struct {
	store   store.Store
	log     zerolog.Logger
	pool    *pool[error]
	done    chan struct{}
	closing sync.Once
}

func NewRecorder(st store.Store, log zerolog.Logger, workers int) *Recorder {
	if workers <= 0 {
		workers = 2
	}
	r := &Recorder{
		store: st,
		log:   log,
		pool:  newPool[error](workers, 64),
		done:  make(chan struct{}),
	}
	go r.drain()
	return r
}

// Record enqueues the submission. Returns false when the queue is full; the
// submission is then dropped, which only skews counters.
func (r *Recorder) Record(sub Submission) bool {
	ok := r.pool.submit(sub.ResultID, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.store.RecordSubmission(ctx, sub.AnonymousUserID, sub.TestName, sub.Language, sub.SeverityLevel); err != nil {
			return err
		}
		data, _ := json.Marshal(sub)
		return r.store.AppendEvent(ctx, store.Event{
			Type:     "ResultSaved",
			Key:      sub.ResultID,
			DataJSON: string(data),
		})
	})
	if !ok {
		r.log.Warn().Str("result_id", sub.ResultID).Msg("analytics queue full, dropping submission")
	}
	return ok
}

func (r *Recorder) drain() {
	defer close(r.done)
	for res := range r.pool.results {
		if res.output != nil {
			r.log.Error().Err(res.output).Str("result_id", res.jobID).Msg("analytics update failed")
		}
	}
}

// Close stops intake and waits for queued submissions to finish. Safe to
// call more than once.
func (r *Recorder) Close() {
	r.closing.Do(r.pool.close)
	<-r.done
}
