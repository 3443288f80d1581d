package capture

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NOT-REAL-GAMES/vkdump"
)

// Recorder serializes captured calls and appends them to a Store.
//
// Each call is marshaled on its own vkdump.Printer, so a batch is serialized
// by up to workers goroutines at once. Records reach the store in call order
// regardless of which worker finished first.
type Recorder struct {
	store   *Store
	log     *Logger
	workers int
	opts    []vkdump.Option
	sink    *StreamSink
	now     func() time.Time
}

func NewRecorder(store *Store, log *Logger, workers int, opts ...vkdump.Option) *Recorder {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = NewLogger(false)
	}
	return &Recorder{
		store:   store,
		log:     log,
		workers: workers,
		opts:    opts,
		now:     time.Now,
	}
}

// Tee additionally writes every recorded dump to sink once it is stored.
func (r *Recorder) Tee(sink *StreamSink) {
	r.sink = sink
}

func (r *Recorder) Record(ctx context.Context, c *vkdump.Call) (int64, error) {
	seqs, err := r.RecordBatch(ctx, []*vkdump.Call{c})
	if err != nil {
		return 0, err
	}
	return seqs[0], nil
}

// RecordBatch serializes calls concurrently and stores them in one
// transaction. If any call fails to serialize, or ctx is cancelled, nothing
// is stored.
func (r *Recorder) RecordBatch(ctx context.Context, calls []*vkdump.Call) ([]int64, error) {
	records := make([]Record, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, c := range calls {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("capture: call %d is nil", i)
			}
			body, err := vkdump.MarshalCall(c, r.opts...)
			if err != nil {
				r.log.Warn("call %d (%s) not recorded: %v", i, c.Name, err)
				return fmt.Errorf("capture: %s: %w", c.Name, err)
			}
			records[i] = Record{Name: c.Name, Body: body, RecordedAt: r.now()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.log.Error("batch of %d calls discarded: %v", len(calls), err)
		return nil, err
	}

	seqs, err := r.store.AppendBatch(ctx, records)
	if err != nil {
		r.log.Error("storing batch: %v", err)
		return nil, err
	}
	r.log.Debug("recorded %d calls", len(seqs))

	if r.sink != nil {
		for _, rec := range records {
			if err := r.sink.Write(rec.Body); err != nil {
				r.log.Warn("tee: %v", err)
				break
			}
		}
	}
	return seqs, nil
}
