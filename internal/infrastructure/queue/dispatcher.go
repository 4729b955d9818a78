package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/jeonseguard/community-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes keyword refresh jobs to a fixed set of workers using
// consistent hashing on the keyword, so concurrent refreshes of the same
// keyword are serialized on one worker.
type Dispatcher struct {
	workers []chan string
	service ports.NewsService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NewsService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan string, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a keyword to the worker responsible for it without blocking
// the request path; when that worker's buffer is full the job is dropped,
// since a refresh is only an optimization over the normal cache expiry.
func (d *Dispatcher) Enqueue(keyword string) {
	select {
	case d.workers[d.shardIndex(keyword)] <- keyword:
	default:
		d.log.Warn().Str("keyword", keyword).Msg("refresh queue full, job dropped")
	}
}

// shardIndex maps a keyword deterministically to a worker index.
func (d *Dispatcher) shardIndex(keyword string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(keyword))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case keyword, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Refresh(ctx, keyword); err != nil {
				d.log.Error().Err(err).
					Str("keyword", keyword).
					Int("worker_id", id).
					Msg("keyword refresh failed")
			}
		}
	}
}
