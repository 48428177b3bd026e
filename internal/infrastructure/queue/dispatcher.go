package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bemapp/orgadmin-shell/internal/core/ports"
	"github.com/bemapp/orgadmin-shell/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes background jobs to a fixed set of workers using consistent
// hashing on the job key, guaranteeing per-key ordering.
type Dispatcher struct {
	workers []chan ports.Job
	log     zerolog.Logger

	mu      sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup

	// jobCtx is handed to every job. Stop cancels it once the queues drain.
	jobCtx     context.Context
	cancelJobs context.CancelFunc
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Job, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Jobs inherit ctx's values but not its
// cancellation: workers run until Stop closes their queues.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true
	d.jobCtx, d.cancelJobs = context.WithCancel(context.WithoutCancel(ctx))

	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(d.jobCtx, i, ch)
	}
}

// Enqueue hands a job to the worker responsible for its key. It never blocks:
// a full worker channel or a stopped dispatcher drops the job.
func (d *Dispatcher) Enqueue(job ports.Job) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		metrics.BackgroundJobsTotal.WithLabelValues(job.Name, "dropped").Inc()
		return false
	}

	idx := d.shardIndex(job.Key)
	depth := metrics.QueueDepth.WithLabelValues(strconv.Itoa(idx))
	depth.Inc()
	select {
	case d.workers[idx] <- job:
		return true
	default:
		depth.Dec()
		metrics.BackgroundJobsTotal.WithLabelValues(job.Name, "dropped").Inc()
		d.log.Warn().Str("job", job.Name).Int("worker_id", idx).Msg("worker queue full, job dropped")
		return false
	}
}

// Stop refuses new jobs, lets the workers drain what is already queued and
// waits for them to exit. Jobs queued on a dispatcher that was never started
// are dropped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for _, ch := range d.workers {
		close(ch)
	}
	started := d.started
	d.mu.Unlock()

	if !started {
		d.discardQueued()
		return
	}
	d.wg.Wait()
	d.cancelJobs()
}

func (d *Dispatcher) discardQueued() {
	for i, ch := range d.workers {
		depth := metrics.QueueDepth.WithLabelValues(strconv.Itoa(i))
		for job := range ch {
			depth.Dec()
			metrics.BackgroundJobsTotal.WithLabelValues(job.Name, "dropped").Inc()
		}
	}
}

// shardIndex maps a job key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Job) {
	defer d.wg.Done()
	depth := metrics.QueueDepth.WithLabelValues(strconv.Itoa(id))
	for job := range ch {
		depth.Dec()
		d.run(ctx, id, job)
	}
}

func (d *Dispatcher) run(ctx context.Context, id int, job ports.Job) {
	defer func() {
		if r := recover(); r != nil {
			metrics.BackgroundJobsTotal.WithLabelValues(job.Name, "error").Inc()
			d.log.Error().Interface("panic", r).Str("job", job.Name).Int("worker_id", id).Msg("job panicked")
		}
	}()

	if err := job.Run(ctx); err != nil {
		metrics.BackgroundJobsTotal.WithLabelValues(job.Name, "error").Inc()
		d.log.Error().Err(err).
			Str("job", job.Name).
			Str("key", job.Key).
			Int("worker_id", id).
			Msg("background job failed")
		return
	}
	metrics.BackgroundJobsTotal.WithLabelValues(job.Name, "ok").Inc()
}

var _ ports.JobQueue = (*Dispatcher)(nil)
