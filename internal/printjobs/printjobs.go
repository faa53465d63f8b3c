package printjobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"badgematic/internal/badge"
	applog "badgematic/internal/log"
)

// Status describes the overall state of a print job.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Step names the pipeline stage a job is currently in.
type Step string

const (
	StepIdle            Step = "idle"
	StepQueued          Step = "queued"
	StepImageProcessing Step = "image_processing"
	StepComposingBadge  Step = "composing_badge"
	StepPrinting        Step = "printing"
	StepDone            Step = "done"
	StepFailed          Step = "failed"
)

// Job is a snapshot of one badge print run.
type Job struct {
	ID        string
	Status    Status
	Step      Step
	BadgePath string
	Error     string
}

// Composer turns attendee details and a photo payload into a badge file.
type Composer interface {
	Compose(ctx context.Context, attendee badge.Attendee, photoDataURL string) (string, error)
}

// SuccessFunc is invoked after a job completes so callers can persist a
// record of the printed badge.
type SuccessFunc func(ctx context.Context, job Job, attendee badge.Attendee)

// Registry tracks in-flight and finished print jobs in memory. Jobs live
// for the process lifetime; a kiosk restart simply forgets them.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*Job

	composer   Composer
	onSuccess  SuccessFunc
	stageDelay time.Duration
	printDelay time.Duration
}

// Option adjusts Registry construction.
type Option func(*Registry)

// WithStageDelays overrides the simulated stage latencies. Zero values
// disable the pauses, which tests rely on.
func WithStageDelays(stage, print time.Duration) Option {
	return func(r *Registry) {
		r.stageDelay = stage
		r.printDelay = print
	}
}

// WithSuccessFunc registers a callback for completed jobs.
func WithSuccessFunc(fn SuccessFunc) Option {
	return func(r *Registry) {
		r.onSuccess = fn
	}
}

// New builds a Registry around the provided composer.
func New(composer Composer, opts ...Option) *Registry {
	r := &Registry{
		jobs:       make(map[string]*Job),
		composer:   composer,
		stageDelay: 300 * time.Millisecond,
		printDelay: 800 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start enqueues a new print job and runs the pipeline in the background.
// It returns the generated job id immediately.
func (r *Registry) Start(ctx context.Context, attendee badge.Attendee, photoDataURL string) string {
	id := uuid.NewString()

	r.mu.Lock()
	r.jobs[id] = &Job{ID: id, Status: StatusProcessing, Step: StepQueued}
	r.mu.Unlock()

	jobsStarted.Inc()
	applog.Info(ctx, "print job queued", "jobID", id)

	// The pipeline outlives the request that started it.
	go r.run(context.WithoutCancel(ctx), id, attendee, photoDataURL)

	return id
}

func (r *Registry) run(ctx context.Context, id string, attendee badge.Attendee, photoDataURL string) {
	started := time.Now()

	r.setStep(id, StepImageProcessing)
	r.pause(r.stageDelay)

	r.setStep(id, StepComposingBadge)
	badgePath, err := r.composer.Compose(ctx, attendee, photoDataURL)
	if err != nil {
		applog.Error(ctx, "badge composition failed", "jobID", id, "error", err)
		r.fail(id, err.Error())
		jobsFailed.Inc()
		jobDuration.Observe(time.Since(started).Seconds())
		return
	}
	r.setBadgePath(id, badgePath)
	r.pause(r.stageDelay)

	// Dispatch to the card printer is a stub; the composed PNG is the
	// deliverable until printer integration lands.
	r.setStep(id, StepPrinting)
	r.pause(r.printDelay)

	r.finish(id)
	jobsSucceeded.Inc()
	jobDuration.Observe(time.Since(started).Seconds())
	applog.Info(ctx, "print job completed", "jobID", id, "badge", badgePath)

	if r.onSuccess != nil {
		job, _ := r.Get(id)
		r.onSuccess(ctx, job, attendee)
	}
}

func (r *Registry) pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

func (r *Registry) setStep(id string, step Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		job.Step = step
	}
}

func (r *Registry) setBadgePath(id, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		job.BadgePath = path
	}
}

func (r *Registry) finish(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		job.Status = StatusSuccess
		job.Step = StepDone
	}
}

func (r *Registry) fail(id, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		job.Status = StatusError
		job.Step = StepFailed
		job.Error = message
	}
}

// Get returns a copy of the job with the given id.
func (r *Registry) Get(id string) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// Snapshot returns the job state for display, or an idle placeholder when
// the id is unknown or blank.
func (r *Registry) Snapshot(id string) Job {
	if job, ok := r.Get(id); ok {
		return job
	}
	return Job{Status: StatusIdle, Step: StepIdle}
}
