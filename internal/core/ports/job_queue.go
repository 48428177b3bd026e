package ports

import "context"

// Job is a best-effort unit of background work. Jobs sharing a Key run in
// submission order.
type Job struct {
	Key  string
	Name string
	Run  func(ctx context.Context) error
}

// JobQueue accepts background jobs. Enqueue reports false when the job was
// dropped because the queue is full or stopped.
type JobQueue interface {
	Enqueue(job Job) bool
}
