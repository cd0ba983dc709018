package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

type countingJob struct {
	id      string
	counter *atomic.Int64
	fail    bool
}

func (j *countingJob) ID() string {
	return j.id
}

func (j *countingJob) Process(ctx context.Context) error {
	if j.fail {
		return errors.New("job failed")
	}
	j.counter.Add(1)
	return nil
}

func TestNewPoolDefaultsWorkerCount(t *testing.T) {
	pool := NewPool(0)
	if pool.WorkerCount() <= 0 {
		t.Errorf("Expected a positive worker count, got %d", pool.WorkerCount())
	}
}

func TestPoolProcessesAllJobs(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(4)
	pool.Start()

	const jobCount = 20
	go func() {
		for i := 0; i < jobCount; i++ {
			pool.Submit(&countingJob{id: fmt.Sprintf("job-%d", i), counter: &counter})
		}
		pool.Stop()
	}()

	results := 0
	for result := range pool.Results() {
		if result.Error != nil {
			t.Errorf("Unexpected error for %s: %v", result.JobID, result.Error)
		}
		results++
	}

	if results != jobCount {
		t.Errorf("Expected %d results, got %d", jobCount, results)
	}
	if counter.Load() != jobCount {
		t.Errorf("Expected %d jobs processed, got %d", jobCount, counter.Load())
	}
}

func TestPoolReportsJobErrors(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(2)
	pool.Start()

	go func() {
		pool.Submit(&countingJob{id: "good", counter: &counter})
		pool.Submit(&countingJob{id: "bad", counter: &counter, fail: true})
		pool.Stop()
	}()

	failures := map[string]error{}
	for result := range pool.Results() {
		if result.Error != nil {
			failures[result.JobID] = result.Error
		}
	}

	if len(failures) != 1 {
		t.Fatalf("Expected 1 failure, got %d", len(failures))
	}
	if _, ok := failures["bad"]; !ok {
		t.Error("Expected the failing job to be reported by ID")
	}
}
