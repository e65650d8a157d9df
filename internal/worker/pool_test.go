package worker_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remaimber-it/mcquiz/internal/worker"
)

func TestPool_RunsEveryJob(t *testing.T) {
	const jobs = 20
	pool := worker.NewPool[int](4, jobs)

	var ran atomic.Int32
	for i := 0; i < jobs; i++ {
		n := i
		pool.Submit(fmt.Sprintf("job-%d", n), func() int {
			ran.Add(1)
			return n * n
		})
	}
	pool.Close()

	got := make(map[string]int)
	for r := range pool.Results() {
		got[r.JobID] = r.Output
	}

	assert.Len(t, got, jobs)
	assert.Equal(t, int32(jobs), ran.Load())
	assert.Equal(t, 49, got["job-7"])
}

func TestPool_CloseWithoutJobs(t *testing.T) {
	pool := worker.NewPool[string](0, 0)
	pool.Close()
	pool.Close()

	_, open := <-pool.Results()
	assert.False(t, open)
}
