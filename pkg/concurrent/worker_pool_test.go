package concurrent

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolKeepsSubmissionOrder(t *testing.T) {
	var calls atomic.Int64
	wp := NewWorkerPool[int, int](4, 2)
	wp.Start(func(job int) int {
		calls.Add(1)
		return job * job
	})

	for i := 0; i < 100; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	res := wp.CollectResults()
	assert.Equal(t, int64(100), calls.Load())
	assert.Len(t, res, 100)
	for i, r := range res {
		assert.Equal(t, i*i, r)
	}
}

func TestRun(t *testing.T) {
	res := Run(0, []string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
	assert.Equal(t, []int{1, 2, 3}, res)

	assert.Empty(t, Run(2, nil, func(s string) int { return len(s) }))
}
