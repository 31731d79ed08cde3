package queue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pbanos/fuzzytree/queue"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestQueueIsFIFO(t *testing.T) {
	ctx := context.Background()
	q := queue.New()
	next, expected := 0, 0
	// interleave pushes and pulls so the ring buffer wraps and grows
	for round := 1; round <= 6; round++ {
		for i := 0; i < round*2; i++ {
			require.NoError(t, q.Push(ctx, &queue.Task{Node: next}))
			next++
		}
		for i := 0; i < round; i++ {
			task, err := q.Pull(ctx)
			require.NoError(t, err)
			require.NotNil(t, task)
			assert.Equal(t, expected, task.Node)
			expected++
		}
	}
	n, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, next-expected, n)
	for {
		task, err := q.Pull(ctx)
		require.NoError(t, err)
		if task == nil {
			break
		}
		assert.Equal(t, expected, task.Node)
		expected++
	}
	assert.Equal(t, next, expected)
}

func TestQueueCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q := queue.New()
	assert.ErrorIs(t, q.Push(ctx, &queue.Task{}), context.Canceled)
	_, err := q.Pull(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = q.Count(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTaskID(t *testing.T) {
	task := &queue.Task{Node: 12}
	assert.Equal(t, "12", task.ID())
	assert.Equal(t, "{Task 12}", task.String())
}
