package redisq_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redis "gopkg.in/redis.v5"

	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/queue"
	"github.com/pbanos/fuzzytree/queue/json"
	"github.com/pbanos/fuzzytree/queue/redisq"
)

func TestRedisQueueIsFIFO(t *testing.T) {
	addr := os.Getenv("FUZZYTREE_REDIS_ADDR")
	if addr == "" {
		t.Skip("FUZZYTREE_REDIS_ADDR not set")
	}
	rc := redis.NewClient(&redis.Options{Addr: addr})
	defer rc.Close()
	const id = "fuzzytree-test-queue"
	require.NoError(t, rc.Del(id+":pending").Err())

	ctx := context.Background()
	q := redisq.New(id, rc, json.New())
	for i := 0; i < 3; i++ {
		mu := fuzzy.NewMembership("A", "x", []float64{float64(i)})
		require.NoError(t, q.Push(ctx, &queue.Task{Node: i, Membership: mu}))
	}
	n, err := q.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	for i := 0; i < 3; i++ {
		task, err := q.Pull(ctx)
		require.NoError(t, err)
		require.NotNil(t, task)
		assert.Equal(t, i, task.Node)
		assert.Equal(t, []float64{float64(i)}, task.Membership.Values)
	}
	task, err := q.Pull(ctx)
	require.NoError(t, err)
	assert.Nil(t, task)
}
