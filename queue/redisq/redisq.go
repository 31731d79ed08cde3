/*
Package redisq provides an implementation of queue.Queue that keeps its
tasks on a redis list, so the pending work of a growing tree lives
outside the process memory.
*/
package redisq

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	redis "gopkg.in/redis.v5"

	"github.com/pbanos/fuzzytree/queue"
	"github.com/pbanos/fuzzytree/queue/json"
)

type redisQ struct {
	id string
	rc *redis.Client
	json.TaskEncodeDecoder
}

/*
New returns a queue.Queue that uses the given redis client as a
backend. It uses the given id to prefix the key of the redis list
holding the encoded tasks, id:pending. Tasks are pushed to the tail of
the list and pulled from its head, encoded and decoded with the given
TaskEncodeDecoder.
*/
func New(id string, rc *redis.Client, encDec json.TaskEncodeDecoder) queue.Queue {
	return &redisQ{id, rc, encDec}
}

func (rq *redisQ) Push(ctx context.Context, t *queue.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := rq.Encode(ctx, t)
	if err != nil {
		return errors.Wrapf(err, "pushing task %s to queue", t.ID())
	}
	if err = rq.rc.RPush(rq.pendingListKey(), string(data)).Err(); err != nil {
		return errors.Wrapf(err, "pushing task %s to queue", t.ID())
	}
	return nil
}

func (rq *redisQ) Pull(ctx context.Context) (*queue.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := rq.rc.LPop(rq.pendingListKey()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "pulling task from %q", rq.pendingListKey())
	}
	return rq.Decode(ctx, []byte(data))
}

func (rq *redisQ) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := rq.rc.LLen(rq.pendingListKey()).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "counting tasks in %q", rq.pendingListKey())
	}
	return int(n), nil
}

func (rq *redisQ) pendingListKey() string {
	return fmt.Sprintf("%s:pending", rq.id)
}
