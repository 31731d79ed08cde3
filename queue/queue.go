/*
Package queue defines the tasks to be performed to grow a tree along
with an interface for a Queue to manage them in first in, first out
order, so trees grow breadth first.

It also provides an in-memory implementation of the Queue interface.
*/
package queue

import (
	"context"
	"fmt"
	"sync"

	"github.com/pbanos/fuzzytree/internal/ctxlock"
)

// Queue represents a first in, first out queue where tasks to develop
// tree nodes can be pushed and pulled.
//
// All its methods have a context.Context as first
// parameter that implementations may use to allow
// timeouts and cancellations on the Queue operations.
type Queue interface {
	// Push takes a task and stores it at the tail of the queue or
	// returns an error.
	Push(context.Context, *Task) error
	// Pull removes the task at the head of the queue and returns it,
	// or an error. If there are no tasks to pull, implementations
	// should not return an error, but 2 nil values.
	Pull(context.Context) (*Task, error)
	// Count returns the number of pending tasks in the queue or an
	// error.
	Count(context.Context) (int, error)
}

type memQueue struct {
	pendingTasks []*Task
	head         int
	tail         int
	pending      int
	lock         *sync.RWMutex
}

// New returns a queue backed only by the process memory
func New() Queue {
	return &memQueue{lock: &sync.RWMutex{}}
}

func (mq *memQueue) Push(ctx context.Context, t *Task) error {
	return mq.withLock(ctx, func(ctx context.Context) error {
		mq.push(t)
		return nil
	})
}

func (mq *memQueue) Pull(ctx context.Context) (*Task, error) {
	var task *Task
	err := mq.withLock(ctx, func(ctx context.Context) error {
		if mq.pending == 0 {
			return nil
		}
		mq.pending--
		task = mq.pendingTasks[mq.head]
		mq.pendingTasks[mq.head] = nil
		mq.head = (mq.head + 1) % len(mq.pendingTasks)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (mq *memQueue) Count(ctx context.Context) (int, error) {
	var pending int
	err := mq.withRLock(ctx, func(ctx context.Context) error {
		pending = mq.pending
		return nil
	})
	if err != nil {
		return 0, err
	}
	return pending, nil
}

func (mq *memQueue) String() string {
	return fmt.Sprintf("{Queue pending: %d (%v head:%d tail:%d)", mq.pending, mq.pendingTasks, mq.head, mq.tail)
}

func (mq *memQueue) push(t *Task) {
	if mq.pending == len(mq.pendingTasks) {
		mq.reorder()
		mq.pendingTasks = append(mq.pendingTasks, t)
		// the buffer is full again and starts at 0
		mq.tail = 0
	} else {
		mq.pendingTasks[mq.tail] = t
		mq.tail = (mq.tail + 1) % len(mq.pendingTasks)
	}
	mq.pending++
}

// reorder moves the head of a full ring buffer to the start of the
// slice so new tasks can be appended at its end.
func (mq *memQueue) reorder() {
	if mq.head == 0 {
		return
	}
	mq.pendingTasks = append(mq.pendingTasks[mq.head:], mq.pendingTasks[0:mq.head]...)
	mq.head = 0
}

func (mq *memQueue) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctxlock.Acquire(ctx, mq.lock.Lock, mq.lock.Unlock); err != nil {
		return err
	}
	defer mq.lock.Unlock()
	return f(ctx)
}

func (mq *memQueue) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctxlock.Acquire(ctx, mq.lock.RLock, mq.lock.RUnlock); err != nil {
		return err
	}
	defer mq.lock.RUnlock()
	return f(ctx)
}
