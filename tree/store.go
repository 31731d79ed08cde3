package tree

import (
	"context"
	"sync"

	"github.com/pbanos/fuzzytree/internal/ctxlock"
)

/*
Store is an interface to manage a store where fitted trees can be saved,
retrieved and deleted by name.

All its methods take a context that may allow cancelling the operation
(thus forcing the return of an error) if the implementation allows it.
*/
type Store interface {
	// Save takes a name and a tree and stores the tree under the name,
	// replacing any tree previously saved with it. It returns an error
	// if the tree cannot be stored.
	Save(ctx context.Context, name string, t *Tree) error
	// Load takes a name and returns the tree stored under it (or nil
	// if there is none) or an error if the store cannot be queried
	Load(ctx context.Context, name string) (*Tree, error)
	// Delete takes a name and removes the tree stored under it, if any.
	// It returns an error if the deletion cannot be performed.
	Delete(ctx context.Context, name string) error
	// Close frees the resources held by the store once pending changes
	// are applied, unless the context is done first.
	Close(ctx context.Context) error
}

type memoryStore struct {
	trees map[string]*Tree
	lock  *sync.RWMutex
}

// NewMemoryStore returns a Store keeping trees in the process memory.
func NewMemoryStore() Store {
	return &memoryStore{
		trees: make(map[string]*Tree),
		lock:  &sync.RWMutex{},
	}
}

func (ms *memoryStore) Save(ctx context.Context, name string, t *Tree) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		ms.trees[name] = t
		return nil
	})
}

func (ms *memoryStore) Load(ctx context.Context, name string) (*Tree, error) {
	var t *Tree
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		t = ms.trees[name]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (ms *memoryStore) Delete(ctx context.Context, name string) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		delete(ms.trees, name)
		return nil
	})
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctxlock.Acquire(ctx, ms.lock.Lock, ms.lock.Unlock); err != nil {
		return err
	}
	defer ms.lock.Unlock()
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctxlock.Acquire(ctx, ms.lock.RLock, ms.lock.RUnlock); err != nil {
		return err
	}
	defer ms.lock.RUnlock()
	return f(ctx)
}
