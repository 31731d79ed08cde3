/*
Package redisstore provides an implementation of tree.Store that keeps
fitted trees encoded on a redis DB.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	redis "gopkg.in/redis.v5"

	"github.com/pbanos/fuzzytree/tree"
	"github.com/pbanos/fuzzytree/tree/json"
)

type redisStore struct {
	rc      *redis.Client
	prefix  string
	tencdec json.TreeEncodeDecoder
}

/*
New builds a tree.Store backed by a redis DB. Trees are kept under the
key prefix:name encoded with the given TreeEncodeDecoder.
*/
func New(rc *redis.Client, prefix string, tencdec json.TreeEncodeDecoder) tree.Store {
	return &redisStore{rc, prefix, tencdec}
}

func (rs *redisStore) Save(ctx context.Context, name string, t *tree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := rs.keyFor(name)
	data, err := rs.tencdec.Encode(ctx, t)
	if err != nil {
		return errors.Wrapf(err, "storing tree %q", key)
	}
	if err = rs.rc.Set(key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "storing tree %q in redis", key)
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context, name string) (*tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := rs.keyFor(name)
	data, err := rs.rc.Get(key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving tree %q", key)
	}
	t, err := rs.tencdec.Decode(ctx, data)
	if err != nil {
		return nil, errors.Wrapf(err, "retrieving tree %q", key)
	}
	return t, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := rs.keyFor(name)
	if err := rs.rc.Del(key).Err(); err != nil {
		return errors.Wrapf(err, "deleting tree %q from redis", key)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return nil
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
