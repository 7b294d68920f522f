package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path"
	"sort"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
)

// fakeRedis answers SCAN and DEL from memory through a client hook, so the store's
// key handling runs without a server.
type fakeRedis struct {
	mu       sync.Mutex
	keys     map[string]struct{}
	scanned  []string
	delCount int
}

func newFakeRedis(keys ...string) *fakeRedis {
	f := &fakeRedis{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		f.keys[k] = struct{}{}
	}
	return f
}

func newFakeRedisStore(t *testing.T, fake *fakeRedis) *RedisStore {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(fake)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStoreWithClient(client, DefaultKeyPrefix)
}

func (f *fakeRedis) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.keys[key]
	return ok
}

func (f *fakeRedis) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}

func (f *fakeRedis) delCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.delCount
}

func (f *fakeRedis) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("fake redis does not dial")
	}
}

func (f *fakeRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		return errors.New("fake redis does not pipeline")
	}
}

func (f *fakeRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch c := cmd.(type) {
		case *redis.ScanCmd:
			f.scan(c)
			return nil
		case *redis.IntCmd:
			if c.Name() == "del" {
				f.del(c)
				return nil
			}
		}
		return fmt.Errorf("fake redis: unsupported command %s", cmd.Name())
	}
}

// scan pages through a sorted snapshot taken at cursor 0; the cursor is the offset
// of the next page.
func (f *fakeRedis) scan(c *redis.ScanCmd) {
	args := c.Args()
	cursor, _ := args[1].(uint64)
	match := "*"
	count := 10
	for i := 2; i+1 < len(args); i += 2 {
		switch args[i] {
		case "match":
			match, _ = args[i+1].(string)
		case "count":
			if n, ok := args[i+1].(int64); ok {
				count = int(n)
			}
		}
	}
	if cursor == 0 {
		f.scanned = f.scanned[:0]
		for k := range f.keys {
			if ok, _ := path.Match(match, k); ok {
				f.scanned = append(f.scanned, k)
			}
		}
		sort.Strings(f.scanned)
	}
	start := int(cursor)
	end := start + count
	next := uint64(end)
	if end >= len(f.scanned) {
		end = len(f.scanned)
		next = 0
	}
	page := append([]string(nil), f.scanned[start:end]...)
	c.SetVal(page, next)
}

func (f *fakeRedis) del(c *redis.IntCmd) {
	f.delCount++
	var removed int64
	for _, arg := range c.Args()[1:] {
		key, _ := arg.(string)
		if _, ok := f.keys[key]; ok {
			delete(f.keys, key)
			removed++
		}
	}
	c.SetVal(removed)
}
