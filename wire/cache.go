package wire

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const maxCacheShards = 16

// cache maps encoded (a, b) payload pairs to encoded responses. Keys are
// xxhash digests; the payloads are kept to rule out digest collisions.
// The shard capacities add up to the cache capacity.
type cache struct {
	shards []cacheShard
}

type cacheShard struct {
	mx       sync.RWMutex
	capacity int
	entries  map[uint64]cacheEntry
}

type cacheEntry struct {
	a, b []byte
	out  []byte
}

// newCache returns a cache holding at most capacity entries. A capacity
// below 1 is treated as 1.
func newCache(capacity int) *cache {
	if capacity < 1 {
		capacity = 1
	}
	n := capacity
	if n > maxCacheShards {
		n = maxCacheShards
	}
	c := &cache{shards: make([]cacheShard, n)}
	for i := range c.shards {
		c.shards[i].capacity = capacity / n
		if i < capacity%n {
			c.shards[i].capacity++
		}
		c.shards[i].entries = make(map[uint64]cacheEntry)
	}
	return c
}

func cacheKey(a, b []byte) uint64 {
	var n [8]byte
	d := xxhash.New()
	binary.LittleEndian.PutUint64(n[:], uint64(len(a)))
	d.Write(n[:])
	d.Write(a)
	d.Write(b)
	return d.Sum64()
}

func (c *cache) shard(key uint64) *cacheShard {
	return &c.shards[key%uint64(len(c.shards))]
}

func (c *cache) get(a, b []byte) ([]byte, bool) {
	key := cacheKey(a, b)
	s := c.shard(key)
	s.mx.RLock()
	e, ok := s.entries[key]
	s.mx.RUnlock()
	if !ok || !bytes.Equal(e.a, a) || !bytes.Equal(e.b, b) {
		return nil, false
	}
	return append([]byte(nil), e.out...), true
}

func (c *cache) put(a, b, out []byte) {
	key := cacheKey(a, b)
	s := c.shard(key)
	s.mx.Lock()
	defer s.mx.Unlock()
	if _, ok := s.entries[key]; !ok && len(s.entries) >= s.capacity {
		// Full. Evict an arbitrary entry.
		for k := range s.entries {
			delete(s.entries, k)
			break
		}
	}
	s.entries[key] = cacheEntry{
		a:   append([]byte(nil), a...),
		b:   append([]byte(nil), b...),
		out: append([]byte(nil), out...),
	}
}

func (c *cache) len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mx.RLock()
		n += len(s.entries)
		s.mx.RUnlock()
	}
	return n
}
