package searcher

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// evalCache memoizes leaf scores by exact board key. The evaluator is pure so
// a hit returns the same score a fresh evaluation would.
type evalCache struct {
	entries *lru.Cache
}

func newEvalCache(size int) *evalCache {
	entries, err := lru.New(size)
	if err != nil {
		panic(fmt.Sprintf("failed to create evaluation cache: %v", err))
	}
	return &evalCache{entries: entries}
}

func (c *evalCache) get(key string) (int64, bool) {
	v, ok := c.entries.Get(key)
	if !ok {
		return 0, false
	}
	return v.(int64), true
}

func (c *evalCache) add(key string, score int64) {
	c.entries.Add(key, score)
}

func (c *evalCache) len() int {
	return c.entries.Len()
}
