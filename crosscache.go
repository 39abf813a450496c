// crosscache.go
// Copyright (C) 2026 gaddag contributors

// This file adapts the teacher's Dawg.crossCache (dawg.go) -- an LRU of
// cross-check results keyed by the matching fragment -- to BoardIndex's
// cross-set computation, which is the same kind of work: given two
// short fragments of already-placed letters, look up which letters are
// legal to drop between them, a lookup that recurs constantly once a
// board fills up.

package gaddag

import lru "github.com/hashicorp/golang-lru/simplelru"

const defaultCrossCacheSize = 2048

type crossSetCache struct {
	lru *lru.LRU
}

func newCrossSetCache(size int) *crossSetCache {
	if size <= 0 {
		size = defaultCrossCacheSize
	}
	l, _ := lru.NewLRU(size, nil)
	return &crossSetCache{lru: l}
}

func (c *crossSetCache) get(key string) (LetterSet, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		return 0, false
	}
	return v.(LetterSet), true
}

func (c *crossSetCache) put(key string, set LetterSet) {
	c.lru.Add(key, set)
}
