package editor

import "sort"

type cacheEntry struct {
	text string
	// canonical text of the default the entry was stored against
	base string
}

// ParseCache holds raw text for fields whose last input did not parse,
// keyed by cursor slot.
type ParseCache struct {
	entries map[int]cacheEntry
}

// NewParseCache returns an empty cache.
func NewParseCache() *ParseCache {
	return &ParseCache{entries: map[int]cacheEntry{}}
}

// Get returns the pending text at index.
func (c *ParseCache) Get(index int) (string, bool) {
	if c == nil {
		return "", false
	}
	e, ok := c.entries[index]
	return e.text, ok
}

// Set stores raw text at index.
func (c *ParseCache) Set(index int, text string) {
	c.set(index, text, "")
}

func (c *ParseCache) set(index int, text, base string) {
	if c.entries == nil {
		c.entries = map[int]cacheEntry{}
	}
	c.entries[index] = cacheEntry{text: text, base: base}
}

// lookup returns the pending text at index, dropping the entry when the
// field at that index now shows a different default.
func (c *ParseCache) lookup(index int, base string) (string, bool) {
	if c == nil {
		return "", false
	}
	e, ok := c.entries[index]
	if !ok {
		return "", false
	}
	if e.base != "" && e.base != base {
		delete(c.entries, index)
		return "", false
	}
	return e.text, true
}

// Clear removes the entry at index.
func (c *ParseCache) Clear(index int) {
	if c == nil {
		return
	}
	delete(c.entries, index)
}

// Len is the number of fields currently holding unparseable text.
func (c *ParseCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Indexes returns the pending slots in ascending order.
func (c *ParseCache) Indexes() []int {
	if c == nil {
		return nil
	}
	out := make([]int, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Reset drops every entry.
func (c *ParseCache) Reset() {
	if c == nil {
		return
	}
	c.entries = map[int]cacheEntry{}
}
