package xmlstream

import "strings"

const (
	qnameCacheRecentSize = 8
	qnameCacheMaxEntries = 4096
)

// qnameCache interns resolved names so that repeated tags resolve without
// allocating. A small ring of recent entries is checked before the table.
type qnameCache struct {
	table       map[QName]QName
	recent      [qnameCacheRecentSize]QName
	recentCount int
	recentIndex int
	maxEntries  int
}

func newQNameCache(maxEntries int) *qnameCache {
	return &qnameCache{
		table:      make(map[QName]QName, 32),
		maxEntries: maxEntries,
	}
}

// setMaxEntries changes the limit. Interned names stay valid across
// documents, so a reader reset keeps the table.
func (c *qnameCache) setMaxEntries(maxEntries int) {
	c.maxEntries = maxEntries
	if maxEntries > 0 && len(c.table) > maxEntries {
		c.compact()
	}
}

// intern returns the stable QName for namespace and local. local may be a
// view into a reusable buffer; it is copied only on a miss.
func (c *qnameCache) intern(namespace, local string) QName {
	for i := 0; i < c.recentCount; i++ {
		if q := c.recent[i]; q.Local == local && q.Namespace == namespace {
			return q
		}
	}
	if q, ok := c.table[QName{Namespace: namespace, Local: local}]; ok {
		c.remember(q)
		return q
	}
	q := QName{Namespace: namespace, Local: strings.Clone(local)}
	if c.maxEntries > 0 && len(c.table) >= c.maxEntries {
		c.compact()
	}
	c.table[q] = q
	c.remember(q)
	return q
}

func (c *qnameCache) remember(q QName) {
	if c.recentCount < qnameCacheRecentSize {
		c.recent[c.recentCount] = q
		c.recentCount++
		return
	}
	c.recent[c.recentIndex] = q
	c.recentIndex = (c.recentIndex + 1) % qnameCacheRecentSize
}

// compact drops everything except the recent ring.
func (c *qnameCache) compact() {
	clear(c.table)
	for i := 0; i < c.recentCount; i++ {
		c.table[c.recent[i]] = c.recent[i]
	}
}

// stringTable interns namespace URIs and prefixes taken from reusable
// buffers.
type stringTable struct {
	m   map[string]string
	max int
}

func (t *stringTable) intern(view string) string {
	if s, ok := t.m[view]; ok {
		return s
	}
	if t.m == nil {
		t.m = make(map[string]string, 8)
	}
	if t.max > 0 && len(t.m) >= t.max {
		clear(t.m)
	}
	s := strings.Clone(view)
	t.m[s] = s
	return s
}
