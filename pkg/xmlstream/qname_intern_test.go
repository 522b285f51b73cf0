package xmlstream

import "testing"

func TestQNameCacheIntern(t *testing.T) {
	c := newQNameCache(0)
	buf := []byte("local")
	first := c.intern("urn:a", unsafeString(buf))
	copy(buf, "xxxxx")
	if first.Local != "local" {
		t.Fatalf("interned local = %q, want a stable copy", first.Local)
	}
	again := c.intern("urn:a", "local")
	if again != first {
		t.Fatalf("second intern = %v, want %v", again, first)
	}
	if other := c.intern("urn:b", "local"); other.Namespace != "urn:b" {
		t.Fatalf("namespace = %q, want urn:b", other.Namespace)
	}
	allocs := testing.AllocsPerRun(100, func() {
		c.intern("urn:a", "local")
	})
	if allocs != 0 {
		t.Fatalf("cached intern allocs = %v, want 0", allocs)
	}
}

func TestQNameCacheCompact(t *testing.T) {
	c := newQNameCache(4)
	locals := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for _, local := range locals {
		c.intern("", local)
	}
	if len(c.table) > qnameCacheRecentSize+1 {
		t.Fatalf("table size = %d, want bounded", len(c.table))
	}
	if q := c.intern("", "j"); q.Local != "j" {
		t.Fatalf("recent entry = %v, want j", q)
	}
	c.setMaxEntries(1)
	if len(c.table) > qnameCacheRecentSize {
		t.Fatalf("table size after shrink = %d, want <= %d", len(c.table), qnameCacheRecentSize)
	}
}

func TestStringTable(t *testing.T) {
	st := stringTable{max: 2}
	buf := []byte("urn:x")
	s := st.intern(unsafeString(buf))
	copy(buf, "urn:y")
	if s != "urn:x" {
		t.Fatalf("interned = %q, want urn:x", s)
	}
	st.intern("a")
	st.intern("b")
	if len(st.m) > 2 {
		t.Fatalf("table size = %d, want <= 2", len(st.m))
	}
}

func TestQNameString(t *testing.T) {
	if got := (QName{Local: "a"}).String(); got != "a" {
		t.Fatalf("String = %q, want a", got)
	}
	if got := (QName{Namespace: "urn:x", Local: "a"}).String(); got != "{urn:x}a" {
		t.Fatalf("String = %q, want {urn:x}a", got)
	}
	if !(QName{Namespace: "n", Local: "l"}).Is("n", "l") {
		t.Fatalf("Is = false, want true")
	}
}

func TestJoinOptions(t *testing.T) {
	opts := JoinOptions(QNameCacheSize(10), Option{}, QNameCacheSize(-3))
	if value, ok := opts.QNameCacheSize(); !ok || value != -3 {
		t.Fatalf("QNameCacheSize = %d, %v, want -3, true", value, ok)
	}
	if got := qnameCacheLimit(opts); got != 0 {
		t.Fatalf("qnameCacheLimit = %d, want 0", got)
	}
	if got := qnameCacheLimit(Option{}); got != qnameCacheMaxEntries {
		t.Fatalf("default limit = %d, want %d", got, qnameCacheMaxEntries)
	}
}

func TestResolveOptions(t *testing.T) {
	got := resolveOptions(Option{})
	want := readerOptions{
		qnameCacheSize:        qnameCacheMaxEntries,
		maxDeclNameLength:     defaultMaxDeclNameLength,
		maxNamespaceURILength: defaultMaxNamespaceURILength,
	}
	if got != want {
		t.Fatalf("defaults = %+v, want %+v", got, want)
	}
	got = resolveOptions(JoinOptions(
		MaxDeclNameLength(-1),
		MaxNamespaceURILength(16),
		ResolveNamespaces(false),
	))
	want = readerOptions{
		qnameCacheSize:        qnameCacheMaxEntries,
		maxNamespaceURILength: 16,
		lexical:               true,
	}
	if got != want {
		t.Fatalf("resolved = %+v, want %+v", got, want)
	}
	if value, ok := JoinOptions(ResolveNamespaces(false), ResolveNamespaces(true)).ResolveNamespaces(); !ok || !value {
		t.Fatalf("ResolveNamespaces = %v, %v, want true, true", value, ok)
	}
}
