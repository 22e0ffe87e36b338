package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "figures"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "k", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Get(k) = hit %v, err %v", hit, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("Get(k) = %q, want <svg/>", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry file should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v, want clean miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("Clear left %d entries in %s", len(entries), c.Dir())
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	base := FigureKeyOpts{
		Nodes:  []string{"0"},
		Format: "svg",
		Style:  map[string]any{"regular_node_size": 100},
	}

	key := k.FigureKey("abc", base)
	if !strings.HasPrefix(key, "figure:") {
		t.Errorf("FigureKey = %q, want figure: prefix", key)
	}
	if key != k.FigureKey("abc", base) {
		t.Error("FigureKey should be deterministic")
	}

	variants := map[string]func(o FigureKeyOpts) (string, FigureKeyOpts){
		"graph":  func(o FigureKeyOpts) (string, FigureKeyOpts) { return "abd", o },
		"nodes":  func(o FigureKeyOpts) (string, FigureKeyOpts) { o.Nodes = []string{"1"}; return "abc", o },
		"edges":  func(o FigureKeyOpts) (string, FigureKeyOpts) { o.Edges = []string{"0-1"}; return "abc", o },
		"engine": func(o FigureKeyOpts) (string, FigureKeyOpts) { o.Engine = "circo"; return "abc", o },
		"format": func(o FigureKeyOpts) (string, FigureKeyOpts) { o.Format = "png"; return "abc", o },
		"style": func(o FigureKeyOpts) (string, FigureKeyOpts) {
			o.Style = map[string]any{"regular_node_size": 101}
			return "abc", o
		},
	}
	for name, mutate := range variants {
		t.Run(name, func(t *testing.T) {
			graphHash, opts := mutate(base)
			if k.FigureKey(graphHash, opts) == key {
				t.Errorf("changing %s should change the key", name)
			}
		})
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "tenant:1:")
	key := scoped.FigureKey("abc", FigureKeyOpts{Format: "svg"})
	want := "tenant:1:" + NewDefaultKeyer().FigureKey("abc", FigureKeyOpts{Format: "svg"})
	if key != want {
		t.Errorf("ScopedKeyer.FigureKey = %q, want %q", key, want)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.FigureKey("abc", FigureKeyOpts{})
	if !strings.HasPrefix(key, "prefix:figure:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

// TestRedisCache runs against a live server when GRAPHLIGHT_TEST_REDIS is set.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("GRAPHLIGHT_TEST_REDIS")
	if addr == "" {
		t.Skip("GRAPHLIGHT_TEST_REDIS not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisConfig{Addr: addr})
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	defer c.Close()

	key := "graphlight:test:" + Hash([]byte(t.Name()))
	defer c.Delete(ctx, key)

	if _, hit, err := c.Get(ctx, key); hit || err != nil {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("png"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "png" {
		t.Errorf("Get = %q, hit %v, err %v", data, hit, err)
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx := context.Background()
	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond})
	if err == nil {
		t.Error("NewRedisCache should fail for an unreachable server")
	}
}
