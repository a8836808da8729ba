package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("data"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, found, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("null cache should never report a hit")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	ctx := context.Background()

	payload := []byte("<svg>sheet</svg>")
	if err := c.Set(ctx, "artifact:abc", payload, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, found, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected cache hit")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %q, want %q", got, payload)
	}

	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := c.Get(ctx, "artifact:abc"); found {
		t.Error("expected miss after delete")
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	_, found, err := c.Get(context.Background(), "never-set")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected miss for unknown key")
	}
}

func TestFileCacheExpiration(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	ctx := context.Background()

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, found, _ := c.Get(ctx, "short"); found {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheDeleteMissing(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Delete(context.Background(), "missing"); err != nil {
		t.Errorf("deleting a missing key should not error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	h3 := Hash([]byte("world"))

	if h1 != h2 {
		t.Error("hash should be deterministic")
	}
	if h1 == h3 {
		t.Error("different inputs should hash differently")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := DefaultKeyer{}

	base := ArtifactParams{
		ImageHash: "abc",
		SizeKey:   "1.25",
		Scale:     1.0,
		Format:    "svg",
	}
	same := k.ArtifactKey(base)
	if same != k.ArtifactKey(base) {
		t.Error("identical params should produce identical keys")
	}

	variants := []ArtifactParams{
		{ImageHash: "def", SizeKey: "1.25", Scale: 1.0, Format: "svg"},
		{ImageHash: "abc", SizeKey: "2.25", Scale: 1.0, Format: "svg"},
		{ImageHash: "abc", SizeKey: "1.25", Scale: 1.5, Format: "svg"},
		{ImageHash: "abc", SizeKey: "1.25", Scale: 1.0, Format: "pdf"},
		{ImageHash: "abc", SizeKey: "1.25", Scale: 1.0, Format: "svg", NoGuides: true},
		{ImageHash: "abc", SizeKey: "1.25", Scale: 1.0, Format: "svg", ScaleFactor: 0.96},
	}
	for i, v := range variants {
		if k.ArtifactKey(v) == same {
			t.Errorf("variant %d should produce a distinct key", i)
		}
	}

	if got := k.ArtifactKey(base); got[:9] != "artifact:" {
		t.Errorf("key %q should carry the artifact prefix", got)
	}
}
