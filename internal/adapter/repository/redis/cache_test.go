package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewCache(client), mr
}

func TestCacheSetAndGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "txn:1", []byte(`{"txn_id":1}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "txn:1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(val) != `{"txn_id":1}` {
		t.Fatalf("unexpected value: %s", val)
	}
}

func TestCacheGetMissing(t *testing.T) {
	cache, _ := newTestCache(t)

	val, err := cache.Get(context.Background(), "txn:999")
	if err != nil {
		t.Fatalf("missing key must not error: %v", err)
	}
	if val != nil {
		t.Fatalf("expected nil for missing key, got %s", val)
	}
}

func TestCacheDelete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "txn:1", []byte("x"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Delete(ctx, "txn:1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	val, err := cache.Get(ctx, "txn:1")
	if err != nil || val != nil {
		t.Fatalf("expected key to be gone, got val=%s err=%v", val, err)
	}
}

func TestCacheKeysArePrefixed(t *testing.T) {
	cache, mr := newTestCache(t)

	if err := cache.Set(context.Background(), "txn:1", []byte("x"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if !mr.Exists("txledger:txn:1") {
		t.Fatal("stored key missing the txledger prefix")
	}
}

func TestCacheTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "txn:1", []byte("x"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	val, err := cache.Get(ctx, "txn:1")
	if err != nil || val != nil {
		t.Fatalf("expected expired key, got val=%s err=%v", val, err)
	}
}
