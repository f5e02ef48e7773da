package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/pascolabs/neuralsim/internal/profile"
	"github.com/pascolabs/neuralsim/internal/psyche"
)

func newTestCache(t *testing.T, cfg ...RedisCacheConfig) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, cfg...), srv
}

func sampleProfile() *profile.NeuralProfile {
	return &profile.NeuralProfile{
		VisualState: "Casual Sweater",
		Psyche: psyche.State{
			Score:                 72,
			Status:                psyche.StatusAnxious,
			Modifiers:             []string{"Midnight Melancholy"},
			Trend:                 psyche.TrendStable,
			EmotionalIntelligence: 50,
			RecoveryRate:          6,
		},
		Memory: profile.MemoryFocus{Focus: []string{"Hujan", "Taman"}},
	}
}

func TestRedisCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)

	if _, ok := cache.Get(42); ok {
		t.Fatalf("expected a miss on an empty cache")
	}

	want := sampleProfile()
	cache.Put(42, want)

	got, ok := cache.Get(42)
	if !ok {
		t.Fatalf("expected a hit after put")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestRedisCacheKeyPrefix(t *testing.T) {
	cache, srv := newTestCache(t, RedisCacheConfig{Prefix: "simcache"})
	cache.Put(0xabc, sampleProfile())

	if !srv.Exists("simcache:0000000000000abc") {
		t.Fatalf("expected prefixed hex key, have %v", srv.Keys())
	}
}

func TestRedisCacheTTL(t *testing.T) {
	cache, srv := newTestCache(t, RedisCacheConfig{TTL: time.Minute})
	cache.Put(7, sampleProfile())

	if _, ok := cache.Get(7); !ok {
		t.Fatalf("expected a hit before expiry")
	}
	srv.FastForward(2 * time.Minute)
	if _, ok := cache.Get(7); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestRedisCacheCorruptEntryIsMiss(t *testing.T) {
	cache, srv := newTestCache(t)
	if err := srv.Set("neuralprofile:0000000000000007", "{not json"); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Get(7); ok {
		t.Fatalf("corrupt payload must degrade to a miss")
	}
}

func TestRedisCacheNilPut(t *testing.T) {
	cache, srv := newTestCache(t)
	cache.Put(9, nil)
	if len(srv.Keys()) != 0 {
		t.Fatalf("nil snapshots must not be stored, have %v", srv.Keys())
	}
}

func TestRedisCacheServerDownIsMiss(t *testing.T) {
	cache, srv := newTestCache(t)
	cache.Put(11, sampleProfile())
	srv.Close()

	if _, ok := cache.Get(11); ok {
		t.Fatalf("connection failure must degrade to a miss")
	}
}
