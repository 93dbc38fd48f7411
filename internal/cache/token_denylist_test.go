package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) (*redisv9.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestTokenDenylist_RevokeWithTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	denylist := NewTokenDenylist(client)
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if revoked {
		t.Fatal("fresh token should not be revoked")
	}

	if err := denylist.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	if got := mr.TTL("auth:revoked:jti-1"); got != time.Minute {
		t.Errorf("TTL = %v, want %v", got, time.Minute)
	}

	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if !revoked {
		t.Fatal("token should be revoked")
	}

	mr.FastForward(2 * time.Minute)
	revoked, _ = denylist.IsRevoked(ctx, "jti-1")
	if revoked {
		t.Fatal("entry should expire with the token")
	}
}

func TestTokenDenylist_RevokeWithoutExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	denylist := NewTokenDenylist(client)

	if err := denylist.Revoke(context.Background(), "jti-2", 0); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	if got := mr.TTL("auth:revoked:jti-2"); got != 0 {
		t.Errorf("TTL = %v, want none", got)
	}
	if !mr.Exists("auth:revoked:jti-2") {
		t.Fatal("revocation key missing")
	}
}

func TestTokenDenylist_RedisDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	denylist := NewTokenDenylist(client)
	mr.Close()

	if _, err := denylist.IsRevoked(context.Background(), "jti-3"); err == nil {
		t.Fatal("IsRevoked() should fail when redis is unreachable")
	}
	if err := denylist.Revoke(context.Background(), "jti-3", time.Minute); err == nil {
		t.Fatal("Revoke() should fail when redis is unreachable")
	}
}
