package store

import (
	"context"
	"testing"
)

func TestInMemoryStoreRoundTrip(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "cart"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "cart", `{"items":[]}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, ok, err := s.Get(ctx, "cart")
	if err != nil || !ok || v != `{"items":[]}` {
		t.Fatalf("get = %q, %v, %v", v, ok, err)
	}

	if err := s.Set(ctx, "cart", "updated"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	v, _, _ = s.Get(ctx, "cart")
	if v != "updated" {
		t.Fatalf("overwrite not visible: %q", v)
	}

	if err := s.Delete(ctx, "cart"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "cart"); ok {
		t.Fatal("key still present after delete")
	}

	// deleting a missing key is not an error
	if err := s.Delete(ctx, "no-such"); err != nil {
		t.Fatalf("delete of missing key failed: %v", err)
	}
}

func TestInMemoryStoreContextCancellation(t *testing.T) {
	s := NewInMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Set(ctx, "k", "v"); err == nil {
		t.Fatal("expected context error from Set")
	}
	if _, _, err := s.Get(ctx, "k"); err == nil {
		t.Fatal("expected context error from Get")
	}
	if err := s.Delete(ctx, "k"); err == nil {
		t.Fatal("expected context error from Delete")
	}
}
