// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cache

import (
	"strconv"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("ValidSize", func(t *testing.T) {
		t.Parallel()

		s, err := New(10, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if s.Len() != 0 {
			t.Errorf("expected empty store, got %d entries", s.Len())
		}
	})

	t.Run("InvalidSize", func(t *testing.T) {
		t.Parallel()

		if _, err := New(0, false); err == nil {
			t.Fatal("expected error for size 0, got nil")
		}
	})
}

func TestKey(t *testing.T) {
	t.Parallel()

	if got := Key("namaste", "hi"); got != "namaste|hi" {
		t.Errorf("Key = %q, want %q", got, "namaste|hi")
	}

	if got := Key("text", "te", "en"); got != "text|te|en" {
		t.Errorf("Key = %q, want %q", got, "text|te|en")
	}
}

// TestBounded verifies that inserting more than size distinct keys never
// leaves the store holding more than size entries.
func TestBounded(t *testing.T) {
	t.Parallel()

	const size = 50

	s, err := New(size, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range size * 3 {
		s.Add("key"+strconv.Itoa(i), i)

		if s.Len() > size {
			t.Fatalf("store holds %d entries, bound is %d", s.Len(), size)
		}
	}
}

// TestBulkEviction verifies that overflow drops the oldest chunk of entries
// rather than a single entry.
func TestBulkEviction(t *testing.T) {
	t.Parallel()

	const size = 10

	s, err := New(size, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range size + 1 {
		s.Add("key"+strconv.Itoa(i), i)
	}

	// size/5 = 2 oldest entries dropped on overflow: 11 - 2 = 9 remain.
	if got := s.Len(); got != size-1 {
		t.Errorf("after overflow store holds %d entries, want %d", got, size-1)
	}

	// The oldest keys are the ones evicted.
	if _, ok := s.Get("key0"); ok {
		t.Error("key0 should have been evicted")
	}

	if _, ok := s.Get("key1"); ok {
		t.Error("key1 should have been evicted")
	}

	if _, ok := s.Get("key10"); !ok {
		t.Error("key10 should still be present")
	}
}

// TestFIFONotLRU verifies that reads do not protect an entry from eviction.
func TestFIFONotLRU(t *testing.T) {
	t.Parallel()

	const size = 5

	s, err := New(size, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range size {
		s.Add("key"+strconv.Itoa(i), i)
	}

	// Touch the oldest entry repeatedly; FIFO ignores access order.
	for range 10 {
		s.Get("key0")
	}

	s.Add("key5", 5)

	if _, ok := s.Get("key0"); ok {
		t.Error("key0 should have been evicted despite recent reads")
	}
}

func TestUpdateKeepsPosition(t *testing.T) {
	t.Parallel()

	s, err := New(5, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Add("a", 1)
	s.Add("a", 2)

	if s.Len() != 1 {
		t.Fatalf("expected 1 entry after update, got %d", s.Len())
	}

	v, ok := s.Get("a")
	if !ok || v.(int) != 2 {
		t.Errorf("Get(a) = %v, %v; want 2, true", v, ok)
	}
}

func TestCompressionRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := New(5, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Long repetitive value compresses; short value does not.
	long := strings.Repeat("నమస్తే ", 200)
	s.Add("long", long)
	s.Add("short", "hi")

	if v, ok := s.GetString("long"); !ok || v != long {
		t.Error("compressed value did not round-trip")
	}

	if v, ok := s.GetString("short"); !ok || v != "hi" {
		t.Error("short value did not round-trip")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	s, err := New(5, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Add("a", 1)
	s.Add("b", 2)
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("expected empty store after Clear, got %d", s.Len())
	}

	if _, ok := s.Get("a"); ok {
		t.Error("entry survived Clear")
	}
}
