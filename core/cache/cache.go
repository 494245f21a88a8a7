// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package cache provides a thread-safe, bounded key→value store used in front of
detection, correction, transliteration, and translation.

Eviction is by insertion order, not access order: when an insertion would
exceed the bound, the oldest fifth of the entries is dropped in one pass so
eviction cost is amortized. Because every function behind a cache is pure, a
hit always equals a fresh computation and eviction never affects correctness.

When created with compression enabled via [New], string and []byte values may
be stored zstd-compressed and are transparently decompressed by [Store.Get].
*/
package cache

import (
	"container/list"
	"errors"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var ErrInvalidSize = errors.New("must provide a positive size")

// evictionDivisor controls the bulk eviction fraction: size/evictionDivisor
// oldest entries are dropped when the store overflows.
const evictionDivisor = 5

// valueType describes what kind of value we store for transparent compression/decompression.
type valueType int

const (
	vtUnknown valueType = iota
	vtBytes
	vtString
)

// Store is a fixed-capacity insertion-ordered cache that is safe for
// concurrent use. Instances must be constructed with [New]; the zero value is
// not ready for use.
type Store struct {
	size            int
	order           *list.List               // insertion order; back is oldest
	items           map[string]*list.Element // keys to their linked-list elements
	lock            sync.RWMutex
	compressEnabled bool
	zstdEnc         *zstd.Encoder // reusable encoder for block operations
	zstdDec         *zstd.Decoder // reusable decoder for block operations
}

// entry holds the key/value pair stored in each linked-list element.
type entry struct {
	key        string
	value      any
	compressed bool
	vtype      valueType
}

// New creates a store with the given maximum size.
//
// If compress is true, string and []byte values are stored compressed when
// that reduces space and transparently decompressed on read. Values of other
// types are stored as-is.
func New(size int, compress bool) (*Store, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	s := &Store{
		size:            size,
		order:           list.New(),
		items:           make(map[string]*list.Element),
		compressEnabled: compress,
	}

	if compress {
		// A nil writer/reader lets us use EncodeAll/DecodeAll without streams.
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}

		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, err
		}

		s.zstdEnc = enc
		s.zstdDec = dec
	}

	return s, nil
}

// Key builds a deterministic composite cache key from its parts.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}

// Add inserts or updates the value for key. Updating an existing key does not
// change its insertion position. Add reports whether a bulk eviction occurred.
func (s *Store) Add(key string, value any) bool {
	// Compression happens before taking the lock.
	stored, compressed, vtype := s.prepareValue(value)

	s.lock.Lock()
	defer s.lock.Unlock()

	if el, ok := s.items[key]; ok {
		if ent, ok := el.Value.(*entry); ok {
			ent.value = stored
			ent.compressed = compressed
			ent.vtype = vtype
		}

		return false
	}

	s.items[key] = s.order.PushFront(&entry{
		key:        key,
		value:      stored,
		compressed: compressed,
		vtype:      vtype,
	})

	if s.order.Len() <= s.size {
		return false
	}

	// Drop the oldest chunk in one pass rather than one entry at a time.
	drop := s.size / evictionDivisor
	if drop < 1 {
		drop = 1
	}

	for range drop {
		el := s.order.Back()
		if el == nil {
			break
		}

		s.removeElement(el)
	}

	return true
}

// Get retrieves the value for key. Reads do not affect eviction order.
//
// The second result reports whether the key was found. When compression was
// enabled at construction, values stored as strings or byte slices are
// transparently decompressed; []byte values are returned as copies to prevent
// callers from mutating cached data.
func (s *Store) Get(key string) (any, bool) {
	s.lock.RLock()

	el, ok := s.items[key]
	if !ok {
		s.lock.RUnlock()

		return nil, false
	}

	ent, ok := el.Value.(*entry)
	if !ok {
		s.lock.RUnlock()

		return nil, false
	}

	stored := ent.value
	compressed := ent.compressed
	vtype := ent.vtype

	s.lock.RUnlock()

	return s.decompressValue(stored, compressed, vtype)
}

// GetString retrieves a string value for key, for the common case where the
// cached computation produces text.
func (s *Store) GetString(key string) (string, bool) {
	v, ok := s.Get(key)
	if !ok {
		return "", false
	}

	str, ok := v.(string)

	return str, ok
}

// Remove deletes the entry for key, reporting whether it was present.
func (s *Store) Remove(key string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if el, ok := s.items[key]; ok {
		s.removeElement(el)

		return true
	}

	return false
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.order.Init()
	s.items = make(map[string]*list.Element)
}

// Keys returns all keys from oldest to newest insertion.
func (s *Store) Keys() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	keys := make([]string, 0, len(s.items))

	for el := s.order.Back(); el != nil; el = el.Prev() {
		if ent, ok := el.Value.(*entry); ok {
			keys = append(keys, ent.key)
		}
	}

	return keys
}

// Len returns the current number of entries.
func (s *Store) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.order.Len()
}

// removeElement removes a list element and deletes its key from the map.
func (s *Store) removeElement(e *list.Element) {
	s.order.Remove(e)

	if ent, ok := e.Value.(*entry); ok {
		delete(s.items, ent.key)
	}
}

// prepareValue evaluates whether the provided value should be compressed.
// Compression is only kept when it reduces size. Uncompressed []byte values
// are copied so callers cannot mutate the cache.
//
// Safe to call without the lock; the zstd encoder supports concurrent EncodeAll.
func (s *Store) prepareValue(value any) (stored any, compressed bool, vtype valueType) {
	switch v := value.(type) {
	case []byte:
		if s.compressEnabled {
			vtype = vtBytes
		}

		if len(v) == 0 {
			return v, false, vtype
		}

		if s.compressEnabled {
			cb := s.zstdEnc.EncodeAll(v, nil)
			if len(cb) < len(v) {
				return cb, true, vtype
			}
		}

		copied := make([]byte, len(v))
		copy(copied, v)

		return copied, false, vtype

	case string:
		if s.compressEnabled {
			vtype = vtString
		}

		if len(v) == 0 {
			return v, false, vtype
		}

		if s.compressEnabled {
			orig := []byte(v)

			cb := s.zstdEnc.EncodeAll(orig, nil)
			if len(cb) < len(orig) {
				return cb, true, vtype
			}
		}

		return v, false, vtype

	default:
		return value, false, vtUnknown
	}
}

// decompressValue returns the caller-visible value, decompressing if needed.
// If decompression fails the value is treated as absent.
func (s *Store) decompressValue(stored any, compressed bool, vtype valueType) (any, bool) {
	if !compressed {
		if b, ok := stored.([]byte); ok {
			if b == nil {
				return nil, true
			}

			copied := make([]byte, len(b))
			copy(copied, b)

			return copied, true
		}

		return stored, true
	}

	comp, ok := stored.([]byte)
	if !ok || s.zstdDec == nil {
		return nil, false
	}

	decoded, err := s.zstdDec.DecodeAll(comp, nil)
	if err != nil {
		return nil, false
	}

	if vtype == vtString {
		return string(decoded), true
	}

	return decoded, true
}
