// Package util contains internal helpers (hashing, padding).
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// XXHash64 hashes common key types using xxhash, promoted from an indirect
// dependency of client_golang to a direct one: it avalanches well across the
// repeated reseeding FrequencySketch's row mixing does, and doubles as the
// structural hash for shard routing, where a poorly distributed hash would
// directly skew admission decisions.
//
// Supported: string, []byte, [16|32|64]byte, all int/uint widths, uintptr,
// fmt.Stringer. Panicking on unsupported types is deliberate, to avoid
// silently poor hashing.
func XXHash64[K comparable](k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return xxhash.Sum64String(v)
	case []byte:
		return xxhash.Sum64(v)
	case [16]byte:
		return xxhash.Sum64(v[:])
	case [32]byte:
		return xxhash.Sum64(v[:])
	case [64]byte:
		return xxhash.Sum64(v[:])

	case uint8:
		return xxhashUint64(uint64(v))
	case uint16:
		return xxhashUint64(uint64(v))
	case uint32:
		return xxhashUint64(uint64(v))
	case uint64:
		return xxhashUint64(v)
	case uint:
		return xxhashUint64(uint64(v))
	case uintptr:
		return xxhashUint64(uint64(v))
	case int8:
		return xxhashUint64(uint64(uint8(v)))
	case int16:
		return xxhashUint64(uint64(uint16(v)))
	case int32:
		return xxhashUint64(uint64(uint32(v)))
	case int64:
		return xxhashUint64(uint64(v))
	case int:
		return xxhashUint64(uint64(v))

	case fmt.Stringer:
		return xxhash.Sum64String(v.String())
	default:
		panic(fmt.Sprintf("util.XXHash64: unsupported key type %T; convert key to string or provide a custom hasher", k))
	}
}

func xxhashUint64(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return xxhash.Sum64(buf[:])
}
