package quiz

import "encoding/binary"

// byteSet is an open-addressing hash set of byte-string keys (the flat port
// vectors of normalized mazes), used as the top-down search's seen set.
// Hash value 0 is reserved as the empty-slot marker; hashKey never returns
// it. Not safe for concurrent use.
type byteSet struct {
	hashes []uint64
	keys   [][]byte
	count  int
}

// newByteSet returns a set sized for at least capHint entries at a load
// factor no worse than 1/2.
func newByteSet(capHint int) *byteSet {
	size := 16
	for size < capHint*2 {
		size *= 2
	}
	return &byteSet{hashes: make([]uint64, size), keys: make([][]byte, size)}
}

// hashKey is a word-wise xorshift-multiply over b: 8 bytes at a time, tail
// per-byte. The low bit is forced to 1 so the result never collides with
// the empty-slot marker.
func hashKey(b []byte) uint64 {
	h := uint64(0x9e3779b97f4a7c15)
	i := 0
	for ; i+8 <= len(b); i += 8 {
		h ^= binary.LittleEndian.Uint64(b[i:])
		h ^= h << 13
		h ^= h >> 7
		h ^= h << 17
		h *= 0x2545f4914f6cdd1d
	}
	for ; i < len(b); i++ {
		h ^= uint64(b[i])
		h ^= h << 13
		h ^= h >> 7
		h ^= h << 17
		h *= 0x2545f4914f6cdd1d
	}
	return h | 1
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Insert adds key to the set, taking ownership of the slice. Returns false
// if the key was already present.
func (s *byteSet) Insert(key []byte) bool {
	if (s.count+1)*2 > len(s.hashes) {
		s.grow()
	}
	h := hashKey(key)
	mask := uint64(len(s.hashes) - 1)
	i := h & mask
	for {
		switch {
		case s.hashes[i] == 0:
			s.hashes[i] = h
			s.keys[i] = key
			s.count++
			return true
		case s.hashes[i] == h && bytesEqual(s.keys[i], key):
			return false
		}
		i = (i + 1) & mask
	}
}

// Contains reports whether key is in the set.
func (s *byteSet) Contains(key []byte) bool {
	h := hashKey(key)
	mask := uint64(len(s.hashes) - 1)
	i := h & mask
	for {
		switch {
		case s.hashes[i] == 0:
			return false
		case s.hashes[i] == h && bytesEqual(s.keys[i], key):
			return true
		}
		i = (i + 1) & mask
	}
}

// Len returns the number of live keys.
func (s *byteSet) Len() int { return s.count }

func (s *byteSet) grow() {
	oldHashes, oldKeys := s.hashes, s.keys
	s.hashes = make([]uint64, len(oldHashes)*2)
	s.keys = make([][]byte, len(oldKeys)*2)
	mask := uint64(len(s.hashes) - 1)
	for j, h := range oldHashes {
		if h == 0 {
			continue
		}
		i := h & mask
		for s.hashes[i] != 0 {
			i = (i + 1) & mask
		}
		s.hashes[i] = h
		s.keys[i] = oldKeys[j]
	}
}
