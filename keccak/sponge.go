package keccak

import (
	"encoding/binary"

	"github.com/kammoh/krystals/chunk"
)

// Mode-specific rate/domain-separator constants, per FIPS 202.
const (
	RateBytesSHA3_256 = 136
	RateBytesSHA3_512 = 72
	RateBytesShake128 = 168
	RateBytesShake256 = 136

	rateLanesSHA3_256 = 17
	rateLanesSHA3_512 = 9
	rateLanesShake128 = 21
	rateLanesShake256 = 17

	delimSHA3  = 0x06
	delimShake = 0x1f
)

// State is a single-threaded Keccak sponge instance. No cross-instance
// sharing is implied; each State must only be driven by one goroutine.
type State struct {
	a         [25]uint64
	rateBytes int
	rateLanes int
	delim     byte

	buf       []byte // pending, not-yet-permuted absorbed bytes
	out       []byte // squeezed bytes not yet delivered to the caller
	squeezing bool
	dirty     bool // true once the state has been permuted at least once
}

// NewState constructs a sponge for the given rate and domain separator.
func NewState(rateBytes, rateLanes int, delim byte) *State {
	s := &State{rateBytes: rateBytes, rateLanes: rateLanes, delim: delim}
	s.buf = make([]byte, 0, rateBytes)
	return s
}

// Reset returns the sponge to its initial state, ready for a fresh absorb.
// Resetting is idempotent: a state that was never permuted skips
// re-zeroing the (already zero) lane array.
func (s *State) Reset() {
	if s.dirty {
		s.a = [25]uint64{}
		s.dirty = false
	}
	s.buf = s.buf[:0]
	s.out = nil
	s.squeezing = false
}

// absorbBlock XORs one rate-sized block of little-endian lane loads into
// the state and permutes.
func (s *State) absorbBlock(block []byte) {
	for i := 0; i < s.rateLanes; i++ {
		s.a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	permute(&s.a)
}

// Write absorbs more input. It must not be called after the first Read.
func (s *State) Write(p []byte) (int, error) {
	if s.squeezing {
		panic("keccak: absorb after squeeze has started")
	}
	n := len(p)
	s.buf = append(s.buf, p...)

	it := chunk.NewIter(s.buf, s.rateBytes)
	for {
		block, ok := it.Next()
		if !ok {
			break
		}
		s.absorbBlock(block)
		s.dirty = true
	}
	s.buf = append(s.buf[:0], it.Remainder()...)
	return n, nil
}

// finalize pads the trailing partial block with the domain separator and
// the multi-rate padding's closing bit, and permutes once more.
func (s *State) finalize() {
	block := make([]byte, s.rateBytes)
	copy(block, s.buf)
	block[len(s.buf)] ^= s.delim
	block[s.rateBytes-1] ^= 0x80
	s.absorbBlock(block)
	s.dirty = true
	s.buf = s.buf[:0]
	s.squeezing = true
}

// squeezeBlock emits the first rateBytes of state in little-endian lane
// order, then permutes for the next block.
func (s *State) squeezeBlock() []byte {
	block := make([]byte, s.rateBytes)
	for i := 0; i < s.rateLanes; i++ {
		binary.LittleEndian.PutUint64(block[i*8:], s.a[i])
	}
	permute(&s.a)
	return block
}

// Read squeezes len(p) bytes of output. The first call pads and finalizes
// the absorb phase.
func (s *State) Read(p []byte) (int, error) {
	if !s.squeezing {
		s.finalize()
	}
	n := 0
	for n < len(p) {
		if len(s.out) == 0 {
			s.out = s.squeezeBlock()
		}
		c := copy(p[n:], s.out)
		s.out = s.out[c:]
		n += c
	}
	return n, nil
}

// Sum256 returns the SHA3-256 digest of p.
func Sum256(p []byte) [32]byte {
	s := NewState(RateBytesSHA3_256, rateLanesSHA3_256, delimSHA3)
	s.Write(p)
	var out [32]byte
	s.Read(out[:])
	return out
}

// Sum512 returns the SHA3-512 digest of p.
func Sum512(p []byte) [64]byte {
	s := NewState(RateBytesSHA3_512, rateLanesSHA3_512, delimSHA3)
	s.Write(p)
	var out [64]byte
	s.Read(out[:])
	return out
}

// NewShake128 returns a fresh SHAKE128 sponge.
func NewShake128() *State {
	return NewState(RateBytesShake128, rateLanesShake128, delimShake)
}

// NewShake256 returns a fresh SHAKE256 sponge.
func NewShake256() *State {
	return NewState(RateBytesShake256, rateLanesShake256, delimShake)
}
