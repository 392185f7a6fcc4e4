// Package chunk implements the slice splitting, flattening, and
// fixed-size chunk iteration used throughout this module's byte and
// polynomial (de)serialization code: splitting a packed buffer into a
// checked fixed-size head plus remainder, and walking a slice as a
// restartable, finite sequence of N-wide windows.
//
// Grounded on _examples/original_source/src/utils/split.rs's
// Splitter/BytesSplitter traits (try_split_array_ref, ArrayChunks,
// FullArrayChunks, PadExtraArrayChunks). The original leans on Rust
// const generics and unsafe transmutes to hand back fixed-size array
// references; Go has no const generics over array length (the same gap
// ciphertext.go works around with three concrete per-K array types), so
// the window size here is a runtime argument and windows are returned
// as slices rather than arrays.
package chunk

// TrySplit splits s into a head of exactly n elements and the remaining
// tail. ok is false, and head is nil, if s has fewer than n elements —
// s is returned as tail untouched in that case, mirroring
// try_split_array_ref's None-without-mutation behavior.
func TrySplit[T any](s []T, n int) (head, tail []T, ok bool) {
	if len(s) < n {
		return nil, s, false
	}
	return s[:n:n], s[n:], true
}

// Split divides s into chunks of n elements each. Every chunk but
// possibly the last has length n; the last holds whatever remains (1 to
// n elements) and is never padded or dropped: Flatten(Split(s, n))
// always reconstructs s exactly.
func Split[T any](s []T, n int) [][]T {
	if n <= 0 {
		panic("chunk: size must be positive")
	}
	chunks := make([][]T, 0, (len(s)+n-1)/n)
	for len(s) > 0 {
		head, tail, ok := TrySplit(s, n)
		if !ok {
			chunks = append(chunks, s)
			break
		}
		chunks = append(chunks, head)
		s = tail
	}
	return chunks
}

// Flatten concatenates chunks back into a single slice, in order.
func Flatten[T any](chunks [][]T) []T {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	out := make([]T, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// Iter is a lazy, restartable, finite sequence of n-wide windows over a
// slice: length floor(len(s)/n), with the trailing remainder (0 to n-1
// elements) exposed separately via Remainder rather than yielded by
// Next. Grounded on split.rs's ArrayChunks iterator.
type Iter[T any] struct {
	s []T
	n int
}

// NewIter returns an iterator over s in windows of n elements.
func NewIter[T any](s []T, n int) *Iter[T] {
	if n <= 0 {
		panic("chunk: size must be positive")
	}
	return &Iter[T]{s: s, n: n}
}

// Reset restarts the iterator over a (possibly new) slice, keeping its
// configured window size.
func (it *Iter[T]) Reset(s []T) {
	it.s = s
}

// Next returns the next full n-wide window, or ok=false once fewer than
// n elements remain.
func (it *Iter[T]) Next() (window []T, ok bool) {
	head, tail, ok := TrySplit(it.s, it.n)
	if !ok {
		return nil, false
	}
	it.s = tail
	return head, true
}

// Remainder returns whatever is left once Next is exhausted.
func (it *Iter[T]) Remainder() []T {
	return it.s
}

// PadLast behaves like Split, except the final chunk — if short — is
// copied into a freshly allocated, fixed-length buffer of n elements
// and padded with pad in the unused tail. Grounded on split.rs's
// PadExtraArrayChunks, the construct FIPS 202 multi-rate padding
// (keccak.State.finalize) is a hand-written special case of.
func PadLast(s []byte, n int, pad byte) [][]byte {
	chunks := Split(s, n)
	if last := len(chunks) - 1; last >= 0 && len(chunks[last]) < n {
		padded := make([]byte, n)
		copy(padded, chunks[last])
		for i := len(chunks[last]); i < n; i++ {
			padded[i] = pad
		}
		chunks[last] = padded
	}
	return chunks
}
