package classfile

import (
	"encoding/binary"
	"fmt"
)

// ErrUnexpectedEOF is returned whenever a read would consume bytes past the
// end of the input slice.
type ErrUnexpectedEOF struct {
	// Want is the number of bytes the read needed.
	Want int
	// Have is the number of bytes actually remaining.
	Have int
}

func (e ErrUnexpectedEOF) Error() string {
	return fmt.Sprintf("classfile: unexpected EOF: wanted %d bytes, have %d", e.Want, e.Have)
}

// reader is a cursor over a finite, immutable byte slice. It never mutates
// the bytes it was constructed with; every read only advances pos.
type reader struct {
	b   []byte
	pos int
}

func newReader(b []byte) *reader {
	return &reader{b: b}
}

// remaining reports how many unread bytes are left.
func (r *reader) remaining() int {
	return len(r.b) - r.pos
}

func (r *reader) need(n int) error {
	if r.remaining() < n {
		return ErrUnexpectedEOF{Want: n, Have: r.remaining()}
	}
	return nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.b[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) i8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.b[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.b[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.b[r.pos:])
	r.pos += 8
	return v, nil
}

// bytes reads n raw bytes and returns a sub-slice aliasing the reader's
// backing array; the caller must copy before mutating or retaining beyond
// the lifetime of the original input.
func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.b[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

// length_count16 reads a u16 count N, then calls item N times, accumulating
// results. Mirrors the length_count(len_reader, item_reader) combinator from
// spec.md §4.1, specialized to the u16-count case used throughout the class
// file format.
func length_count16[T any](r *reader, item func(r *reader) (T, error), maxAlloc int) ([]T, error) {
	count, err := r.u16()
	if err != nil {
		return nil, err
	}
	cap := int(count)
	if maxAlloc > 0 && cap > maxAlloc {
		cap = maxAlloc
	}
	out := make([]T, 0, cap)
	for i := 0; i < int(count); i++ {
		v, err := item(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// length_data16 reads a length-prefixed byte blob: a u16 length followed by
// that many raw bytes.
func length_data16(r *reader) ([]byte, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	return r.bytes(int(n))
}
