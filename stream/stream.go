/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package stream provides little-endian fixed-width binary primitives used
// to encode and decode the BCFNT container's block layout.
package stream

import (
	"encoding/binary"
	"errors"
)

// ErrShortRead is returned when a read would run past the end of the buffer.
var ErrShortRead = errors.New("stream: short read")

// Writer accumulates little-endian fixed-width fields into a growable
// buffer matching the container's on-wire layout.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Len reports the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated buffer. The caller must not retain it past
// further writes.
func (w *Writer) Bytes() []byte { return w.buf }

// Tag appends a fixed 4-byte block magic.
func (w *Writer) Tag(tag string) *Writer {
	if len(tag) != 4 {
		panic("stream: tag must be exactly 4 bytes: " + tag)
	}
	w.buf = append(w.buf, tag...)
	return w
}

func (w *Writer) U8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

func (w *Writer) I8(v int8) *Writer { return w.U8(uint8(v)) }

func (w *Writer) U16(v uint16) *Writer {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
	return w
}

func (w *Writer) U32(v uint32) *Writer {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return w
}

// Raw appends b verbatim.
func (w *Writer) Raw(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// PadTo appends zero bytes until the buffer length is a multiple of align.
func (w *Writer) PadTo(align int) *Writer {
	for len(w.buf)%align != 0 {
		w.buf = append(w.buf, 0)
	}
	return w
}

// Reader parses little-endian fixed-width fields from a cursored byte
// slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential little-endian reads.
func NewReader(data []byte) *Reader { return &Reader{data: data} }

// Pos reports the current read cursor.
func (r *Reader) Pos() int { return r.pos }

// Len reports the total number of bytes available.
func (r *Reader) Len() int { return len(r.data) }

// Seek moves the cursor to an absolute byte offset.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return ErrShortRead
	}
	r.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error { return r.Seek(r.pos + n) }

// Raw returns the next n bytes without copying.
func (r *Reader) Raw(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, ErrShortRead
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) U8() (uint8, error) {
	b, err := r.Raw(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

func (r *Reader) U16() (uint16, error) {
	b, err := r.Raw(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.Raw(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
