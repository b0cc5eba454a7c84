package javaio

/*
Package javaio decodes the big-endian, fixed-width primitive layouts
written by Java's DataOutput implementations (e.g. DataOutputStream),
including the modified UTF-8 string encoding. It is the byte-cursor
layer a container-format reader sits on: one call per value, in
whatever order the outer format dictates.

Every operation pulls exactly the bytes it needs from the underlying
reader and nothing more - no peeking, no pushback, no readahead. A
Decoder holds no state beyond an 8-byte scratch buffer, so it is not
safe for concurrent use; a single logical reader must sequence all
calls against one source.
*/

import (
	"errors"
	"fmt"
	"io"
	"math"
)

////////////////////////////////////////////////////////////////////////////////

// Decoder reads DataOutput-compatible primitives from r.
type Decoder struct {
	r   io.Reader
	buf [8]byte
}

// NewDecoder returns a Decoder that consumes bytes from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// fill reads exactly len(buf) bytes from the source. End of stream,
// whether before or mid-value, is a ShortReadError; any other reader
// failure propagates wrapped.
func (d *Decoder) fill(buf []byte, what string) error {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ShortReadError{what}
		}
		return fmt.Errorf("failed to read %s: %w", what, err)
	}
	return nil
}

// readUint assembles an n-byte big-endian unsigned value. The typed
// operations below are casts over this one helper rather than five
// copies of read-exact-then-convert.
func (d *Decoder) readUint(n int, what string) (uint64, error) {
	buf := d.buf[:n]
	if err := d.fill(buf, what); err != nil {
		return 0, err
	}
	var x uint64
	for _, b := range buf {
		x = x<<8 | uint64(b)
	}
	return x, nil
}

// Bool reads one byte, treating any nonzero value as true.
func (d *Decoder) Bool() (bool, error) {
	x, err := d.readUint(1, "bool")
	return x != 0, err
}

// Int8 reads a signed 8-bit integer.
func (d *Decoder) Int8() (int8, error) {
	x, err := d.readUint(1, "int8")
	return int8(x), err
}

// Uint8 reads an unsigned 8-bit integer.
func (d *Decoder) Uint8() (uint8, error) {
	x, err := d.readUint(1, "uint8")
	return uint8(x), err
}

// Int16 reads a big-endian signed 16-bit integer.
func (d *Decoder) Int16() (int16, error) {
	x, err := d.readUint(2, "int16")
	return int16(x), err
}

// Uint16 reads a big-endian unsigned 16-bit integer.
func (d *Decoder) Uint16() (uint16, error) {
	x, err := d.readUint(2, "uint16")
	return uint16(x), err
}

// Int32 reads a big-endian signed 32-bit integer.
func (d *Decoder) Int32() (int32, error) {
	x, err := d.readUint(4, "int32")
	return int32(x), err
}

// Int64 reads a big-endian signed 64-bit integer.
func (d *Decoder) Int64() (int64, error) {
	x, err := d.readUint(8, "int64")
	return int64(x), err
}

// Float32 reads a big-endian IEEE-754 binary32 value. The bit pattern
// is reinterpreted as-is: NaN payloads, infinities, and denormals pass
// through without canonicalization.
func (d *Decoder) Float32() (float32, error) {
	x, err := d.readUint(4, "float32")
	return math.Float32frombits(uint32(x)), err
}

// Float64 reads a big-endian IEEE-754 binary64 value, bit pattern
// preserved as for Float32.
func (d *Decoder) Float64() (float64, error) {
	x, err := d.readUint(8, "float64")
	return math.Float64frombits(x), err
}

// Bytes reads exactly n raw bytes.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, InvalidDataError{fmt.Sprintf("negative byte count %d", n)}
	}
	buf := make([]byte, n)
	if err := d.fill(buf, "bytes"); err != nil {
		return nil, err
	}
	return buf, nil
}

// SkipBytes discards exactly n bytes. A shortfall is a ShortReadError:
// consumers depend on exact positioning, so a partial skip is a
// failure, not a count to report.
func (d *Decoder) SkipBytes(n int) error {
	if n < 0 {
		return InvalidDataError{fmt.Sprintf("negative byte count %d", n)}
	}
	m, err := io.CopyN(io.Discard, d.r, int64(n))
	if err != nil {
		if errors.Is(err, io.EOF) && m < int64(n) {
			return ShortReadError{"skip"}
		}
		return fmt.Errorf("failed to skip bytes: %w", err)
	}
	return nil
}
