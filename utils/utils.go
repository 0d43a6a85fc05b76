package utils

import (
	"os"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Decimal & Hex Encoders: Append-Style, No fmt
///////////////////////////////////////////////////////////////////////////////

const hexDigits = "0123456789abcdef"

// AppendUint appends the decimal form of v to dst.
//
//go:nosplit
//go:inline
func AppendUint(dst []byte, v uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for v >= 10 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	i--
	buf[i] = byte('0' + v)
	return append(dst, buf[i:]...)
}

// AppendInt appends the decimal form of a signed value to dst.
//
//go:nosplit
//go:inline
func AppendInt(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		// two's complement negate keeps MinInt64 representable
		return AppendUint(dst, uint64(^v)+1)
	}
	return AppendUint(dst, uint64(v))
}

// AppendHex appends "0x" followed by exactly `digits` lowercase nibbles of v.
// Higher nibbles beyond `digits` are dropped.
//
//go:nosplit
//go:inline
func AppendHex(dst []byte, v uint64, digits int) []byte {
	dst = append(dst, '0', 'x')
	for shift := (digits - 1) * 4; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(v>>uint(shift))&0xF])
	}
	return dst
}

// Itoa converts an int to its decimal string.
// Cold-path helper for log lines; hot paths use AppendInt.
func Itoa(n int) string {
	var buf [21]byte
	return string(AppendInt(buf[:0], int64(n)))
}

///////////////////////////////////////////////////////////////////////////////
// Hex Decoders: No Allocation
///////////////////////////////////////////////////////////////////////////////

// ParseHexU16 parses a (0x-optional) hex word of at most four nibbles.
// Empty input, stray characters and overflow are rejected.
//
//go:nosplit
//go:inline
func ParseHexU16(b []byte) (uint16, bool) {
	if len(b) >= 2 && b[0] == '0' && (b[1]|0x20) == 'x' {
		b = b[2:]
	}
	if len(b) == 0 || len(b) > 4 {
		return 0, false
	}
	var u uint64
	for _, c := range b {
		v, ok := nibble(c)
		if !ok {
			return 0, false
		}
		u = (u << 4) | v
	}
	return uint16(u), true
}

// ParseHexBytes decodes an even-length hex string into dst.
// Returns nil, false on odd length or any non-nibble.
func ParseHexBytes(dst, b []byte) ([]byte, bool) {
	if len(b) >= 2 && b[0] == '0' && (b[1]|0x20) == 'x' {
		b = b[2:]
	}
	if len(b)&1 != 0 {
		return nil, false
	}
	for i := 0; i < len(b); i += 2 {
		hi, ok1 := nibble(b[i])
		lo, ok2 := nibble(b[i+1])
		if !ok1 || !ok2 {
			return nil, false
		}
		dst = append(dst, byte(hi<<4|lo))
	}
	return dst, true
}

//go:nosplit
//go:inline
func nibble(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

///////////////////////////////////////////////////////////////////////////////
// Fast Loaders: Capture Bus Words
///////////////////////////////////////////////////////////////////////////////

// LoadLE16 reads one little-endian 16-bit bus word.
//
//go:nosplit
//go:inline
func LoadLE16(b []byte) uint16 {
	_ = b[1] // bounds check hint
	return uint16(b[0]) | uint16(b[1])<<8
}

// AppendLE16 appends v as a little-endian 16-bit bus word.
//
//go:nosplit
//go:inline
func AppendLE16(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

///////////////////////////////////////////////////////////////////////////////
// Diagnostics Output
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg to stderr (fd 2) without formatting.
// Write errors are ignored; diagnostics must never fail the caller.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	if len(msg) == 0 {
		return
	}
	_, _ = os.Stderr.Write(unsafe.Slice(unsafe.StringData(msg), len(msg)))
}
