package bitvec

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidBit is returned by Parse when the input contains a character other than '0' or '1'.
var ErrInvalidBit = errors.New("invalid bit character")

// Vector is an ordered sequence of bits, most significant first.
// Every element is 0 or 1.
type Vector []uint8

// Parse converts a string of '0'/'1' characters into a Vector.
func Parse(s string) (Vector, error) {
	v := make(Vector, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			v[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBit, s[i], i)
		}
	}
	return v, nil
}

// Decode interprets bits as a big-endian binary number.
func Decode(bits []uint8) uint64 {
	return Vector(bits).Uint64()
}

// Len returns the number of bits.
func (v Vector) Len() int {
	return len(v)
}

// Uint64 returns Σ bit[i]·2^(n-1-i).
// For vectors wider than 64 bits the high bits shift out and only the low 64 bits remain.
func (v Vector) Uint64() uint64 {
	var n uint64
	for _, b := range v {
		n = n<<1 | uint64(b&1)
	}
	return n
}

// Big returns the exact decoded value for vectors of any width.
func (v Vector) Big() *big.Int {
	n := new(big.Int)
	for _, b := range v {
		n.Lsh(n, 1)
		if b&1 == 1 {
			n.SetBit(n, 0, 1)
		}
	}
	return n
}

// Complement returns a new vector with every bit flipped.
func (v Vector) Complement() Vector {
	out := make(Vector, len(v))
	for i, b := range v {
		out[i] = b ^ 1
	}
	return out
}

// Ones returns the number of set bits.
func (v Vector) Ones() int {
	n := 0
	for _, b := range v {
		n += int(b)
	}
	return n
}

// Equal reports whether v and other hold the same bits.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// String renders the vector as '0'/'1' characters.
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(len(v))
	for _, b := range v {
		sb.WriteByte('0' + b)
	}
	return sb.String()
}
