// Package checked provides overflow-checked unsigned counter arithmetic.
package checked

import (
	"errors"
	"math"
	"math/bits"
)

var (
	ErrOverflow  = errors.New("arithmetic overflow")
	ErrUnderflow = errors.New("arithmetic underflow")
)

// Add returns a+b or ErrOverflow.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sub returns a-b or ErrUnderflow.
func Sub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrUnderflow
	}
	return diff, nil
}

// Mul returns a*b or ErrOverflow.
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// SaturatingSub returns a-b, or zero when b exceeds a.
func SaturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// SaturatingAdd returns a+b, or the maximum uint64 on overflow.
func SaturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// Inc adds one to *n.
func Inc(n *uint64) error {
	v, err := Add(*n, 1)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
