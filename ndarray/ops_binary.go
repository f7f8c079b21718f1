// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Binary elementwise operations as a closed operation set (BinaryOp).
//   - Operand kinds: array⊗array (broadcasting), array⊗scalar, scalar⊗array;
//     scalar⊗scalar is BinaryOp.Apply itself.
//
// IEEE:
//   - x/0, 0/0, pow(-1, 0.5) produce ±Inf/NaN. None of them is an error.
//   - Comparisons and logical ops return 1 or 0; any NaN operand compares false
//     except NotEqual.

package ndarray

import (
	"fmt"
	"math"
)

// BinaryOp names one binary elementwise operation.
type BinaryOp int

// Binary operations.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod  // Python-style: a - floor(a/b)*b, sign follows the divisor
	OpFmod // C-style: sign follows the dividend; b == 0 ⇒ NaN
	OpMaximum
	OpMinimum
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpLogicalAnd
	OpLogicalOr
	opBinaryCount
)

var binaryNames = [...]string{
	OpAdd:          "add",
	OpSub:          "sub",
	OpMul:          "mul",
	OpDiv:          "div",
	OpPow:          "pow",
	OpMod:          "mod",
	OpFmod:         "fmod",
	OpMaximum:      "maximum",
	OpMinimum:      "minimum",
	OpEqual:        "equal",
	OpNotEqual:     "not_equal",
	OpLess:         "less",
	OpLessEqual:    "less_equal",
	OpGreater:      "greater",
	OpGreaterEqual: "greater_equal",
	OpLogicalAnd:   "logical_and",
	OpLogicalOr:    "logical_or",
}

// String returns the lower-case operation name.
func (op BinaryOp) String() string {
	if op < 0 || op >= opBinaryCount {
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}

	return binaryNames[op]
}

// Valid reports whether op is a defined operation.
func (op BinaryOp) Valid() bool { return op >= 0 && op < opBinaryCount }

// Apply evaluates op on two scalars.
func (op BinaryOp) Apply(x, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	case OpPow:
		return math.Pow(x, y)
	case OpMod:
		return pyMod(x, y)
	case OpFmod:
		return math.Mod(x, y)
	case OpMaximum:
		if math.IsNaN(x) || math.IsNaN(y) {
			return math.NaN()
		}
		return math.Max(x, y)
	case OpMinimum:
		if math.IsNaN(x) || math.IsNaN(y) {
			return math.NaN()
		}
		return math.Min(x, y)
	case OpEqual:
		return boolf(x == y)
	case OpNotEqual:
		return boolf(x != y)
	case OpLess:
		return boolf(x < y)
	case OpLessEqual:
		return boolf(x <= y)
	case OpGreater:
		return boolf(x > y)
	case OpGreaterEqual:
		return boolf(x >= y)
	case OpLogicalAnd:
		return boolf(truthy(x) && truthy(y))
	case OpLogicalOr:
		return boolf(truthy(x) || truthy(y))
	}

	return math.NaN()
}

// pyMod is the floored modulo; b == 0 yields NaN like a/0 - floor(...) would.
func pyMod(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r
}

// boolf maps a Go bool to 1/0.
func boolf(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// truthy is the non-zero truth test (NaN is truthy, as NaN != 0).
func truthy(v float64) bool { return v != 0 }

// Binary applies op elementwise after broadcasting a and b to their common shape.
// Implementation:
//   - Stage 1: validate operands and the op.
//   - Stage 2: materialize both operands over the broadcast shape.
//   - Stage 3: single flat pass writing op.Apply into the left buffer copy.
//
// Errors:
//   - ErrNilArray, ErrInvalidArgument (unknown op), ErrNotBroadcastable.
//
// Complexity:
//   - Time O(size_out*ndim) when broadcasting, O(size) otherwise; Space O(size_out).
func Binary(op BinaryOp, a, b *NDArray) (*NDArray, error) {
	tag := op.String()
	if err := validateNotNil(a, b); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	if !op.Valid() {
		return nil, arrayErrorf(tag, ErrInvalidArgument)
	}
	target, x, y, err := broadcastPair(a, b)
	if err != nil {
		return nil, arrayErrorf(tag, fmt.Errorf("%v and %v: %w", a.shape, b.shape, err))
	}
	for i := range x {
		x[i] = op.Apply(x[i], y[i])
	}

	return wrap(target, x), nil
}

// BinaryScalar computes op(a[i], s) for every element.
// Errors: ErrNilArray, ErrInvalidArgument.
// Complexity: O(size).
func BinaryScalar(op BinaryOp, a *NDArray, s float64) (*NDArray, error) {
	tag := op.String()
	if a == nil {
		return nil, arrayErrorf(tag, ErrNilArray)
	}
	if !op.Valid() {
		return nil, arrayErrorf(tag, ErrInvalidArgument)
	}
	out := zerosOf(a.Shape())
	for i, v := range a.data {
		out.data[i] = op.Apply(v, s)
	}

	return out, nil
}

// ScalarBinary computes op(s, a[i]) for every element.
// Errors: ErrNilArray, ErrInvalidArgument.
// Complexity: O(size).
func ScalarBinary(op BinaryOp, s float64, a *NDArray) (*NDArray, error) {
	tag := op.String()
	if a == nil {
		return nil, arrayErrorf(tag, ErrNilArray)
	}
	if !op.Valid() {
		return nil, arrayErrorf(tag, ErrInvalidArgument)
	}
	out := zerosOf(a.Shape())
	for i, v := range a.data {
		out.data[i] = op.Apply(s, v)
	}

	return out, nil
}

// Add returns a + b with broadcasting.
func Add(a, b *NDArray) (*NDArray, error) { return Binary(OpAdd, a, b) }

// Sub returns a - b with broadcasting.
func Sub(a, b *NDArray) (*NDArray, error) { return Binary(OpSub, a, b) }

// Mul returns a * b with broadcasting.
func Mul(a, b *NDArray) (*NDArray, error) { return Binary(OpMul, a, b) }

// Div returns a / b with broadcasting. Zero divisors yield ±Inf or NaN.
func Div(a, b *NDArray) (*NDArray, error) { return Binary(OpDiv, a, b) }

// Pow returns a ** b with broadcasting.
func Pow(a, b *NDArray) (*NDArray, error) { return Binary(OpPow, a, b) }

// Mod returns the floored modulo a - floor(a/b)*b with broadcasting.
func Mod(a, b *NDArray) (*NDArray, error) { return Binary(OpMod, a, b) }

// Fmod returns the truncated modulo (sign of a) with broadcasting.
func Fmod(a, b *NDArray) (*NDArray, error) { return Binary(OpFmod, a, b) }

// Maximum returns the elementwise maximum; NaN propagates.
func Maximum(a, b *NDArray) (*NDArray, error) { return Binary(OpMaximum, a, b) }

// Minimum returns the elementwise minimum; NaN propagates.
func Minimum(a, b *NDArray) (*NDArray, error) { return Binary(OpMinimum, a, b) }

// AddScalar returns a + s.
func AddScalar(a *NDArray, s float64) (*NDArray, error) { return BinaryScalar(OpAdd, a, s) }

// MulScalar returns a * s.
func MulScalar(a *NDArray, s float64) (*NDArray, error) { return BinaryScalar(OpMul, a, s) }
