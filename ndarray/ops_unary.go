// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Unary elementwise maps as a closed operation set (UnaryOp).
//   - Pure per-element maps; domain violations produce NaN/±Inf per IEEE-754.

package ndarray

import (
	"fmt"
	"math"
)

// UnaryOp names one unary elementwise operation.
type UnaryOp int

// Unary operations.
const (
	OpNeg UnaryOp = iota
	OpAbs
	OpSqrt
	OpCbrt
	OpSquare
	OpExp
	OpExp2
	OpExpm1
	OpLog
	OpLog2
	OpLog10
	OpLog1p
	OpSin
	OpCos
	OpTan
	OpSinh
	OpCosh
	OpTanh
	OpAsin
	OpAcos
	OpAtan
	OpAsinh
	OpAcosh
	OpAtanh
	OpFloor
	OpCeil
	OpRound // half to even
	OpTrunc
	OpSign
	OpReciprocal
	OpDeg2Rad
	OpRad2Deg
	OpLogicalNot
	opUnaryCount
)

var unaryNames = [...]string{
	OpNeg: "negative", OpAbs: "abs", OpSqrt: "sqrt", OpCbrt: "cbrt", OpSquare: "square",
	OpExp: "exp", OpExp2: "exp2", OpExpm1: "expm1",
	OpLog: "log", OpLog2: "log2", OpLog10: "log10", OpLog1p: "log1p",
	OpSin: "sin", OpCos: "cos", OpTan: "tan",
	OpSinh: "sinh", OpCosh: "cosh", OpTanh: "tanh",
	OpAsin: "arcsin", OpAcos: "arccos", OpAtan: "arctan",
	OpAsinh: "arcsinh", OpAcosh: "arccosh", OpAtanh: "arctanh",
	OpFloor: "floor", OpCeil: "ceil", OpRound: "round", OpTrunc: "trunc",
	OpSign: "sign", OpReciprocal: "reciprocal",
	OpDeg2Rad: "deg2rad", OpRad2Deg: "rad2deg", OpLogicalNot: "logical_not",
}

var unaryFuncs = [...]func(float64) float64{
	OpNeg:    func(x float64) float64 { return -x },
	OpAbs:    math.Abs,
	OpSqrt:   math.Sqrt,
	OpCbrt:   math.Cbrt,
	OpSquare: func(x float64) float64 { return x * x },
	OpExp:    math.Exp,
	OpExp2:   math.Exp2,
	OpExpm1:  math.Expm1,
	OpLog:    math.Log,
	OpLog2:   math.Log2,
	OpLog10:  math.Log10,
	OpLog1p:  math.Log1p,
	OpSin:    math.Sin,
	OpCos:    math.Cos,
	OpTan:    math.Tan,
	OpSinh:   math.Sinh,
	OpCosh:   math.Cosh,
	OpTanh:   math.Tanh,
	OpAsin:   math.Asin,
	OpAcos:   math.Acos,
	OpAtan:   math.Atan,
	OpAsinh:  math.Asinh,
	OpAcosh:  math.Acosh,
	OpAtanh:  math.Atanh,
	OpFloor:  math.Floor,
	OpCeil:   math.Ceil,
	OpRound:  math.RoundToEven,
	OpTrunc:  math.Trunc,
	OpSign: func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		case x == 0:
			return 0
		}
		return math.NaN()
	},
	OpReciprocal: func(x float64) float64 { return 1 / x },
	OpDeg2Rad:    func(x float64) float64 { return x * math.Pi / 180 },
	OpRad2Deg:    func(x float64) float64 { return x * 180 / math.Pi },
	OpLogicalNot: func(x float64) float64 { return boolf(x == 0) },
}

// String returns the operation name.
func (op UnaryOp) String() string {
	if !op.Valid() {
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}

	return unaryNames[op]
}

// Valid reports whether op is a defined operation.
func (op UnaryOp) Valid() bool { return op >= 0 && op < opUnaryCount }

// Apply evaluates op on one scalar. Undefined ops yield NaN.
func (op UnaryOp) Apply(x float64) float64 {
	if !op.Valid() {
		return math.NaN()
	}

	return unaryFuncs[op](x)
}

// Unary maps op over every element of a.
// Errors: ErrNilArray, ErrInvalidArgument (unknown op).
// Complexity: O(size).
func Unary(op UnaryOp, a *NDArray) (*NDArray, error) {
	tag := op.String()
	if a == nil {
		return nil, arrayErrorf(tag, ErrNilArray)
	}
	if !op.Valid() {
		return nil, arrayErrorf(tag, ErrInvalidArgument)
	}
	f := unaryFuncs[op]
	out := zerosOf(a.Shape())
	for i, v := range a.data {
		out.data[i] = f(v)
	}

	return out, nil
}

// mapPredicate returns 1 where pred holds and 0 elsewhere.
func mapPredicate(tag string, a *NDArray, pred func(float64) bool) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(tag, ErrNilArray)
	}
	out := zerosOf(a.Shape())
	for i, v := range a.data {
		out.data[i] = boolf(pred(v))
	}

	return out, nil
}

// IsNaN marks NaN elements with 1.
func IsNaN(a *NDArray) (*NDArray, error) { return mapPredicate("isnan", a, math.IsNaN) }

// IsInf marks ±Inf elements with 1.
func IsInf(a *NDArray) (*NDArray, error) {
	return mapPredicate("isinf", a, func(v float64) bool { return math.IsInf(v, 0) })
}

// IsFinite marks elements that are neither NaN nor ±Inf with 1.
func IsFinite(a *NDArray) (*NDArray, error) {
	return mapPredicate("isfinite", a, func(v float64) bool { return !isNonFinite(v) })
}

// Neg returns -a.
func Neg(a *NDArray) (*NDArray, error) { return Unary(OpNeg, a) }

// Abs returns |a|.
func Abs(a *NDArray) (*NDArray, error) { return Unary(OpAbs, a) }

// Sqrt returns √a; negative inputs yield NaN.
func Sqrt(a *NDArray) (*NDArray, error) { return Unary(OpSqrt, a) }

// Exp returns e**a.
func Exp(a *NDArray) (*NDArray, error) { return Unary(OpExp, a) }

// Log returns ln(a); log(0) = -Inf, log(<0) = NaN.
func Log(a *NDArray) (*NDArray, error) { return Unary(OpLog, a) }
