// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnd/ndarray"
)

// Op is a host-callable operation. Structural operations have their own
// constants; elementwise operations are lifted from ndarray.BinaryOp and
// ndarray.UnaryOp with Binary and Unary.
type Op int

// Structural operations.
const (
	OpArray Op = iota
	OpZeros
	OpOnes
	OpEmpty
	OpFull
	OpArange
	OpLinspace
	OpEye
	OpIdentity
	OpRandom
	OpRandn
	OpZerosLike
	OpOnesLike
	OpFullLike
	OpEmptyLike

	OpShape
	OpNdim
	OpSize

	OpReshape
	OpTranspose
	OpFlatten
	OpSqueeze
	OpExpandDims
	OpConcatenate
	OpStack
	OpSplit
	OpTile
	OpRepeat
	OpFlip
	OpRoll
	OpPad
	OpDiff

	OpGet
	OpSet
	OpInsert
	OpDelete
	OpWhere
	OpClip
	OpIsNaN
	OpIsInf
	OpIsFinite

	OpSum
	OpProd
	OpMean
	OpVar
	OpStd
	OpMin
	OpMax
	OpMedian
	OpPtp
	OpArgMin
	OpArgMax
	OpPercentile
	OpQuantile
	OpCumSum
	OpCumProd
	OpAll
	OpAny

	OpSort
	OpArgSort
	OpUnique
	OpSearchSorted
	OpNonzero
	OpArgWhere

	OpDot
	OpMatmul
	OpInner
	OpOuter
	OpTrace
	OpDiagonal
	OpDiag
	OpDet
	OpInv
	OpSolve
	OpNorm

	OpHistogram
	OpBincount
	OpAverage
	OpCov
	OpCorrcoef

	OpConvolve
	OpCorrelate
	OpGradient
	OpInterp
	OpAllClose

	opStructuralCount
)

// Elementwise ranges sit above the structural block.
const (
	opBinaryBase Op = 1 << 10
	opUnaryBase  Op = 2 << 10
)

var structuralNames = [...]string{
	OpArray: "array", OpZeros: "zeros", OpOnes: "ones", OpEmpty: "empty", OpFull: "full",
	OpArange: "arange", OpLinspace: "linspace", OpEye: "eye", OpIdentity: "identity",
	OpRandom: "random", OpRandn: "randn",
	OpZerosLike: "zeros_like", OpOnesLike: "ones_like", OpFullLike: "full_like", OpEmptyLike: "empty_like",
	OpShape: "shape", OpNdim: "ndim", OpSize: "size",
	OpReshape: "reshape", OpTranspose: "transpose", OpFlatten: "flatten", OpSqueeze: "squeeze",
	OpExpandDims: "expand_dims", OpConcatenate: "concatenate", OpStack: "stack", OpSplit: "split",
	OpTile: "tile", OpRepeat: "repeat", OpFlip: "flip", OpRoll: "roll", OpPad: "pad", OpDiff: "diff",
	OpGet: "get", OpSet: "set", OpInsert: "insert", OpDelete: "delete", OpWhere: "where", OpClip: "clip",
	OpIsNaN: "isnan", OpIsInf: "isinf", OpIsFinite: "isfinite",
	OpSum: "sum", OpProd: "prod", OpMean: "mean", OpVar: "var", OpStd: "std",
	OpMin: "min", OpMax: "max", OpMedian: "median", OpPtp: "ptp",
	OpArgMin: "argmin", OpArgMax: "argmax", OpPercentile: "percentile", OpQuantile: "quantile",
	OpCumSum: "cumsum", OpCumProd: "cumprod", OpAll: "all", OpAny: "any",
	OpSort: "sort", OpArgSort: "argsort", OpUnique: "unique", OpSearchSorted: "searchsorted",
	OpNonzero: "nonzero", OpArgWhere: "argwhere",
	OpDot: "dot", OpMatmul: "matmul", OpInner: "inner", OpOuter: "outer", OpTrace: "trace",
	OpDiagonal: "diagonal", OpDiag: "diag", OpDet: "det", OpInv: "inv", OpSolve: "solve", OpNorm: "norm",
	OpHistogram: "histogram", OpBincount: "bincount", OpAverage: "average",
	OpCov: "cov", OpCorrcoef: "corrcoef",
	OpConvolve: "convolve", OpCorrelate: "correlate", OpGradient: "gradient", OpInterp: "interp",
	OpAllClose: "allclose",
}

// hostAliases maps common host spellings onto canonical names.
var hostAliases = map[string]string{
	"subtract": "sub",
	"multiply": "mul",
	"divide":   "div",
	"power":    "pow",
	"neg":      "negative",
	"ravel":    "flatten",
	"amin":     "min",
	"amax":     "max",
}

// opsByName is the only name → operation table.
var opsByName = buildOpIndex()

func buildOpIndex() map[string]Op {
	idx := make(map[string]Op, len(structuralNames)+64)
	for op := Op(0); op < opStructuralCount; op++ {
		idx[structuralNames[op]] = op
	}
	for b := ndarray.BinaryOp(0); b.Valid(); b++ {
		idx[b.String()] = Binary(b)
	}
	for u := ndarray.UnaryOp(0); u.Valid(); u++ {
		idx[u.String()] = Unary(u)
	}

	return idx
}

// Binary lifts an elementwise binary operation into the Op set.
func Binary(op ndarray.BinaryOp) Op { return opBinaryBase + Op(op) }

// Unary lifts an elementwise unary operation into the Op set.
func Unary(op ndarray.UnaryOp) Op { return opUnaryBase + Op(op) }

// ParseOp resolves a host operation name (case-insensitive, with common
// aliases such as "multiply" for "mul").
func ParseOp(name string) (Op, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := hostAliases[key]; ok {
		key = canonical
	}
	op, ok := opsByName[key]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownOp)
	}

	return op, nil
}

// Valid reports whether op is a member of the Op set.
func (op Op) Valid() bool {
	if _, ok := op.binary(); ok {
		return true
	}
	if _, ok := op.unary(); ok {
		return true
	}

	return op >= 0 && op < opStructuralCount
}

// String returns the canonical host name.
func (op Op) String() string {
	if b, ok := op.binary(); ok {
		return b.String()
	}
	if u, ok := op.unary(); ok {
		return u.String()
	}
	if op >= 0 && op < opStructuralCount {
		return structuralNames[op]
	}

	return fmt.Sprintf("Op(%d)", int(op))
}

func (op Op) binary() (ndarray.BinaryOp, bool) {
	if op < opBinaryBase || op >= opUnaryBase {
		return 0, false
	}
	b := ndarray.BinaryOp(op - opBinaryBase)

	return b, b.Valid()
}

func (op Op) unary() (ndarray.UnaryOp, bool) {
	if op < opUnaryBase {
		return 0, false
	}
	u := ndarray.UnaryOp(op - opUnaryBase)

	return u, u.Valid()
}
