// SPDX-License-Identifier: MIT

package bridge

import (
	"github.com/katalvlaran/lvnd/ndarray"
)

// handler executes one operation against decoded host arguments.
type handler func(e *Engine, in args) (Value, error)

var structural = [...]handler{
	OpArray: hArray, OpZeros: hFill(ndarray.Zeros), OpOnes: hFill(ndarray.Ones),
	OpEmpty: hFill(ndarray.Empty), OpFull: hFull, OpArange: hArange, OpLinspace: hLinspace,
	OpEye: hEye, OpIdentity: hIdentity, OpRandom: hFill(ndarray.Random), OpRandn: hFill(ndarray.Randn),
	OpZerosLike: hLike(ndarray.ZerosLike), OpOnesLike: hLike(ndarray.OnesLike),
	OpFullLike: hFullLike, OpEmptyLike: hLike(ndarray.EmptyLike),

	OpShape: hShape, OpNdim: hNdim, OpSize: hSize,

	OpReshape: hReshape, OpTranspose: hTranspose, OpFlatten: hFlatten, OpSqueeze: hSqueeze,
	OpExpandDims: hExpandDims, OpConcatenate: hJoin(ndarray.Concatenate), OpStack: hJoin(ndarray.Stack),
	OpSplit: hSplit, OpTile: hTile, OpRepeat: hRepeat, OpFlip: hFlip, OpRoll: hRoll, OpPad: hPad,
	OpDiff: hDiff,

	OpGet: hGet, OpSet: hSet, OpInsert: hInsert, OpDelete: hDelete, OpWhere: hWhere, OpClip: hClip,
	OpIsNaN: hArrayOf(ndarray.IsNaN), OpIsInf: hArrayOf(ndarray.IsInf), OpIsFinite: hArrayOf(ndarray.IsFinite),

	OpSum:    hReduce(ndarray.Sum, ndarray.SumAxis),
	OpProd:   hReduce(ndarray.Prod, ndarray.ProdAxis),
	OpMean:   hReduce(ndarray.Mean, ndarray.MeanAxis),
	OpVar:    hReduce(ndarray.Var, ndarray.VarAxis),
	OpStd:    hReduce(ndarray.Std, ndarray.StdAxis),
	OpMin:    hReduce(ndarray.Min, ndarray.MinAxis),
	OpMax:    hReduce(ndarray.Max, ndarray.MaxAxis),
	OpMedian: hReduce(ndarray.Median, ndarray.MedianAxis),
	OpPtp:    hReduce(ndarray.Ptp, ndarray.PtpAxis),
	OpArgMin: hArgReduce(ndarray.ArgMin, ndarray.ArgMinAxis),
	OpArgMax: hArgReduce(ndarray.ArgMax, ndarray.ArgMaxAxis),
	OpAll:    hTruth(ndarray.All, ndarray.AllAxis),
	OpAny:    hTruth(ndarray.Any, ndarray.AnyAxis),

	OpPercentile: hQuantile(ndarray.Percentile, ndarray.PercentileAxis),
	OpQuantile:   hQuantile(ndarray.Quantile, ndarray.QuantileAxis),
	OpCumSum:     hAlong(ndarray.CumSum, ndarray.CumSumAxis),
	OpCumProd:    hAlong(ndarray.CumProd, ndarray.CumProdAxis),

	OpSort: hAlong(ndarray.Sort, ndarray.SortAxis), OpArgSort: hArgSort, OpUnique: hUnique,
	OpSearchSorted: hSearchSorted, OpNonzero: hNonzero, OpArgWhere: hArgWhere,

	OpDot: hPair(ndarray.Dot), OpMatmul: hPair(ndarray.Matmul), OpOuter: hPair(ndarray.Outer),
	OpInner: hInner, OpTrace: hTrace, OpDiagonal: hOffset(ndarray.Diagonal), OpDiag: hOffset(ndarray.Diag), OpDet: hScalarOf(ndarray.Det), OpInv: hArrayOf(ndarray.Inv),
	OpSolve: hPair(ndarray.Solve), OpNorm: hScalarOf(ndarray.Norm),

	OpHistogram: hHistogram, OpBincount: hBincount, OpAverage: hAverage,
	OpCov: hArrayOf(ndarray.Cov), OpCorrcoef: hArrayOf(ndarray.Corrcoef),

	OpConvolve: hConvolve, OpCorrelate: hCorrelate, OpGradient: hGradient, OpInterp: hInterp,
	OpAllClose: hAllClose,
}

func handlerFor(op Op) (handler, bool) {
	if b, ok := op.binary(); ok {
		return hBinary(b), true
	}
	if u, ok := op.unary(); ok {
		return hUnary(u), true
	}
	if op < 0 || op >= opStructuralCount || structural[op] == nil {
		return nil, false
	}

	return structural[op], true
}

func arrayResult(a *ndarray.NDArray, err error) (Value, error) {
	if err != nil {
		return Value{}, err
	}

	return ArrayValue(a), nil
}

func scalarResult(f float64, err error) (Value, error) {
	if err != nil {
		return Value{}, err
	}

	return ScalarValue(f), nil
}

func listResult(parts []*ndarray.NDArray, err error) (Value, error) {
	if err != nil {
		return Value{}, err
	}
	items := make([]Value, len(parts))
	for i, p := range parts {
		items[i] = ArrayValue(p)
	}

	return ListValue(items...), nil
}

func boolf(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

func hBinary(op ndarray.BinaryOp) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}
		b, err := in.array(1)
		if err != nil {
			return Value{}, err
		}

		return arrayResult(ndarray.Binary(op, a, b))
	}
}

func hUnary(op ndarray.UnaryOp) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}

		return arrayResult(ndarray.Unary(op, a))
	}
}

// hPair adapts f(a, b) → array.
func hPair(f func(a, b *ndarray.NDArray) (*ndarray.NDArray, error)) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}
		b, err := in.array(1)
		if err != nil {
			return Value{}, err
		}

		return arrayResult(f(a, b))
	}
}

func hArrayOf(f func(*ndarray.NDArray) (*ndarray.NDArray, error)) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}

		return arrayResult(f(a))
	}
}

func hScalarOf(f func(*ndarray.NDArray) (float64, error)) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}

		return scalarResult(f(a))
	}
}
