// SPDX-License-Identifier: MIT

// Package ndarray provides a dense, row-major, float64 N-dimensional array and
// a NumPy-like operation set over it.
//
// Storage:
//
//	An *NDArray is a shape (rank ≥ 1, every axis length ≥ 0) and a flat buffer
//	with len(data) == product(shape). The last axis varies fastest; strides are
//	derived from the shape and never stored.
//
// Semantics:
//
//   - Value semantics: every operation returns a fresh array. Set is the only
//     in-place mutator and is meant for arrays the caller owns exclusively.
//   - Indices and axes are 0-based.
//   - Broadcasting follows the NumPy rule (right-align, pad with 1, equal or 1)
//     and always materializes a copy.
//   - IEEE domain results (1/0, log(-1), sqrt(-1)) are values, not errors.
//   - Shape and precondition failures are reported before anything is
//     allocated, with sentinel errors matched through errors.Is.
//
// Operation families:
//
//	creation        Zeros, Ones, Full, Empty, Arange, Linspace, Random, Randn, Eye, Identity, *Like
//	elementwise     Binary/BinaryScalar/ScalarBinary over BinaryOp, Unary over UnaryOp,
//	                Where, Clip, NanToNum, IsClose, AllClose, IsNaN, IsInf, IsFinite
//	reductions      Reduce/ReduceAll and Sum, Mean, Var, Std, Min, Max, ArgMin, ArgMax,
//	                Prod, All, Any, Median, Percentile, Quantile, Ptp (each with an Axis form)
//	cumulative      CumSum, CumProd
//	sorting         Sort, ArgSort, SearchSorted, Unique, ArgWhere, Nonzero
//	manipulation    Reshape, Flatten, Squeeze, ExpandDims, Transpose, Concatenate, Stack,
//	                Split, SplitAt, Tile, Repeat, Flip, Roll, Pad, Insert, Delete, Diff
//	linear algebra  Dot, Inner, Matmul, Outer, Trace, Diagonal, Diag, Norm, LU, Det, Inv, Solve
//	statistics      Histogram, Bincount, Average, Cov, Corrcoef
//
// Creation operations consult an alloc.Tracker (WithTracker) before allocating
// and fail with ErrAllocationDenied when it refuses.
package ndarray
