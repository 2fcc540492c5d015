package reedsolomon

import (
	"errors"
	"fmt"
)

var (
	// ErrReedSolomon indicates a Reed-Solomon decoding failure. Every
	// error returned by Decode matches it via errors.Is.
	ErrReedSolomon = errors.New("reedsolomon: decoding error")

	// ErrDivisionByZero is the panic value raised by Inverse(0) and
	// Log(0). It indicates a bug in the caller, not bad input: the
	// decoder guards every field operation it performs.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrReedSolomon)

	// ErrEuclideanAlgorithm is returned when the Euclidean algorithm
	// cannot produce a normalized error locator, meaning the received
	// codewords contain more errors than the available error-correction
	// codewords can model.
	ErrEuclideanAlgorithm = fmt.Errorf("%w: euclidean algorithm failed", ErrReedSolomon)

	// ErrRootCount is returned when the Chien search finds a number of
	// error-locator roots different from the locator's degree, the
	// primary integrity check against uncorrectable input.
	ErrRootCount = fmt.Errorf("%w: root count does not match locator degree", ErrReedSolomon)
)
