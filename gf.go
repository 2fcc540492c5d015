// Package reedsolomon implements Reed-Solomon error correction decoding
// over Galois fields GF(2^n), as used by QR Code, Data Matrix, Aztec and
// MaxiCode symbols. The decoder corrects damaged codewords in place; it
// does not encode, and it does not know anything about how codewords were
// extracted from an image.
package reedsolomon

import "fmt"

// GenericGF represents a Galois field GF(size) under a fixed primitive
// polynomial. A field's log/exp tables are built once by NewGenericGF and
// never mutated afterward, so a GenericGF is safe for concurrent use.
type GenericGF struct {
	expTable      []int
	logTable      []int
	zero          *GenericGFPoly
	one           *GenericGFPoly
	size          int
	primitive     int
	generatorBase int
}

// Fields used by the supported barcode formats.
var (
	QRCodeField256     = NewGenericGF(0x011D, 256, 0) // x^8 + x^4 + x^3 + x^2 + 1
	DataMatrixField256 = NewGenericGF(0x012D, 256, 1) // x^8 + x^5 + x^3 + x^2 + 1
	AztecData12        = NewGenericGF(0x1069, 4096, 1)
	AztecData10        = NewGenericGF(0x0409, 1024, 1)
	AztecData8         = DataMatrixField256
	AztecData6         = NewGenericGF(0x0043, 64, 1)
	AztecParam         = NewGenericGF(0x0013, 16, 1)
	MaxiCodeField64    = AztecData6
)

// NewGenericGF creates GF(size) from the given primitive polynomial.
// size must be a power of two. generatorBase is the first consecutive
// root of the format's generator polynomial (0 for QR, 1 for the
// Data Matrix and Aztec families).
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	gf := &GenericGF{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}

	// exp[i] = 2^i, reduced by the primitive polynomial; log inverts it.
	// log[0] is left at its zero value and must never be read.
	x := 1
	for i := range gf.expTable {
		gf.expTable[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}

	gf.zero = newGenericGFPoly(gf, []int{0})
	gf.one = newGenericGFPoly(gf, []int{1})

	return gf
}

// Zero returns the zero polynomial over this field.
func (gf *GenericGF) Zero() *GenericGFPoly { return gf.zero }

// One returns the one polynomial over this field.
func (gf *GenericGF) One() *GenericGFPoly { return gf.one }

// BuildMonomial returns the polynomial coefficient * x^degree.
func (gf *GenericGF) BuildMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGenericGFPoly(gf, coefficients)
}

// AddOrSubtract computes a + b. Addition and subtraction coincide in a
// field of characteristic 2: both are XOR, and the operation is its own
// inverse.
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns 2^a in this field.
func (gf *GenericGF) Exp(a int) int {
	return gf.expTable[a]
}

// Log returns log2(a) in this field. a must be non-zero; Log(0) is a
// caller bug and panics with ErrDivisionByZero.
func (gf *GenericGF) Log(a int) int {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of a, satisfying
// Multiply(a, Inverse(a)) == 1. a must be non-zero; Inverse(0) is a
// caller bug and panics with ErrDivisionByZero.
func (gf *GenericGF) Inverse(a int) int {
	if a == 0 {
		panic(ErrDivisionByZero)
	}
	return gf.expTable[gf.size-gf.logTable[a]-1]
}

// Multiply returns a * b in this field.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Size returns the number of elements in the field.
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the first consecutive root of the generator
// polynomial for this field's format.
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

// String returns a string representation.
func (gf *GenericGF) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
