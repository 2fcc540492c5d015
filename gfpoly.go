package reedsolomon

// GenericGFPoly is a polynomial whose coefficients are elements of a
// GenericGF. Instances are immutable: every operation returns a new
// polynomial, which lets the decoder's Euclidean algorithm hold on to
// several earlier iterations at once without defensive copying.
type GenericGFPoly struct {
	field        *GenericGF
	coefficients []int
}

// newGenericGFPoly creates a polynomial from coefficients ordered from
// highest-degree term to constant term. Leading zero coefficients are
// stripped so that the stored leading coefficient is non-zero for every
// polynomial except zero itself, which is stored as the single
// coefficient {0}.
func newGenericGFPoly(field *GenericGF, coefficients []int) *GenericGFPoly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	if coefficients[0] == 0 && len(coefficients) > 1 {
		firstNonZero := 1
		for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
			firstNonZero++
		}
		if firstNonZero == len(coefficients) {
			return field.Zero()
		}
		trimmed := make([]int, len(coefficients)-firstNonZero)
		copy(trimmed, coefficients[firstNonZero:])
		coefficients = trimmed
	}
	return &GenericGFPoly{field: field, coefficients: coefficients}
}

// Coefficients returns the coefficients, highest-degree term first.
func (p *GenericGFPoly) Coefficients() []int {
	return p.coefficients
}

// Degree returns the degree of this polynomial.
func (p *GenericGFPoly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether this is the zero polynomial.
func (p *GenericGFPoly) IsZero() bool {
	return p.coefficients[0] == 0
}

// GetCoefficient returns the coefficient of the x^degree term, or 0 if
// degree exceeds the polynomial's degree.
func (p *GenericGFPoly) GetCoefficient(degree int) int {
	if degree > p.Degree() {
		return 0
	}
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates this polynomial at a using Horner's rule.
func (p *GenericGFPoly) EvaluateAt(a int) int {
	if a == 0 {
		// Only the constant term survives.
		return p.GetCoefficient(0)
	}
	if a == 1 {
		// The value is the sum of all coefficients.
		result := 0
		for _, c := range p.coefficients {
			result = AddOrSubtract(result, c)
		}
		return result
	}
	result := p.coefficients[0]
	for _, c := range p.coefficients[1:] {
		result = AddOrSubtract(p.field.Multiply(a, result), c)
	}
	return result
}

// AddOrSubtractPoly returns the sum (equivalently, difference) of this
// polynomial and other.
func (p *GenericGFPoly) AddOrSubtractPoly(other *GenericGFPoly) *GenericGFPoly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	smaller, larger := p.coefficients, other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	// The shorter polynomial's missing high-order terms are zero, so the
	// larger one's high-order coefficients pass through unchanged.
	sum := make([]int, len(larger))
	diff := len(larger) - len(smaller)
	copy(sum, larger[:diff])
	for i := diff; i < len(larger); i++ {
		sum[i] = AddOrSubtract(smaller[i-diff], larger[i])
	}

	return newGenericGFPoly(p.field, sum)
}

// MultiplyPoly returns the product of this polynomial and other.
func (p *GenericGFPoly) MultiplyPoly(other *GenericGFPoly) *GenericGFPoly {
	if p.IsZero() || other.IsZero() {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+len(other.coefficients)-1)
	for i, ac := range p.coefficients {
		for j, bc := range other.coefficients {
			product[i+j] = AddOrSubtract(product[i+j], p.field.Multiply(ac, bc))
		}
	}
	return newGenericGFPoly(p.field, product)
}

// MultiplyScalar returns this polynomial scaled by scalar.
func (p *GenericGFPoly) MultiplyScalar(scalar int) *GenericGFPoly {
	if scalar == 0 {
		return p.field.Zero()
	}
	if scalar == 1 {
		return p
	}
	product := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, scalar)
	}
	return newGenericGFPoly(p.field, product)
}

// MultiplyByMonomial returns this polynomial multiplied by
// coefficient * x^degree, implemented as a shift and scale rather than a
// full convolution.
func (p *GenericGFPoly) MultiplyByMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return newGenericGFPoly(p.field, product)
}

// Divide divides this polynomial by other, returning the quotient and
// remainder. Dividing by the zero polynomial is a caller bug and panics.
func (p *GenericGFPoly) Divide(other *GenericGFPoly) (quotient, remainder *GenericGFPoly) {
	if other.IsZero() {
		panic(ErrDivisionByZero)
	}

	quotient = p.field.Zero()
	remainder = p

	inverseLeading := p.field.Inverse(other.GetCoefficient(other.Degree()))
	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := p.field.Multiply(remainder.GetCoefficient(remainder.Degree()), inverseLeading)
		quotient = quotient.AddOrSubtractPoly(p.field.BuildMonomial(degreeDiff, scale))
		remainder = remainder.AddOrSubtractPoly(other.MultiplyByMonomial(degreeDiff, scale))
	}

	return quotient, remainder
}
