package reedsolomon

// Decoder performs Reed-Solomon error correction decoding using the
// extended Euclidean algorithm, Chien's search and Forney's formula.
//
// A Decoder holds no per-call state, so a single instance may be shared
// by concurrent callers as long as each call gets its own received
// buffer: the caller owns exclusive write access to the buffer for the
// duration of Decode.
type Decoder struct {
	field *GenericGF
}

// NewDecoder creates a Decoder for the given field.
func NewDecoder(field *GenericGF) *Decoder {
	return &Decoder{field: field}
}

// Decode corrects errors in received, in place, and returns the number
// of codewords corrected. received holds both data and error-correction
// codewords; twoS is the number of error-correction codewords present,
// which allows up to twoS/2 errors to be corrected.
//
// On success the buffer holds the corrected codewords. On failure the
// buffer contents are unspecified and the caller must discard them.
func (d *Decoder) Decode(received []int, twoS int) (int, error) {
	poly := newGenericGFPoly(d.field, received)
	syndromeCoefficients := make([]int, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		eval := poly.EvaluateAt(d.field.Exp(i + d.field.GeneratorBase()))
		syndromeCoefficients[twoS-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	syndrome := newGenericGFPoly(d.field, syndromeCoefficients)
	sigma, omega, err := d.runEuclideanAlgorithm(d.field.BuildMonomial(twoS, 1), syndrome, twoS)
	if err != nil {
		return 0, err
	}
	errorLocations, err := d.findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	errorMagnitudes := d.findErrorMagnitudes(omega, errorLocations)
	for i, location := range errorLocations {
		position := len(received) - 1 - d.field.Log(location)
		if position < 0 {
			// A root that maps outside the buffer means the locator
			// did not describe this codeword's errors.
			return 0, ErrRootCount
		}
		received[position] = AddOrSubtract(received[position], errorMagnitudes[i])
	}
	return len(errorLocations), nil
}

// runEuclideanAlgorithm runs the extended Euclidean algorithm on a and b
// until the remainder's degree drops below R/2, yielding the error
// locator sigma and error evaluator omega, both normalized so that
// sigma's constant term is 1.
func (d *Decoder) runEuclideanAlgorithm(a, b *GenericGFPoly, R int) (sigma, omega *GenericGFPoly, err error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast := a
	r := b
	tLast := d.field.Zero()
	t := d.field.One()

	for r.Degree() >= R/2 {
		rLastLast := rLast
		tLastLast := tLast
		rLast = r
		tLast = t

		if rLast.IsZero() {
			// The algorithm terminated with a zero remainder before the
			// degree bound was reached.
			return nil, nil, ErrEuclideanAlgorithm
		}
		r = rLastLast
		q := d.field.Zero()
		denominatorLeadingTerm := rLast.GetCoefficient(rLast.Degree())
		dltInverse := d.field.Inverse(denominatorLeadingTerm)
		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := d.field.Multiply(r.GetCoefficient(r.Degree()), dltInverse)
			q = q.AddOrSubtractPoly(d.field.BuildMonomial(degreeDiff, scale))
			r = r.AddOrSubtractPoly(rLast.MultiplyByMonomial(degreeDiff, scale))
		}

		t = q.MultiplyPoly(tLast).AddOrSubtractPoly(tLastLast)

		if r.Degree() >= rLast.Degree() {
			return nil, nil, ErrEuclideanAlgorithm
		}
	}

	sigmaTildeAtZero := t.GetCoefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, ErrEuclideanAlgorithm
	}

	inverse := d.field.Inverse(sigmaTildeAtZero)
	sigma = t.MultiplyScalar(inverse)
	omega = r.MultiplyScalar(inverse)
	return sigma, omega, nil
}

// findErrorLocations runs Chien's search: the inverses of the error
// locator's roots are the error locations.
func (d *Decoder) findErrorLocations(errorLocator *GenericGFPoly) ([]int, error) {
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		// sigma = 1 + c*x, whose single root's inverse is c.
		return []int{errorLocator.GetCoefficient(1)}, nil
	}
	result := make([]int, 0, numErrors)
	for i := 1; i < d.field.Size() && len(result) < numErrors; i++ {
		if errorLocator.EvaluateAt(i) == 0 {
			result = append(result, d.field.Inverse(i))
		}
	}
	if len(result) != numErrors {
		return nil, ErrRootCount
	}
	return result, nil
}

// findErrorMagnitudes applies Forney's formula at each error location.
// The locations are distinct non-zero field elements, so the denominator
// is never zero.
func (d *Decoder) findErrorMagnitudes(errorEvaluator *GenericGFPoly, errorLocations []int) []int {
	s := len(errorLocations)
	result := make([]int, s)
	for i := 0; i < s; i++ {
		xiInverse := d.field.Inverse(errorLocations[i])
		denominator := 1
		for j := 0; j < s; j++ {
			if i == j {
				continue
			}
			term := d.field.Multiply(errorLocations[j], xiInverse)
			denominator = d.field.Multiply(denominator, AddOrSubtract(1, term))
		}
		result[i] = d.field.Multiply(errorEvaluator.EvaluateAt(xiInverse), d.field.Inverse(denominator))
		if d.field.GeneratorBase() != 0 {
			result[i] = d.field.Multiply(result[i], xiInverse)
		}
	}
	return result
}
