package reedsolomon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoly(rng *rand.Rand, field *GenericGF, maxDegree int) *GenericGFPoly {
	coefficients := make([]int, rng.Intn(maxDegree)+1)
	for i := range coefficients {
		coefficients[i] = rng.Intn(field.Size())
	}
	return newGenericGFPoly(field, coefficients)
}

func TestPolyCanonicalForm(t *testing.T) {
	require := require.New(t)
	field := QRCodeField256

	t.Run("leading zeros stripped", func(t *testing.T) {
		p := newGenericGFPoly(field, []int{0, 0, 5, 2})
		require.Equal(1, p.Degree())
		require.Equal([]int{5, 2}, p.Coefficients())
	})

	t.Run("all zeros collapse to zero", func(t *testing.T) {
		p := newGenericGFPoly(field, []int{0, 0, 0})
		require.True(p.IsZero())
		require.Equal(0, p.Degree())
	})

	t.Run("identities", func(t *testing.T) {
		require.True(field.Zero().IsZero())
		require.False(field.One().IsZero())
		require.Equal(0, field.One().Degree())
		require.Equal(1, field.One().GetCoefficient(0))
	})

	t.Run("empty coefficients panic", func(t *testing.T) {
		require.Panics(func() { newGenericGFPoly(field, nil) })
	})
}

func TestPolyCoefficientLookup(t *testing.T) {
	require := require.New(t)

	// p(x) = 3x^2 + 7x + 11
	p := newGenericGFPoly(QRCodeField256, []int{3, 7, 11})
	require.Equal(2, p.Degree())
	require.Equal(3, p.GetCoefficient(2))
	require.Equal(7, p.GetCoefficient(1))
	require.Equal(11, p.GetCoefficient(0))
	require.Equal(0, p.GetCoefficient(3), "past the degree every coefficient is zero")
	require.Equal(0, p.GetCoefficient(100))
}

func TestPolyEvaluateAt(t *testing.T) {
	require := require.New(t)
	field := QRCodeField256

	p := newGenericGFPoly(field, []int{3, 7, 11})

	t.Run("at zero returns constant term", func(t *testing.T) {
		require.Equal(11, p.EvaluateAt(0))
	})

	t.Run("at one returns coefficient sum", func(t *testing.T) {
		require.Equal(3^7^11, p.EvaluateAt(1))
	})

	t.Run("fast paths agree with Horner", func(t *testing.T) {
		rng := rand.New(rand.NewSource(0x517))
		for i := 0; i < 200; i++ {
			q := randomPoly(rng, field, 20)
			for _, a := range []int{0, 1} {
				horner := 0
				for d := q.Degree(); d >= 0; d-- {
					horner = AddOrSubtract(field.Multiply(a, horner), q.GetCoefficient(d))
				}
				require.Equal(horner, q.EvaluateAt(a))
			}
		}
	})
}

func TestPolyAddOrSubtract(t *testing.T) {
	require := require.New(t)
	field := QRCodeField256
	rng := rand.New(rand.NewSource(0xADD))

	t.Run("p plus p is zero", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			p := randomPoly(rng, field, 30)
			require.True(p.AddOrSubtractPoly(p).IsZero())
		}
	})

	t.Run("commutative with degree alignment", func(t *testing.T) {
		a := newGenericGFPoly(field, []int{1, 2, 3, 4})
		b := newGenericGFPoly(field, []int{9, 8})
		sum := a.AddOrSubtractPoly(b)
		require.Equal(sum.Coefficients(), b.AddOrSubtractPoly(a).Coefficients())
		require.Equal([]int{1, 2, 3 ^ 9, 4 ^ 8}, sum.Coefficients())
	})

	t.Run("zero is the identity", func(t *testing.T) {
		p := randomPoly(rng, field, 10)
		require.Equal(p, p.AddOrSubtractPoly(field.Zero()))
		require.Equal(p, field.Zero().AddOrSubtractPoly(p))
	})
}

func TestPolyMultiply(t *testing.T) {
	require := require.New(t)
	field := QRCodeField256

	t.Run("by zero polynomial", func(t *testing.T) {
		p := newGenericGFPoly(field, []int{1, 2, 3})
		require.True(p.MultiplyPoly(field.Zero()).IsZero())
		require.True(field.Zero().MultiplyPoly(p).IsZero())
	})

	t.Run("by one polynomial", func(t *testing.T) {
		p := newGenericGFPoly(field, []int{1, 2, 3})
		require.Equal(p.Coefficients(), p.MultiplyPoly(field.One()).Coefficients())
	})

	t.Run("known product", func(t *testing.T) {
		// (x + 1)(x + 1) = x^2 + 1 in characteristic 2.
		p := newGenericGFPoly(field, []int{1, 1})
		require.Equal([]int{1, 0, 1}, p.MultiplyPoly(p).Coefficients())
	})

	t.Run("scalar multiply", func(t *testing.T) {
		p := newGenericGFPoly(field, []int{1, 2, 3})
		require.True(p.MultiplyScalar(0).IsZero())
		require.Same(p, p.MultiplyScalar(1))
		scaled := p.MultiplyScalar(5)
		for d := 0; d <= p.Degree(); d++ {
			require.Equal(field.Multiply(p.GetCoefficient(d), 5), scaled.GetCoefficient(d))
		}
	})

	t.Run("monomial multiply matches full multiply", func(t *testing.T) {
		rng := rand.New(rand.NewSource(0x307))
		for i := 0; i < 100; i++ {
			p := randomPoly(rng, field, 15)
			degree := rng.Intn(8)
			coefficient := rng.Intn(field.Size())
			direct := p.MultiplyByMonomial(degree, coefficient)
			viaPoly := p.MultiplyPoly(field.BuildMonomial(degree, coefficient))
			require.Equal(viaPoly.Coefficients(), direct.Coefficients())
		}
	})
}

func TestPolyDivide(t *testing.T) {
	require := require.New(t)
	field := QRCodeField256
	rng := rand.New(rand.NewSource(0xD11))

	t.Run("quotient and remainder reconstruct dividend", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			p := randomPoly(rng, field, 40)
			divisor := randomPoly(rng, field, 10)
			if divisor.IsZero() {
				continue
			}
			quotient, remainder := p.Divide(divisor)
			if !remainder.IsZero() {
				require.Less(remainder.Degree(), divisor.Degree())
			}
			back := quotient.MultiplyPoly(divisor).AddOrSubtractPoly(remainder)
			require.Equal(p.Coefficients(), back.Coefficients())
		}
	})

	t.Run("divide by zero panics", func(t *testing.T) {
		p := newGenericGFPoly(field, []int{1, 2})
		require.PanicsWithError(ErrDivisionByZero.Error(), func() { p.Divide(field.Zero()) })
	})
}
