package pool

import (
	"math/rand"

	"github.com/wildfunctions/symbolics/pkg/expr"
)

func init() {
	Register("polynomial", func() Pool { return &PolynomialPool{} })
}

// PolynomialPool extends conservative with a second variable, small powers of
// 2 and 3 as leaves, division and powers with constant exponents 0-4.
type PolynomialPool struct{}

func (p *PolynomialPool) Name() string { return "polynomial" }

func (p *PolynomialPool) RandomLeaf(rng *rand.Rand) Leaf {
	r := rng.Float64()
	switch {
	case r < 0.25:
		return Leaf{Variable: "x"}
	case r < 0.35:
		return Leaf{Variable: "y"}
	case r < 0.75:
		return Leaf{Value: int64(rng.Intn(11))}
	case r < 0.875:
		// powers of 2: 2, 4, 8, 16
		exp := rng.Intn(4) + 1
		return Leaf{Value: int64(1) << uint(exp)}
	default:
		// powers of 3: 3, 9, 27
		vals := []int64{3, 9, 27}
		return Leaf{Value: vals[rng.Intn(len(vals))]}
	}
}

var polynomialUnary = []expr.UnaryOp{
	expr.OpNegate,
}

func (p *PolynomialPool) RandomUnary(rng *rand.Rand) expr.UnaryOp {
	return polynomialUnary[rng.Intn(len(polynomialUnary))]
}

var polynomialBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSubtract,
	expr.OpMultiply,
	expr.OpDivide,
	expr.OpPower,
}

func (p *PolynomialPool) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return polynomialBinary[rng.Intn(len(polynomialBinary))]
}

func (p *PolynomialPool) RandomExponent(rng *rand.Rand) int64 {
	return int64(rng.Intn(5))
}
