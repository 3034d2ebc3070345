package pool

import (
	"math/rand"

	"github.com/wildfunctions/symbolics/pkg/expr"
)

func init() {
	Register("kitchensink", func() Pool { return &KitchenSinkPool{} })
}

// KitchenSinkPool draws from every operation the engine knows.
type KitchenSinkPool struct{}

func (p *KitchenSinkPool) Name() string { return "kitchensink" }

var kitchenSinkVariables = []string{"x", "y", "z"}

func (p *KitchenSinkPool) RandomLeaf(rng *rand.Rand) Leaf {
	if rng.Float64() < 0.35 {
		return Leaf{Variable: kitchenSinkVariables[rng.Intn(len(kitchenSinkVariables))]}
	}
	return Leaf{Value: int64(rng.Intn(13))}
}

var kitchenSinkUnary = []expr.UnaryOp{
	expr.OpNegate,
	expr.OpSine,
	expr.OpCosine,
	expr.OpTangent,
	expr.OpCosecant,
	expr.OpSecant,
	expr.OpCotangent,
	expr.OpNaturalLog,
	expr.OpSquareRoot,
	expr.OpExponential,
	expr.OpInvert,
	expr.OpDeterminant,
}

func (p *KitchenSinkPool) RandomUnary(rng *rand.Rand) expr.UnaryOp {
	return kitchenSinkUnary[rng.Intn(len(kitchenSinkUnary))]
}

var kitchenSinkBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSubtract,
	expr.OpMultiply,
	expr.OpDivide,
	expr.OpPower,
	expr.OpRoot,
	expr.OpLessThan,
	expr.OpGreaterThan,
}

func (p *KitchenSinkPool) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return kitchenSinkBinary[rng.Intn(len(kitchenSinkBinary))]
}
