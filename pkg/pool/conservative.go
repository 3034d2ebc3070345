package pool

import (
	"math/rand"

	"github.com/wildfunctions/symbolics/pkg/expr"
)

func init() {
	Register("conservative", func() Pool { return &ConservativePool{} })
}

// ConservativePool provides basic building blocks: x, ints 0-9, negation,
// and addition, subtraction and multiplication.
type ConservativePool struct{}

func (p *ConservativePool) Name() string { return "conservative" }

func (p *ConservativePool) RandomLeaf(rng *rand.Rand) Leaf {
	if rng.Float64() < 0.4 {
		return Leaf{Variable: "x"}
	}
	return Leaf{Value: int64(rng.Intn(10))}
}

var conservativeUnary = []expr.UnaryOp{
	expr.OpNegate,
}

func (p *ConservativePool) RandomUnary(rng *rand.Rand) expr.UnaryOp {
	return conservativeUnary[rng.Intn(len(conservativeUnary))]
}

var conservativeBinary = []expr.BinaryOp{
	expr.OpAdd,
	expr.OpSubtract,
	expr.OpMultiply,
}

func (p *ConservativePool) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return conservativeBinary[rng.Intn(len(conservativeBinary))]
}
