package parse

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/expr"
	"github.com/wildfunctions/symbolics/pkg/numeric"
)

var goUnary = map[string]expr.UnaryOp{
	"Negate":      expr.OpNegate,
	"Sine":        expr.OpSine,
	"Cosine":      expr.OpCosine,
	"Tangent":     expr.OpTangent,
	"Cosecant":    expr.OpCosecant,
	"Secant":      expr.OpSecant,
	"Cotangent":   expr.OpCotangent,
	"NaturalLog":  expr.OpNaturalLog,
	"SquareRoot":  expr.OpSquareRoot,
	"Exponential": expr.OpExponential,
	"Invert":      expr.OpInvert,
	"Determinant": expr.OpDeterminant,
}

var goBinary = map[string]expr.BinaryOp{
	"Add":         expr.OpAdd,
	"Subtract":    expr.OpSubtract,
	"Multiply":    expr.OpMultiply,
	"Divide":      expr.OpDivide,
	"Power":       expr.OpPower,
	"Root":        expr.OpRoot,
	"LessThan":    expr.OpLessThan,
	"GreaterThan": expr.OpGreaterThan,
}

var goMultinary = map[string]expr.MultinaryOp{
	"Equate":    expr.OpEquate,
	"Summation": expr.OpSummation,
}

// ParseGo reads a Go expression built from calls to the named operations,
// for example
//
//	compute.Add(x, compute.Multiply(2, y))
//
// Identifiers become variables and number literals become constants. Call
// names may carry a package qualifier and are matched in any case style, so
// natural_log and NaturalLog name the same operation. Anything else fails with
// ErrParse.
func ParseGo[T any](num numeric.Arithmetic[T], src string) (expr.Node[T], error) {
	e, err := parser.ParseExpr(src)
	if err != nil {
		return nil, errwrap.Wrapf(ErrParse, "%v", err)
	}
	return convert(num, e, 0)
}

func convert[T any](num numeric.Arithmetic[T], e ast.Expr, depth int) (expr.Node[T], error) {
	if depth > expr.DefaultMaxDepth {
		return nil, errwrap.Wrapf(ErrParse, "nesting deeper than %d", expr.DefaultMaxDepth)
	}

	switch n := e.(type) {
	case *ast.ParenExpr:
		return convert(num, n.X, depth+1)

	case *ast.Ident:
		return expr.Var[T](n.Name), nil

	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			return nil, errwrap.Wrapf(ErrParse, "unsupported literal %s", n.Value)
		}
		v, err := num.Parse(strings.ReplaceAll(n.Value, "_", ""))
		if err != nil {
			return nil, errwrap.Wrapf(ErrParse, "bad number %s", n.Value)
		}
		return expr.Const(v), nil

	case *ast.CallExpr:
		name, err := callName(n.Fun)
		if err != nil {
			return nil, err
		}
		if n.Ellipsis.IsValid() {
			return nil, errwrap.Wrapf(ErrParse, "variadic call to %s", name)
		}
		args := make([]expr.Node[T], len(n.Args))
		for i, a := range n.Args {
			c, err := convert(num, a, depth+1)
			if err != nil {
				return nil, err
			}
			args[i] = c
		}

		if op, ok := goUnary[name]; ok {
			if len(args) != 1 {
				return nil, arity(name, 1, len(args))
			}
			return expr.NewUnary(op, args[0]), nil
		}
		if op, ok := goBinary[name]; ok {
			if len(args) != 2 {
				return nil, arity(name, 2, len(args))
			}
			return expr.NewBinary(op, args[0], args[1]), nil
		}
		if op, ok := goMultinary[name]; ok {
			if len(args) == 0 {
				return nil, errwrap.Wrapf(ErrParse, "%s needs at least one argument", name)
			}
			return expr.NewMultinary(op, args...), nil
		}
		return nil, errwrap.Wrapf(ErrParse, "unsupported call %s", name)
	}

	return nil, errwrap.Wrapf(ErrParse, "unsupported syntax %T", e)
}

// callName returns the normalised operation name of a call target: either a
// bare identifier or a pkg.Name selector.
func callName(fun ast.Expr) (string, error) {
	switch f := fun.(type) {
	case *ast.Ident:
		return strcase.ToCamel(f.Name), nil
	case *ast.SelectorExpr:
		if _, ok := f.X.(*ast.Ident); !ok {
			return "", errwrap.Wrapf(ErrParse, "unsupported call target %T", f.X)
		}
		return strcase.ToCamel(f.Sel.Name), nil
	}
	return "", errwrap.Wrapf(ErrParse, "unsupported call target %T", fun)
}
