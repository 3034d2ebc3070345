// Package parse builds expression trees from text. Parse reads the prefix
// grammar that expr.Prefix writes, and ParseGo reads a restricted Go
// expression made of calls to the named arithmetic operations.
package parse

import (
	"strings"

	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/expr"
	"github.com/wildfunctions/symbolics/pkg/numeric"
)

// Parse reads the prefix grammar:
//
//	add(multiply(2, [x]), negate([y]))
//
// Constants are bare numerals made of digits and at most one decimal point.
// Variables are written [name]. Operations are token(arg, ...) where the token
// names a unary, binary or multinary operation.
func Parse[T any](num numeric.Arithmetic[T], text string) (expr.Node[T], error) {
	p := &prefixParser[T]{
		num:       num,
		unary:     expr.UnaryTokens(),
		binary:    expr.BinaryTokens(),
		multinary: expr.MultinaryTokens(),
	}
	return p.parse(text, 0)
}

type prefixParser[T any] struct {
	num       numeric.Arithmetic[T]
	unary     map[string]expr.UnaryOp
	binary    map[string]expr.BinaryOp
	multinary map[string]expr.MultinaryOp
}

func (p *prefixParser[T]) parse(text string, depth int) (expr.Node[T], error) {
	if depth > expr.DefaultMaxDepth {
		return nil, errwrap.Wrapf(ErrParse, "nesting deeper than %d", expr.DefaultMaxDepth)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errwrap.Wrapf(ErrParse, "empty expression")
	}

	if strings.HasPrefix(text, "[") {
		name := strings.TrimSuffix(text[1:], "]")
		if len(name) != len(text)-2 || !validName(name) {
			return nil, errwrap.Wrapf(ErrParse, "bad variable %q", text)
		}
		return expr.Var[T](name), nil
	}

	if isNumeral(text) {
		v, err := p.num.Parse(text)
		if err != nil {
			return nil, errwrap.Wrapf(ErrParse, "bad numeral %q", text)
		}
		return expr.Const(v), nil
	}

	open := strings.IndexByte(text, '(')
	if open <= 0 || !strings.HasSuffix(text, ")") {
		return nil, errwrap.Wrapf(ErrParse, "unexpected %q", text)
	}
	token := strings.TrimSpace(text[:open])
	args, err := splitArgs(text[open+1 : len(text)-1])
	if err != nil {
		return nil, errwrap.Wrapf(err, "in %s", token)
	}

	operands := make([]expr.Node[T], len(args))
	for i, a := range args {
		n, err := p.parse(a, depth+1)
		if err != nil {
			return nil, err
		}
		operands[i] = n
	}

	if op, ok := p.unary[token]; ok {
		if len(operands) != 1 {
			return nil, arity(token, 1, len(operands))
		}
		return expr.NewUnary(op, operands[0]), nil
	}
	if op, ok := p.binary[token]; ok {
		if len(operands) != 2 {
			return nil, arity(token, 2, len(operands))
		}
		return expr.NewBinary(op, operands[0], operands[1]), nil
	}
	if op, ok := p.multinary[token]; ok {
		if len(operands) == 0 {
			return nil, errwrap.Wrapf(ErrParse, "%s needs at least one argument", token)
		}
		return expr.NewMultinary(op, operands...), nil
	}
	return nil, errwrap.Wrapf(ErrParse, "unknown token %q", token)
}

func arity(token string, want, got int) error {
	return errwrap.Wrapf(ErrParse, "%s takes %d arguments, got %d", token, want, got)
}

// splitArgs splits an argument list on the commas that are not nested inside
// parentheses or brackets. An empty list yields no arguments.
func splitArgs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var (
		args  []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, errwrap.Wrapf(ErrParse, "unbalanced %q", r)
			}
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errwrap.Wrapf(ErrParse, "unbalanced parentheses")
	}
	return append(args, s[start:]), nil
}

// isNumeral accepts digits with at most one decimal point.
func isNumeral(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "[](), \t\n")
}
