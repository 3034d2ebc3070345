package engine

import (
	"context"
	"io"
	"math/big"
	"strings"

	"github.com/spf13/afero"
	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/expr"
	"github.com/wildfunctions/symbolics/pkg/numeric"
	"github.com/wildfunctions/symbolics/pkg/parse"
)

// batchOp is a parsed batch operation.
type batchOp struct {
	kind     string // simplify, classify or integrate
	variable string // for integrate
}

func parseOp(op string) (batchOp, error) {
	switch {
	case op == "simplify" || op == "classify":
		return batchOp{kind: op}, nil
	case strings.HasPrefix(op, "integrate:"):
		v := strings.TrimPrefix(op, "integrate:")
		if v == "" {
			return batchOp{}, errwrap.Wrapf(ErrUnknownOp, "integrate needs a variable, eg: integrate:x")
		}
		return batchOp{kind: "integrate", variable: v}, nil
	}
	return batchOp{}, errwrap.Wrapf(ErrUnknownOp, "%s (available: simplify, classify, integrate:<var>)", op)
}

// Batch reads prefix expressions from path, one per line, applies op to each
// and writes the results to w in input order. Blank lines and lines starting
// with # are skipped. The op is simplify, classify or integrate:<var>. A line
// that fails is reported in the output and its error is also collected into
// the returned error, so one bad line does not stop the rest.
func (e *Engine) Batch(ctx context.Context, path, op string, w io.Writer) error {
	bop, err := parseOp(op)
	if err != nil {
		return err
	}
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return errwrap.Wrapf(err, "can't read batch input %s", path)
	}

	var lines []BatchLine
	for i, text := range strings.Split(string(data), "\n") {
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, BatchLine{Line: i + 1, Input: text})
	}
	e.logf("batch %s: %d expressions from %s", op, len(lines), path)

	var errs []error
	switch e.facade {
	case numeric.FloatFacade:
		errs = batch[float64](ctx, e, numeric.Float64{}, bop, lines)
	default:
		errs = batch[*big.Rat](ctx, e, numeric.Rational{}, bop, lines)
	}

	var reterr error
	for i, l := range lines {
		if e.cfg.Format == "json" {
			if err := WriteJSON(w, l); err != nil {
				return errwrap.Wrapf(err, "can't write output")
			}
		} else {
			WriteBatchText(w, l)
		}
		if errs[i] != nil {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(errs[i], "line %d", l.Line))
		}
	}
	if err := ctx.Err(); err != nil {
		return errwrap.Append(reterr, err)
	}
	return reterr
}

// batch fills in the output of every line and returns the per-line errors.
func batch[T any](ctx context.Context, e *Engine, num numeric.Arithmetic[T], op batchOp, lines []BatchLine) []error {
	s := expr.New[T](num)
	errs := make([]error, len(lines))
	e.fanOut(ctx, len(lines), func(idx int) {
		out, err := apply(s, op, lines[idx].Input)
		result := "ok"
		if err != nil {
			result = "error"
			lines[idx].Error = err.Error()
			errs[idx] = err
		} else {
			lines[idx].Output = out
		}
		e.metrics.batchLinesTotal.WithLabelValues(op.kind, result).Inc()
	})
	return errs
}

func apply[T any](s *expr.Symbolics[T], op batchOp, input string) (string, error) {
	node, err := parse.Parse(s.Numeric(), input)
	if err != nil {
		return "", err
	}
	switch op.kind {
	case "simplify":
		out, err := s.Simplify(node)
		if err != nil {
			return "", err
		}
		return out.String(), nil

	case "classify":
		names := Classify(s, node)
		if len(names) == 0 {
			return "none", nil
		}
		return strings.Join(names, ", "), nil

	case "integrate":
		out, err := s.Integrate(node, op.variable)
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}
	return "", errwrap.Wrapf(ErrUnknownOp, "%s", op.kind)
}
