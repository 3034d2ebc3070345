package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wildfunctions/symbolics/pkg/engine"
	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/expr"
	"github.com/wildfunctions/symbolics/pkg/numeric"
	"github.com/wildfunctions/symbolics/pkg/parse"
)

// ErrFailures is returned by the check command when a property failed.
var ErrFailures = errors.New("property failures")

// run executes whichever subcommand was chosen. It returns false if there was
// none.
func run[T any](ctx context.Context, args *Args, data *Data, num numeric.Arithmetic[T], logf func(string, ...interface{})) (bool, error) {
	s := expr.New[T](num)
	read := func(text string) (expr.Node[T], error) {
		if args.Go {
			return parse.ParseGo(num, text)
		}
		return parse.Parse(num, text)
	}
	show := func(node expr.Node[T]) error {
		return printTree(data.Stdout, s, node, args.Tree)
	}

	switch {
	case args.SimplifyCmd != nil:
		node, err := read(args.SimplifyCmd.Expr)
		if err != nil {
			return true, err
		}
		logf("simplifying %s", node)
		out, err := s.Simplify(node)
		if err != nil {
			return true, err
		}
		return true, show(out)

	case args.ClassifyCmd != nil:
		node, err := read(args.ClassifyCmd.Expr)
		if err != nil {
			return true, err
		}
		names := engine.Classify(s, node)
		if len(names) == 0 {
			names = []string{"none"}
		}
		fmt.Fprintln(data.Stdout, strings.Join(names, "\n"))
		return true, nil

	case args.IntegrateCmd != nil:
		node, err := read(args.IntegrateCmd.Expr)
		if err != nil {
			return true, err
		}
		logf("integrating %s with respect to %s", node, args.IntegrateCmd.Var)
		out, err := s.Integrate(node, args.IntegrateCmd.Var)
		if err != nil {
			return true, err
		}
		return true, show(out)

	case args.SubstituteCmd != nil:
		node, err := read(args.SubstituteCmd.Expr)
		if err != nil {
			return true, err
		}
		value, err := num.Parse(args.SubstituteCmd.Value)
		if err != nil {
			return true, errwrap.Wrapf(ErrUsage, "bad value %s: %v", args.SubstituteCmd.Value, err)
		}
		out, err := s.Substitute(node, args.SubstituteCmd.Var, value)
		if err != nil {
			return true, err
		}
		if out, err = s.Simplify(out); err != nil {
			return true, err
		}
		return true, show(out)

	case args.EvalCmd != nil:
		node, err := read(args.EvalCmd.Expr)
		if err != nil {
			return true, err
		}
		bindings, err := parseBindings(num, args.EvalCmd.Bind)
		if err != nil {
			return true, err
		}
		value, err := s.Evaluate(node, bindings)
		if err != nil {
			return true, err
		}
		fmt.Fprintln(data.Stdout, num.Format(value))
		return true, nil

	case args.CheckCmd != nil:
		return true, check(ctx, args, data, logf)

	case args.BatchCmd != nil:
		cfg := engine.DefaultConfig()
		if args.Numeric != "" {
			cfg.Numeric = args.Numeric
		}
		cfg.Format = args.BatchCmd.Format
		cfg.Verbose = args.Verbose
		cfg.Logf = logf
		if args.BatchCmd.Workers > 0 {
			cfg.Workers = args.BatchCmd.Workers
		}
		e, err := engine.New(cfg, engine.WithFs(data.Fs))
		if err != nil {
			return true, err
		}
		if err := e.Batch(ctx, args.BatchCmd.File, args.BatchCmd.Op, data.Stdout); err != nil {
			return true, errwrap.Wrapf(err, "%d batch errors", errwrap.Count(err))
		}
		return true, nil
	}

	return false, nil
}

// check runs the property engine. Flags override the config file, which
// overrides the defaults.
func check(ctx context.Context, args *Args, data *Data, logf func(string, ...interface{})) error {
	c := args.CheckCmd
	cfg := engine.DefaultConfig()
	if c.Config != "" {
		var err error
		if cfg, err = engine.LoadConfig(data.Fs, c.Config); err != nil {
			return err
		}
	}
	if args.Numeric != "" {
		cfg.Numeric = args.Numeric
	}
	cfg.Verbose = cfg.Verbose || args.Verbose
	cfg.Logf = logf
	if c.Trees > 0 {
		cfg.Trees = c.Trees
	}
	if c.Pool != "" {
		cfg.Pool = c.Pool
	}
	if len(c.Checks) > 0 {
		cfg.Checks = c.Checks
	}
	if c.MaxDepth > 0 {
		cfg.MaxDepth = c.MaxDepth
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}

	e, err := engine.New(cfg, engine.WithFs(data.Fs))
	if err != nil {
		return err
	}
	report, err := e.Run(ctx)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "json":
		if err := engine.WriteJSON(data.Stdout, report); err != nil {
			return errwrap.Wrapf(err, "error writing JSON")
		}
	default:
		engine.WriteText(data.Stdout, report)
	}
	if n := len(report.Failures); n > 0 {
		return errwrap.Wrapf(ErrFailures, "%d checks failed (seed %d)", n, report.Seed)
	}
	return nil
}

// parseBindings reads name=value pairs.
func parseBindings[T any](num numeric.Arithmetic[T], binds []string) (map[string]T, error) {
	bindings := make(map[string]T, len(binds))
	for _, b := range binds {
		name, text, found := strings.Cut(b, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, errwrap.Wrapf(ErrUsage, "binding %q is not name=value", b)
		}
		value, err := num.Parse(strings.TrimSpace(text))
		if err != nil {
			return nil, errwrap.Wrapf(ErrUsage, "binding %s: %v", name, err)
		}
		bindings[name] = value
	}
	return bindings, nil
}

func printTree[T any](w io.Writer, s *expr.Symbolics[T], node expr.Node[T], tree bool) error {
	if !tree {
		_, err := fmt.Fprintln(w, node)
		return err
	}
	data, err := s.EncodeYAML(node)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
