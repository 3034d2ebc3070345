// Package cli handles all of the command line parsing. It's the first entry
// point after the real main function.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"

	"github.com/alexflint/go-arg"
	"github.com/spf13/afero"
	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/numeric"
)

// ErrUsage is returned when the command line can't be parsed.
var ErrUsage = errors.New("usage error")

// Data is the set of values the CLI needs from the main function.
type Data struct {
	Program string
	Version string
	Args    []string // os.Args usually

	Stdout io.Writer
	Stderr io.Writer
	Fs     afero.Fs // where config and batch files are read from
}

// CLI is the entry point for using symbolics from the command line.
func CLI(ctx context.Context, data *Data) error {
	// test for sanity
	if data == nil {
		return fmt.Errorf("this CLI was not run correctly")
	}
	if data.Program == "" || data.Version == "" {
		return fmt.Errorf("program was not compiled correctly")
	}
	if data.Fs == nil {
		data.Fs = afero.NewOsFs()
	}

	args := Args{}
	args.version = data.Version // copy this in

	config := arg.Config{
		Program: data.Program,
	}
	parser, err := arg.NewParser(config, &args)
	if err != nil {
		// programming error
		return errwrap.Wrapf(err, "cli config error")
	}
	err = parser.Parse(data.Args[1:])
	if err == arg.ErrHelp {
		parser.WriteHelp(data.Stdout)
		return nil
	}
	if err == arg.ErrVersion {
		fmt.Fprintf(data.Stdout, "%s\n", data.Version) // byon: bring your own newline
		return nil
	}
	if err != nil {
		return errwrap.Wrapf(ErrUsage, "%v", err)
	}

	name := args.Numeric
	if name == "" {
		name = string(numeric.RationalFacade)
	}
	facade, err := numeric.Lookup(name)
	if err != nil {
		return errwrap.Wrapf(ErrUsage, "%v", err)
	}

	logger := log.New(data.Stderr, data.Program+": ", log.LstdFlags)
	logf := func(format string, v ...interface{}) {} // noop
	if args.Verbose {
		logf = logger.Printf
	}

	var ok bool
	switch facade {
	case numeric.FloatFacade:
		ok, err = run[float64](ctx, &args, data, numeric.Float64{}, logf)
	default:
		ok, err = run[*big.Rat](ctx, &args, data, numeric.Rational{}, logf)
	}
	if err != nil || ok {
		return err
	}

	// print help if no subcommands are set
	parser.WriteHelp(data.Stdout)
	return nil
}
