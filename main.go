// Symbolics is a small computer algebra tool: it simplifies, classifies,
// integrates and evaluates expression trees, and can check its own algebraic
// properties against random trees.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/wildfunctions/symbolics/pkg/cli"
)

// set at compile time
var (
	program = "symbolics"
	version = "0.0.1"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	data := &cli.Data{
		Program: program,
		Version: version,
		Args:    os.Args,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Fs:      afero.NewOsFs(),
	}
	if err := cli.CLI(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
