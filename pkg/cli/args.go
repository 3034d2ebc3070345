package cli

// Args is the CLI parsing structure and type of the parsed result. This
// particular struct is the top-most one.
type Args struct {
	Numeric string `arg:"--numeric" help:"number type: rational (default) or float"`
	Go      bool   `arg:"--go" help:"read EXPR as a Go call expression instead of the prefix grammar"`
	Tree    bool   `arg:"--tree" help:"print result trees as YAML"`
	Verbose bool   `arg:"-v,--verbose" help:"log progress to stderr"`

	SimplifyCmd   *ExprArgs       `arg:"subcommand:simplify" help:"simplify an expression"`
	ClassifyCmd   *ExprArgs       `arg:"subcommand:classify" help:"list the shapes an expression matches"`
	IntegrateCmd  *IntegrateArgs  `arg:"subcommand:integrate" help:"integrate an expression"`
	SubstituteCmd *SubstituteArgs `arg:"subcommand:substitute" help:"replace a variable with a value and simplify"`
	EvalCmd       *EvalArgs       `arg:"subcommand:eval" help:"evaluate an expression"`
	CheckCmd      *CheckArgs      `arg:"subcommand:check" help:"check engine properties against random trees"`
	BatchCmd      *BatchArgs      `arg:"subcommand:batch" help:"apply an operation to every expression in a file"`

	// version is a private handle for our version string.
	version string `arg:"-"` // ignored from parsing
}

// Version returns the version string. Implementing this signature is part of
// the API for the go-arg library.
func (obj *Args) Version() string {
	return obj.version
}

// Description returns a short summary shown above the help text.
func (obj *Args) Description() string {
	return "symbolic algebra over exact rationals or floats"
}

// ExprArgs is the CLI parsing structure for commands that take only an
// expression.
type ExprArgs struct {
	Expr string `arg:"positional,required" help:"expression to read"`
}

// IntegrateArgs is the CLI parsing structure for the integrate command.
type IntegrateArgs struct {
	Expr string `arg:"positional,required" help:"expression to integrate"`
	Var  string `arg:"--var" default:"x" help:"variable of integration"`
}

// SubstituteArgs is the CLI parsing structure for the substitute command.
type SubstituteArgs struct {
	Expr  string `arg:"positional,required" help:"expression to substitute into"`
	Var   string `arg:"--var,required" help:"variable to replace"`
	Value string `arg:"--value,required" help:"value to put in its place"`
}

// EvalArgs is the CLI parsing structure for the eval command.
type EvalArgs struct {
	Expr string   `arg:"positional,required" help:"expression to evaluate"`
	Bind []string `arg:"--bind,separate" help:"variable binding, eg: x=2"`
}

// CheckArgs is the CLI parsing structure for the check command. Flags that
// are left at their zero value keep what the config file or the defaults say.
type CheckArgs struct {
	Config   string   `arg:"--config" help:"YAML config file"`
	Trees    int      `arg:"--trees" help:"number of random trees"`
	Pool     string   `arg:"--pool" help:"tree pool"`
	Checks   []string `arg:"--checks" help:"checks to run"`
	MaxDepth int      `arg:"--maxdepth" help:"max tree depth"`
	Seed     int64    `arg:"--seed" help:"random seed (0 = random)"`
	Workers  int      `arg:"--workers" help:"number of parallel workers"`
	Format   string   `arg:"--format" help:"output format (text, json)"`
}

// BatchArgs is the CLI parsing structure for the batch command.
type BatchArgs struct {
	File    string `arg:"positional,required" help:"file of prefix expressions, one per line"`
	Op      string `arg:"--op" default:"simplify" help:"simplify, classify or integrate:<var>"`
	Format  string `arg:"--format" default:"text" help:"output format (text, json)"`
	Workers int    `arg:"--workers" help:"number of parallel workers"`
}
