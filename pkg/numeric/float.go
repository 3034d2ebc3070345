package numeric

import (
	"math"
	"strconv"
)

// Float64 is ordinary IEEE-754 double arithmetic.
type Float64 struct{}

var (
	_ Arithmetic[float64]     = Float64{}
	_ Transcendental[float64] = Float64{}
)

func (Float64) Add(a, b float64) float64      { return a + b }
func (Float64) Subtract(a, b float64) float64 { return a - b }
func (Float64) Multiply(a, b float64) float64 { return a * b }
func (Float64) Negate(a float64) float64      { return -a }

func (Float64) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

func (Float64) Power(a, b float64) (float64, error) {
	v := math.Pow(a, b)
	if math.IsNaN(v) {
		return 0, ErrNotRepresentable
	}
	return v, nil
}

func (Float64) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float64) Equal(a, b float64) bool { return a == b }

func (Float64) Sign(a float64) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

func (Float64) IsInteger(a float64) bool {
	return !math.IsInf(a, 0) && a == math.Trunc(a)
}

func (Float64) IsNonNegative(a float64) bool { return a >= 0 }
func (Float64) FromInt64(v int64) float64    { return float64(v) }

func (Float64) Parse(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrSyntax
	}
	return f, nil
}

func (Float64) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (Float64) Sin(a float64) (float64, error) { return finite(math.Sin(a)) }
func (Float64) Cos(a float64) (float64, error) { return finite(math.Cos(a)) }
func (Float64) Tan(a float64) (float64, error) { return finite(math.Tan(a)) }
func (Float64) Exp(a float64) (float64, error) { return finite(math.Exp(a)) }

func (Float64) Log(a float64) (float64, error) {
	if a <= 0 {
		return 0, ErrNotRepresentable
	}
	return finite(math.Log(a))
}

func (Float64) Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, ErrNotRepresentable
	}
	return math.Sqrt(a), nil
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotRepresentable
	}
	return v, nil
}
