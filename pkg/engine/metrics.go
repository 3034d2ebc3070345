package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the counters an engine reports to.
type metrics struct {
	checksTotal     *prometheus.CounterVec // results of property checks
	batchLinesTotal *prometheus.CounterVec // results of batch lines
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	checksTotal, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "symbolics_checks_total",
		Help: "Number of property checks that have run.",
	},
		// check: name of the property
		// result: pass, fail or skip
		[]string{"check", "result"},
	)
	if err != nil {
		return nil, err
	}

	batchLinesTotal, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "symbolics_batch_lines_total",
		Help: "Number of batch input lines that have been processed.",
	},
		// op: simplify, classify or integrate
		// result: ok or error
		[]string{"op", "result"},
	)
	if err != nil {
		return nil, err
	}

	return &metrics{
		checksTotal:     checksTotal,
		batchLinesTotal: batchLinesTotal,
	}, nil
}

// registerCounterVec registers a new counter vector, or hands back the one a
// previous engine already registered under the same name.
func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels []string) (*prometheus.CounterVec, error) {
	vec := prometheus.NewCounterVec(opts, labels)
	if err := reg.Register(vec); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		return existing, nil
	}
	return vec, nil
}
