package person

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "namegen"

//nolint:gochecknoglobals
var (
	derivationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "patronymic",
		Name:      "derivations_total",
		Help:      "Patronymic derivations by name ending.",
	}, []string{"ending"})

	unclassifiedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "patronymic",
		Name:      "unclassified_total",
		Help:      "Names returned without a patronymic suffix because no rule covers their ending.",
	})

	personsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "persons_generated_total",
		Help:      "Generated fictitious persons.",
	})
)
