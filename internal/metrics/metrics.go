package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Vendor Metrics
var (
	OffersRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameOffersRendered,
			Help:      HelpTextOffersRendered,
		},
		[]string{LabelKind, LabelDispatch},
	)

	GoldQuoted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameGoldQuoted,
			Help:      HelpTextGoldQuoted,
		},
	)

	StockItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: MetricNamespace,
			Name:      MetricNameStockItems,
			Help:      HelpTextStockItems,
		},
	)
)

// Snapshot gathers the vendor metrics from g and sums each family across labels.
// The result is keyed by the fully qualified metric name.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), MetricNamespace+"_") {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			}
		}
		out[mf.GetName()] = total
	}
	return out, nil
}
