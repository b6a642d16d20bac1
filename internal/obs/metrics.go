package obs

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// SessionMetrics groups the Prometheus collectors updated while a shopping session runs.
type SessionMetrics struct {
	CartLinesAdded         *prometheus.CounterVec
	Orders                 *prometheus.CounterVec
	NotificationsDelivered prometheus.Counter
	MenuCommands           *prometheus.CounterVec
}

// NewSessionMetrics registers and returns session collectors on reg.
func NewSessionMetrics(namespace string, reg prometheus.Registerer) *SessionMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &SessionMetrics{
		CartLinesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_lines_added_total",
			Help:      "Number of lines added to the cart by product.",
		}, []string{"product"}),
		Orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Order finalisation attempts by result.",
		}, []string{"result"}),
		NotificationsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_delivered_total",
			Help:      "Product notifications delivered to subscribers.",
		}),
		MenuCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_commands_total",
			Help:      "Menu commands handled by the interactive loop.",
		}, []string{"command"}),
	}
	mustRegisterCollector(reg, m.CartLinesAdded, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.CartLinesAdded = v
		}
	})
	mustRegisterCollector(reg, m.Orders, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.Orders = v
		}
	})
	mustRegisterCollector(reg, m.NotificationsDelivered, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.NotificationsDelivered = v
		}
	})
	mustRegisterCollector(reg, m.MenuCommands, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.MenuCommands = v
		}
	})
	return m
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register session metric: %w", err))
	}
}

// DumpMetrics writes every gathered sample to the logger. Samples are logged without a
// level so they are emitted whatever OBS_LOG_LEVEL is set to.
func DumpMetrics(logger zerolog.Logger, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			evt := logger.Log().Str("metric", mf.GetName())
			for _, label := range metric.GetLabel() {
				evt = evt.Str(label.GetName(), label.GetValue())
			}
			if c := metric.GetCounter(); c != nil {
				evt = evt.Float64("value", c.GetValue())
			}
			evt.Msg("session_metric")
		}
	}
	return nil
}
