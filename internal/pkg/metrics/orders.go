package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "orderdesk"

// OrderMetrics counts lifecycle events of orders.
type OrderMetrics struct {
	numbersIssued   *prometheus.CounterVec
	ordersCreated   *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	draftsGenerated prometheus.Counter
}

// NewOrderMetrics registers the order collectors on reg. A nil reg yields a no-op recorder.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	m := &OrderMetrics{
		numbersIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_numbers_issued_total",
			Help:      "Order numbers handed out by the sequence generator.",
		}, []string{"prefix"}),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders persisted, by entry status.",
		}, []string{"status"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_transitions_total",
			Help:      "Committed order status transitions, by target status.",
		}, []string{"status"}),
		draftsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draft_orders_generated_total",
			Help:      "Draft orders created by the daily generator.",
		}),
	}
	reg.MustRegister(m.numbersIssued, m.ordersCreated, m.transitions, m.draftsGenerated)
	return m
}

func (m *OrderMetrics) IncNumberIssued(prefix string) {
	if m == nil || m.numbersIssued == nil {
		return
	}
	m.numbersIssued.WithLabelValues(normalizeLabel(prefix)).Inc()
}

func (m *OrderMetrics) IncOrderCreated(status string) {
	if m == nil || m.ordersCreated == nil {
		return
	}
	m.ordersCreated.WithLabelValues(normalizeLabel(status)).Inc()
}

func (m *OrderMetrics) IncTransition(status string) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(normalizeLabel(status)).Inc()
}

func (m *OrderMetrics) AddDraftsGenerated(n int) {
	if m == nil || m.draftsGenerated == nil || n <= 0 {
		return
	}
	m.draftsGenerated.Add(float64(n))
}
