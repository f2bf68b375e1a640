package metrics

import "github.com/prometheus/client_golang/prometheus"

// SiteMetrics exposes counters for the lead and admin flows. A nil
// receiver is a no-op so wiring stays optional in tests.
type SiteMetrics struct {
	leadsTotal    *prometheus.CounterVec
	dispatchTotal *prometheus.CounterVec
	pollerUpdates prometheus.Counter
	contentSaves  *prometheus.CounterVec
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realty",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead form submissions by outcome",
		}, []string{"status"}),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realty",
			Subsystem: "telegram",
			Name:      "dispatch_total",
			Help:      "Total lead relay attempts by outcome",
		}, []string{"status"}),
		pollerUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "realty",
			Subsystem: "telegram",
			Name:      "poller_updates_total",
			Help:      "Total inbound bot updates processed",
		}),
		contentSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realty",
			Subsystem: "content",
			Name:      "saves_total",
			Help:      "Total admin content saves by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.dispatchTotal, m.pollerUpdates, m.contentSaves)
	return m
}

func (m *SiteMetrics) ObserveLead(status string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(status).Inc()
}

func (m *SiteMetrics) ObserveDispatch(status string) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(status).Inc()
}

func (m *SiteMetrics) ObservePollerUpdate() {
	if m == nil {
		return
	}
	m.pollerUpdates.Inc()
}

func (m *SiteMetrics) ObserveContentSave(status string) {
	if m == nil {
		return
	}
	m.contentSaves.WithLabelValues(status).Inc()
}
