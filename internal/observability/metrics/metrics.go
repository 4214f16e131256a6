package metrics

import "github.com/prometheus/client_golang/prometheus"

// SiteMetrics exposes counters/gauges for the storefront API.
type SiteMetrics struct {
	sessionsStarted    prometheus.Counter
	sessionsActive     prometheus.Gauge
	bookingsConfirmed  prometheus.Counter
	validationFailures prometheus.Counter
	formsAccepted      *prometheus.CounterVec
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "probikes",
			Subsystem: "booking",
			Name:      "sessions_started_total",
			Help:      "Total booking wizard sessions created",
		}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "probikes",
			Subsystem: "booking",
			Name:      "sessions_active",
			Help:      "Booking wizard sessions currently held in memory",
		}),
		bookingsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "probikes",
			Subsystem: "booking",
			Name:      "confirmed_total",
			Help:      "Total simulated booking confirmations",
		}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "probikes",
			Subsystem: "booking",
			Name:      "validation_failures_total",
			Help:      "Total contact detail submissions rejected by validation",
		}),
		formsAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "probikes",
			Subsystem: "site",
			Name:      "forms_accepted_total",
			Help:      "Total contact and newsletter form submissions accepted",
		}, []string{"form"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsStarted, m.sessionsActive, m.bookingsConfirmed, m.validationFailures, m.formsAccepted)
	return m
}

func (m *SiteMetrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

func (m *SiteMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.sessionsActive.Set(float64(n))
}

func (m *SiteMetrics) BookingConfirmed() {
	if m == nil {
		return
	}
	m.bookingsConfirmed.Inc()
}

func (m *SiteMetrics) ValidationFailed() {
	if m == nil {
		return
	}
	m.validationFailures.Inc()
}

func (m *SiteMetrics) FormAccepted(form string) {
	if m == nil {
		return
	}
	m.formsAccepted.WithLabelValues(form).Inc()
}
