package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quotesPriced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bagpresto_quotes_priced_total",
		Help: "Number of wizard quotes priced",
	})

	campaignsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bagpresto_campaigns_submitted_total",
		Help: "Number of campaigns persisted from a quote",
	})

	// statusTransitions is labelled by target status and whether the
	// administrative override was used.
	statusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bagpresto_campaign_status_transitions_total",
			Help: "Campaign status changes applied",
		},
		[]string{"to", "forced"},
	)

	registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bagpresto_registrations_total",
			Help: "Accounts registered through the lead forms",
		},
		[]string{"user_type"},
	)
)
