package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wasteSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecopoints_waste_submissions_total",
		Help: "Waste items submitted.",
	})
	pointsCredited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecopoints_points_credited_total",
		Help: "Points credited to accounts.",
	})
	pointsDebited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecopoints_points_debited_total",
		Help: "Points debited from accounts (redemptions and purchases).",
	})
	redemptionRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecopoints_redemption_requests_total",
		Help: "Cash redemptions requested.",
	})
	bookPurchases = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecopoints_book_purchases_total",
		Help: "Books bought with points.",
	})
)
