package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"method", "path", "status"},
	)

	// PaymentVerifications counts verification outcomes.
	PaymentVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_verifications_total",
			Help: "Payment verification attempts by result",
		},
		[]string{"result"}, // paid, failed, conflict
	)

	// CouponRedemptions counts successful coupon redemptions.
	CouponRedemptions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coupon_redemptions_total",
			Help: "Coupons redeemed at payment verification",
		},
	)

	// DownloadGrants counts entitlement decisions.
	DownloadGrants = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "download_grants_total",
			Help: "Download grant attempts by result",
		},
		[]string{"result"}, // granted, denied_limit, denied_expired, denied_unpurchased
	)
)
