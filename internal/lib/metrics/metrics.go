// Package metrics объявляет счетчики Prometheus для ключевых операций
// движка монетизации и модерации. Сами метрики отдаются через /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationsSent количество отправленных уведомлений по категориям.
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streamora_notifications_sent_total",
		Help: "Total notifications stored, by category.",
	}, []string{"category"})

	// StrikesIssued количество выданных страйков по уровню.
	StrikesIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streamora_strikes_issued_total",
		Help: "Total strikes issued, by level.",
	}, []string{"level"})

	// PayoutsResolved решения по заявкам на выплату.
	PayoutsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streamora_payouts_resolved_total",
		Help: "Total payout requests resolved, by decision.",
	}, []string{"decision"})

	// MonetizationResolved решения по заявкам на монетизацию.
	MonetizationResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streamora_monetization_resolved_total",
		Help: "Total monetization requests resolved, by decision.",
	}, []string{"decision"})
)
