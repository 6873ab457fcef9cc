// Package monetization реализует движок монетизации: статистику создателей,
// проверку права на рекламу, заявки на монетизацию и выплаты, админские
// решения по ним и управление флагами создателя.
package monetization

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/streamora/internal/lib/metrics"
	"github.com/magabrotheeeer/streamora/internal/models"
)

// Пороговые значения движка монетизации.
const (
	// MinSubscribers минимум подписчиков для права на рекламу.
	MinSubscribers = 100
	// MinViews справочный порог просмотров, в решении о праве не участвует.
	MinViews = 1000
	// MinPayout минимальный накопленный доход для заявки на выплату.
	MinPayout = 100.0
)

// Ошибки уровня бизнес-логики монетизации.
var (
	ErrNotEligible        = errors.New("creator is not eligible for monetization")
	ErrInvalidPayPalEmail = errors.New("paypal email is invalid")
	ErrMissingAdPin       = errors.New("ad pin is required")
	ErrBelowMinimumPayout = errors.New("total earnings below minimum payout")
	ErrNoPayPalEmail      = errors.New("paypal email is not set")
	ErrRequestNotFound    = errors.New("request not found")
)

// StatsRepository доступ к статистике создателей.
type StatsRepository interface {
	Get(ctx context.Context, username string) models.CreatorStats
	All(ctx context.Context) map[string]models.CreatorStats
	Save(ctx context.Context, stats models.CreatorStats) error
}

// MonetizationRequestsRepository доступ к заявкам на монетизацию.
type MonetizationRequestsRepository interface {
	List(ctx context.Context) []models.MonetizationRequest
	Upsert(ctx context.Context, req models.MonetizationRequest) error
	SetStatus(ctx context.Context, id string, status models.RequestStatus) (*models.MonetizationRequest, error)
}

// PayoutRequestsRepository доступ к заявкам на выплату.
type PayoutRequestsRepository interface {
	List(ctx context.Context) []models.PayoutRequest
	Add(ctx context.Context, req models.PayoutRequest) error
	SetStatus(ctx context.Context, id string, status models.RequestStatus) (*models.PayoutRequest, error)
}

// Notifier отправка системных уведомлений пользователям.
type Notifier interface {
	Notify(ctx context.Context, target string, category models.NotificationCategory, message string) error
}

// Service движок монетизации.
type Service struct {
	stats    StatsRepository
	requests MonetizationRequestsRepository
	payouts  PayoutRequestsRepository
	notifier Notifier
}

// New создает движок монетизации.
func New(stats StatsRepository, requests MonetizationRequestsRepository,
	payouts PayoutRequestsRepository, notifier Notifier) *Service {
	return &Service{
		stats:    stats,
		requests: requests,
		payouts:  payouts,
		notifier: notifier,
	}
}

func newID() string { return uuid.NewString() }

func now() time.Time { return time.Now().UTC() }

// EligibilityReport развернутый ответ проверки права на монетизацию.
// MeetsViews справочный показатель: на итог не влияет.
type EligibilityReport struct {
	SubscriberCount  int64 `json:"subscriberCount"`
	TotalViews       int64 `json:"totalViews"`
	MeetsSubscribers bool  `json:"meetsSubscribers"`
	MeetsViews       bool  `json:"meetsViews"`
	Approved         bool  `json:"approved"`
	Eligible         bool  `json:"eligible"`
}

// Eligibility собирает отчет о праве создателя на монетизацию.
// Право дает либо порог подписчиков, либо прямое одобрение админа.
func (s *Service) Eligibility(ctx context.Context, username string) EligibilityReport {
	stats := s.stats.Get(ctx, username)
	meetsSubscribers := stats.SubscriberCount >= MinSubscribers
	return EligibilityReport{
		SubscriberCount:  stats.SubscriberCount,
		TotalViews:       stats.TotalViews,
		MeetsSubscribers: meetsSubscribers,
		MeetsViews:       stats.TotalViews >= MinViews,
		Approved:         stats.MonetizationApproved,
		Eligible:         meetsSubscribers || stats.MonetizationApproved,
	}
}

// Stats возвращает статистику создателя, создавая дефолтную запись
// при первом обращении.
func (s *Service) Stats(ctx context.Context, username string) models.CreatorStats {
	return s.stats.Get(ctx, username)
}

// AllStats возвращает статистику всех создателей для админской панели.
func (s *Service) AllStats(ctx context.Context) map[string]models.CreatorStats {
	return s.stats.All(ctx)
}

// UpdateStats обновляет числовые показатели создателя из админского редактора.
func (s *Service) UpdateStats(ctx context.Context, username string, req models.DummyStatsUpdate) (models.CreatorStats, error) {
	const op = "services.monetization.UpdateStats"

	stats := s.stats.Get(ctx, username)
	stats.TotalViews = req.TotalViews
	stats.SubscriberCount = req.SubscriberCount
	stats.EstimatedEarnings = req.EstimatedEarnings
	stats.TotalEarnings = req.TotalEarnings
	if err := s.stats.Save(ctx, stats); err != nil {
		return models.CreatorStats{}, fmt.Errorf("%s: %w", op, err)
	}
	return stats, nil
}

// Request создает или перезаписывает заявку создателя на монетизацию.
// Повторная подача заменяет предыдущую заявку, а не добавляет новую.
func (s *Service) Request(ctx context.Context, session models.Session) (models.MonetizationRequest, error) {
	const op = "services.monetization.Request"

	req := models.MonetizationRequest{
		ID:          newID(),
		Username:    session.Username,
		Name:        session.Name,
		RequestedAt: now(),
		Status:      models.StatusPending,
	}
	if err := s.requests.Upsert(ctx, req); err != nil {
		return models.MonetizationRequest{}, fmt.Errorf("%s: %w", op, err)
	}

	stats := s.stats.Get(ctx, session.Username)
	stats.MonetizationRequested = true
	if stats.Name == stats.Username && session.Name != "" {
		stats.Name = session.Name
	}
	if err := s.stats.Save(ctx, stats); err != nil {
		return models.MonetizationRequest{}, fmt.Errorf("%s: %w", op, err)
	}
	return req, nil
}

// Requests возвращает все заявки на монетизацию для админской панели.
func (s *Service) Requests(ctx context.Context) []models.MonetizationRequest {
	return s.requests.List(ctx)
}

// Resolve фиксирует решение админа по заявке на монетизацию.
// Одобрение включает monetizationApproved у создателя; в обоих случаях
// создателю отправляется уведомление. Для неизвестного id возвращает
// ErrRequestNotFound.
func (s *Service) Resolve(ctx context.Context, id string, approved bool) (*models.MonetizationRequest, error) {
	const op = "services.monetization.Resolve"

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}
	req, err := s.requests.SetStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	message := "Your monetization request has been reviewed and was not approved at this time. You may reapply after growing your channel."
	if approved {
		stats := s.stats.Get(ctx, req.Username)
		stats.MonetizationApproved = true
		if err := s.stats.Save(ctx, stats); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		message = "🎉 Your monetization request has been approved! Complete activation in the Monetization section."
	}
	if err := s.notifier.Notify(ctx, req.Username, models.CategoryMonetization, message); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.MonetizationResolved.WithLabelValues(string(status)).Inc()
	return req, nil
}

// Activate включает монетизацию создателю, прошедшему проверку права.
// Сохраняет платежные реквизиты и поднимает флаги isMonetized и adEligible.
func (s *Service) Activate(ctx context.Context, username string, req models.DummyActivate) (models.CreatorStats, error) {
	const op = "services.monetization.Activate"

	report := s.Eligibility(ctx, username)
	if !report.Eligible {
		return models.CreatorStats{}, ErrNotEligible
	}
	if !strings.Contains(req.PayPalEmail, "@") {
		return models.CreatorStats{}, ErrInvalidPayPalEmail
	}
	if req.AdPin == "" {
		return models.CreatorStats{}, ErrMissingAdPin
	}

	stats := s.stats.Get(ctx, username)
	stats.IsMonetized = true
	stats.AdEligible = true
	stats.PayPalEmail = req.PayPalEmail
	stats.AdPin = req.AdPin
	if err := s.stats.Save(ctx, stats); err != nil {
		return models.CreatorStats{}, fmt.Errorf("%s: %w", op, err)
	}
	return stats, nil
}

// CPMRate возвращает ставку за тысячу показов для ранга.
func CPMRate(rank models.CPMRank) float64 {
	switch rank {
	case models.RankSilver:
		return 5
	case models.RankGold:
		return 8
	case models.RankPremium:
		return 10
	default:
		return 3
	}
}

// RevenueShare возвращает долю создателя в рекламном доходе для плана.
func RevenueShare(plan models.MonetizationPlan) float64 {
	if plan == models.PlanPremium {
		return 0.70
	}
	return 0.55
}

// RequestPayout создает заявку на выплату накопленного дохода.
// Сумма фиксируется в момент подачи и не пересчитывается при изменении
// totalEarnings.
func (s *Service) RequestPayout(ctx context.Context, session models.Session) (models.PayoutRequest, error) {
	const op = "services.monetization.RequestPayout"

	stats := s.stats.Get(ctx, session.Username)
	if stats.TotalEarnings < MinPayout {
		return models.PayoutRequest{}, ErrBelowMinimumPayout
	}
	if stats.PayPalEmail == "" {
		return models.PayoutRequest{}, ErrNoPayPalEmail
	}

	req := models.PayoutRequest{
		ID:          newID(),
		Username:    session.Username,
		Name:        session.Name,
		Amount:      stats.TotalEarnings,
		PayPalEmail: stats.PayPalEmail,
		RequestedAt: now(),
		Status:      models.StatusPending,
	}
	if err := s.payouts.Add(ctx, req); err != nil {
		return models.PayoutRequest{}, fmt.Errorf("%s: %w", op, err)
	}
	return req, nil
}

// Payouts возвращает все заявки на выплату для админской панели.
func (s *Service) Payouts(ctx context.Context) []models.PayoutRequest {
	return s.payouts.List(ctx)
}

// ResolvePayout фиксирует решение админа по заявке на выплату.
// Одобренная сумма списывается с totalEarnings создателя, но не ниже нуля.
func (s *Service) ResolvePayout(ctx context.Context, id string, approved bool) (*models.PayoutRequest, error) {
	const op = "services.monetization.ResolvePayout"

	status := models.StatusRejected
	if approved {
		status = models.StatusApproved
	}
	req, err := s.payouts.SetStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	var message string
	if approved {
		stats := s.stats.Get(ctx, req.Username)
		stats.TotalEarnings -= req.Amount
		if stats.TotalEarnings < 0 {
			stats.TotalEarnings = 0
		}
		if err := s.stats.Save(ctx, stats); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		message = fmt.Sprintf("✅ Your payout of $%.2f has been approved and will be sent to your PayPal within 2-5 business days.", req.Amount)
	} else {
		message = fmt.Sprintf("Your payout request of $%.2f was not approved at this time. Please contact support for more information.", req.Amount)
	}
	if err := s.notifier.Notify(ctx, req.Username, models.CategoryPayment, message); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.PayoutsResolved.WithLabelValues(string(status)).Inc()
	return req, nil
}

// SetCreatorFlags частично обновляет админские флаги создателя.
// На включение премиума и доверенного статуса создателю уходит поздравление;
// повторное выставление уже включенного флага уведомлений не порождает.
func (s *Service) SetCreatorFlags(ctx context.Context, username string, req models.DummyCreatorFlags) (models.CreatorStats, error) {
	const op = "services.monetization.SetCreatorFlags"

	stats := s.stats.Get(ctx, username)
	wasPremium := stats.IsPremium
	wasTrusted := stats.IsTrusted

	if req.CPMRank != nil {
		stats.CPMRank = models.CPMRank(*req.CPMRank)
	}
	if req.MonetizationPlan != nil {
		stats.MonetizationPlan = models.MonetizationPlan(*req.MonetizationPlan)
	}
	if req.IsMonetized != nil {
		stats.IsMonetized = *req.IsMonetized
	}
	if req.IsLifetimePremium != nil {
		stats.IsLifetimePremium = *req.IsLifetimePremium
	}
	if req.IsPremium != nil {
		stats.IsPremium = *req.IsPremium
	}
	if req.IsTrusted != nil {
		stats.IsTrusted = *req.IsTrusted
	}
	if req.MonetizationApproved != nil {
		stats.MonetizationApproved = *req.MonetizationApproved
	}

	if err := s.stats.Save(ctx, stats); err != nil {
		return models.CreatorStats{}, fmt.Errorf("%s: %w", op, err)
	}

	if !wasPremium && stats.IsPremium {
		kind := "Premium"
		if stats.IsLifetimePremium {
			kind = "Lifetime Premium"
		}
		message := fmt.Sprintf("🌟 Congratulations! You have been granted %s status by the admin.", kind)
		if err := s.notifier.Notify(ctx, username, models.CategoryMonetization, message); err != nil {
			return models.CreatorStats{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	if !wasTrusted && stats.IsTrusted {
		if err := s.notifier.Notify(ctx, username, models.CategoryMonetization,
			"✅ You have been marked as a Trusted Creator on Streamora!"); err != nil {
			return models.CreatorStats{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return stats, nil
}
