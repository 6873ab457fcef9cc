package monetization

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/streamora/internal/models"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Get(ctx context.Context, username string) models.CreatorStats {
	args := m.Called(ctx, username)
	return args.Get(0).(models.CreatorStats)
}

func (m *MockStatsRepository) All(ctx context.Context) map[string]models.CreatorStats {
	args := m.Called(ctx)
	return args.Get(0).(map[string]models.CreatorStats)
}

func (m *MockStatsRepository) Save(ctx context.Context, stats models.CreatorStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

type MockMonetizationRequests struct {
	mock.Mock
}

func (m *MockMonetizationRequests) List(ctx context.Context) []models.MonetizationRequest {
	args := m.Called(ctx)
	return args.Get(0).([]models.MonetizationRequest)
}

func (m *MockMonetizationRequests) Upsert(ctx context.Context, req models.MonetizationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockMonetizationRequests) SetStatus(ctx context.Context, id string, status models.RequestStatus) (*models.MonetizationRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MonetizationRequest), args.Error(1)
}

type MockPayoutRequests struct {
	mock.Mock
}

func (m *MockPayoutRequests) List(ctx context.Context) []models.PayoutRequest {
	args := m.Called(ctx)
	return args.Get(0).([]models.PayoutRequest)
}

func (m *MockPayoutRequests) Add(ctx context.Context, req models.PayoutRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPayoutRequests) SetStatus(ctx context.Context, id string, status models.RequestStatus) (*models.PayoutRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PayoutRequest), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, target string, category models.NotificationCategory, message string) error {
	args := m.Called(ctx, target, category, message)
	return args.Error(0)
}

func TestEligibility(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name         string
		stats        models.CreatorStats
		wantEligible bool
	}{
		{
			name:         "enough subscribers",
			stats:        models.CreatorStats{SubscriberCount: 100},
			wantEligible: true,
		},
		{
			name:         "below threshold but approved by admin",
			stats:        models.CreatorStats{SubscriberCount: 5, MonetizationApproved: true},
			wantEligible: true,
		},
		{
			name:         "views alone are not enough",
			stats:        models.CreatorStats{SubscriberCount: 99, TotalViews: 50000},
			wantEligible: false,
		},
		{
			name:         "fresh creator",
			stats:        models.CreatorStats{},
			wantEligible: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := new(MockStatsRepository)
			stats.On("Get", ctx, "creator1").Return(tt.stats)

			svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), new(MockNotifier))
			report := svc.Eligibility(ctx, "creator1")
			assert.Equal(t, tt.wantEligible, report.Eligible)
		})
	}
}

func TestActivate(t *testing.T) {
	ctx := context.Background()
	eligible := models.CreatorStats{Username: "creator1", SubscriberCount: 250}

	t.Run("success", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(eligible)
		stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
			return s.IsMonetized && s.AdEligible && s.PayPalEmail == "creator@mail.com" && s.AdPin == "1234"
		})).Return(nil)

		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), new(MockNotifier))
		updated, err := svc.Activate(ctx, "creator1", models.DummyActivate{
			PayPalEmail: "creator@mail.com",
			AdPin:       "1234",
		})
		require.NoError(t, err)
		assert.True(t, updated.IsMonetized)
		stats.AssertExpectations(t)
	})

	t.Run("not eligible", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{SubscriberCount: 3})

		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), new(MockNotifier))
		_, err := svc.Activate(ctx, "creator1", models.DummyActivate{
			PayPalEmail: "creator@mail.com",
			AdPin:       "1234",
		})
		assert.ErrorIs(t, err, ErrNotEligible)
	})

	t.Run("invalid paypal email", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(eligible)

		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), new(MockNotifier))
		_, err := svc.Activate(ctx, "creator1", models.DummyActivate{
			PayPalEmail: "not-an-email",
			AdPin:       "1234",
		})
		assert.ErrorIs(t, err, ErrInvalidPayPalEmail)
	})

	t.Run("missing ad pin", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(eligible)

		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), new(MockNotifier))
		_, err := svc.Activate(ctx, "creator1", models.DummyActivate{
			PayPalEmail: "creator@mail.com",
			AdPin:       "",
		})
		assert.ErrorIs(t, err, ErrMissingAdPin)
	})
}

func TestRequest(t *testing.T) {
	ctx := context.Background()
	session := models.Session{Username: "creator1", Name: "Creator One", Role: models.RoleUser}

	requests := new(MockMonetizationRequests)
	requests.On("Upsert", ctx, mock.MatchedBy(func(r models.MonetizationRequest) bool {
		return r.Username == "creator1" && r.Status == models.StatusPending && r.ID != ""
	})).Return(nil)

	stats := new(MockStatsRepository)
	stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1", Name: "creator1"})
	stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
		return s.MonetizationRequested
	})).Return(nil)

	svc := New(stats, requests, new(MockPayoutRequests), new(MockNotifier))
	req, err := svc.Request(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, req.Status)
	requests.AssertExpectations(t)
	stats.AssertExpectations(t)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("approved", func(t *testing.T) {
		requests := new(MockMonetizationRequests)
		requests.On("SetStatus", ctx, "req-1", models.StatusApproved).
			Return(&models.MonetizationRequest{ID: "req-1", Username: "creator1", Status: models.StatusApproved}, nil)

		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1"})
		stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
			return s.MonetizationApproved
		})).Return(nil)

		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryMonetization,
			mock.MatchedBy(func(msg string) bool { return strings.Contains(msg, "approved") })).Return(nil)

		svc := New(stats, requests, new(MockPayoutRequests), notifier)
		req, err := svc.Resolve(ctx, "req-1", true)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, req.Status)
		notifier.AssertExpectations(t)
	})

	t.Run("rejected does not touch stats", func(t *testing.T) {
		requests := new(MockMonetizationRequests)
		requests.On("SetStatus", ctx, "req-1", models.StatusRejected).
			Return(&models.MonetizationRequest{ID: "req-1", Username: "creator1", Status: models.StatusRejected}, nil)

		stats := new(MockStatsRepository)
		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryMonetization, mock.Anything).Return(nil)

		svc := New(stats, requests, new(MockPayoutRequests), notifier)
		_, err := svc.Resolve(ctx, "req-1", false)
		require.NoError(t, err)
		stats.AssertNotCalled(t, "Save")
	})

	t.Run("unknown request id", func(t *testing.T) {
		requests := new(MockMonetizationRequests)
		requests.On("SetStatus", ctx, "ghost", models.StatusApproved).Return(nil, nil)

		svc := New(new(MockStatsRepository), requests, new(MockPayoutRequests), new(MockNotifier))
		_, err := svc.Resolve(ctx, "ghost", true)
		assert.ErrorIs(t, err, ErrRequestNotFound)
	})
}

func TestRequestPayout(t *testing.T) {
	ctx := context.Background()
	session := models.Session{Username: "creator1", Name: "Creator One"}

	t.Run("success snapshots amount", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{
			Username:      "creator1",
			TotalEarnings: 150.5,
			PayPalEmail:   "creator@mail.com",
		})

		payouts := new(MockPayoutRequests)
		payouts.On("Add", ctx, mock.MatchedBy(func(r models.PayoutRequest) bool {
			return r.Amount == 150.5 && r.PayPalEmail == "creator@mail.com" && r.Status == models.StatusPending
		})).Return(nil)

		svc := New(stats, new(MockMonetizationRequests), payouts, new(MockNotifier))
		req, err := svc.RequestPayout(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, 150.5, req.Amount)
		payouts.AssertExpectations(t)
	})

	t.Run("below minimum", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{
			TotalEarnings: 99.99,
			PayPalEmail:   "creator@mail.com",
		})

		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), new(MockNotifier))
		_, err := svc.RequestPayout(ctx, session)
		assert.ErrorIs(t, err, ErrBelowMinimumPayout)
	})

	t.Run("no paypal email", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{TotalEarnings: 500})

		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), new(MockNotifier))
		_, err := svc.RequestPayout(ctx, session)
		assert.ErrorIs(t, err, ErrNoPayPalEmail)
	})
}

func TestResolvePayout(t *testing.T) {
	ctx := context.Background()

	t.Run("approved decrements earnings", func(t *testing.T) {
		payouts := new(MockPayoutRequests)
		payouts.On("SetStatus", ctx, "pay-1", models.StatusApproved).
			Return(&models.PayoutRequest{ID: "pay-1", Username: "creator1", Amount: 120, Status: models.StatusApproved}, nil)

		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1", TotalEarnings: 150})
		stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
			return s.TotalEarnings == 30
		})).Return(nil)

		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryPayment,
			"✅ Your payout of $120.00 has been approved and will be sent to your PayPal within 2-5 business days.").Return(nil)

		svc := New(stats, new(MockMonetizationRequests), payouts, notifier)
		_, err := svc.ResolvePayout(ctx, "pay-1", true)
		require.NoError(t, err)
		stats.AssertExpectations(t)
	})

	t.Run("earnings never go negative", func(t *testing.T) {
		payouts := new(MockPayoutRequests)
		payouts.On("SetStatus", ctx, "pay-1", models.StatusApproved).
			Return(&models.PayoutRequest{ID: "pay-1", Username: "creator1", Amount: 500, Status: models.StatusApproved}, nil)

		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1", TotalEarnings: 120})
		stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
			return s.TotalEarnings == 0
		})).Return(nil)

		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryPayment, mock.Anything).Return(nil)

		svc := New(stats, new(MockMonetizationRequests), payouts, notifier)
		_, err := svc.ResolvePayout(ctx, "pay-1", true)
		require.NoError(t, err)
		stats.AssertExpectations(t)
	})

	t.Run("rejected keeps earnings", func(t *testing.T) {
		payouts := new(MockPayoutRequests)
		payouts.On("SetStatus", ctx, "pay-1", models.StatusRejected).
			Return(&models.PayoutRequest{ID: "pay-1", Username: "creator1", Amount: 120, Status: models.StatusRejected}, nil)

		stats := new(MockStatsRepository)
		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryPayment,
			"Your payout request of $120.00 was not approved at this time. Please contact support for more information.").Return(nil)

		svc := New(stats, new(MockMonetizationRequests), payouts, notifier)
		_, err := svc.ResolvePayout(ctx, "pay-1", false)
		require.NoError(t, err)
		stats.AssertNotCalled(t, "Save")
	})
}

func TestSetCreatorFlags(t *testing.T) {
	ctx := context.Background()
	boolPtr := func(v bool) *bool { return &v }
	strPtr := func(v string) *string { return &v }

	t.Run("premium grant notifies once", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1"})
		stats.On("Save", ctx, mock.Anything).Return(nil)

		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryMonetization,
			"🌟 Congratulations! You have been granted Premium status by the admin.").Return(nil)

		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), notifier)
		updated, err := svc.SetCreatorFlags(ctx, "creator1", models.DummyCreatorFlags{
			IsPremium: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, updated.IsPremium)
		notifier.AssertExpectations(t)
	})

	t.Run("already premium stays silent", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1", IsPremium: true})
		stats.On("Save", ctx, mock.Anything).Return(nil)

		notifier := new(MockNotifier)
		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), notifier)
		_, err := svc.SetCreatorFlags(ctx, "creator1", models.DummyCreatorFlags{
			IsPremium: boolPtr(true),
		})
		require.NoError(t, err)
		notifier.AssertNotCalled(t, "Notify")
	})

	t.Run("trusted grant notifies", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1"})
		stats.On("Save", ctx, mock.Anything).Return(nil)

		notifier := new(MockNotifier)
		notifier.On("Notify", ctx, "creator1", models.CategoryMonetization,
			"✅ You have been marked as a Trusted Creator on Streamora!").Return(nil)

		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), notifier)
		_, err := svc.SetCreatorFlags(ctx, "creator1", models.DummyCreatorFlags{
			IsTrusted: boolPtr(true),
		})
		require.NoError(t, err)
		notifier.AssertExpectations(t)
	})

	t.Run("rank and plan update", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("Get", ctx, "creator1").Return(models.CreatorStats{Username: "creator1"})
		stats.On("Save", ctx, mock.MatchedBy(func(s models.CreatorStats) bool {
			return s.CPMRank == models.RankGold && s.MonetizationPlan == models.PlanPremium
		})).Return(nil)

		svc := New(stats, new(MockMonetizationRequests), new(MockPayoutRequests), new(MockNotifier))
		_, err := svc.SetCreatorFlags(ctx, "creator1", models.DummyCreatorFlags{
			CPMRank:          strPtr("gold"),
			MonetizationPlan: strPtr("premium"),
		})
		require.NoError(t, err)
		stats.AssertExpectations(t)
	})
}

func TestCPMRate(t *testing.T) {
	assert.Equal(t, 3.0, CPMRate(models.RankBronze))
	assert.Equal(t, 5.0, CPMRate(models.RankSilver))
	assert.Equal(t, 8.0, CPMRate(models.RankGold))
	assert.Equal(t, 10.0, CPMRate(models.RankPremium))
}

func TestRevenueShare(t *testing.T) {
	assert.Equal(t, 0.55, RevenueShare(models.PlanStandard))
	assert.Equal(t, 0.70, RevenueShare(models.PlanPremium))
}
