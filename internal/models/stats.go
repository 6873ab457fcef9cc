package models

// CPMRank градация рекламной ставки создателя, назначается админом.
type CPMRank string

// Возможные значения CPMRank.
const (
	RankBronze  CPMRank = "bronze"
	RankSilver  CPMRank = "silver"
	RankGold    CPMRank = "gold"
	RankPremium CPMRank = "premium"
)

// MonetizationPlan план распределения дохода создателя.
type MonetizationPlan string

// Возможные значения MonetizationPlan.
const (
	PlanStandard MonetizationPlan = "standard"
	PlanPremium  MonetizationPlan = "premium"
)

// CreatorStats статистика и монетизационное состояние одного создателя.
// Запись создается лениво с нулевыми значениями при первом чтении
// и никогда не удаляется — даже после блокировки канала.
type CreatorStats struct {
	Username              string           `json:"username"`
	Name                  string           `json:"name"`
	TotalViews            int64            `json:"totalViews"`
	SubscriberCount       int64            `json:"subscriberCount"`
	EstimatedEarnings     float64          `json:"estimatedEarnings"`
	TotalEarnings         float64          `json:"totalEarnings"`
	AdEligible            bool             `json:"adEligible"`
	CPMRank               CPMRank          `json:"cpmRank"`
	MonetizationPlan      MonetizationPlan `json:"monetizationPlan"`
	IsMonetized           bool             `json:"isMonetized"`
	IsPremium             bool             `json:"isPremium"`
	IsLifetimePremium     bool             `json:"isLifetimePremium"`
	IsTrusted             bool             `json:"isTrusted"`
	Strikes               int              `json:"strikes"`
	PayPalEmail           string           `json:"paypalEmail,omitempty"`
	AdPin                 string           `json:"adPin,omitempty"`
	MonetizationApproved  bool             `json:"monetizationApproved"`
	MonetizationRequested bool             `json:"monetizationRequested"`
}

// DefaultCreatorStats возвращает статистику с дефолтными значениями
// для username, у которого еще нет сохраненной записи.
func DefaultCreatorStats(username string) CreatorStats {
	return CreatorStats{
		Username:         username,
		Name:             username,
		CPMRank:          RankBronze,
		MonetizationPlan: PlanStandard,
	}
}

// DummyStatsUpdate используется для приёма правок статистики из JSON-запроса
// в админском редакторе. Обновляются только числовые показатели.
type DummyStatsUpdate struct {
	TotalViews        int64   `json:"total_views" validate:"min=0"`
	SubscriberCount   int64   `json:"subscriber_count" validate:"min=0"`
	EstimatedEarnings float64 `json:"estimated_earnings" validate:"min=0"`
	TotalEarnings     float64 `json:"total_earnings" validate:"min=0"`
}

// DummyCreatorFlags частичное обновление флагов создателя админом.
// nil означает "поле не менять".
type DummyCreatorFlags struct {
	CPMRank              *string `json:"cpm_rank,omitempty" validate:"omitempty,oneof=bronze silver gold premium"`
	MonetizationPlan     *string `json:"monetization_plan,omitempty" validate:"omitempty,oneof=standard premium"`
	IsMonetized          *bool   `json:"is_monetized,omitempty"`
	IsPremium            *bool   `json:"is_premium,omitempty"`
	IsLifetimePremium    *bool   `json:"is_lifetime_premium,omitempty"`
	IsTrusted            *bool   `json:"is_trusted,omitempty"`
	MonetizationApproved *bool   `json:"monetization_approved,omitempty"`
}

// DummyStrike уровень выдаваемого страйка.
type DummyStrike struct {
	Level int `json:"level" validate:"required,min=1,max=3"`
}

// DummyActivate данные формы активации монетизации.
type DummyActivate struct {
	PayPalEmail string `json:"paypal_email" validate:"required"`
	AdPin       string `json:"ad_pin" validate:"required"`
}
