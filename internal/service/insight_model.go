package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-engine/internal/budget"
	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/payoff"
	"github.com/carson-networks/finance-engine/internal/recommend"
)

// Insights is everything the engine derives for one user at one point in
// time. Performance is nil when the user has no active budget.
type Insights struct {
	UserID          uuid.UUID
	AsOf            time.Time
	Comparison      *payoff.StrategyComparison
	Prediction      *forecast.CashflowPrediction
	Performance     *budget.Performance
	Recommendations []recommend.Recommendation
	// CategoryNames labels the budget categories in Performance.
	CategoryNames map[uuid.UUID]string
}
