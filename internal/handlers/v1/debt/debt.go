package debt

import (
	"time"

	debtstore "github.com/carson-networks/finance-engine/internal/storage/debt"
)

// Debt is the API response model for a debt.
type Debt struct {
	ID                   string `json:"id" doc:"Debt UUID"`
	UserID               string `json:"userID" doc:"Owning user UUID"`
	Name                 string `json:"name" doc:"Debt name"`
	OriginalBalanceCents int64  `json:"originalBalanceCents" doc:"Balance when the debt was registered, in cents"`
	BalanceCents         int64  `json:"balanceCents" doc:"Current balance in cents"`
	MinimumPaymentCents  int64  `json:"minimumPaymentCents" doc:"Monthly minimum payment in cents"`
	AnnualRate           string `json:"annualRate" doc:"Annual interest rate as a fraction, e.g. 0.2199"`
	DueDay               int    `json:"dueDay" doc:"Payment due day of month, 0 when unset"`
	Active               bool   `json:"active" doc:"False once the balance reaches zero"`
	CreatedAt            string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromStorage(d *debtstore.Debt) Debt {
	return Debt{
		ID:                   d.ID.String(),
		UserID:               d.UserID.String(),
		Name:                 d.Name,
		OriginalBalanceCents: int64(d.OriginalBalance),
		BalanceCents:         int64(d.Balance),
		MinimumPaymentCents:  int64(d.MinimumPayment),
		AnnualRate:           d.AnnualRate.String(),
		DueDay:               d.DueDay,
		Active:               d.Active,
		CreatedAt:            d.CreatedAt.Format(time.RFC3339),
	}
}
