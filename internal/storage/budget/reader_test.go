package budget

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-engine/internal/money"
)

func sampleBudget() (*Budget, uuid.UUID, uuid.UUID) {
	groceries := uuid.Must(uuid.NewV4())
	fuel := uuid.Must(uuid.NewV4())
	return &Budget{
		Row: Row{
			ID:             uuid.Must(uuid.NewV4()),
			StartDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			TotalBudget:    80000,
			WarningPercent: 75,
			DangerPercent:  95,
		},
		Categories: []*Category{
			{CategoryID: groceries, CategoryName: "Groceries", Limit: 50000},
			{CategoryID: fuel, Limit: 20000},
		},
	}, groceries, fuel
}

func TestBudget_ToEngine(t *testing.T) {
	b, groceries, fuel := sampleBudget()

	got := b.ToEngine()

	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, b.StartDate, got.StartDate)
	assert.Equal(t, b.EndDate, got.EndDate)
	assert.Equal(t, money.Cents(80000), got.TotalBudget)
	assert.Equal(t, 75.0, got.WarningPercent)
	assert.Equal(t, 95.0, got.DangerPercent)
	assert.Equal(t, map[uuid.UUID]money.Cents{groceries: 50000, fuel: 20000}, got.Limits)
}

func TestBudget_CategoryNamesSkipsBlank(t *testing.T) {
	b, groceries, _ := sampleBudget()

	assert.Equal(t, map[uuid.UUID]string{groceries: "Groceries"}, b.CategoryNames())
}
