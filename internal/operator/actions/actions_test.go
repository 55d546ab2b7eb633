package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-engine/internal/engineerror"
	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/recommend"
	"github.com/carson-networks/finance-engine/internal/storage/debt"
	"github.com/carson-networks/finance-engine/internal/storage/storagetest"
)

// -- CreateDebt tests --

func TestCreateDebt_Success(t *testing.T) {
	w := storagetest.NewWriter()
	userID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	w.Debts.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *debt.DebtCreate) bool {
		return c.UserID == userID &&
			c.Name == "Visa" &&
			c.Balance == 250000 &&
			c.MinimumPayment == 7500 &&
			c.AnnualRate.Equal(decimal.RequireFromString("0.2299")) &&
			c.DueDay == 12
	})).Return(createdID, nil)

	action := &CreateDebt{
		UserID:         userID,
		Name:           "Visa",
		Balance:        250000,
		MinimumPayment: 7500,
		AnnualRate:     decimal.RequireFromString("0.2299"),
		DueDay:         12,
	}

	require.NoError(t, action.Perform(context.Background(), w.Writer))
	assert.Equal(t, createdID, action.CreatedID)
	w.Debts.AssertExpectations(t)
}

func TestCreateDebt_InvalidInputNeverWrites(t *testing.T) {
	w := storagetest.NewWriter()

	action := &CreateDebt{Name: "Bad", Balance: 100, AnnualRate: decimal.RequireFromString("-0.1")}

	err := action.Perform(context.Background(), w.Writer)
	assert.True(t, engineerror.IsValidation(err))
	w.Debts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateDebt_StorageError(t *testing.T) {
	w := storagetest.NewWriter()
	w.Debts.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("insert failed"))

	action := &CreateDebt{Name: "Loan", Balance: 100, AnnualRate: decimal.Zero}

	err := action.Perform(context.Background(), w.Writer)
	assert.EqualError(t, err, "insert failed")
	assert.Equal(t, uuid.Nil, action.CreatedID)
}

// -- RecordDebtPayment tests --

func lockedDebt(id uuid.UUID, balance money.Cents) *debt.Debt {
	return &debt.Debt{ID: id, Name: "Visa", OriginalBalance: 100000, Balance: balance, Active: true}
}

func TestRecordDebtPayment_ReducesBalance(t *testing.T) {
	w := storagetest.NewWriter()
	id := uuid.Must(uuid.NewV4())

	w.Debts.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(lockedDebt(id, 50000), nil)
	w.Debts.EXPECT().UpdateBalance(mock.Anything, id, money.Cents(30000), true).Return(nil)

	action := &RecordDebtPayment{DebtID: id, Amount: 20000}

	require.NoError(t, action.Perform(context.Background(), w.Writer))
	require.NotNil(t, action.Updated)
	assert.Equal(t, money.Cents(30000), action.Updated.Balance)
	assert.True(t, action.Updated.Active)
	w.Debts.AssertExpectations(t)
}

func TestRecordDebtPayment_OverpaymentFloorsAtZeroAndDeactivates(t *testing.T) {
	w := storagetest.NewWriter()
	id := uuid.Must(uuid.NewV4())

	w.Debts.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(lockedDebt(id, 5000), nil)
	w.Debts.EXPECT().UpdateBalance(mock.Anything, id, money.Cents(0), false).Return(nil)

	action := &RecordDebtPayment{DebtID: id, Amount: 9000}

	require.NoError(t, action.Perform(context.Background(), w.Writer))
	assert.Equal(t, money.Cents(0), action.Updated.Balance)
	assert.False(t, action.Updated.Active)
	w.Debts.AssertExpectations(t)
}

func TestRecordDebtPayment_NonPositiveAmount(t *testing.T) {
	w := storagetest.NewWriter()

	err := (&RecordDebtPayment{DebtID: uuid.Must(uuid.NewV4()), Amount: 0}).Perform(context.Background(), w.Writer)

	assert.True(t, engineerror.IsValidation(err))
	w.Debts.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
}

func TestRecordDebtPayment_NotFound(t *testing.T) {
	w := storagetest.NewWriter()
	id := uuid.Must(uuid.NewV4())
	w.Debts.EXPECT().FindByIDForUpdate(mock.Anything, id).
		Return(nil, &engineerror.NotFoundError{Resource: "debt", ID: id.String()})

	err := (&RecordDebtPayment{DebtID: id, Amount: 100}).Perform(context.Background(), w.Writer)

	assert.True(t, engineerror.IsNotFound(err))
}

func TestRecordDebtPayment_AlreadyPaidOff(t *testing.T) {
	w := storagetest.NewWriter()
	id := uuid.Must(uuid.NewV4())
	paid := lockedDebt(id, 0)
	paid.Active = false
	w.Debts.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(paid, nil)

	err := (&RecordDebtPayment{DebtID: id, Amount: 100}).Perform(context.Background(), w.Writer)

	assert.True(t, engineerror.IsValidation(err))
	w.Debts.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// -- RecordInsights tests --

func TestRecordInsights_PredictionAndRecommendations(t *testing.T) {
	w := storagetest.NewWriter()
	userID := uuid.Must(uuid.NewV4())
	prediction := forecast.CashflowPrediction{ID: uuid.Must(uuid.NewV4()), PredictedBalance: -100}
	recs := []recommend.Recommendation{{ID: uuid.Must(uuid.NewV4()), Kind: recommend.KindCashflow}}

	w.Predictions.EXPECT().InsertPrediction(mock.Anything, userID, prediction).Return(nil)
	w.Predictions.EXPECT().InsertRecommendations(mock.Anything, userID, prediction.ID, recs).Return(nil)

	action := &RecordInsights{UserID: userID, Prediction: &prediction, Recommendations: recs}

	require.NoError(t, action.Perform(context.Background(), w.Writer))
	w.Predictions.AssertExpectations(t)
}

func TestRecordInsights_WithoutPrediction(t *testing.T) {
	w := storagetest.NewWriter()
	userID := uuid.Must(uuid.NewV4())
	recs := []recommend.Recommendation{{ID: uuid.Must(uuid.NewV4()), Kind: recommend.KindCategory}}

	w.Predictions.EXPECT().InsertRecommendations(mock.Anything, userID, uuid.Nil, recs).Return(nil)

	require.NoError(t, (&RecordInsights{UserID: userID, Recommendations: recs}).Perform(context.Background(), w.Writer))
	w.Predictions.AssertNotCalled(t, "InsertPrediction", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordInsights_PredictionErrorStops(t *testing.T) {
	w := storagetest.NewWriter()
	prediction := forecast.CashflowPrediction{ID: uuid.Must(uuid.NewV4())}
	w.Predictions.EXPECT().InsertPrediction(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	err := (&RecordInsights{Prediction: &prediction}).Perform(context.Background(), w.Writer)

	assert.EqualError(t, err, "disk full")
	w.Predictions.AssertNotCalled(t, "InsertRecommendations", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "CreateDebt", (&CreateDebt{}).Name())
	assert.Equal(t, "RecordDebtPayment", (&RecordDebtPayment{}).Name())
	assert.Equal(t, "RecordInsights", (&RecordInsights{}).Name())
}
