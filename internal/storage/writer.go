package storage

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/recommend"
	"github.com/carson-networks/finance-engine/internal/storage/debt"
	"github.com/carson-networks/finance-engine/internal/storage/prediction"
)

//go:generate mockery --name Tx --structname MockTx --output storagetest --outpkg storagetest --filename mock_tx.go --with-expecter

// Tx is the part of bob.Tx the Writer needs to finish a transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

//go:generate mockery --name DebtWriter --structname MockDebtWriter --output storagetest --outpkg storagetest --filename mock_debt_writer.go --with-expecter

type DebtWriter interface {
	Insert(ctx context.Context, create *debt.DebtCreate) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*debt.Debt, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance money.Cents, active bool) error
}

//go:generate mockery --name PredictionWriter --structname MockPredictionWriter --output storagetest --outpkg storagetest --filename mock_prediction_writer.go --with-expecter

type PredictionWriter interface {
	InsertPrediction(ctx context.Context, userID uuid.UUID, p forecast.CashflowPrediction) error
	InsertRecommendations(ctx context.Context, userID, predictionID uuid.UUID, recs []recommend.Recommendation) error
}

type Writer struct {
	tx          Tx
	Debts       DebtWriter
	Predictions PredictionWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return ComposeWriter(tx, debt.NewWriter(tx), prediction.NewWriter(tx))
}

// ComposeWriter assembles a Writer from its parts.
func ComposeWriter(tx Tx, debts DebtWriter, predictions PredictionWriter) *Writer {
	return &Writer{
		tx:          tx,
		Debts:       debts,
		Predictions: predictions,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
