package prediction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-engine/internal/forecast"
	"github.com/carson-networks/finance-engine/internal/money"
	"github.com/carson-networks/finance-engine/internal/recommend"
)

// Prediction represents a cashflow_predictions record. Rows are append-only.
type Prediction struct {
	ID                uuid.UUID   `db:"id"`
	UserID            uuid.UUID   `db:"user_id"`
	AsOf              time.Time   `db:"as_of"`
	CurrentBalance    money.Cents `db:"current_balance"`
	ProjectedSpend    money.Cents `db:"projected_spend"`
	UpcomingRecurring money.Cents `db:"upcoming_recurring"`
	PredictedBalance  money.Cents `db:"predicted_balance"`
	DaysRemaining     int         `db:"days_remaining"`
	ConfidenceLevel   float64     `db:"confidence_level"`
	CreatedAt         time.Time   `db:"created_at"`
}

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListPredictions returns the user's most recent predictions first.
func (r *Reader) ListPredictions(ctx context.Context, userID uuid.UUID, limit int) ([]*Prediction, error) {
	if limit <= 0 {
		limit = 20
	}
	query := psql.Select(
		sm.Columns(
			"id", "user_id", "as_of", "current_balance", "projected_spend", "upcoming_recurring",
			"predicted_balance", "days_remaining", "confidence_level", "created_at",
		),
		sm.From("cashflow_predictions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("as_of")).Desc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
		sm.Limit(limit),
	)
	return bob.All(ctx, r.exec, query, scan.StructMapper[*Prediction]())
}

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// InsertPrediction appends p. Prediction ids are derived from their inputs,
// so re-inserting an identical prediction is a no-op.
func (w *Writer) InsertPrediction(ctx context.Context, userID uuid.UUID, p forecast.CashflowPrediction) error {
	query := psql.Insert(
		im.Into("cashflow_predictions",
			"id", "user_id", "as_of", "current_balance", "projected_spend",
			"upcoming_recurring", "predicted_balance", "days_remaining", "confidence_level",
		),
		im.Values(psql.Arg(
			p.ID, userID, p.AsOf, p.CurrentBalance, p.ProjectedSpend,
			p.UpcomingRecurring, p.PredictedBalance, p.DaysRemaining, p.ConfidenceLevel,
		)),
		im.OnConflict("id").DoNothing(),
	)
	_, err := bob.Exec(ctx, w.tx, query)
	return err
}

// InsertRecommendations appends recs, linking them to predictionID when it is
// not uuid.Nil.
func (w *Writer) InsertRecommendations(ctx context.Context, userID, predictionID uuid.UUID, recs []recommend.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}

	prediction := uuid.NullUUID{UUID: predictionID, Valid: predictionID != uuid.Nil}
	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("recommendations",
			"id", "user_id", "prediction_id", "kind", "category_id",
			"severity", "title", "description", "created_at", "valid_until",
		),
	}
	for _, rec := range recs {
		category := uuid.NullUUID{}
		if rec.CategoryID != nil {
			category = uuid.NullUUID{UUID: *rec.CategoryID, Valid: true}
		}
		queryMods = append(queryMods, im.Values(psql.Arg(
			rec.ID, userID, prediction, string(rec.Kind), category,
			rec.Severity.String(), rec.Title, rec.Description, rec.CreatedAt, rec.ValidUntil,
		)))
	}
	queryMods = append(queryMods, im.OnConflict("id").DoNothing())

	_, err := bob.Exec(ctx, w.tx, psql.Insert(queryMods...))
	return err
}
