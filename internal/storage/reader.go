package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-engine/internal/storage/budget"
	"github.com/carson-networks/finance-engine/internal/storage/debt"
	"github.com/carson-networks/finance-engine/internal/storage/ledger"
	"github.com/carson-networks/finance-engine/internal/storage/prediction"
)

type Reader struct {
	Debts       *debt.Reader
	Budgets     *budget.Reader
	Ledger      *ledger.Reader
	Predictions *prediction.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Debts:       debt.NewReader(exec),
		Budgets:     budget.NewReader(exec),
		Ledger:      ledger.NewReader(exec),
		Predictions: prediction.NewReader(exec),
	}
}
