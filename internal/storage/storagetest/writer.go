// Package storagetest provides mockery mocks for the storage write path.
package storagetest

import (
	"github.com/carson-networks/finance-engine/internal/storage"
)

// Writer bundles a storage.Writer with the mocks behind it.
type Writer struct {
	*storage.Writer
	Tx          *MockTx
	Debts       *MockDebtWriter
	Predictions *MockPredictionWriter
}

func NewWriter() *Writer {
	tx := &MockTx{}
	debts := &MockDebtWriter{}
	predictions := &MockPredictionWriter{}
	return &Writer{
		Writer:      storage.ComposeWriter(tx, debts, predictions),
		Tx:          tx,
		Debts:       debts,
		Predictions: predictions,
	}
}
