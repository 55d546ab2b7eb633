package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-engine/internal/storage/storagetest"
)

func TestWriter_Commit(t *testing.T) {
	w := storagetest.NewWriter()
	w.Tx.EXPECT().Commit(mock.Anything).Return(nil)

	assert.NoError(t, w.Commit(context.Background()))
	w.Tx.AssertExpectations(t)
}

func TestWriter_Rollback(t *testing.T) {
	w := storagetest.NewWriter()
	w.Tx.EXPECT().Rollback(mock.Anything).Return(errors.New("tx done"))

	assert.EqualError(t, w.Rollback(context.Background()), "tx done")
	w.Tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestComposeWriter_ExposesWriters(t *testing.T) {
	w := storagetest.NewWriter()

	assert.Same(t, w.Debts, w.Writer.Debts)
	assert.Same(t, w.Predictions, w.Writer.Predictions)
}
