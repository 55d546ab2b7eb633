package service

import (
	"context"

	"github.com/carson-networks/finance-engine/internal/operator/actions"
	"github.com/carson-networks/finance-engine/internal/storage/storagetest"
)

// inlineOperator performs actions synchronously against mocked writers so
// tests exercise the real actions without a queue.
type inlineOperator struct {
	writer    *storagetest.Writer
	err       error
	processed []actions.IAction
}

func newInlineOperator() *inlineOperator {
	return &inlineOperator{writer: storagetest.NewWriter()}
}

func (o *inlineOperator) Process(ctx context.Context, action actions.IAction) error {
	o.processed = append(o.processed, action)
	if o.err != nil {
		return o.err
	}
	return action.Perform(ctx, o.writer.Writer)
}
