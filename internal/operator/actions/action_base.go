package actions

import (
	"context"

	"github.com/carson-networks/finance-engine/internal/storage"
)

// IAction is one unit of write work. The operator runs Perform inside a
// transaction and commits only when it returns nil.
type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
