package repositories

import "context"

// UnitOfWork runs a function inside a single store transaction. Every
// repository write performed with the context passed to fn joins that
// transaction; fn returning an error rolls the whole unit back. The pipeline
// relies on this for its all-or-nothing guarantee across the event row, all
// journal entries and their link rows.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
