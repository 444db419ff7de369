package repositories

import "context"

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager executes functions within a database
// transaction. Writes made by fn are atomic: either all become
// visible on commit or none do.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
