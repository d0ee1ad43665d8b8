package repositoryutil

import (
	"context"
	"todo-api-backend/ent"

	"github.com/hashicorp/go-multierror"
)

// WithTransaction runs fn inside a transaction opened on client. The context
// given to fn carries the transactional client, see WithTransactionalMutation.
// The transaction is committed when fn returns nil and rolled back otherwise.
func WithTransaction(ctx context.Context, client *ent.Client, fn func(ctx context.Context) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(ent.NewContext(ctx, tx.Client())); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return multierror.Append(err, rerr)
		}
		return err
	}
	return tx.Commit()
}
