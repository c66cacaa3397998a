package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/finhub/finhub.go/db/models"
)

/* This init reflects the latest model fields when run on a fresh db.
When columns are added or removed in subsequent migrations make sure
IfNotExists/IfExists is used, otherwise it's going to result in errors. */
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if _, err := db.NewCreateTable().Model((*models.User)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.LedgerEntry)(nil)).Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}
