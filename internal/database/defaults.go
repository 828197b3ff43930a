package database

import (
	"context"
	"database/sql"

	"github.com/jask/courierapp/internal/database/repository"
	"github.com/jask/courierapp/internal/record"
)

// SeedDefaults loads the sample doctors into an empty session database.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, doctors []record.Doctor) error {
	repo := repository.NewDoctorRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(db, func(tx *sql.Tx) error {
		txRepo := repository.NewDoctorRepo(tx)
		for _, d := range doctors {
			if err := txRepo.Insert(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
}
