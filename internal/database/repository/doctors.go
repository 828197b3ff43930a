package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jask/courierapp/internal/record"
)

const doctorColumns = "id, name, email, phone, specialization, address, status, join_date, total_orders"

// DoctorRepo handles doctors. Rows come back in insertion order.
type DoctorRepo struct {
	db DBTX
}

func NewDoctorRepo(db DBTX) *DoctorRepo { return &DoctorRepo{db: db} }

func (r *DoctorRepo) Insert(ctx context.Context, d record.Doctor) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO doctors(id, name, email, phone, specialization, address, status, join_date, total_orders)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?);
	`, d.ID, d.Name, d.Email, d.Phone, d.Specialization, d.Address, string(d.Status),
		d.JoinDate.Format(time.DateOnly), d.TotalOrders)
	if err != nil {
		return fmt.Errorf("insert doctor %s: %w", d.ID, err)
	}
	return nil
}

// Update rewrites every mutable column of the row with d's id. It reports
// false when no such row exists.
func (r *DoctorRepo) Update(ctx context.Context, d record.Doctor) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
	UPDATE doctors SET
	 name=?, email=?, phone=?, specialization=?, address=?, status=?, total_orders=?
	WHERE id = ?;
	`, d.Name, d.Email, d.Phone, d.Specialization, d.Address, string(d.Status), d.TotalOrders, d.ID)
	if err != nil {
		return false, fmt.Errorf("update doctor %s: %w", d.ID, err)
	}
	return affected(res)
}

func (r *DoctorRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete doctor %s: %w", id, err)
	}
	return affected(res)
}

// Get returns nil when the id is unknown.
func (r *DoctorRepo) Get(ctx context.Context, id string) (*record.Doctor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id = ?`, id)
	d, err := scanDoctor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DoctorRepo) List(ctx context.Context) ([]record.Doctor, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+doctorColumns+` FROM doctors ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []record.Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DoctorRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanDoctor(row scanner) (record.Doctor, error) {
	var d record.Doctor
	var status, joined string
	if err := row.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.Specialization, &d.Address,
		&status, &joined, &d.TotalOrders); err != nil {
		return record.Doctor{}, err
	}
	d.Status = record.Status(status)
	t, err := time.Parse(time.DateOnly, joined)
	if err != nil {
		return record.Doctor{}, fmt.Errorf("doctor %s join_date: %w", d.ID, err)
	}
	d.JoinDate = t
	return d, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
