package repository

import (
	"context"

	"FredStoreAPI/internal/model"
)

const userColumns = `id, email, name, country, created_at, is_admin, admin_role, last_login`

func scanUser(row scanner, u *model.User) error {
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Country, &u.CreatedAt, &u.IsAdmin, &role, &u.LastLogin); err != nil {
		return err
	}
	u.AdminRole = model.AdminRole(role)
	u.CreatedAt = u.CreatedAt.UTC()
	if u.LastLogin != nil {
		t := u.LastLogin.UTC()
		u.LastLogin = &t
	}
	return nil
}

type UserRepository struct {
	DB DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := scanUser(r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id), &u); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.DB.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts u and sets u.ID and u.CreatedAt to the stored values. A taken
// email yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (email, name, country, created_at, is_admin, admin_role, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.DB.QueryRow(ctx, query, u.Email, u.Name, u.Country, u.CreatedAt, u.IsAdmin,
		string(u.AdminRole), u.LastLogin).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return writeErr(err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	query := `UPDATE users SET email=$1, name=$2, country=$3 WHERE id=$4`
	tag, err := r.DB.Exec(ctx, query, u.Email, u.Name, u.Country, u.ID)
	if err != nil {
		return writeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete refuses with ErrHasDependents while the user still has orders or
// subscriptions.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return deleteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
