package user

import (
	"context"
	"database/sql"
	"errors"
	c "studiobooking/internal/core/domain/common"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/user"
	"studiobooking/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

const selectUser = `SELECT id, email, password_hash, full_name, is_active, is_admin, created_at, updated_at
FROM users`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, selectUser+" WHERE id = $1", string(id))
	return scanUser(row)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, selectUser+" WHERE email = $1", string(email))
	return scanUser(row)
}

func (r *PgxUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, selectUser+" ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) SetPassword(
	ctx context.Context,
	id user.ID,
	password user.PasswordHash,
	at time.Time,
) error {
	tag, err := r.db.Exec(
		ctx,
		"UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1",
		string(id),
		string(password),
		at,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE users
		SET full_name = COALESCE($2, full_name),
			is_active = COALESCE($3, is_active),
			updated_at = $4
		WHERE id = $1
		RETURNING id, email, password_hash, full_name, is_active, is_admin, created_at, updated_at`,
		string(input.UserID),
		encodeOptionalString(input.FullName),
		encodeOptionalBool(input.IsActive),
		input.At,
	)
	return scanUser(row)
}

func (r *PgxUserRepository) SetAdminStatus(
	ctx context.Context,
	id user.ID,
	isAdmin bool,
	at time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE users SET is_admin = $2, updated_at = $3 WHERE id = $1
		RETURNING id, email, password_hash, full_name, is_active, is_admin, created_at, updated_at`,
		string(id),
		isAdmin,
		at,
	)
	return scanUser(row)
}

func encodeOptionalString(v c.Optional[string]) sql.NullString {
	return sql.NullString{String: v.Value, Valid: v.IsPresent}
}

func encodeOptionalBool(v c.Optional[bool]) sql.NullBool {
	return sql.NullBool{Bool: v.Value, Valid: v.IsPresent}
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var id, email, passwordHash, fullName string
	var isActive, isAdmin bool
	var createdAt time.Time
	var updatedAt sql.NullTime

	err = row.Scan(&id, &email, &passwordHash, &fullName, &isActive, &isAdmin, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Email:        c.Email(email),
		PasswordHash: user.PasswordHash(passwordHash),
		FullName:     fullName,
		IsActive:     isActive,
		IsAdmin:      isAdmin,
		CreatedAt:    createdAt,
		UpdatedAt:    c.NewOptional(updatedAt.Time, updatedAt.Valid),
	}, nil
}
