package resettoken

import (
	"context"
	"errors"
	e "studiobooking/internal/core/domain/errors"
	"studiobooking/internal/core/domain/user"
	"studiobooking/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

// PgxResetTokenRepository keeps at most one reset row per user, the primary
// key on user_id makes Put an overwrite.
type PgxResetTokenRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxResetTokenRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxResetTokenRepository{db: db}
}

func (r *PgxResetTokenRepository) Put(ctx context.Context, reset user.PasswordReset) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO password_reset_tokens (user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at`,
		string(reset.UserID),
		string(reset.Token),
		reset.ExpiresAt,
		reset.CreatedAt,
	)
	return err
}

func (r *PgxResetTokenRepository) Get(ctx context.Context, userID user.ID) (reset user.PasswordReset, err error) {
	var token string
	var expiresAt, createdAt time.Time

	row := r.db.QueryRow(
		ctx,
		"SELECT token, expires_at, created_at FROM password_reset_tokens WHERE user_id = $1",
		string(userID),
	)
	err = row.Scan(&token, &expiresAt, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return reset, user.ErrResetDoesNotExist
	}
	if err != nil {
		return reset, err
	}
	return user.PasswordReset{
		UserID:    userID,
		Token:     user.ResetToken(token),
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
	}, nil
}

// DeleteMatching is the compare-and-delete that serializes concurrent
// consumption, the row predicate makes exactly one caller win.
func (r *PgxResetTokenRepository) DeleteMatching(
	ctx context.Context,
	userID user.ID,
	token user.ResetToken,
) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		"DELETE FROM password_reset_tokens WHERE user_id = $1 AND token = $2",
		string(userID),
		string(token),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
