package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/dbx"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
)

const userColumns = `id, email, password, name, profile_picture, location, bio,
	skills_offered, skills_wanted, reviews, social_links,
	is_verified, rating, has_onboarded, is_email_verified,
	email_verification_token, is_ai`

// SQLiteRepository keeps users in a SQLite table. Skill, review and social
// link collections are stored as JSON text columns.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, user *models.User) (*models.User, error) {
	stored := user.Clone()

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var taken int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, stored.Email).Scan(&taken)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if taken > 0 {
			return common.ErrorAlreadyExists
		}

		var count int64
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		stored.ID = count + 1

		args, err := userArgs(stored)
		if err != nil {
			return err
		}

		query := `INSERT INTO users (` + userColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query, append([]any{stored.ID}, args...)...); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (r *SQLiteRepository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE email = ? AND password IS NOT NULL AND password <> '' AND password = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, email, password))
}

func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) Update(ctx context.Context, user *models.User) error {
	args, err := userArgs(user)
	if err != nil {
		return err
	}

	query := `UPDATE users SET
		email = ?, password = ?, name = ?, profile_picture = ?, location = ?, bio = ?,
		skills_offered = ?, skills_wanted = ?, reviews = ?, social_links = ?,
		is_verified = ?, rating = ?, has_onboarded = ?, is_email_verified = ?,
		email_verification_token = ?, is_ai = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, append(args, user.ID)...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// userArgs returns the column values after id, in userColumns order.
func userArgs(u *models.User) ([]any, error) {
	offered, err := json.Marshal(nonNil(u.SkillsOffered))
	if err != nil {
		return nil, fmt.Errorf("encode skills offered: %w", err)
	}
	wanted, err := json.Marshal(nonNil(u.SkillsWanted))
	if err != nil {
		return nil, fmt.Errorf("encode skills wanted: %w", err)
	}
	reviews, err := json.Marshal(nonNil(u.Reviews))
	if err != nil {
		return nil, fmt.Errorf("encode reviews: %w", err)
	}
	links := u.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	social, err := json.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("encode social links: %w", err)
	}

	password := sql.NullString{String: u.Password, Valid: u.Password != ""}

	return []any{
		u.Email, password, u.Name, u.ProfilePicture, u.Location, u.Bio,
		string(offered), string(wanted), string(reviews), string(social),
		u.IsVerified, u.Rating, u.HasOnboarded, u.IsEmailVerified,
		u.EmailVerificationToken, u.IsAI,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u                                models.User
		password                         sql.NullString
		offered, wanted, reviews, social string
	)

	err := row.Scan(&u.ID, &u.Email, &password, &u.Name, &u.ProfilePicture, &u.Location, &u.Bio,
		&offered, &wanted, &reviews, &social,
		&u.IsVerified, &u.Rating, &u.HasOnboarded, &u.IsEmailVerified,
		&u.EmailVerificationToken, &u.IsAI)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	u.Password = password.String

	if err := json.Unmarshal([]byte(offered), &u.SkillsOffered); err != nil {
		return nil, fmt.Errorf("decode skills offered: %w", err)
	}
	if err := json.Unmarshal([]byte(wanted), &u.SkillsWanted); err != nil {
		return nil, fmt.Errorf("decode skills wanted: %w", err)
	}
	if err := json.Unmarshal([]byte(reviews), &u.Reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	if err := json.Unmarshal([]byte(social), &u.SocialLinks); err != nil {
		return nil, fmt.Errorf("decode social links: %w", err)
	}
	if len(u.SocialLinks) == 0 {
		u.SocialLinks = nil
	}

	return &u, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
