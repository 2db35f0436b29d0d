package users

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/dbx"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

const columns = `id, name, email, password, picture_uri, role, public_key, derived_salt, last_access_at, created_at, updated_at, is_deleted`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.PictureURI, &u.Role,
		&u.PublicKey, &u.DerivedSalt, &u.LastAccessAt, &u.CreatedAt, &u.UpdatedAt, &u.IsDeleted)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, name, email, password, picture_uri, role, public_key, derived_salt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.Password, user.PictureURI, user.Role, user.PublicKey, user.DerivedSalt,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return user, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + columns + ` FROM users WHERE id = $1 AND is_deleted = false`
	u, err := scan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return u, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + columns + ` FROM users WHERE lower(email) = lower($1) AND is_deleted = false`
	u, err := scan(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return u, nil
}

func (r *PostgresRepository) FindByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + columns + ` FROM users WHERE id IN (` + dbx.Placeholders(1, len(ids)) + `) AND is_deleted = false`
	rows, err := r.db.QueryContext(ctx, query, dbx.Args(ids)...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, p models.UserProfile) error {
	query := `
		UPDATE users SET
			name = $2,
			email = $3,
			picture_uri = $4,
			public_key = $5,
			derived_salt = $6,
			updated_at = now()
		WHERE id = $1 AND is_deleted = false
	`
	res, err := r.db.ExecContext(ctx, query, id, p.Name, p.Email, p.PictureURI, p.PublicKey, p.DerivedSalt)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) TouchLastAccess(ctx context.Context, id string) error {
	query := `UPDATE users SET last_access_at = now() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}

func (r *PostgresRepository) Touch(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE users SET updated_at = now() WHERE id IN (` + dbx.Placeholders(1, len(ids)) + `)`
	if _, err := r.db.ExecContext(ctx, query, dbx.Args(ids)...); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}

// orderColumns maps the sortable fields onto columns. Anything else is
// rejected rather than spliced into the query.
var orderColumns = map[models.UserOrderField]string{
	models.OrderByName:  "name",
	models.OrderByEmail: "email",
}

func (r *PostgresRepository) Search(ctx context.Context, q models.UserQuery) ([]*models.User, error) {
	var (
		where = []string{"is_deleted = false"}
		args  []any
	)
	if q.Name != "" {
		args = append(args, q.Name)
		where = append(where, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if q.Email != "" {
		args = append(args, q.Email)
		where = append(where, "email ILIKE $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + columns + ` FROM users WHERE ` + strings.Join(where, " AND ")

	order := make([]string, 0, len(q.OrderBy)+1)
	for _, o := range q.OrderBy {
		col, ok := orderColumns[o.Field]
		if !ok {
			return nil, fmt.Errorf("%w: cannot order users by %q", common.ErrorValidation, o.Field)
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		order = append(order, col+" "+dir)
	}
	order = append(order, "id ASC")
	query += ` ORDER BY ` + strings.Join(order, ", ")

	if q.Take > 0 {
		args = append(args, q.Take)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if q.Skip > 0 {
		args = append(args, q.Skip)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return result, nil
}

func (r *PostgresRepository) SetPasswordCode(ctx context.Context, id, code string, expiresAt time.Time) error {
	query := `
		UPDATE users SET password_code = $2, password_code_expires_at = $3
		WHERE id = $1 AND is_deleted = false
	`
	res, err := r.db.ExecContext(ctx, query, id, code, expiresAt)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) FindByPasswordCode(ctx context.Context, code string) (*models.User, error) {
	query := `SELECT ` + columns + `, password_code, password_code_expires_at FROM users WHERE password_code = $1 AND is_deleted = false`
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, code).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.PictureURI, &u.Role,
		&u.PublicKey, &u.DerivedSalt, &u.LastAccessAt, &u.CreatedAt, &u.UpdatedAt, &u.IsDeleted,
		&u.PasswordCode, &u.PasswordCodeExpiresAt)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	return u, nil
}

func (r *PostgresRepository) ResetPassword(ctx context.Context, id, passwordHash string) error {
	query := `
		UPDATE users SET
			password = $2,
			password_code = NULL,
			password_code_expires_at = NULL,
			updated_at = now()
		WHERE id = $1 AND is_deleted = false
	`
	res, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return dbx.Wrap(err)
	}
	return dbx.ExpectOne(res, common.ErrorNotFound)
}

func (r *PostgresRepository) Follow(ctx context.Context, followerID, followingID string) error {
	query := `
		INSERT INTO user_followers (follower_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, following_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, followerID, followingID); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}

func (r *PostgresRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM user_followers WHERE follower_id = $1 AND following_id = $2`
	if _, err := r.db.ExecContext(ctx, query, followerID, followingID); err != nil {
		return dbx.Wrap(err)
	}
	return nil
}

func (r *PostgresRepository) Followers(ctx context.Context, userID string) ([]string, error) {
	return r.ids(ctx, `SELECT follower_id FROM user_followers WHERE following_id = $1`, userID)
}

func (r *PostgresRepository) Following(ctx context.Context, userID string) ([]string, error) {
	return r.ids(ctx, `SELECT following_id FROM user_followers WHERE follower_id = $1`, userID)
}

func (r *PostgresRepository) ids(ctx context.Context, query string, arg string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return ids, nil
}

var _ Repository = (*PostgresRepository)(nil)
