package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already registered")
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

type CreateParams struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
}

func (r *Repository) Create(ctx context.Context, p CreateParams) (*User, error) {
	const q = `
INSERT INTO users (username, email, password_hash, first_name, last_name, phone, address)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, username, email, password_hash, first_name, last_name, phone, address, active, created_at
`
	u := &User{}
	err := r.db.QueryRow(ctx, q,
		p.Username, p.Email, p.PasswordHash, p.FirstName, p.LastName, p.Phone, p.Address,
	).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Phone, &u.Address, &u.Active, &u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return nil, ErrUsernameExists
			case "users_email_key":
				return nil, ErrEmailExists
			}
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return u, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.findBy(ctx, "username = $1", username)
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*User, error) {
	return r.findBy(ctx, "id = $1", id)
}

func (r *Repository) findBy(ctx context.Context, where string, arg any) (*User, error) {
	q := `
SELECT id, username, email, password_hash, first_name, last_name,
       COALESCE(phone,''), COALESCE(address,''), active, created_at
FROM users
WHERE ` + where
	u := &User{}
	err := r.db.QueryRow(ctx, q, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Phone, &u.Address, &u.Active, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
