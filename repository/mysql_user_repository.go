package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"DistroFM/model"

	"github.com/google/uuid"
)

// mysqlUserRepository implements UserRepository for MySQL.
type mysqlUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a MySQL-backed user repository.
func NewMySQLUserRepository(db *sql.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

// CreateUser inserts a new user. The username column carries a unique
// index; a duplicate key error maps to ErrDuplicateUser.
func (r *mysqlUserRepository) CreateUser(user *model.User) (*model.User, error) {
	stmt, err := r.db.Prepare(`INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare create user statement: %w", err)
	}
	defer stmt.Close()

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	_, err = stmt.Exec(stored.ID, stored.Username, stored.PasswordHash, stored.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to execute create user statement: %w", err)
	}
	return &stored, nil
}

func (r *mysqlUserRepository) GetUserByID(id string) (*model.User, error) {
	row := r.db.QueryRow(`SELECT id, username, password_hash, created_at FROM users WHERE id = ?`, id)
	return scanUser(row, id)
}

func (r *mysqlUserRepository) GetUserByUsername(username string) (*model.User, error) {
	row := r.db.QueryRow(`SELECT id, username, password_hash, created_at FROM users WHERE username = ?`, username)
	return scanUser(row, username)
}

func scanUser(row *sql.Row, key string) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user %s: %w", key, err)
	}
	return u, nil
}
