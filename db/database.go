package db

import (
	"database/sql"
	"fmt"

	"DistroFM/config"
	"DistroFM/logger"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var DB *sql.DB

// ConnectDB establishes a connection to the database.
func ConnectDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to the database")
	return nil
}

// InitDB initializes the database schema, creating tables if they don't exist.
func InitDB() error {
	if err := createUsersTable(); err != nil {
		return err
	}
	if err := createTracksTable(); err != nil {
		return err
	}
	logger.Info("Database initialization completed")
	return nil
}

func createUsersTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

func createTracksTable() error {
	// seq preserves insertion order for stable tie-breaking when two
	// tracks share a created_at timestamp.
	query := `
	CREATE TABLE IF NOT EXISTS tracks (
		id CHAR(36) NOT NULL PRIMARY KEY,
		seq BIGINT NOT NULL AUTO_INCREMENT,
		title VARCHAR(255) NOT NULL,
		artist VARCHAR(255) NOT NULL,
		release_date VARCHAR(32) NOT NULL,
		genre VARCHAR(128) NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'pending',
		description TEXT,
		duration VARCHAR(16) NOT NULL DEFAULT '0:00',
		streams BIGINT NOT NULL DEFAULT 0,
		likes BIGINT NOT NULL DEFAULT 0,
		shares BIGINT NOT NULL DEFAULT 0,
		earnings VARCHAR(32) NOT NULL DEFAULT '0.00',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_seq (seq),
		KEY idx_status (status),
		KEY idx_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	if _, err := DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create tracks table: %w", err)
	}
	return nil
}
