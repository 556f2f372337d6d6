package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// DB wraps the pgx connection pool the contact source reads from
type DB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// Config holds database configuration
type Config struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	ContactsTable   string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// NewConfig reads DB_* environment variables, falling back to local defaults
func NewConfig() *Config {
	v := viper.New()
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "contacts")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_contacts_table", "contacts")
	v.SetDefault("db_max_conns", 10)
	v.SetDefault("db_min_conns", 1)
	v.SetDefault("db_max_conn_lifetime", 5*time.Minute)
	v.SetDefault("db_max_conn_idle_time", 30*time.Minute)
	v.AutomaticEnv()

	return &Config{
		Host:            v.GetString("db_host"),
		Port:            v.GetInt("db_port"),
		User:            v.GetString("db_user"),
		Password:        v.GetString("db_password"),
		Database:        v.GetString("db_name"),
		SSLMode:         v.GetString("db_sslmode"),
		ContactsTable:   v.GetString("db_contacts_table"),
		MaxConns:        v.GetInt32("db_max_conns"),
		MinConns:        v.GetInt32("db_min_conns"),
		MaxConnLifetime: v.GetDuration("db_max_conn_lifetime"),
		MaxConnIdleTime: v.GetDuration("db_max_conn_idle_time"),
	}
}

// DSN renders the libpq connection string for cfg
func (cfg *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)
}

// New creates a new database connection pool using pgx
func New(cfg *Config, logger *zap.Logger) (*DB, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection pool established",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database),
		zap.Int32("max_conns", cfg.MaxConns))

	return &DB{
		pool:   pool,
		logger: logger,
	}, nil
}

// Close closes the database connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Pool returns the underlying connection pool
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}
