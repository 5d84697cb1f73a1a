package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB opens the index database through a pgx pool, instruments it with otelsql,
// applies the embedded migrations and registers the *sql.DB in the dependency container.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger   `resolve:""`
	DBUser             string        `config:"DB_USER"`
	DBPass             string        `config:"DB_PASS"`
	DBHost             string        `config:"DB_HOST"`
	DBPort             string        `config:"DB_PORT" default:"5432"`
	DBName             string        `config:"DB_NAME"`
	DBSSLMode          string        `config:"DB_SSL_MODE" default:"disable"`
	DBMaxConns         int           `config:"DB_MAX_CONNS" default:"10"`
	DBMaxConnIdleTime  time.Duration `config:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
}

// dsn builds the connection URL; credentials are escaped so passwords may carry any character.
func (di *InitDB) dsn() string {
	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(di.DBUser, di.DBPass),
		Host:     net.JoinHostPort(di.DBHost, di.DBPort),
		Path:     di.DBName,
		RawQuery: url.Values{"sslmode": []string{di.DBSSLMode}}.Encode(),
	}).String()
}

// poolConfig parses the DSN and applies pool limits. Every new connection
// registers the pgvector types before use.
func (di *InitDB) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(di.dsn())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	if di.DBMaxConns > 0 {
		cfg.MaxConns = int32(di.DBMaxConns)
	}
	if di.DBMaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = di.DBMaxConnIdleTime
	}
	cfg.AfterConnect = func(ctx context.Context, pgconn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, pgconn)
	}
	return cfg, nil
}

// Initialize opens the pool, applies migrations and registers the *sql.DB.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	cfg, err := di.poolConfig()
	if err != nil {
		return ctx, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	dbSystemAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)

	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbSystemAttributes,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(di.Logger)),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(
		di.db,
		dbSystemAttributes,
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := di.runMigrations(); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	depend.Register(di.db)

	return ctx, nil
}

func (di *InitDB) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	di.Logger.Printf("InitDB: schema at version %d (dirty=%t)", version, dirty)
	return nil
}

// Close releases the database and its metric registration.
func (di *InitDB) Close() {
	if di.db != nil {
		if err := di.db.Close(); err != nil {
			di.Logger.Printf("InitDB: failed to close database connection: %v", err)
		}
		if di.metricRegistration != nil {
			if err := di.metricRegistration.Unregister(); err != nil {
				di.Logger.Printf("InitDB: failed to unregister metric registration: %v", err)
			}
		}
	}
}

func withQueryAttributes(logger *log.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}
		var attrs []attribute.KeyValue

		operations, tables := extractSQLOperation(logger, query)
		if len(operations) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(strings.TrimSpace(strings.Join(operations, ",")+" "+strings.Join(tables, ","))))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}
		return attrs
	}
}

// extractSQLOperation extracts the primary SQL operation and target tables from a query.
func extractSQLOperation(logger *log.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		logger.Printf("InitDB: failed to summarize query: %v", err)
		return nil, nil
	}

	return meta.Commands, meta.Tables
}
