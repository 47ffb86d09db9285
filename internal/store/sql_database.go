package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/migrations"
)

const (
	maxRetries       = 3
	retryBaseBackoff = 50 * time.Millisecond
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a *sql.DB bound to one SQL dialect. It carries the squirrel
// placeholder format, the goose dialect and the driver error classifier
// used to retry transient failures.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	newBackoff         func() retry.Backoff
	logger             *logger.Logger
}

// NewConnect opens the backend selected by dsn: postgres:// and
// postgresql:// URLs go through pgx, anything else is a SQLite file path.
func NewConnect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(dsn):
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded goose migrations for the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func defaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBaseBackoff))
}

// withRetry runs op and repeats it while the classifier reports the error as
// [Retryable], up to maxRetries extra attempts.
func withRetry[T any](ctx context.Context, db *DB, funcName string, op func(ctx context.Context) (T, error)) (T, error) {
	defer observe(funcName, time.Now())

	attempt := 0
	return retry.DoValue(ctx, db.newBackoff(), func(ctx context.Context) (T, error) {
		attempt++
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}

		if db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().
				Err(err).
				Str("func", funcName).
				Int("attempt", attempt).
				Msg("retryable database error")
			return v, retry.RetryableError(err)
		}

		return v, err
	})
}

func observe(op string, start time.Time) {
	QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func wrapQueryErr(err error) error {
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
