package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schema string

type postgresStorage struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

func NewPostgresStorage(db *sqlx.DB) Storage {
	return &postgresStorage{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Migrate creates any missing tables and indexes.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "apply schema")
	}
	return nil
}

// parseError converts driver errors into the storage sentinels and adds context.
func parseError(err error, op, table string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			if table == "users" {
				return errors.Wrapf(ErrDuplicateEmail, "%s %s", op, table)
			}
		case "foreign_key_violation":
			return errors.Wrapf(ErrForeignKey, "%s %s: %s", op, table, pqErr.Constraint)
		}
	}
	slog.Info(err.Error())
	return errors.Wrapf(err, "%s %s", op, table)
}

// get scans a single row into dest. A missing row yields (false, nil).
func (s *postgresStorage) get(ctx context.Context, dest interface{}, b sq.Sqlizer, op, table string) (bool, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return false, errors.Wrapf(err, "%s %s: build query", op, table)
	}
	if err := s.db.GetContext(ctx, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, parseError(err, op, table)
	}
	return true, nil
}

func (s *postgresStorage) selectRows(ctx context.Context, dest interface{}, b sq.Sqlizer, op, table string) error {
	query, args, err := b.ToSql()
	if err != nil {
		return errors.Wrapf(err, "%s %s: build query", op, table)
	}
	if err := s.db.SelectContext(ctx, dest, query, args...); err != nil {
		return parseError(err, op, table)
	}
	return nil
}

func (s *postgresStorage) exec(ctx context.Context, b sq.Sqlizer, op, table string) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, errors.Wrapf(err, "%s %s: build query", op, table)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, parseError(err, op, table)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, parseError(err, op, table)
	}
	return affected, nil
}

func (s *postgresStorage) deleteByID(ctx context.Context, table, id string) (bool, error) {
	affected, err := s.exec(ctx, s.sb.Delete(table).Where(sq.Eq{"id": id}), "delete", table)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
