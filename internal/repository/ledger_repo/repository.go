package ledger_repo

import (
	"context"
	"errors"
	"fmt"

	"dice_backend/internal/model"
	"dice_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table        = "transactions"
	colID        = "id"
	colUserID    = "user_id"
	colValue     = "value"
	colType      = "type"
	colCreatedAt = "created_at"

	// advisory lock namespace for per-player round serialization
	lockNamespace = 7301
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLedgerRepository(dbc *pgxpool.Pool) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// LockPlayer - transaction scoped lock on the player's ledger. Must be
// called inside a transaction, it is released on commit or rollback.
func (r *repo) LockPlayer(ctx context.Context, userID int) error {
	_, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, "SELECT pg_advisory_xact_lock($1, $2)", lockNamespace, userID)
	if err != nil {
		return fmt.Errorf("lock player %d: %w", userID, err)
	}
	return nil
}

// Record - appends one entry
func (r *repo) Record(ctx context.Context, userID int, value decimal.Decimal, kind model.TransactionKind) error {
	query := psql.Insert(table).
		Columns(colUserID, colValue, colType).
		Values(userID, sq.Expr("?::numeric", value.String()), string(kind))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("record %s: %w", kind, err)
	}
	return nil
}

// Balance - sum of all entries, zero when there are none
func (r *repo) Balance(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := psql.Select("COALESCE(SUM(" + colValue + "), 0)::text").
		From(table).
		Where(sq.Eq{colUserID: userID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var sum string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromString(sum)
}

// HasTransactions - whether the player has any entry
func (r *repo) HasTransactions(ctx context.Context, userID int) (bool, error) {
	query := psql.Select("1").
		From(table).
		Where(sq.Eq{colUserID: userID}).
		Limit(1)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// History - newest entries first
func (r *repo) History(ctx context.Context, userID int, limit int) ([]model.Transaction, error) {
	query := psql.Select(colID, colUserID, colValue+"::text", colType, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var (
			t     model.Transaction
			value string
			kind  string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &value, &kind, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Value, err = decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("parse ledger value %q: %w", value, err)
		}
		t.Kind = model.TransactionKind(kind)
		out = append(out, t)
	}

	return out, rows.Err()
}
