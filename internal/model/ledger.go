package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind - reason of a ledger entry
type TransactionKind string

const (
	KindInit TransactionKind = "Init"
	KindBet  TransactionKind = "Bet"
	KindWin  TransactionKind = "Win"
)

// Transaction - immutable ledger entry, balance is the sum of values
type Transaction struct {
	ID        int64
	UserID    int
	Value     decimal.Decimal
	Kind      TransactionKind
	CreatedAt time.Time
}
