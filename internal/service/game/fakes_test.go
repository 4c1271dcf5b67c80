package game

import (
	"context"
	"sync"
	"time"

	"dice_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

// txManager runs fn directly; rollback is emulated by the ledger snapshot.
type txManager struct {
	ledger *fakeLedger
}

func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.ledger.mu.Lock()
	snapshot := make(map[int][]model.Transaction, len(m.ledger.rows))
	for k, v := range m.ledger.rows {
		snapshot[k] = append([]model.Transaction(nil), v...)
	}
	m.ledger.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.ledger.mu.Lock()
		m.ledger.rows = snapshot
		m.ledger.mu.Unlock()
		return err
	}
	return nil
}

func (m *txManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type fakeLedger struct {
	mu     sync.Mutex
	rows   map[int][]model.Transaction
	nextID int64
	locks  int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: make(map[int][]model.Transaction)}
}

func (l *fakeLedger) LockPlayer(_ context.Context, _ int) error {
	l.mu.Lock()
	l.locks++
	l.mu.Unlock()
	return nil
}

func (l *fakeLedger) Record(_ context.Context, userID int, value decimal.Decimal, kind model.TransactionKind) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.rows[userID] = append(l.rows[userID], model.Transaction{
		ID:        l.nextID,
		UserID:    userID,
		Value:     value,
		Kind:      kind,
		CreatedAt: time.Unix(l.nextID, 0),
	})
	return nil
}

func (l *fakeLedger) Balance(_ context.Context, userID int) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := decimal.Zero
	for _, t := range l.rows[userID] {
		sum = sum.Add(t.Value)
	}
	return sum, nil
}

func (l *fakeLedger) HasTransactions(_ context.Context, userID int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rows[userID]) > 0, nil
}

func (l *fakeLedger) History(_ context.Context, userID int, limit int) ([]model.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rows := l.rows[userID]
	out := make([]model.Transaction, 0, limit)
	for i := len(rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, rows[i])
	}
	return out, nil
}

func (l *fakeLedger) entries(userID int) []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.Transaction(nil), l.rows[userID]...)
}

type fakeStats struct {
	rounds int
	bet    float64
	payout float64
}

func (s *fakeStats) UpdateState(bet, payout float64) {
	s.rounds++
	s.bet += bet
	s.payout += payout
}

func (s *fakeStats) Check() bool { return false }

func (s *fakeStats) Snapshot() model.MonitorState {
	return model.MonitorState{TotalRounds: int64(s.rounds), TotalBet: s.bet, TotalPayout: s.payout}
}

// scriptedSource replays faces (0-based) in order.
type scriptedSource struct {
	faces []int
	pos   int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.faces[s.pos%len(s.faces)] % n
	s.pos++
	return v
}
