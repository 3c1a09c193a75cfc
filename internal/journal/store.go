package journal

import (
	"database/sql"
	"fmt"
	"math"
	"sync"
	"time"

	"TradeCompass/internal/model"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// Store persists trade records to a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the journal database and runs migrations.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("journal store opened")
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trades (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			ticker           TEXT NOT NULL,
			entry_price      REAL,
			stop_loss        REAL,
			take_profit      REAL,
			lots             INTEGER,
			capital          REAL,
			risk_percent     REAL,
			rrr              REAL,
			potential_profit REAL,
			potential_loss   REAL,
			checklist_score  INTEGER,
			decision         TEXT,
			notes            TEXT,
			exit_price       REAL DEFAULT 0,
			realized_pnl     REAL DEFAULT 0,
			status           TEXT DEFAULT 'OPEN'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_ts ON trades(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_ticker ON trades(ticker)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Save inserts a new trade record and returns its id.
func (s *Store) Save(rec *model.TradeRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	status := rec.Status
	if status == "" {
		status = model.TradeOpen
	}

	res, err := s.db.Exec(`INSERT INTO trades
		(timestamp, ticker, entry_price, stop_loss, take_profit, lots, capital,
		 risk_percent, rrr, potential_profit, potential_loss, checklist_score,
		 decision, notes, exit_price, realized_pnl, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		ts.Unix(), rec.Ticker, rec.EntryPrice, rec.StopLoss, rec.TakeProfit,
		rec.Lots, rec.Capital, rec.RiskPercent, rec.RRR,
		rec.PotentialWin, rec.PotentialLoss, rec.ChecklistScore,
		string(rec.Decision), rec.Notes, rec.ExitPrice, rec.RealizedPnL, string(status),
	)
	if err != nil {
		return 0, fmt.Errorf("insert trade: %w", err)
	}
	return res.LastInsertId()
}

// List returns all trades, oldest first.
func (s *Store) List() ([]model.TradeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, timestamp, ticker, entry_price, stop_loss,
		take_profit, lots, capital, risk_percent, rrr, potential_profit,
		potential_loss, checklist_score, decision, notes, exit_price,
		realized_pnl, status
		FROM trades ORDER BY timestamp ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var out []model.TradeRecord
	for rows.Next() {
		var rec model.TradeRecord
		var ts int64
		var decision, status string
		if err := rows.Scan(&rec.ID, &ts, &rec.Ticker, &rec.EntryPrice, &rec.StopLoss,
			&rec.TakeProfit, &rec.Lots, &rec.Capital, &rec.RiskPercent, &rec.RRR,
			&rec.PotentialWin, &rec.PotentialLoss, &rec.ChecklistScore,
			&decision, &rec.Notes, &rec.ExitPrice, &rec.RealizedPnL, &status); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0)
		rec.Decision = model.Verdict(decision)
		rec.Status = model.TradeStatus(status)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// bepBand: a realized PnL within this fraction of position value closes as
// break-even rather than a win or loss.
const bepBand = 0.001

// Close records the exit of an open trade, computing realized PnL from the
// exit price and classifying the outcome as WIN, LOSS, or BEP.
func (s *Store) Close(id int64, exitPrice float64) (*model.TradeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`SELECT entry_price, lots, status FROM trades WHERE id = ?`, id)
	var entry float64
	var lots int
	var status string
	if err := row.Scan(&entry, &lots, &status); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: trade %d not found", model.ErrInvalidInput, id)
		}
		return nil, fmt.Errorf("load trade: %w", err)
	}
	if model.TradeStatus(status) != model.TradeOpen {
		return nil, fmt.Errorf("%w: trade %d already closed", model.ErrInvalidInput, id)
	}

	shares := float64(lots * 100)
	pnl := (exitPrice - entry) * shares
	newStatus := model.TradeWin
	switch {
	case math.Abs(pnl) <= entry*shares*bepBand:
		newStatus = model.TradeBEP
	case pnl < 0:
		newStatus = model.TradeLoss
	}

	if _, err := s.db.Exec(`UPDATE trades SET exit_price = ?, realized_pnl = ?, status = ? WHERE id = ?`,
		exitPrice, pnl, string(newStatus), id); err != nil {
		return nil, fmt.Errorf("close trade: %w", err)
	}

	return &model.TradeRecord{ID: id, ExitPrice: exitPrice, RealizedPnL: pnl, Status: newStatus}, nil
}

// Close releases the underlying database.
func (s *Store) CloseStore() error {
	log.Info().Msg("closing journal store")
	return s.db.Close()
}
