package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Prepare(query string) (*sql.Stmt, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Store persists ledger snapshots in a sqlite database.
type Store struct {
	db DBTX
}

func NewStore(dbPath string, migrationsFS fs.FS) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

// SaveSnapshot replaces the stored ledger with the given snapshot inside a
// single SQL transaction. Either the whole snapshot lands or nothing does.
func (s *Store) SaveSnapshot(snap *Snapshot) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("SaveSnapshot cannot be called within an existing transaction")
	}

	dbTx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start database transaction : %w", err)
	}
	defer dbTx.Rollback()

	for _, table := range []string{"transactions", "accounts", "ledger_state"} {
		if _, err := dbTx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s : %w", table, err)
		}
	}

	_, err = dbTx.Exec(`
		INSERT INTO ledger_state (id, next_id, selected_id, saved_at)
		VALUES (1, ?, ?, ?);
	`, snap.NextID, snap.SelectedID, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to insert ledger state : %w", err)
	}

	stmtAcc, err := dbTx.Prepare(`
		INSERT INTO accounts (id, kind, balance)
		VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare account SQL : %w", err)
	}
	defer stmtAcc.Close()

	stmtTx, err := dbTx.Prepare(`
		INSERT INTO transactions (account_id, seq, tx_date, amount, system_entry)
		VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction SQL : %w", err)
	}
	defer stmtTx.Close()

	for _, acc := range snap.Accounts {
		if _, err := stmtAcc.Exec(acc.ID, acc.Kind, acc.Balance); err != nil {
			return fmt.Errorf("failed to insert account %d : %w", acc.ID, err)
		}
		for seq, tx := range acc.History {
			if _, err := stmtTx.Exec(acc.ID, seq, tx.Date, tx.Amount, tx.System); err != nil {
				return fmt.Errorf("failed to insert transaction : %w", err)
			}
		}
	}

	return dbTx.Commit()
}

// LoadSnapshot reconstructs the last saved snapshot, or ErrNoSnapshot when
// nothing has been saved yet.
func (s *Store) LoadSnapshot() (*Snapshot, error) {
	snap := &Snapshot{}

	err := s.db.QueryRow(`
		SELECT next_id, selected_id
		FROM ledger_state
		WHERE id = 1
	`).Scan(&snap.NextID, &snap.SelectedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to query ledger state : %w", err)
	}

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}
	snap.Accounts = accounts

	return snap, nil
}

func (s *Store) loadAccounts() ([]AccountRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, kind, balance
		FROM accounts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts : %w", err)
	}
	defer rows.Close()

	var accounts []AccountRecord
	for rows.Next() {
		var acc AccountRecord
		if err := rows.Scan(&acc.ID, &acc.Kind, &acc.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account : %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range accounts {
		history, err := s.loadHistory(accounts[i].ID)
		if err != nil {
			return nil, err
		}
		accounts[i].History = history
	}

	return accounts, nil
}

func (s *Store) loadHistory(accountID int) ([]TransactionRecord, error) {
	rows, err := s.db.Query(`
		SELECT tx_date, amount, system_entry
		FROM transactions
		WHERE account_id = ?
		ORDER BY seq
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions : %w", err)
	}
	defer rows.Close()

	var history []TransactionRecord
	for rows.Next() {
		var tx TransactionRecord
		if err := rows.Scan(&tx.Date, &tx.Amount, &tx.System); err != nil {
			return nil, fmt.Errorf("failed to scan transaction : %w", err)
		}
		history = append(history, tx)
	}

	return history, rows.Err()
}
