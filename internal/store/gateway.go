package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/codegenio/codegenio/internal/state"
)

const activeAccountKey = "active_account"

var _ state.Gateway = (*Store)(nil)

// LoadActiveAccountState reads the active-account pointer and resolves
// it to that account's stored snapshot. Missing pointer, missing row
// and corrupt JSON all yield (nil, nil): callers treat every such case
// as a cold start.
func (s *Store) LoadActiveAccountState() (*state.AppState, error) {
	email, err := s.activeAccount()
	if err != nil {
		return nil, fmt.Errorf("read active account: %w", err)
	}
	if email == "" {
		return nil, nil
	}
	return s.AccountState(email)
}

// AccountState returns the stored snapshot for email, or nil when the
// account is unknown or its stored state cannot be decoded.
func (s *Store) AccountState(email string) (*state.AppState, error) {
	query, args, err := sq.Select("state").
		From("account_states").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var raw string
	err = s.db.QueryRow(query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query account state: %w", err)
	}

	var st state.AppState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		// Corrupt snapshot: treat as absent rather than failing the
		// session start.
		return nil, nil
	}
	return &st, nil
}

// SaveAccountState upserts the whole snapshot for email. There is no
// partial merge; the stored entry is always fully overwritten.
func (s *Store) SaveAccountState(email string, st state.AppState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode account state: %w", err)
	}

	query, args, err := sq.Insert("account_states").
		Columns("email", "state").
		Values(email, string(raw)).
		Suffix("ON CONFLICT(email) DO UPDATE SET state = excluded.state").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("save account state: %w", err)
	}
	return nil
}

// SetActiveAccount sets or, with an empty email, clears the
// active-account pointer.
func (s *Store) SetActiveAccount(email string) error {
	if email == "" {
		query, args, err := sq.Delete("app_settings").
			Where(sq.Eq{"key": activeAccountKey}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}
		if _, err := s.db.Exec(query, args...); err != nil {
			return fmt.Errorf("clear active account: %w", err)
		}
		return nil
	}

	query, args, err := sq.Insert("app_settings").
		Columns("key", "value").
		Values(activeAccountKey, email).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("set active account: %w", err)
	}
	return nil
}

// AccountExists reports whether email has an entry in the
// account-state map. The login flow branches on this between
// "sign in" and "register".
func (s *Store) AccountExists(email string) (bool, error) {
	query, args, err := sq.Select("1").
		From("account_states").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = s.db.QueryRow(query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query account: %w", err)
	}
	return true, nil
}

func (s *Store) activeAccount() (string, error) {
	query, args, err := sq.Select("value").
		From("app_settings").
		Where(sq.Eq{"key": activeAccountKey}).
		ToSql()
	if err != nil {
		return "", err
	}

	var email string
	err = s.db.QueryRow(query, args...).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}
