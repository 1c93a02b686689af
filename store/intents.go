package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Intent is a write-ahead record for a multi-collection commit. There is no
// cross-collection transaction, so settlement declares its intent before
// writing and completes it after the last step. An intent left pending
// marks a partially-applied commit needing manual reconciliation; it is
// reported, never silently replayed (replaying could double-apply).
type Intent struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

func (tx *Tx) BeginIntent(kind string, payload any) (int64, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("encode intent: %w", err)
	}
	res, err := tx.s.db.Exec(`
		INSERT INTO settlement_intents (kind, payload, created_at) VALUES (?, ?, ?)`,
		kind, string(data), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("begin intent: %w", err)
	}
	return res.LastInsertId()
}

func (tx *Tx) CompleteIntent(id int64) error {
	_, err := tx.s.db.Exec(`
		UPDATE settlement_intents SET completed_at = ? WHERE id = ?`,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("complete intent %d: %w", id, err)
	}
	return nil
}

// PendingIntents returns commits that started but never finished.
func (s *Store) PendingIntents() ([]Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT id, kind, payload, created_at FROM settlement_intents
		WHERE completed_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pending intents: %w", err)
	}
	defer rows.Close()

	var intents []Intent
	for rows.Next() {
		var it Intent
		if err := rows.Scan(&it.ID, &it.Kind, &it.Payload, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan intent: %w", err)
		}
		intents = append(intents, it)
	}
	return intents, rows.Err()
}
