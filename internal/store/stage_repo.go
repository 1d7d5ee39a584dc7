package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/kotoba/internal/stage"
)

// LoadStageState reads the persisted learner stage state, or the gate's
// initial state if none has been saved yet.
func (s *DB) LoadStageState(g *stage.Gate) (stage.State, error) {
	var row struct {
		CurrentStage string `db:"current_stage"`
		Completed    string `db:"completed"`
	}
	err := s.db.Get(&row, `SELECT current_stage, completed FROM stage_state WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return g.NewState(), nil
	}
	if err != nil {
		return stage.State{}, fmt.Errorf("load stage state: %w", err)
	}

	var completedIDs []string
	if err := json.Unmarshal([]byte(row.Completed), &completedIDs); err != nil {
		return stage.State{}, fmt.Errorf("parse completed stages: %w", err)
	}

	state := stage.State{
		Current:   row.CurrentStage,
		Completed: make(map[string]bool, len(completedIDs)),
	}
	for _, id := range completedIDs {
		state.Completed[id] = true
	}
	return state, nil
}

// SaveStageState upserts the learner stage state.
func (s *DB) SaveStageState(state stage.State) error {
	completedIDs := make([]string, 0, len(state.Completed))
	for id, done := range state.Completed {
		if done {
			completedIDs = append(completedIDs, id)
		}
	}
	raw, err := json.Marshal(completedIDs)
	if err != nil {
		return fmt.Errorf("marshal completed stages: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO stage_state (id, current_stage, completed)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			current_stage = excluded.current_stage,
			completed = excluded.completed`,
		state.Current, string(raw))
	if err != nil {
		return fmt.Errorf("save stage state: %w", err)
	}
	return nil
}
