package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ipe/internal/domain"
)

type reactionRepository struct {
	DB *sql.DB
}

func NewReactionRepository(db *sql.DB) domain.ReactionRepository {
	return &reactionRepository{DB: db}
}

// reactionTable maps a kind to its table. Table names never come from input.
func reactionTable(kind domain.ReactionKind) (string, error) {
	switch kind {
	case domain.ReactionLike:
		return "likes", nil
	case domain.ReactionSave:
		return "saves", nil
	default:
		return "", fmt.Errorf("%w: unknown reaction %q", domain.ErrInvalidInput, kind)
	}
}

func (r *reactionRepository) Exists(ctx context.Context, kind domain.ReactionKind, entryID, userID string) (bool, error) {
	table, err := reactionTable(kind)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE entry_id = $1 AND user_id = $2)`, table)
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, entryID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reactionRepository) Add(ctx context.Context, kind domain.ReactionKind, entryID, userID string) error {
	table, err := reactionTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (entry_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, entry_id) DO NOTHING
	`, table)
	_, err = r.DB.ExecContext(ctx, query, entryID, userID)
	return err
}

func (r *reactionRepository) Remove(ctx context.Context, kind domain.ReactionKind, entryID, userID string) error {
	table, err := reactionTable(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE entry_id = $1 AND user_id = $2`, table)
	_, err = r.DB.ExecContext(ctx, query, entryID, userID)
	return err
}
