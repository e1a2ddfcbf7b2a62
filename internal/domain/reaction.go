package domain

import "context"

// ReactionKind distinguishes likes from saves.
type ReactionKind string

const (
	ReactionLike ReactionKind = "like"
	ReactionSave ReactionKind = "save"
)

// ReactionRepository stores per-user reactions on entries. Each (kind, entry, user) exists at most once.
type ReactionRepository interface {
	Exists(ctx context.Context, kind ReactionKind, entryID, userID string) (bool, error)
	Add(ctx context.Context, kind ReactionKind, entryID, userID string) error
	Remove(ctx context.Context, kind ReactionKind, entryID, userID string) error
}

// ReactionService toggles reactions.
type ReactionService interface {
	// Toggle adds the reaction when absent and removes it when present. It returns the resulting state.
	Toggle(ctx context.Context, kind ReactionKind, entryID, userID string) (active bool, err error)
}
