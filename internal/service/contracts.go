package service

import (
	"context"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
)

// WordCorpus supplies the immutable vocabulary list loaded at startup.
type WordCorpus interface {
	GetAll() []entities.Word
}

// SessionCatalog supplies the declarative level/descriptor structure.
type SessionCatalog interface {
	Levels() []entities.Level
}

// CompletionStore is the only durable state the application owns: the set of
// completed session ids plus one progress record per session. A missing
// progress record reads back as the zero record.
type CompletionStore interface {
	GetCompletedIDs(ctx context.Context) ([]string, error)
	SetCompletedIDs(ctx context.Context, ids []string) error
	GetProgress(ctx context.Context, sessionID string) (entities.SessionProgress, error)
	SetProgress(ctx context.Context, sessionID string, p entities.SessionProgress) error
	ClearAll(ctx context.Context) error
}
