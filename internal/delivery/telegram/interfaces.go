package telegram

import (
	"context"

	"github.com/haneulbit/korean-vocab-bot/internal/domain/entities"
	"github.com/haneulbit/korean-vocab-bot/internal/service"
)

// WordSource supplies single words outside any session, for the /word
// random-card command.
type WordSource interface {
	GetRandom() (entities.Word, error)
}

// Registry is the narrow interface the bot consumes: read queries plus the
// two progress write operations and reset.
type Registry interface {
	GetSession(id string) (*entities.Session, error)
	GetAllSessions() []*entities.Session
	GetRecommendedSessions() []*entities.Session
	GetNextRecommendedSession() (*entities.Session, error)
	SearchSessions(query string) []*entities.Session
	GetProgressStats() service.ProgressStats
	GetProgress(id string) entities.SessionProgress
	IsCompleted(id string) bool

	MarkCompleted(ctx context.Context, id string)
	UpdateProgress(ctx context.Context, id string, p entities.SessionProgress)
	ResetProgress(ctx context.Context)
}
