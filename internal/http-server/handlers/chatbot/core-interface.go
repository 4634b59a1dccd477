package chatbot

import (
	"context"

	"Bricklix/entity"
)

type Core interface {
	OpenChat(ctx context.Context, sessionID string) (*entity.ChatView, error)
	CloseChat(ctx context.Context, sessionID string) error
	GetChat(ctx context.Context, sessionID string) (*entity.ChatView, error)
	ResetChat(ctx context.Context, sessionID string) error
	ChatText(ctx context.Context, sessionID, text string) (*entity.ChatView, error)
	ChatAction(ctx context.Context, sessionID, kind, detailID, serviceName, label string) (*entity.ChatView, error)
}
