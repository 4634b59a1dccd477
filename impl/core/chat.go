package core

import (
	"context"
	"fmt"

	"Bricklix/bot/chat"
	"Bricklix/entity"
)

func chatView(s *chat.Session) *entity.ChatView {
	return &entity.ChatView{
		SessionID:   s.ID,
		IsOpen:      s.IsOpen,
		Messages:    s.Messages,
		CurrentStep: string(s.CurrentStep),
		DetailID:    s.DetailID,
		InputLocked: s.InputLocked,
		Busy:        s.Busy,
		CanGoBack:   s.CanGoBack(),
		Actions:     chat.AvailableActions(s),
	}
}

// OpenChat opens (or resumes) the widget session.
func (c *Core) OpenChat(ctx context.Context, sessionID string) (*entity.ChatView, error) {
	if c.engine == nil {
		return nil, fmt.Errorf("chat engine is not set")
	}
	s, err := c.engine.Open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return chatView(s), nil
}

// CloseChat collapses the widget without losing the transcript.
func (c *Core) CloseChat(ctx context.Context, sessionID string) error {
	if c.engine == nil {
		return fmt.Errorf("chat engine is not set")
	}
	return c.engine.Close(ctx, sessionID)
}

// GetChat returns the current session state.
func (c *Core) GetChat(ctx context.Context, sessionID string) (*entity.ChatView, error) {
	if c.engine == nil {
		return nil, fmt.Errorf("chat engine is not set")
	}
	s, err := c.engine.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return chatView(s), nil
}

// ResetChat discards the session.
func (c *Core) ResetChat(ctx context.Context, sessionID string) error {
	if c.engine == nil {
		return fmt.Errorf("chat engine is not set")
	}
	return c.engine.Reset(ctx, sessionID)
}

// ChatText handles a free-text turn.
func (c *Core) ChatText(ctx context.Context, sessionID, text string) (*entity.ChatView, error) {
	if c.engine == nil {
		return nil, fmt.Errorf("chat engine is not set")
	}
	s, err := c.engine.HandleText(ctx, sessionID, text)
	if err != nil {
		if s != nil {
			return chatView(s), err
		}
		return nil, err
	}
	return chatView(s), nil
}

// ChatAction handles a quick-action click.
func (c *Core) ChatAction(ctx context.Context, sessionID, kind, detailID, serviceName, label string) (*entity.ChatView, error) {
	if c.engine == nil {
		return nil, fmt.Errorf("chat engine is not set")
	}
	action, err := chat.ParseAction(kind, detailID, serviceName)
	if err != nil {
		return nil, err
	}
	s, err := c.engine.HandleAction(ctx, sessionID, action, label)
	if err != nil {
		if s != nil {
			return chatView(s), err
		}
		return nil, err
	}
	return chatView(s), nil
}
