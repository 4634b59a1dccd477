package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"Bricklix/bot/chat"
	"Bricklix/entity"
	"Bricklix/internal/lib/sl"
)

type Repository interface {
	CheckApiKey(key string) (string, error)
	GenerateApiKey(username string) (string, error)

	InsertLead(ctx context.Context, record *entity.LeadRecord) error
	ListLeads(ctx context.Context, limit, offset int64) ([]entity.LeadRecord, error)
	CleanupSessions(ctx context.Context) (int64, error)
}

type ChatEngine interface {
	Open(ctx context.Context, sessionID string) (*chat.Session, error)
	Close(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*chat.Session, error)
	Reset(ctx context.Context, sessionID string) error
	HandleAction(ctx context.Context, sessionID string, action chat.Action, label string) (*chat.Session, error)
	HandleText(ctx context.Context, sessionID, text string) (*chat.Session, error)
	EvictIdle(maxIdle time.Duration) int
}

type MailService interface {
	SubmitLead(ctx context.Context, lead entity.Lead) error
	SendInquiry(ctx context.Context, inq entity.Inquiry) error
}

type Notifier interface {
	NotifyLead(record *entity.LeadRecord)
}

type Core struct {
	repo     Repository
	engine   ChatEngine
	mail     MailService
	notifier Notifier
	authKey  string
	keysMu   sync.Mutex
	keys     map[string]string
	log      *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log:  log.With(sl.Module("core")),
		keys: make(map[string]string),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetChatEngine(engine ChatEngine) {
	c.engine = engine
}

func (c *Core) SetMailService(mail MailService) {
	c.mail = mail
}

func (c *Core) SetNotifier(notifier Notifier) {
	c.notifier = notifier
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}
