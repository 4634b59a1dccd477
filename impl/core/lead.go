package core

import (
	"context"
	"fmt"
	"time"

	"Bricklix/entity"
	"Bricklix/internal/lib/sl"
)

// SubmitLead runs the pipeline for a lead captured by the chatbot. The email
// is the one mandatory delivery; archiving and admin notification are best
// effort and never fail the conversation.
func (c *Core) SubmitLead(ctx context.Context, lead entity.Lead) error {
	return c.processLead(ctx, lead, entity.LeadSourceChatbot)
}

// CreateLead runs the same pipeline for a lead posted directly by the site.
func (c *Core) CreateLead(ctx context.Context, lead entity.Lead) error {
	return c.processLead(ctx, lead, entity.LeadSourceForm)
}

func (c *Core) processLead(ctx context.Context, lead entity.Lead, source string) error {
	if c.mail == nil {
		return fmt.Errorf("mail service is not set")
	}

	if err := c.mail.SubmitLead(ctx, lead); err != nil {
		return err
	}

	record := &entity.LeadRecord{
		Lead:      lead,
		Source:    source,
		CreatedAt: time.Now(),
	}

	if c.repo != nil {
		if err := c.repo.InsertLead(ctx, record); err != nil {
			c.log.With(
				sl.Err(err),
			).Error("archive lead")
		}
	}

	if c.notifier != nil {
		go c.notifier.NotifyLead(record)
	}

	return nil
}

// SendInquiry forwards a contact-form inquiry to the sales inbox.
func (c *Core) SendInquiry(ctx context.Context, inq entity.Inquiry) error {
	if c.mail == nil {
		return fmt.Errorf("mail service is not set")
	}
	return c.mail.SendInquiry(ctx, inq)
}

// ListLeads returns archived leads for the admin surface.
func (c *Core) ListLeads(ctx context.Context, limit, offset int64) ([]entity.LeadRecord, error) {
	if c.repo == nil {
		return nil, fmt.Errorf("repository is not set")
	}
	return c.repo.ListLeads(ctx, limit, offset)
}

// CheckApiKey validates an admin key against the static config key or the
// repository, caching repository hits.
func (c *Core) CheckApiKey(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("api key is required")
	}

	if c.authKey != "" && key == c.authKey {
		return "admin", nil
	}

	c.keysMu.Lock()
	username, ok := c.keys[key]
	c.keysMu.Unlock()
	if ok {
		return username, nil
	}

	if c.repo == nil {
		return "", fmt.Errorf("api key not found")
	}

	username, err := c.repo.CheckApiKey(key)
	if err != nil {
		return "", err
	}

	c.keysMu.Lock()
	c.keys[key] = username
	c.keysMu.Unlock()
	return username, nil
}

// GenerateApiKey returns or mints an admin key for the username.
func (c *Core) GenerateApiKey(username string) (string, error) {
	if c.repo == nil {
		return "", fmt.Errorf("repository is not set")
	}

	apiKey, err := c.repo.GenerateApiKey(username)
	if err != nil {
		return "", fmt.Errorf("failed to generate API key: %w", err)
	}

	c.keysMu.Lock()
	c.keys[apiKey] = username
	c.keysMu.Unlock()
	return apiKey, nil
}

// Init starts the nightly cleanup: expired snapshots are purged from the
// database and sessions idle for over a day are dropped from the engine's
// in-process cache.
func (c *Core) Init() {
	go func() {
		for {
			now := time.Now()
			nextRun := time.Date(now.Year(), now.Month(), now.Day(), 3, 0, 0, 0, now.Location())
			if now.After(nextRun) {
				nextRun = nextRun.Add(24 * time.Hour)
			}

			time.Sleep(time.Until(nextRun))

			if c.engine != nil {
				if evicted := c.engine.EvictIdle(24 * time.Hour); evicted > 0 {
					c.log.Info(fmt.Sprintf("evicted %d idle sessions from cache", evicted))
				}
			}

			if c.repo == nil {
				continue
			}
			removed, err := c.repo.CleanupSessions(context.Background())
			if err != nil {
				c.log.With(
					sl.Err(err),
				).Error("cleanup sessions")
				continue
			}
			if removed > 0 {
				c.log.Info(fmt.Sprintf("removed %d expired sessions", removed))
			}
		}
	}()
}
