package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"Bricklix/internal/config"
	"Bricklix/internal/lib/sl"
)

// Client talks to the Gemini generateContent REST endpoint directly. The
// widget needs nothing from the SDK surface, and retrying has to key on the
// raw HTTP status.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
	http       *http.Client
	backoff    func(attempt int) time.Duration
	log        *slog.Logger
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// New creates a Gemini client from the service configuration.
func New(conf *config.Config, log *slog.Logger) *Client {
	return &Client{
		apiKey:     conf.Gemini.ApiKey,
		model:      conf.Gemini.Model,
		baseURL:    conf.Gemini.BaseURL,
		maxRetries: conf.Gemini.MaxRetries,
		http:       &http.Client{Timeout: 60 * time.Second},
		backoff:    defaultBackoff,
		log:        log.With(sl.Module("ai.gemini")),
	}
}

// defaultBackoff grows as 2^n seconds plus up to half a second of jitter,
// counting from the first retry.
func defaultBackoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt-1))*time.Second +
		time.Duration(rand.Intn(500))*time.Millisecond
}

// AnswerQuestion answers a visitor's free-form question, grounded in the
// service catalog.
func (c *Client) AnswerQuestion(ctx context.Context, question string) (string, error) {
	return c.generate(ctx, answerSystemPrompt(), answerUserPrompt(question))
}

// GenerateIdeas produces a short list of project ideas for the named service.
func (c *Client) GenerateIdeas(ctx context.Context, serviceName string) (string, error) {
	return c.generate(ctx, ideasSystemPrompt(serviceName), ideasUserPrompt(serviceName))
}

// generate runs one generateContent call with retries on rate-limit and
// server errors. Delays grow as 2^attempt seconds plus up to half a second
// of jitter.
func (c *Client) generate(ctx context.Context, system, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: system}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshalling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt)
			c.log.With(
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
			).Warn("retrying gemini call")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, retryable, err := c.doRequest(ctx, endpoint, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}

	return "", fmt.Errorf("gemini call failed after %d attempts: %w", c.maxRetries, lastErr)
}

func (c *Client) doRequest(ctx context.Context, endpoint string, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", true, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, data)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", false, fmt.Errorf("unmarshalling response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("gemini returned no candidates")
	}
	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", false, fmt.Errorf("gemini returned empty text")
	}
	return text, false, nil
}
