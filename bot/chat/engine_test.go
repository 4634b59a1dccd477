package chat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"Bricklix/entity"
)

type fakeAI struct {
	answer  string
	ideas   string
	err     error
	release chan struct{} // when set, calls block until closed
	calls   int
}

func (f *fakeAI) AnswerQuestion(ctx context.Context, question string) (string, error) {
	return f.respond(ctx, f.answer)
}

func (f *fakeAI) GenerateIdeas(ctx context.Context, serviceName string) (string, error) {
	return f.respond(ctx, f.ideas)
}

func (f *fakeAI) respond(ctx context.Context, text string) (string, error) {
	f.calls++
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return text, nil
}

type fakeLeads struct {
	err   error
	leads []entity.Lead
}

func (f *fakeLeads) SubmitLead(_ context.Context, lead entity.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.leads = append(f.leads, lead)
	return nil
}

func newTestEngine(t *testing.T) (*Engine, *fakeAI, *fakeLeads) {
	t.Helper()
	ai := &fakeAI{answer: "We build software.", ideas: "1. An idea."}
	leads := &fakeLeads{}
	e := NewEngine(NewMemoryStorage(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.SetAIService(ai)
	e.SetLeadSubmitter(leads)
	e.SetWidgetOptions("AI & Automation services", "12248445596", "/contact")
	return e, ai, leads
}

func lastMessage(t *testing.T, s *Session) entity.Message {
	t.Helper()
	require.NotEmpty(t, s.Messages)
	return s.Messages[len(s.Messages)-1]
}

func TestOpenGreetsOnce(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.Open(ctx, "s1")
	require.NoError(t, err)
	require.True(t, s.IsOpen)
	require.Equal(t, StepMain, s.CurrentStep)
	require.Equal(t, []Step{StepMain}, s.History)
	require.Len(t, s.Messages, 1)
	require.Contains(t, s.Messages[0].Content.Text, "I'm Bricklixbot")
	require.Contains(t, s.Messages[0].Content.Text, "AI & Automation services")

	// Reopening must not duplicate the greeting.
	s, err = e.Open(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, s.Messages, 1)
}

func TestLeadCaptureWalkthrough(t *testing.T) {
	e, _, leads := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)

	s, err := e.HandleAction(ctx, "s1", StartLeadCapture{}, "Contact Sales")
	require.NoError(t, err)
	require.Equal(t, StepCollectName, s.CurrentStep)
	require.Equal(t, []Step{StepMain}, s.History, "collect steps must not enter history")

	// Too-short name is rejected without advancing.
	s, err = e.HandleText(ctx, "s1", "A")
	require.NoError(t, err)
	require.Equal(t, StepCollectName, s.CurrentStep)
	require.Equal(t, PromptInvalidName, lastMessage(t, s).Content.Text)
	require.Empty(t, s.Lead.Name)

	s, err = e.HandleText(ctx, "s1", "Al")
	require.NoError(t, err)
	require.Equal(t, StepCollectEmail, s.CurrentStep)
	require.Equal(t, "Al", s.Lead.Name)
	require.Contains(t, lastMessage(t, s).Content.Text, "Thank you, Al")

	s, err = e.HandleText(ctx, "s1", "not-an-email")
	require.NoError(t, err)
	require.Equal(t, StepCollectEmail, s.CurrentStep)
	require.Equal(t, PromptInvalidEmail, lastMessage(t, s).Content.Text)

	s, err = e.HandleText(ctx, "s1", "al@x.com")
	require.NoError(t, err)
	require.Equal(t, StepCollectPhone, s.CurrentStep)

	s, err = e.HandleText(ctx, "s1", "12")
	require.NoError(t, err)
	require.Equal(t, StepCollectPhone, s.CurrentStep)
	require.Equal(t, PromptInvalidPhone, lastMessage(t, s).Content.Text)

	s, err = e.HandleText(ctx, "s1", "555-123-4567")
	require.NoError(t, err)
	require.Equal(t, StepCollectPurpose, s.CurrentStep)

	s, err = e.HandleText(ctx, "s1", "Need a new app")
	require.NoError(t, err)

	require.Len(t, leads.leads, 1)
	require.Equal(t, entity.Lead{
		Name:    "Al",
		Email:   "al@x.com",
		Phone:   "555-123-4567",
		Purpose: "Need a new app",
	}, leads.leads[0])

	require.Equal(t, StepMain, s.CurrentStep)
	require.False(t, s.InputLocked)
	require.Equal(t, []Step{StepMain}, s.History)

	last := lastMessage(t, s)
	require.Equal(t, entity.ContentCard, last.Content.Kind)
	require.NotNil(t, last.Content.Card.Link)
	require.Contains(t, last.Content.Card.Link.URL, "wa.me/12248445596")
	require.Contains(t, last.Content.Card.Link.URL, "Al")
}

func TestLeadFailureStillReturnsToMain(t *testing.T) {
	e, _, leads := newTestEngine(t)
	leads.err = fmt.Errorf("smtp down")
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)
	_, err = e.HandleAction(ctx, "s1", StartLeadCapture{}, "")
	require.NoError(t, err)
	_, err = e.HandleText(ctx, "s1", "Al")
	require.NoError(t, err)
	_, err = e.HandleText(ctx, "s1", "al@x.com")
	require.NoError(t, err)
	_, err = e.HandleText(ctx, "s1", "5551234567")
	require.NoError(t, err)

	s, err := e.HandleText(ctx, "s1", "Need a new app")
	require.NoError(t, err)

	require.Equal(t, StepMain, s.CurrentStep)
	require.False(t, s.InputLocked)
	require.Contains(t, lastMessage(t, s).Content.Text, "error sending the email")
	require.Contains(t, lastMessage(t, s).Content.Text, "/contact")
}

func TestHistoryNavigation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)

	s, err := e.HandleAction(ctx, "s1", OpenServices{}, "")
	require.NoError(t, err)
	require.Equal(t, []Step{StepMain, StepServices}, s.History)

	s, err = e.HandleAction(ctx, "s1", SelectService{ID: "ai-integration"}, "")
	require.NoError(t, err)
	require.Equal(t, StepServices, s.CurrentStep)
	require.Equal(t, "ai-integration", s.DetailID)
	require.Equal(t, []Step{StepMain, StepServices}, s.History, "same step is not pushed twice")

	s, err = e.HandleAction(ctx, "s1", OpenFAQ{}, "")
	require.NoError(t, err)
	require.Equal(t, []Step{StepMain, StepServices, StepFAQList}, s.History)
	require.Empty(t, s.DetailID, "detail id cleared on leaving services")

	s, err = e.HandleAction(ctx, "s1", SelectFAQ{ID: "faq-1"}, "")
	require.NoError(t, err)
	require.Equal(t, StepFAQDetail, s.CurrentStep)
	require.Equal(t, "faq-1", s.DetailID)

	s, err = e.HandleAction(ctx, "s1", Back{}, "")
	require.NoError(t, err)
	require.Equal(t, StepFAQList, s.CurrentStep)
	require.Empty(t, s.DetailID)

	s, err = e.HandleAction(ctx, "s1", Back{}, "")
	require.NoError(t, err)
	require.Equal(t, StepServices, s.CurrentStep)

	s, err = e.HandleAction(ctx, "s1", Back{}, "")
	require.NoError(t, err)
	require.Equal(t, StepMain, s.CurrentStep)
	require.False(t, s.CanGoBack())
}

func TestFAQNextTopics(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)
	_, err = e.HandleAction(ctx, "s1", OpenFAQ{}, "")
	require.NoError(t, err)

	s, err := e.HandleAction(ctx, "s1", SelectFAQ{ID: "faq-3"}, "")
	require.NoError(t, err)

	last := lastMessage(t, s)
	require.Equal(t, entity.ContentCard, last.Content.Kind)
	require.Contains(t, last.Content.Card.Title, "Q:")
	require.NotEmpty(t, last.Actions, "answer card offers related topics")
	for _, a := range last.Actions {
		require.Equal(t, ActionFAQDetail, a.Action)
		require.NotEmpty(t, a.DetailID)
	}

	// Jumping to a related topic swaps the detail in place.
	s, err = e.HandleAction(ctx, "s1", SelectFAQ{ID: last.Actions[0].DetailID}, "")
	require.NoError(t, err)
	require.Equal(t, StepFAQDetail, s.CurrentStep)
	require.Equal(t, last.Actions[0].DetailID, s.DetailID)
}

func TestServiceCard(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)
	_, err = e.HandleAction(ctx, "s1", OpenServices{}, "")
	require.NoError(t, err)

	s, err := e.HandleAction(ctx, "s1", SelectService{ID: "machine-learning"}, "")
	require.NoError(t, err)

	last := lastMessage(t, s)
	require.Equal(t, entity.ContentCard, last.Content.Kind)
	require.Contains(t, last.Content.Card.Title, "Machine Learning Solutions")
	require.NotEmpty(t, last.Content.Card.Fields)
	require.Equal(t, "Our Process", last.Content.Card.Fields[0].Label)
}

func TestBusyBlocksConcurrentTurns(t *testing.T) {
	e, ai, _ := newTestEngine(t)
	ai.release = make(chan struct{})
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)

	s, err := e.HandleText(ctx, "s1", "What do you do?")
	require.NoError(t, err)
	require.Equal(t, StepChatMode, s.CurrentStep)
	require.True(t, s.Busy)
	require.True(t, lastMessage(t, s).Placeholder)

	_, err = e.HandleText(ctx, "s1", "Hello again")
	require.ErrorIs(t, err, ErrBusy)
	_, err = e.HandleAction(ctx, "s1", OpenServices{}, "")
	require.ErrorIs(t, err, ErrBusy)

	close(ai.release)

	require.Eventually(t, func() bool {
		s, err := e.Get(ctx, "s1")
		if err != nil || s.Busy {
			return false
		}
		last := s.Messages[len(s.Messages)-1]
		return !last.Placeholder && last.Content.Text == "We build software."
	}, 2*time.Second, 10*time.Millisecond)

	// Turns flow again once the call resolves.
	s, err = e.HandleAction(ctx, "s1", OpenServices{}, "")
	require.NoError(t, err)
	require.Equal(t, StepServices, s.CurrentStep)
}

func TestAIFailureResolvesWithApology(t *testing.T) {
	e, ai, _ := newTestEngine(t)
	ai.err = fmt.Errorf("quota exceeded")
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)

	_, err = e.HandleText(ctx, "s1", "What do you do?")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		s, err := e.Get(ctx, "s1")
		if err != nil || s.Busy {
			return false
		}
		last := s.Messages[len(s.Messages)-1]
		return !last.Placeholder && last.Content.Text == apologyAnswer
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGenerateIdeasResolvesPlaceholder(t *testing.T) {
	e, ai, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)
	_, err = e.HandleAction(ctx, "s1", OpenServices{}, "")
	require.NoError(t, err)
	_, err = e.HandleAction(ctx, "s1", SelectService{ID: "ai-integration"}, "")
	require.NoError(t, err)

	s, err := e.HandleAction(ctx, "s1", GenerateIdeas{ServiceName: "AI Integration"}, "")
	require.NoError(t, err)
	require.True(t, s.Busy)

	require.Eventually(t, func() bool {
		s, err := e.Get(ctx, "s1")
		if err != nil || s.Busy {
			return false
		}
		last := s.Messages[len(s.Messages)-1]
		return last.Content.Text == "1. An idea."
	}, 2*time.Second, 10*time.Millisecond)
	require.Equal(t, 1, ai.calls)
}

func TestResetDiscardsSession(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)
	_, err = e.HandleAction(ctx, "s1", OpenServices{}, "")
	require.NoError(t, err)

	require.NoError(t, e.Reset(ctx, "s1"))

	s, err := e.Get(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, s.Messages)
	require.Equal(t, StepMain, s.CurrentStep)
}

func TestResetDropsLateAIResult(t *testing.T) {
	storage := NewMemoryStorage()
	ai := &fakeAI{answer: "late answer", release: make(chan struct{})}
	e := NewEngine(storage, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.SetAIService(ai)
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)
	_, err = e.HandleText(ctx, "s1", "Are you still there?")
	require.NoError(t, err)

	require.NoError(t, e.Reset(ctx, "s1"))
	stored, err := storage.Load(ctx, "s1")
	require.NoError(t, err)
	require.Nil(t, stored)

	close(ai.release)

	// The discarded session must never be written back by the resolution.
	require.Never(t, func() bool {
		stored, _ := storage.Load(ctx, "s1")
		return stored != nil
	}, 300*time.Millisecond, 20*time.Millisecond)

	s, err := e.Open(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, s.Messages, 1)
	require.False(t, s.Busy)
}

func TestEvictIdleDropsQuietSessions(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "quiet")
	require.NoError(t, err)

	require.Equal(t, 1, e.EvictIdle(0))
	e.mu.Lock()
	_, cached := e.sessions["quiet"]
	e.mu.Unlock()
	require.False(t, cached)

	// The snapshot is untouched: reopening restores the transcript.
	s, err := e.Open(ctx, "quiet")
	require.NoError(t, err)
	require.Len(t, s.Messages, 1)
}

func TestEvictIdleKeepsInflightSessions(t *testing.T) {
	e, ai, _ := newTestEngine(t)
	ai.release = make(chan struct{})
	ctx := context.Background()

	_, err := e.Open(ctx, "busy")
	require.NoError(t, err)
	_, err = e.HandleText(ctx, "busy", "Tell me everything.")
	require.NoError(t, err)

	require.Equal(t, 0, e.EvictIdle(0))

	close(ai.release)
	require.Eventually(t, func() bool {
		s, err := e.Get(ctx, "busy")
		return err == nil && !s.Busy
	}, time.Second, 10*time.Millisecond)

	require.Equal(t, 1, e.EvictIdle(0))
}

func TestCloseKeepsTranscript(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.Open(ctx, "s1")
	require.NoError(t, err)
	require.NoError(t, e.Close(ctx, "s1"))

	s, err := e.Get(ctx, "s1")
	require.NoError(t, err)
	require.False(t, s.IsOpen)
	require.Len(t, s.Messages, 1)
}
