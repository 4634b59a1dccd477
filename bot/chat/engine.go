package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"Bricklix/entity"
	"Bricklix/internal/lib/sl"
)

// ErrBusy is returned while an AI call is in flight for the session.
var ErrBusy = errors.New("assistant is busy, try again in a moment")

// Fixed apology strings shown when an asynchronous call fails.
const (
	apologyIdeas  = "Sorry, I couldn't generate ideas right now. Please try again later."
	apologyAnswer = "Sorry, I had trouble finding an answer. Try rephrasing your question or selecting one of the main options below."
)

const aiCallTimeout = 90 * time.Second

// AIService answers free-form questions and generates project ideas.
type AIService interface {
	AnswerQuestion(ctx context.Context, question string) (string, error)
	GenerateIdeas(ctx context.Context, serviceName string) (string, error)
}

// LeadSubmitter forwards a completed lead record to the sales inbox.
// A single attempt; any error means the lead did not go through.
type LeadSubmitter interface {
	SubmitLead(ctx context.Context, lead entity.Lead) error
}

// Events receives transcript updates for live delivery to the widget.
type Events interface {
	MessageAppended(sessionID string, msg entity.Message)
	MessageResolved(sessionID string, msg entity.Message)
	BusyChanged(sessionID string, busy bool)
}

// Engine is the conversation orchestrator: it owns the transition table,
// validates lead capture input, and drives the asynchronous AI calls.
//
// Live sessions are held in memory so that structured cards and pending
// placeholders survive between turns; storage carries the text-only
// snapshot that outlives the process.
type Engine struct {
	storage SessionStorage
	ai      AIService
	leads   LeadSubmitter
	events  Events
	log     *slog.Logger

	pageContext   string
	whatsappPhone string
	contactPage   string

	mu       sync.Mutex
	sessions map[string]*Session
	locks    map[string]*sync.Mutex
	inflight map[string]bool
	touched  map[string]time.Time
}

// NewEngine creates a new conversation engine.
func NewEngine(storage SessionStorage, log *slog.Logger) *Engine {
	return &Engine{
		storage:     storage,
		log:         log.With(sl.Module("chat.engine")),
		pageContext: "AI & Automation services",
		contactPage: "/contact",
		sessions:    make(map[string]*Session),
		locks:       make(map[string]*sync.Mutex),
		inflight:    make(map[string]bool),
		touched:     make(map[string]time.Time),
	}
}

// SetAIService sets the text generation backend.
func (e *Engine) SetAIService(ai AIService) { e.ai = ai }

// SetLeadSubmitter sets the lead pipeline.
func (e *Engine) SetLeadSubmitter(leads LeadSubmitter) { e.leads = leads }

// SetEvents sets the listener for live transcript updates (may be nil).
func (e *Engine) SetEvents(events Events) { e.events = events }

// SetWidgetOptions configures the greeting page context, the WhatsApp
// handoff number and the fallback contact page path.
func (e *Engine) SetWidgetOptions(pageContext, whatsappPhone, contactPage string) {
	if pageContext != "" {
		e.pageContext = pageContext
	}
	e.whatsappPhone = whatsappPhone
	if contactPage != "" {
		e.contactPage = contactPage
	}
}

// Open loads or creates the session and marks the widget open, synthesizing
// the greeting on a first-ever open.
func (e *Engine) Open(ctx context.Context, sessionID string) (*Session, error) {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	s, err := e.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.IsOpen = true
	if len(s.Messages) == 0 {
		s.History = []Step{}
		s.UpdateStep(StepMain)
		greeting := fmt.Sprintf(
			"Hello! I'm Bricklixbot. Since you are exploring our %s, how can I help guide your next development decision?",
			e.pageContext,
		)
		e.appendBotText(s, greeting, StepMain)
	}
	return s.Clone(), e.save(ctx, s)
}

// Close marks the widget closed. In-flight calls keep running; their results
// land in the transcript for the next open.
func (e *Engine) Close(ctx context.Context, sessionID string) error {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	s, err := e.load(ctx, sessionID)
	if err != nil {
		return err
	}
	s.IsOpen = false
	return e.save(ctx, s)
}

// Get returns the current session state without mutating it.
func (e *Engine) Get(ctx context.Context, sessionID string) (*Session, error) {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	s, err := e.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

// Reset discards the session entirely. An in-flight AI call for it keeps
// running but its resolution is dropped: the resolver re-checks the cache
// before writing anything back.
func (e *Engine) Reset(ctx context.Context, sessionID string) error {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	e.mu.Lock()
	delete(e.sessions, sessionID)
	delete(e.inflight, sessionID)
	delete(e.touched, sessionID)
	e.mu.Unlock()
	return e.storage.Delete(ctx, sessionID)
}

// HandleAction dispatches a clicked widget action. The label is echoed into
// the transcript as the user's turn.
func (e *Engine) HandleAction(ctx context.Context, sessionID string, action Action, label string) (*Session, error) {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	s, err := e.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if e.busy(sessionID) {
		return s.Clone(), ErrBusy
	}

	if label == "" {
		label = actionFallbackLabel(action)
	}
	e.appendUser(s, label)

	switch a := action.(type) {
	case OpenServices:
		s.UpdateStep(StepServices)
		e.appendBotText(s, "Great! What category of development or solution are you interested in? Select an option below or ask me a question about them.", StepServices)

	case OpenFAQ:
		s.UpdateStep(StepFAQList)
		e.appendBotText(s, "Here are our most frequently asked questions. Select a topic to learn more:", StepFAQList)

	case StartLeadCapture:
		s.Lead = entity.Lead{}
		s.InputLocked = false
		s.UpdateStep(StepCollectName)
		e.appendBotText(s, "To connect you with an expert, I'll need some quick details. What is your full name?", StepCollectName)

	case Back:
		previous := s.Back()
		e.appendBotText(s, backNotice(previous), previous)

	case BackToServicesList:
		s.UpdateStep(StepServices)
		e.appendBotText(s, "Here is the full list of our services again:", StepServices)

	case BackToFAQList:
		s.UpdateStep(StepFAQList)
		e.appendBotText(s, "What FAQ topic would you like to explore next?", StepFAQList)

	case SelectService:
		service, ok := entity.FindService(a.ID)
		if !ok {
			e.appendBotText(s, "I'm not sure how to handle that action. Please choose from the options below or ask a question.", StepMain)
			break
		}
		s.UpdateStep(StepServices)
		s.DetailID = service.ID
		e.appendBotCard(s, entity.Card{
			Title:  service.Icon + " " + service.Name,
			Body:   service.Overview,
			Fields: []entity.CardField{{Label: "Our Process", Value: service.Process}},
			Footer: "Ready to explore project ideas or contact sales?",
		}, nil, StepServices)

	case SelectFAQ:
		faq, ok := entity.FindFAQ(a.ID)
		if !ok {
			e.appendBotText(s, "I'm not sure how to handle that action. Please choose from the options below or ask a question.", StepMain)
			break
		}
		s.UpdateStep(StepFAQDetail)
		s.DetailID = faq.ID
		actions := make([]entity.ActionRef, 0, len(faq.NextOptions))
		for _, opt := range faq.NextOptions {
			actions = append(actions, entity.ActionRef{
				ID:       opt.ID,
				Label:    opt.Text,
				Action:   ActionFAQDetail,
				DetailID: opt.ID,
			})
		}
		e.appendBotCard(s, entity.Card{
			Title:  "Q: " + faq.Question,
			Body:   faq.Answer,
			Footer: "What next?",
		}, actions, StepFAQDetail)

	case GenerateIdeas:
		e.startAICall(s, s.CurrentStep, func(callCtx context.Context) (string, error) {
			return e.ai.GenerateIdeas(callCtx, a.ServiceName)
		}, apologyIdeas)

	default:
		e.appendBotText(s, "I'm not sure how to handle that action. Please choose from the options below or ask a question.", StepMain)
	}

	return s.Clone(), e.save(ctx, s)
}

// HandleText processes a free-text submission: lead capture input while a
// collect step is active, otherwise a question for the AI.
func (e *Engine) HandleText(ctx context.Context, sessionID, text string) (*Session, error) {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	s, err := e.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if e.busy(sessionID) {
		return s.Clone(), ErrBusy
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return s.Clone(), nil
	}
	e.appendUser(s, text)

	if s.CurrentStep.IsCollect() {
		e.handleCollect(ctx, s, text)
	} else {
		s.UpdateStep(StepChatMode)
		e.startAICall(s, StepChatMode, func(callCtx context.Context) (string, error) {
			return e.ai.AnswerQuestion(callCtx, text)
		}, apologyAnswer)
	}

	return s.Clone(), e.save(ctx, s)
}

// handleCollect advances the lead capture sub-flow by one field. On a
// validation failure the step does not move and no data is recorded.
func (e *Engine) handleCollect(ctx context.Context, s *Session, text string) {
	switch s.CurrentStep {
	case StepCollectName:
		if !IsValidName(text) {
			e.appendBotText(s, PromptInvalidName, s.CurrentStep)
			return
		}
		s.Lead.Name = text
		s.UpdateStep(StepCollectEmail)
		e.appendBotText(s, "Thank you, "+text+". What is your email address?", StepCollectEmail)

	case StepCollectEmail:
		if !IsValidEmail(text) {
			e.appendBotText(s, PromptInvalidEmail, s.CurrentStep)
			return
		}
		s.Lead.Email = text
		s.UpdateStep(StepCollectPhone)
		e.appendBotText(s, "Got it. What is the best phone number to reach you at?", StepCollectPhone)

	case StepCollectPhone:
		if !IsValidPhone(text) {
			e.appendBotText(s, PromptInvalidPhone, s.CurrentStep)
			return
		}
		s.Lead.Phone = text
		s.UpdateStep(StepCollectPurpose)
		e.appendBotText(s, "Finally, in one sentence, what is the purpose of your inquiry? (e.g., 'I need a custom ERP system.')", StepCollectPurpose)

	case StepCollectPurpose:
		if !IsValidPurpose(text) {
			e.appendBotText(s, PromptInvalidPurpose, s.CurrentStep)
			return
		}
		s.Lead.Purpose = text
		e.submitLead(ctx, s)

	default:
		s.UpdateStep(StepMain)
		e.appendBotText(s, "Invalid state. Please try again or refresh.", StepMain)
	}
}

// submitLead runs the two-step lead pipeline: announce the completed record,
// send it, report the outcome, and return to the main menu either way.
func (e *Engine) submitLead(ctx context.Context, s *Session) {
	s.InputLocked = true
	s.UpdateStep(StepLeadSent)

	e.appendBotCard(s, entity.Card{
		Title: "Information Complete!",
		Body:  "Sending your details now. We'll be in touch shortly.",
		Fields: []entity.CardField{
			{Label: "Name", Value: s.Lead.Name},
			{Label: "Email", Value: s.Lead.Email},
			{Label: "Phone", Value: s.Lead.Phone},
			{Label: "Purpose", Value: s.Lead.Purpose},
		},
	}, nil, StepLeadSent)

	err := e.leads.SubmitLead(ctx, s.Lead)
	if err != nil {
		e.log.With(
			slog.String("session_id", s.ID),
			sl.Err(err),
		).Error("lead submission failed")
		e.appendBotText(s, "I encountered an error sending the email. Please try again or navigate to our Contact Page at "+e.contactPage+".", StepMain)
	} else {
		e.log.With(
			slog.String("session_id", s.ID),
			slog.String("email", s.Lead.Email),
		).Info("lead submitted")
		e.appendBotCard(s, entity.Card{
			Body: "Success! Your request has been forwarded to our sales team. An expert will contact you within one business hour.",
			Link: &entity.CardLink{
				Label: "Chat with us on WhatsApp",
				URL:   e.whatsappLink(s.Lead.Name),
			},
		}, nil, StepMain)
	}

	// Back to the interactive main menu regardless of outcome, without
	// touching the history stack.
	s.CurrentStep = StepMain
	s.DetailID = ""
	s.InputLocked = false
}

func (e *Engine) whatsappLink(name string) string {
	text := "Hello, I just submitted a inquiry via your chatbot. My name is " + name + "."
	return "https://wa.me/" + e.whatsappPhone + "?text=" + url.QueryEscape(text)
}

// startAICall appends a placeholder, flags the session busy, and resolves the
// placeholder from a detached goroutine. The request context is deliberately
// not propagated: closing the widget must not abort the call.
func (e *Engine) startAICall(s *Session, step Step, call func(context.Context) (string, error), apology string) {
	if e.ai == nil {
		e.appendBotText(s, apology, step)
		return
	}

	placeholder := s.AddPlaceholder(step)
	placeholderID := placeholder.ID
	e.setBusy(s, true)
	if e.events != nil {
		e.events.MessageAppended(s.ID, *placeholder)
	}

	go func() {
		callCtx, cancel := context.WithTimeout(context.Background(), aiCallTimeout)
		defer cancel()

		text, err := call(callCtx)
		if err != nil {
			e.log.With(
				slog.String("session_id", s.ID),
				sl.Err(err),
			).Error("ai call failed")
			text = apology
		}

		lock := e.sessionLock(s.ID)
		lock.Lock()
		e.mu.Lock()
		live := e.sessions[s.ID] == s
		if live {
			e.touched[s.ID] = time.Now()
		}
		e.mu.Unlock()
		if !live {
			// The session was reset while the call was running; writing
			// the result back would resurrect the discarded transcript.
			lock.Unlock()
			e.log.With(
				slog.String("session_id", s.ID),
			).Debug("dropping ai result for a reset session")
			return
		}
		resolved := s.ResolvePlaceholder(placeholderID, text)
		e.setBusy(s, false)
		saveErr := e.save(context.Background(), s)
		lock.Unlock()

		if saveErr != nil {
			e.log.With(
				slog.String("session_id", s.ID),
				sl.Err(saveErr),
			).Error("saving session after ai call")
		}
		if resolved != nil && e.events != nil {
			e.events.MessageResolved(s.ID, *resolved)
		}
	}()
}

func (e *Engine) appendUser(s *Session, text string) {
	msg := s.AddUserMessage(text)
	if e.events != nil {
		e.events.MessageAppended(s.ID, *msg)
	}
}

func (e *Engine) appendBotText(s *Session, text string, step Step) {
	msg := s.AddBotText(text, step)
	if e.events != nil {
		e.events.MessageAppended(s.ID, *msg)
	}
}

func (e *Engine) appendBotCard(s *Session, card entity.Card, actions []entity.ActionRef, step Step) {
	msg := s.AddBotCard(card, actions, step)
	if e.events != nil {
		e.events.MessageAppended(s.ID, *msg)
	}
}

func (e *Engine) busy(sessionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inflight[sessionID]
}

func (e *Engine) setBusy(s *Session, busy bool) {
	e.mu.Lock()
	if busy {
		e.inflight[s.ID] = true
	} else {
		delete(e.inflight, s.ID)
	}
	e.mu.Unlock()

	s.Busy = busy
	if e.events != nil {
		e.events.BusyChanged(s.ID, busy)
	}
}

// sessionLock returns the per-session mutex serializing turns and the
// asynchronous placeholder resolution.
func (e *Engine) sessionLock(sessionID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[sessionID] = lock
	}
	return lock
}

// load returns the live session, restoring it from storage when the process
// has not seen it yet. A corrupted snapshot falls back to a fresh default.
func (e *Engine) load(ctx context.Context, sessionID string) (*Session, error) {
	e.mu.Lock()
	cached, ok := e.sessions[sessionID]
	if ok {
		e.touched[sessionID] = time.Now()
	}
	e.mu.Unlock()
	if ok {
		return cached, nil
	}

	s, err := e.storage.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if s == nil {
		s = NewSession(sessionID)
	}

	e.mu.Lock()
	e.sessions[sessionID] = s
	e.touched[sessionID] = time.Now()
	e.mu.Unlock()
	return s, nil
}

// EvictIdle drops cached sessions untouched for longer than maxIdle, along
// with their locks. Sessions with a call in flight are kept. The stored
// snapshot is unaffected; the next request reloads it.
func (e *Engine) EvictIdle(maxIdle time.Duration) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	evicted := 0
	for id, at := range e.touched {
		if e.inflight[id] || at.After(cutoff) {
			continue
		}
		delete(e.sessions, id)
		delete(e.locks, id)
		delete(e.touched, id)
		evicted++
	}
	return evicted
}

func (e *Engine) save(ctx context.Context, s *Session) error {
	if err := e.storage.Save(ctx, s); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func backNotice(step Step) string {
	if step == StepMain {
		return "You returned to the Main Menu."
	}
	return "You returned to the " + strings.ToUpper(strings.ReplaceAll(string(step), "_", " ")) + "."
}

func actionFallbackLabel(action Action) string {
	switch a := action.(type) {
	case OpenServices:
		return "Our Services"
	case OpenFAQ:
		return "Knowledge Base (FAQ)"
	case StartLeadCapture:
		return "Contact Sales"
	case Back:
		return "Back"
	case BackToServicesList:
		return "Back to Services List"
	case BackToFAQList:
		return "Back to All FAQs"
	case SelectService:
		if service, ok := entity.FindService(a.ID); ok {
			return service.Name
		}
		return "Service"
	case SelectFAQ:
		if faq, ok := entity.FindFAQ(a.ID); ok {
			return faq.Question
		}
		return "FAQ"
	case GenerateIdeas:
		return "Get Project Ideas"
	}
	return "..."
}
