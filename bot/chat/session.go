package chat

import (
	"strings"
	"time"

	"Bricklix/entity"
)

// Step is the chatbot's current position in its fixed menu/flow enumeration.
type Step string

const (
	StepMain           Step = "main"
	StepCollectName    Step = "collect_name"
	StepCollectEmail   Step = "collect_email"
	StepCollectPhone   Step = "collect_phone"
	StepCollectPurpose Step = "collect_purpose"
	StepLeadSent       Step = "lead_sent"
	StepServices       Step = "services"
	StepFAQList        Step = "faq_list"
	StepFAQDetail      Step = "faq_detail"
	StepChatMode       Step = "chat_mode"
)

// IsCollect reports whether the step belongs to the lead capture sub-flow.
func (s Step) IsCollect() bool {
	return strings.HasPrefix(string(s), "collect_")
}

// Transient steps are never pushed onto the history stack.
func (s Step) Transient() bool {
	return s.IsCollect() || s == StepLeadSent
}

// Known reports whether the value is one of the fixed steps.
func (s Step) Known() bool {
	switch s {
	case StepMain, StepCollectName, StepCollectEmail, StepCollectPhone,
		StepCollectPurpose, StepLeadSent, StepServices, StepFAQList,
		StepFAQDetail, StepChatMode:
		return true
	}
	return false
}

// Session is the full widget state for one visitor: transcript, menu
// position, navigation history and the in-progress lead record.
type Session struct {
	ID          string           `json:"session_id"`
	IsOpen      bool             `json:"is_open"`
	Messages    []entity.Message `json:"messages"`
	CurrentStep Step             `json:"current_step"`
	DetailID    string           `json:"detail_id,omitempty"`
	Lead        entity.Lead      `json:"contact_info"`
	InputLocked bool             `json:"is_input_locked"`
	Busy        bool             `json:"is_busy"`
	History     []Step           `json:"history"`
	UpdatedAt   time.Time        `json:"updated_at"`

	lastMessageID int64
}

// NewSession creates a fresh default session at the main menu.
func NewSession(id string) *Session {
	return &Session{
		ID:          id,
		CurrentStep: StepMain,
		History:     []Step{},
		UpdatedAt:   time.Now(),
	}
}

// nextMessageID derives a monotonic, creation-time-based identifier.
func (s *Session) nextMessageID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastMessageID {
		id = s.lastMessageID + 1
	}
	s.lastMessageID = id
	return id
}

func (s *Session) append(msg entity.Message) *entity.Message {
	s.Messages = append(s.Messages, msg)
	s.UpdatedAt = time.Now()
	return &s.Messages[len(s.Messages)-1]
}

// AddUserMessage appends a user turn to the transcript.
func (s *Session) AddUserMessage(text string) *entity.Message {
	return s.append(entity.Message{
		ID:        s.nextMessageID(),
		Sender:    entity.SenderUser,
		Content:   entity.TextContent(text),
		Step:      string(s.CurrentStep),
		CreatedAt: time.Now(),
	})
}

// AddBotText appends a plain text bot response tagged with the given step.
func (s *Session) AddBotText(text string, step Step) *entity.Message {
	return s.append(entity.Message{
		ID:        s.nextMessageID(),
		Sender:    entity.SenderBot,
		Content:   entity.TextContent(text),
		Step:      string(step),
		CreatedAt: time.Now(),
	})
}

// AddBotCard appends a structured bot response with optional follow-up actions.
func (s *Session) AddBotCard(card entity.Card, actions []entity.ActionRef, step Step) *entity.Message {
	return s.append(entity.Message{
		ID:        s.nextMessageID(),
		Sender:    entity.SenderBot,
		Content:   entity.CardContent(card),
		Actions:   actions,
		Step:      string(step),
		CreatedAt: time.Now(),
	})
}

// AddPlaceholder appends a bot message showing a busy indicator. Its position
// in the transcript is fixed; only its content is replaced when the
// asynchronous result arrives.
func (s *Session) AddPlaceholder(step Step) *entity.Message {
	return s.append(entity.Message{
		ID:          s.nextMessageID(),
		Sender:      entity.SenderBot,
		Content:     entity.PendingContent(),
		Step:        string(step),
		Placeholder: true,
		CreatedAt:   time.Now(),
	})
}

// ResolvePlaceholder replaces a placeholder's content in place and clears the
// flag. Returns the resolved message, or nil when the id is unknown.
func (s *Session) ResolvePlaceholder(id int64, text string) *entity.Message {
	for i := range s.Messages {
		if s.Messages[i].ID == id && s.Messages[i].Placeholder {
			s.Messages[i].Content = entity.TextContent(text)
			s.Messages[i].Placeholder = false
			s.UpdatedAt = time.Now()
			return &s.Messages[i]
		}
	}
	return nil
}

// UpdateStep moves the session to a new step, pushing it onto the history
// stack unless it is transient or already on top. The detail id does not
// survive a move away from the services/faq_detail contexts.
func (s *Session) UpdateStep(step Step) {
	if !step.Transient() {
		if len(s.History) == 0 || s.History[len(s.History)-1] != step {
			s.History = append(s.History, step)
		}
	}
	s.CurrentStep = step
	if step != StepServices && step != StepFAQDetail {
		s.DetailID = ""
	}
	s.UpdatedAt = time.Now()
}

// Back pops the history stack and restores the previous step, defaulting to
// main when the stack empties. Returns the restored step.
func (s *Session) Back() Step {
	if len(s.History) > 0 && s.History[len(s.History)-1] == s.CurrentStep {
		s.History = s.History[:len(s.History)-1]
	}
	previous := StepMain
	if len(s.History) > 0 {
		previous = s.History[len(s.History)-1]
	}
	s.CurrentStep = previous
	if previous == StepServices || previous == StepFAQList || previous == StepMain {
		s.DetailID = ""
	}
	s.UpdatedAt = time.Now()
	return previous
}

// Clone returns a detached copy that stays safe to read while the engine
// keeps mutating the live session.
func (s *Session) Clone() *Session {
	c := *s
	c.Messages = append([]entity.Message(nil), s.Messages...)
	c.History = append([]Step(nil), s.History...)
	return &c
}

// CanGoBack reports whether the header back control should be shown.
func (s *Session) CanGoBack() bool {
	return len(s.History) > 1
}
