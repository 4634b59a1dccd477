package chat

import (
	"encoding/json"
	"time"

	"Bricklix/entity"
)

// Snapshot is the persisted form of a session. Only plain-text messages are
// carried; structured cards and pending placeholders live in memory for the
// current tab session only.
type Snapshot struct {
	IsOpen        bool              `json:"isOpen"`
	Messages      []SnapshotMessage `json:"messages"`
	CurrentStep   string            `json:"currentStep"`
	DetailID      string            `json:"detailId,omitempty"`
	ContactInfo   entity.Lead       `json:"contactInfo"`
	IsInputLocked bool              `json:"isInputLocked"`
	History       []string          `json:"history"`
}

// SnapshotMessage is the text-only subset of a transcript entry.
type SnapshotMessage struct {
	ID     int64  `json:"id"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
	Step   string `json:"step,omitempty"`
}

// EncodeSnapshot serializes the persistable subset of a session.
func EncodeSnapshot(s *Session) ([]byte, error) {
	snap := Snapshot{
		IsOpen:        s.IsOpen,
		Messages:      []SnapshotMessage{},
		CurrentStep:   string(s.CurrentStep),
		DetailID:      s.DetailID,
		ContactInfo:   s.Lead,
		IsInputLocked: s.InputLocked,
		History:       make([]string, 0, len(s.History)),
	}
	for _, msg := range s.Messages {
		if msg.Content.Kind != entity.ContentText || msg.Content.Text == "" {
			continue
		}
		snap.Messages = append(snap.Messages, SnapshotMessage{
			ID:     msg.ID,
			Sender: msg.Sender,
			Text:   msg.Content.Text,
			Step:   msg.Step,
		})
	}
	for _, step := range s.History {
		snap.History = append(snap.History, string(step))
	}
	return json.Marshal(snap)
}

// DecodeSnapshot restores a session from its persisted form. A malformed or
// shape-mismatched snapshot is treated as absent: the result is nil and the
// caller falls back to a fresh default state.
func DecodeSnapshot(sessionID string, raw []byte) *Session {
	if len(raw) == 0 {
		return nil
	}

	// Probe for the messages field: a snapshot without it is a shape
	// mismatch, not an empty transcript.
	var probe struct {
		Messages *[]SnapshotMessage `json:"messages"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Messages == nil {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil
	}

	step := Step(snap.CurrentStep)
	if snap.CurrentStep == "" {
		step = StepMain
	}
	if !step.Known() {
		return nil
	}

	s := NewSession(sessionID)
	s.IsOpen = snap.IsOpen
	s.CurrentStep = step
	s.DetailID = snap.DetailID
	s.Lead = snap.ContactInfo
	s.InputLocked = snap.IsInputLocked

	for _, h := range snap.History {
		hs := Step(h)
		if !hs.Known() || hs.Transient() {
			return nil
		}
		s.History = append(s.History, hs)
	}

	for _, msg := range snap.Messages {
		if msg.Sender != entity.SenderUser && msg.Sender != entity.SenderBot {
			return nil
		}
		if msg.Text == "" {
			continue
		}
		s.Messages = append(s.Messages, entity.Message{
			ID:        msg.ID,
			Sender:    msg.Sender,
			Content:   entity.TextContent(msg.Text),
			Step:      msg.Step,
			CreatedAt: time.UnixMilli(msg.ID),
		})
		if msg.ID > s.lastMessageID {
			s.lastMessageID = msg.ID
		}
	}

	return s
}
