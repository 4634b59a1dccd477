package entity

import (
	"Bricklix/internal/lib/validate"
	"net/http"
	"time"
)

// Lead is a visitor's contact submission destined for the sales inbox.
// All four fields are collected one per step by the chatbot, or arrive
// together through the lead endpoint.
type Lead struct {
	Name    string `json:"name" bson:"name" validate:"required,min=2"`
	Email   string `json:"email" bson:"email" validate:"required,email"`
	Phone   string `json:"phone" bson:"phone" validate:"required,phone"`
	Purpose string `json:"purpose" bson:"purpose" validate:"required,min=5"`
}

func (l *Lead) Bind(_ *http.Request) error {
	return validate.Struct(l)
}

// Complete reports whether every field has been collected.
func (l *Lead) Complete() bool {
	return l.Name != "" && l.Email != "" && l.Phone != "" && l.Purpose != ""
}

const (
	LeadSourceChatbot = "chatbot"
	LeadSourceForm    = "form"
)

// LeadRecord is an archived lead with capture metadata.
type LeadRecord struct {
	Lead      `bson:",inline"`
	Source    string    `json:"source" bson:"source"` // "chatbot" | "form"
	MessageID string    `json:"message_id,omitempty" bson:"message_id,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
