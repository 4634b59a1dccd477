package entity

import "time"

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Content kinds.
const (
	ContentText    = "text"
	ContentCard    = "card"
	ContentPending = "pending"
)

// Content is the body of a transcript message: plain text, a structured
// card, or a pending marker for a message awaiting an asynchronous result.
type Content struct {
	Kind string `json:"kind" bson:"kind"`
	Text string `json:"text,omitempty" bson:"text,omitempty"`
	Card *Card  `json:"card,omitempty" bson:"card,omitempty"`
}

// Card is a structured rendering inside a message. The UI layer decides how
// to draw it; the engine only fills the fields.
type Card struct {
	Title  string      `json:"title,omitempty"`
	Body   string      `json:"body,omitempty"`
	Fields []CardField `json:"fields,omitempty"`
	Footer string      `json:"footer,omitempty"`
	Link   *CardLink   `json:"link,omitempty"`
}

// CardField is a labelled value on a card.
type CardField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CardLink is an external link rendered as a button on a card.
type CardLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// TextContent builds a plain text content.
func TextContent(text string) Content {
	return Content{Kind: ContentText, Text: text}
}

// CardContent builds a structured card content.
func CardContent(card Card) Content {
	return Content{Kind: ContentCard, Card: &card}
}

// PendingContent builds a busy-indicator content for a placeholder message.
func PendingContent() Content {
	return Content{Kind: ContentPending}
}

// ActionRef describes a follow-up action attached to a message or offered
// for the current step, rendered as a button by the widget.
type ActionRef struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Action      string `json:"action"`
	DetailID    string `json:"detail_id,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
}

// Message is a single transcript entry. The identifier is monotonic and
// creation-time-derived. A message is never mutated after creation, except
// to resolve a placeholder to its final content.
type Message struct {
	ID          int64       `json:"id" bson:"id"`
	Sender      string      `json:"sender" bson:"sender"`
	Content     Content     `json:"content" bson:"content"`
	Actions     []ActionRef `json:"actions,omitempty" bson:"actions,omitempty"`
	Step        string      `json:"step,omitempty" bson:"step,omitempty"`
	Placeholder bool        `json:"is_placeholder,omitempty" bson:"is_placeholder,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
