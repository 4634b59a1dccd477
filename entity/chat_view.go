package entity

// ChatView is the widget-facing projection of a session: the transcript plus
// everything the frontend needs to render the controls for the current step.
type ChatView struct {
	SessionID   string      `json:"session_id"`
	IsOpen      bool        `json:"is_open"`
	Messages    []Message   `json:"messages"`
	CurrentStep string      `json:"current_step"`
	DetailID    string      `json:"detail_id,omitempty"`
	InputLocked bool        `json:"is_input_locked"`
	Busy        bool        `json:"is_busy"`
	CanGoBack   bool        `json:"can_go_back"`
	Actions     []ActionRef `json:"actions"`
}
