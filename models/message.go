package models

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the chat feed. For user entries Explain holds the
// submitted prompt and Content is empty; for assistant entries Content is the
// revised prompt and Explain the reasoning behind it.
type Message struct {
	Role    Role   `json:"role"`
	Option  int    `json:"option"`
	Content string `json:"content"`
	Explain string `json:"explain"`
}

func NewUserMessage(prompt string) Message {
	return Message{
		Role:    RoleUser,
		Option:  0,
		Content: "",
		Explain: prompt,
	}
}

func (m Message) IsUser() bool {
	return m.Role == RoleUser
}
