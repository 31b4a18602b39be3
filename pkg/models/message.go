package models

// Message is one turn of the assistant conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
