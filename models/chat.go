package models

// ChatInput is a single message sent to the chat responder.
type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// ChatReply is the canned response for a chat message.
type ChatReply struct {
	Reply string `json:"reply"`
	Topic string `json:"topic"`
}
