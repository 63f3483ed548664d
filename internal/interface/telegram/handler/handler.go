// Package handler contains Telegram command handlers. Each handler is a
// thin adapter: it parses the command context, calls into the engine, and
// maps results and errors to user-facing text.
package handler

// Request contains the parsed command context handed to a handler.
type Request struct {
	// UserID is the submitter's Telegram ID.
	UserID int64

	// Username is the submitter's Telegram username; may be empty.
	Username string

	// ChatID is the chat to reply into.
	ChatID int64

	// Command is the command name without the leading slash.
	Command string

	// Args is the text after the command.
	Args string
}

// Response contains the messages to send back, in order. Each message is
// split to the transport's length limit before sending.
type Response struct {
	Messages []string
}

// Text builds a single-message response.
func Text(msg string) *Response {
	return &Response{Messages: []string{msg}}
}
