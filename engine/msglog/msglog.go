// Package msglog stores the in-game message history shown to the player.
package msglog

import (
	"fmt"

	"github.com/nathoo/roguecore/types"
)

// Message is one log line. Count > 1 when identical messages were stacked.
type Message struct {
	Text  string
	FG    types.Color
	Count int
}

// FullText returns the text with a repeat suffix for stacked messages.
func (m Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// Log is an append-only ordered message history.
type Log struct {
	messages []Message
}

// New creates an empty log.
func New() *Log {
	return &Log{}
}

// AddMessage appends a message. When stack is true and the newest message
// has the same text, its repeat count is incremented instead.
func (l *Log) AddMessage(text string, fg types.Color, stack bool) {
	if stack && len(l.messages) > 0 {
		last := &l.messages[len(l.messages)-1]
		if last.Text == text {
			last.Count++
			return
		}
	}
	l.messages = append(l.messages, Message{Text: text, FG: fg, Count: 1})
}

// Add appends a stackable message.
func (l *Log) Add(text string, fg types.Color) {
	l.AddMessage(text, fg, true)
}

// Messages returns the history, oldest first. The slice must not be modified.
func (l *Log) Messages() []Message {
	return l.messages
}

// Len returns the number of stored messages.
func (l *Log) Len() int {
	return len(l.messages)
}

// Tail returns up to n of the newest messages, oldest first.
func (l *Log) Tail(n int) []Message {
	if n <= 0 {
		return nil
	}
	if n >= len(l.messages) {
		return l.messages
	}
	return l.messages[len(l.messages)-n:]
}
