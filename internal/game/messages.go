package game

import "strings"

// MsgPriority controls the color of a message in the comms log.
type MsgPriority uint8

const (
	MsgInfo    MsgPriority = iota // cyan
	MsgWarning                    // yellow
	MsgReward                     // green
)

// Message is a single entry in the comms log.
type Message struct {
	Text     string
	Priority MsgPriority
	At       float64 // frame time when posted
}

// commsWidth is the wrap column of the HUD comms panel.
const commsWidth = 48

// MessageLog is a bounded FIFO of comms lines.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add posts a message, wrapping it into panel-width lines and evicting the
// oldest lines when full.
func (l *MessageLog) Add(now float64, text string, priority MsgPriority) {
	for _, line := range wrapWords(text, commsWidth) {
		l.Messages = append(l.Messages, Message{Text: line, Priority: priority, At: now})
	}
	if over := len(l.Messages) - l.maxSize; over > 0 {
		l.Messages = append(l.Messages[:0], l.Messages[over:]...)
	}
}

// Recent returns the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

func wrapWords(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
