package server

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ConsoleMessage is one line of render output kept for the preview page
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Console keeps the most recent render log lines in a bounded buffer
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
}

// NewConsole creates a console holding at most limit messages
func NewConsole(limit int) *Console {
	return &Console{limit: max(1, limit)}
}

// Add appends a message, dropping the oldest once the buffer is full
func (c *Console) Add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.limit; over > 0 {
		c.messages = append(c.messages[:0:0], c.messages[over:]...)
	}
}

// Messages returns a copy of the buffered messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

// WebLogger implements core.Logger by writing to the server log and the console
type WebLogger struct {
	renderID string
	console  *Console
}

// NewWebLogger creates a logger for a specific render
func NewWebLogger(renderID string, console *Console) core.Logger {
	return &WebLogger{
		renderID: renderID,
		console:  console,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	log.Printf("[%s] %s", wl.renderID, message)

	if wl.console != nil {
		wl.console.Add(ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
		})
	}
}
