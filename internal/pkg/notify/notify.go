package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mtmgroup/dashboards-ui/logger"
	"go.uber.org/zap"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

func Success(msg string) Notification {
	return Notification{Level: LevelSuccess, Message: msg}
}

func Error(msg string) Notification {
	return Notification{Level: LevelError, Message: msg}
}

func Info(msg string) Notification {
	return Notification{Level: LevelInfo, Message: msg}
}

type Notifier interface {
	Notify(Notification)
}

// Queue keeps toasts until they expire.
type Queue struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	items []Notification
}

func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{
		ttl: ttl,
		now: time.Now,
	}
}

func (q *Queue) Notify(n Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = q.now()
	}
	logger.Debug("toast", zap.String("level", string(n.Level)), zap.String("message", n.Message))

	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
}

// Active drops expired toasts and returns the rest, oldest first.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	kept := q.items[:0]
	for _, n := range q.items {
		if now.Sub(n.CreatedAt) < q.ttl {
			kept = append(kept, n)
		}
	}
	q.items = kept

	res := make([]Notification, len(kept))
	copy(res, kept)
	return res
}

// Writer prints every toast as a line, for non-interactive use.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Notify(n Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.out, "[%s] %s\n", n.Level, n.Message)
}
