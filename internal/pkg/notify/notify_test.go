package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	q := NewQueue(0)
	q.now = func() time.Time { return now }

	q.Notify(Success("Dashboard updated successfully!"))
	now = now.Add(2 * time.Second)
	q.Notify(Error("Failed to update dashboard"))

	active := q.Active()
	require.Len(t, active, 2)
	assert.Equal(t, LevelSuccess, active[0].Level)

	now = now.Add(1500 * time.Millisecond)
	active = q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Failed to update dashboard", active[0].Message)

	now = now.Add(DefaultTTL)
	assert.Empty(t, q.Active())
}

func TestWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Notify(Success("Dashboard added successfully!"))
	w.Notify(Error("Please fill all required fields"))

	assert.Equal(t, "[success] Dashboard added successfully!\n[error] Please fill all required fields\n", buf.String())
}
