package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCenter_NotifyAndList(t *testing.T) {
	c := NewCenter(time.Minute, zap.NewNop())
	t.Cleanup(c.Close)

	c.Notify("added", SeveritySuccess)
	c.Notify("out of stock", SeverityError)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "added", list[0].Message)
	assert.Equal(t, SeveritySuccess, list[0].Severity)
	assert.Equal(t, SeverityError, list[1].Severity)
	assert.NotEmpty(t, list[0].ID)
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

func TestCenter_Remove(t *testing.T) {
	c := NewCenter(time.Minute, zap.NewNop())
	t.Cleanup(c.Close)

	c.Notify("one", SeverityWarning)
	c.Notify("two", SeverityWarning)
	id := c.List()[0].ID

	c.Remove(id)
	c.Remove("unknown")

	list := c.List()
	require.Len(t, list, 1)
	assert.Equal(t, "two", list[0].Message)
}

func TestCenter_DismissesAfterTTL(t *testing.T) {
	c := NewCenter(20*time.Millisecond, zap.NewNop())
	t.Cleanup(c.Close)

	c.Notify("short lived", SeveritySuccess)
	require.Len(t, c.List(), 1)

	require.Eventually(t, func() bool {
		return len(c.List()) == 0
	}, time.Second, 10*time.Millisecond, "notification was not dismissed")
}

func TestCenter_NotifyAfterCloseIsDropped(t *testing.T) {
	c := NewCenter(time.Minute, zap.NewNop())
	c.Notify("before", SeveritySuccess)

	c.Close()
	c.Notify("after", SeverityError)

	list := c.List()
	require.Len(t, list, 1)
	assert.Equal(t, "before", list[0].Message)

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Empty(t, c.timers)
}
