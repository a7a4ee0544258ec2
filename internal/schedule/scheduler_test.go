package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/glassnotes/internal/config"
)

func cfgUTC() config.Config {
	c := config.Default()
	c.Reminder.Timezone = "UTC"
	c.Reminder.Time = "17:00"
	return c
}

func TestNextAt_SameDay(t *testing.T) {
	// Wednesday
	now := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 5, 17, 0, 0, 0, time.UTC), NextAt(now, cfgUTC()))
}

func TestNextAt_SkipsWeekendAndHoliday(t *testing.T) {
	c := cfgUTC()
	c.Reminder.Holidays = []string{"2025-03-10"}
	// Friday after the reminder
	now := time.Date(2025, 3, 7, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 11, 17, 0, 0, 0, time.UTC), NextAt(now, c))
}

func TestNextAt_NoWorkdays(t *testing.T) {
	c := cfgUTC()
	c.Reminder.Workdays = nil
	assert.True(t, NextAt(time.Now(), c).IsZero())
}

func TestRunConfigured_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunConfigured(ctx, cfgUTC(), func() {})
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunConfigured did not return")
	}
}
