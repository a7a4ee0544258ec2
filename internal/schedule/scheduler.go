// Package schedule fires the daily note reminder.
package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/glassnotes/internal/config"
)

// NextAt returns the next reminder time after now that falls on a workday
// and is not a holiday. Zero time if no workday is configured.
func NextAt(now time.Time, cfg config.Config) time.Time {
	loc := cfg.Location()
	now = now.In(loc)

	hour, min := 17, 0
	if t, err := time.ParseInLocation("15:04", cfg.Reminder.Time, loc); err == nil {
		hour, min = t.Hour(), t.Minute()
	}
	workdays := map[time.Weekday]bool{}
	for _, d := range cfg.Reminder.Workdays {
		if wd, ok := weekday(d); ok {
			workdays[wd] = true
		}
	}
	if len(workdays) == 0 {
		return time.Time{}
	}
	holidays := map[string]bool{}
	for _, h := range cfg.Reminder.Holidays {
		holidays[strings.TrimSpace(h)] = true
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	// a year of holidays is the most we look through
	for i := 0; i < 366; i++ {
		if workdays[cand.Weekday()] && !holidays[cand.Format("2006-01-02")] {
			return cand
		}
		cand = cand.AddDate(0, 0, 1)
	}
	return time.Time{}
}

func weekday(d string) (time.Weekday, bool) {
	d = strings.ToLower(strings.TrimSpace(d))
	if len(d) < 3 {
		return 0, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.HasPrefix(strings.ToLower(wd.String()), d[:3]) {
			return wd, true
		}
	}
	return 0, false
}

// RunConfigured calls f at each scheduled time until ctx is cancelled.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	next := NextAt(time.Now(), cfg)
	if next.IsZero() {
		return
	}
	t := time.NewTimer(time.Until(next))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			f()
			next = NextAt(time.Now(), cfg)
			if next.IsZero() {
				return
			}
			t.Reset(time.Until(next))
		}
	}
}
