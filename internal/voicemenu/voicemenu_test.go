package voicemenu

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/glassnotes/internal/gesture"
)

func TestDemo_MainScreenTogglesVoiceCommands(t *testing.T) {
	d := NewDemo(zerolog.Nop())
	var reloaded []bool
	d.OnReload(func(_ Menu, enabled bool) { reloaded = append(reloaded, enabled) })

	m, enabled := d.Active()
	assert.Equal(t, "main", m.Name)
	assert.True(t, enabled)

	handled, quit := d.OnGesture(gesture.SwipeForward)
	assert.True(t, handled)
	assert.False(t, quit)
	_, enabled = d.Active()
	assert.False(t, enabled)
	assert.False(t, d.Select("Send message"), "menu disabled")
	assert.Equal(t, "Swipe forward to enable voice commands", d.Hint())

	d.OnGesture(gesture.SwipeBackward)
	assert.Equal(t, []bool{false, true}, reloaded)
	assert.True(t, d.Select("send message"))
}

func TestDemo_AlternativeScreenSwitchesMenus(t *testing.T) {
	d := NewDemo(zerolog.Nop())
	d.OnGesture(gesture.Tap)
	assert.Equal(t, ScreenAlternative, d.Screen())

	m, _ := d.Active()
	assert.Equal(t, Main, m)
	d.OnGesture(gesture.SwipeForward)
	m, _ = d.Active()
	assert.Equal(t, Alternative, m)
	assert.True(t, d.Select("Play music"))
	assert.False(t, d.Select("Send message"))

	// tap does nothing on the alternative screen
	handled, _ := d.OnGesture(gesture.Tap)
	assert.False(t, handled)
	assert.Equal(t, 2, d.Depth())
}

func TestDemo_SwipeDownClosesScreens(t *testing.T) {
	d := NewDemo(zerolog.Nop())
	d.OnGesture(gesture.Tap)

	_, quit := d.OnGesture(gesture.SwipeDown)
	assert.False(t, quit)
	assert.Equal(t, ScreenMain, d.Screen())

	_, quit = d.OnGesture(gesture.SwipeDown)
	assert.True(t, quit)
	assert.Equal(t, 2, d.Reloads())
}
