package pager

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/glassnotes/internal/notes"
)

func mkNotes(ids ...int64) []notes.Note {
	out := make([]notes.Note, 0, len(ids))
	for _, id := range ids {
		out = append(out, notes.Note{ID: id, Title: "n", Body: "n"})
	}
	return out
}

func TestController_WorkedExample(t *testing.T) {
	c := NewController(DefaultOptions())
	nav := c.Navigator()

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, nav.Current())

	c.Rebuild(mkNotes(1))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, nav.Current(), "lands on the first note")

	c.Rebuild(mkNotes(1, 2))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, nav.Current())

	c.Rebuild(mkNotes(2))
	assert.Equal(t, 1, nav.Current())
	p, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, int64(2), p.Note.ID, "index now references what was the second note")
}

func TestController_ReclampsOnDeleteAtEnd(t *testing.T) {
	c := NewController(DefaultOptions())
	nav := c.Navigator()
	c.Rebuild(mkNotes(1, 2, 3))
	require.True(t, nav.Next())
	require.True(t, nav.Next())
	assert.Equal(t, 3, nav.Current())

	c.Rebuild(mkNotes(1, 2))
	assert.Equal(t, 2, nav.Current())

	c.Rebuild(nil)
	assert.Equal(t, 0, nav.Current())
}

func TestNavigator_Bounds(t *testing.T) {
	c := NewController(DefaultOptions())
	nav := c.Navigator()
	var transitions [][2]int
	nav.OnTransition(func(from, to int) { transitions = append(transitions, [2]int{from, to}) })

	assert.False(t, nav.Previous())
	assert.False(t, nav.Next())

	c.Rebuild(mkNotes(1, 2))
	assert.True(t, nav.Next())
	assert.False(t, nav.Next(), "next at the last index is a no-op")
	assert.Equal(t, 2, nav.Current())
	assert.True(t, nav.Previous())
	assert.True(t, nav.Previous())
	assert.False(t, nav.Previous(), "previous at 0 is a no-op")
	assert.Equal(t, 0, nav.Current())

	assert.Equal(t, [][2]int{{1, 2}, {2, 1}, {1, 0}}, transitions)
}

func TestNavigator_ExplicitMoveDisablesInitialJump(t *testing.T) {
	c := NewController(DefaultOptions())
	nav := c.Navigator()
	c.Rebuild(mkNotes(1))
	require.True(t, nav.Previous())

	c.Rebuild(mkNotes(1, 2))
	assert.Equal(t, 0, nav.Current(), "user chose the option page")
}

func TestController_AtAndIndexOfNote(t *testing.T) {
	c := NewController(DefaultOptions())
	c.Rebuild(mkNotes(10, 20))

	p, ok := c.At(0)
	require.True(t, ok)
	assert.Equal(t, KindOption, p.Kind)
	assert.Equal(t, "add", p.Option.Name)

	p, ok = c.At(2)
	require.True(t, ok)
	assert.Equal(t, KindNote, p.Kind)
	assert.Equal(t, int64(20), p.Note.ID)

	_, ok = c.At(3)
	assert.False(t, ok)
	_, ok = c.At(-1)
	assert.False(t, ok)

	assert.Equal(t, 2, c.IndexOfNote(20))
	assert.Equal(t, -1, c.IndexOfNote(30))
}

func TestController_ApplyIgnoresStaleSnapshots(t *testing.T) {
	c := NewController(DefaultOptions())
	c.Apply(notes.Snapshot{Seq: 2, Notes: mkNotes(1, 2)})
	c.Apply(notes.Snapshot{Seq: 1, Notes: mkNotes(1)})
	assert.Equal(t, 3, c.Len())
}

// Random store mutations keep the length and cursor invariants.
func TestController_InvariantsUnderRandomMutations(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))
	store := notes.NewStore(notes.NewMemoryRepository())
	feed, cancel := store.Subscribe()
	defer cancel()

	for _, options := range [][]Option{DefaultOptions(), {AddNote, {Name: "settings"}}} {
		c := NewController(options)
		nav := c.Navigator()
		initial, err := store.List(ctx)
		require.NoError(t, err)
		c.Rebuild(initial)
		for i := 0; i < 300; i++ {
			list, err := store.List(ctx)
			require.NoError(t, err)
			switch r := rng.Intn(6); {
			case r < 2 || len(list) == 0:
				_, err = store.Insert(ctx, "t", "b")
			case r == 2:
				err = store.Update(ctx, list[rng.Intn(len(list))].ID, "u", "u")
			case r == 3:
				err = store.Delete(ctx, list[rng.Intn(len(list))].ID)
			case r == 4:
				nav.Next()
			default:
				nav.Previous()
			}
			require.NoError(t, err)

			for len(feed) > 0 {
				c.Apply(<-feed)
			}
			list, err = store.List(ctx)
			require.NoError(t, err)
			require.Equal(t, c.OptionCount()+len(list), c.Len())
			require.GreaterOrEqual(t, nav.Current(), 0)
			require.LessOrEqual(t, nav.Current(), c.Len()-1)
		}
	}
}
