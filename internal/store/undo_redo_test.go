package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/store"
)

func withTitle(title string) entity.TabContainerData {
	return entity.TabContainerData{Containers: []entity.Container{{ID: "c", Title: title, Tabs: []entity.Tab{}}}}
}

func TestSetPresentStartup_DiscardsHistory(t *testing.T) {
	s := store.New()
	s.Dispatch(store.RecordHistory{Data: withTitle("a")})
	s.Dispatch(store.RecordHistory{Data: withTitle("b")})
	s.Dispatch(store.Undo{})
	require.True(t, s.State().UndoRedo.CanRedo())

	s.Dispatch(store.SetPresentStartup{Data: withTitle("loaded")})

	u := s.State().UndoRedo
	assert.Equal(t, withTitle("loaded"), u.Present)
	assert.Empty(t, u.Past)
	assert.Empty(t, u.Future)
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	s := store.New()
	s.Dispatch(store.SetPresentStartup{Data: withTitle("0")})
	s.Dispatch(store.RecordHistory{Data: withTitle("1")})
	s.Dispatch(store.RecordHistory{Data: withTitle("2")})

	s.Dispatch(store.Undo{})
	assert.Equal(t, withTitle("1"), s.State().UndoRedo.Present)
	s.Dispatch(store.Undo{})
	assert.Equal(t, withTitle("0"), s.State().UndoRedo.Present)
	assert.False(t, s.State().UndoRedo.CanUndo())

	// no-op when exhausted
	s.Dispatch(store.Undo{})
	assert.Equal(t, withTitle("0"), s.State().UndoRedo.Present)

	s.Dispatch(store.Redo{})
	s.Dispatch(store.Redo{})
	u := s.State().UndoRedo
	assert.Equal(t, withTitle("2"), u.Present)
	assert.False(t, u.CanRedo())
	assert.Len(t, u.Past, 2)
}

func TestRecordHistory_ClearsFuture(t *testing.T) {
	s := store.New()
	s.Dispatch(store.RecordHistory{Data: withTitle("1")})
	s.Dispatch(store.Undo{})
	require.True(t, s.State().UndoRedo.CanRedo())

	s.Dispatch(store.RecordHistory{Data: withTitle("branch")})
	assert.False(t, s.State().UndoRedo.CanRedo())
}

func TestRecordHistory_BoundedByMaxHistory(t *testing.T) {
	s := store.New(store.WithMaxHistory(3))
	s.Dispatch(store.SetPresentStartup{Data: withTitle("0")})
	for _, title := range []string{"1", "2", "3", "4", "5"} {
		s.Dispatch(store.RecordHistory{Data: withTitle(title)})
	}

	u := s.State().UndoRedo
	require.Len(t, u.Past, 3)
	assert.Equal(t, withTitle("2"), u.Past[0])
	assert.Equal(t, withTitle("4"), u.Past[2])
	assert.Equal(t, withTitle("5"), u.Present)
}

func TestUndoRedo_DoesNotMarkDirty(t *testing.T) {
	s := store.New()
	s.Dispatch(store.RecordHistory{Data: withTitle("1")})
	s.Dispatch(store.Undo{})
	assert.False(t, s.State().Global.IsDirty)
}
