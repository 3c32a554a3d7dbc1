package store

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

func newStore(t *testing.T, texts ...string) *Store {
	t.Helper()
	s := New(nil)
	for _, txt := range texts {
		s.Add(txt)
	}
	return s
}

func TestNew_Empty(t *testing.T) {
	s := New(nil)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Incomplete())
	assert.Empty(t, s.Items())
}

func TestAdd(t *testing.T) {
	s := New(nil)
	s.Add("buy milk")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, []model.Item{{Text: "buy milk", Completed: false}}, s.Items())
	assert.Equal(t, 1, s.Incomplete())
}

func TestAdd_AcceptsAnyText(t *testing.T) {
	s := newStore(t, "", "  spaced  ", "multi\nline")

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "", items[0].Text)
	assert.Equal(t, "  spaced  ", items[1].Text)
	assert.Equal(t, "multi\nline", items[2].Text)
}

func TestToggle(t *testing.T) {
	s := newStore(t, "buy milk")

	require.NoError(t, s.Toggle(0))
	it, err := s.Item(0)
	require.NoError(t, err)
	assert.Equal(t, model.Item{Text: "buy milk", Completed: true}, it)
	assert.Equal(t, 0, s.Incomplete())
}

func TestToggle_TwiceRestores(t *testing.T) {
	s := newStore(t, "a", "b")
	before := s.Items()

	require.NoError(t, s.Toggle(1))
	require.NoError(t, s.Toggle(1))
	assert.Equal(t, before, s.Items())
}

func TestRemove_ShiftsLaterItems(t *testing.T) {
	s := newStore(t, "a", "b", "c")

	require.NoError(t, s.Remove(1))
	assert.Equal(t, []model.Item{{Text: "a"}, {Text: "c"}}, s.Items())
}

func TestRemove_FirstAndLast(t *testing.T) {
	s := newStore(t, "a", "b", "c")

	require.NoError(t, s.Remove(2))
	require.NoError(t, s.Remove(0))
	assert.Equal(t, []model.Item{{Text: "b"}}, s.Items())
}

func TestEdit_OnlyChangesText(t *testing.T) {
	s := newStore(t, "x", "other")
	require.NoError(t, s.Toggle(0))

	require.NoError(t, s.Edit(0, "y"))
	assert.Equal(t, []model.Item{
		{Text: "y", Completed: true},
		{Text: "other"},
	}, s.Items())
}

func TestEdit_Incomplete(t *testing.T) {
	s := newStore(t, "x")

	require.NoError(t, s.Edit(0, "y"))
	assert.Equal(t, []model.Item{{Text: "y", Completed: false}}, s.Items())
}

func TestIncomplete(t *testing.T) {
	s := newStore(t, "a", "b", "c")
	require.NoError(t, s.Toggle(0))
	require.NoError(t, s.Toggle(2))

	assert.Equal(t, 1, s.Incomplete())
	assert.Equal(t, 2, s.Completed())
}

func TestIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		index int
		op    func(*Store, int) error
	}{
		{"remove on empty", nil, 0, (*Store).Remove},
		{"remove past end", []string{"a"}, 1, (*Store).Remove},
		{"remove negative", []string{"a"}, -1, (*Store).Remove},
		{"toggle past end", []string{"a", "b"}, 2, (*Store).Toggle},
		{"toggle negative", []string{"a"}, -3, (*Store).Toggle},
		{"edit on empty", nil, 0, func(s *Store, i int) error { return s.Edit(i, "z") }},
		{"edit past end", []string{"a"}, 5, func(s *Store, i int) error { return s.Edit(i, "z") }},
		{"item past end", []string{"a"}, 1, func(s *Store, i int) error { _, err := s.Item(i); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, tt.items...)
			before := s.Items()

			err := tt.op(s, tt.index)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))

			var ierr *IndexError
			require.ErrorAs(t, err, &ierr)
			assert.Equal(t, len(tt.items), ierr.Len)
			assert.Equal(t, tt.index, ierr.Index)

			assert.Equal(t, before, s.Items(), "list must be unchanged")
		})
	}
}

func TestIndexError_Message(t *testing.T) {
	err := &IndexError{Len: 2, Index: 7}
	assert.Equal(t, "index out of range: have 2, got 7", err.Error())
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := newStore(t, "a")

	items := s.Items()
	items[0].Text = "mutated"
	items[0].Completed = true

	it, err := s.Item(0)
	require.NoError(t, err)
	assert.Equal(t, model.Item{Text: "a"}, it)
}

// The count must match a direct scan after every step of a mixed sequence.
func TestIncomplete_MatchesScanAfterEveryOp(t *testing.T) {
	s := New(nil)
	steps := []func() error{
		func() error { s.Add("a"); return nil },
		func() error { s.Add("b"); return nil },
		func() error { return s.Toggle(0) },
		func() error { s.Add("c"); return nil },
		func() error { return s.Edit(2, "cc") },
		func() error { return s.Toggle(2) },
		func() error { return s.Remove(1) },
		func() error { return s.Toggle(0) },
		func() error { return s.Remove(0) },
		func() error { return s.Remove(0) },
	}

	for i, step := range steps {
		before := s.Len()
		require.NoError(t, step(), "step %d", i)

		want := 0
		for _, it := range s.Items() {
			if !it.Completed {
				want++
			}
		}
		assert.Equal(t, want, s.Incomplete(), "step %d", i)
		assert.InDelta(t, before, s.Len(), 1, "step %d", i)
	}
	assert.Equal(t, 0, s.Len())
}

func TestScenarios(t *testing.T) {
	t.Run("add three, complete two", func(t *testing.T) {
		s := newStore(t, "a", "b", "c")
		require.NoError(t, s.Toggle(0))
		require.NoError(t, s.Toggle(1))
		assert.Equal(t, 1, s.Incomplete())
	})

	t.Run("empty has zero incomplete", func(t *testing.T) {
		assert.Equal(t, 0, New(nil).Incomplete())
	})
}

func TestLogsMutations(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(logger)

	s.Add("buy milk")
	require.Error(t, s.Toggle(4))

	out := buf.String()
	assert.Contains(t, out, "added")
	assert.Contains(t, out, "buy milk")
	assert.Contains(t, out, "index out of range")
}

func TestOutOfRangeIsNotLoggedAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	s := New(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))

	s.Add("a")
	require.Error(t, s.Remove(4))
	assert.Empty(t, buf.String())
}
