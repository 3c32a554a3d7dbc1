// Package store holds the todo list for one session.
//
// The list lives in memory only. Items are addressed by zero-based position,
// and positions shift down by one after a removal, so callers should look an
// index up right before using it.
package store

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
)

// Store owns an ordered list of todo items.
// It is not safe for concurrent use.
type Store struct {
	todos []model.Item
	log   *log.Logger
}

// New returns an empty store. A nil logger discards output.
func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		todos: []model.Item{},
		log:   logger.WithPrefix("store"),
	}
}

// Add appends a new incomplete item. Any text is accepted, including "".
func (s *Store) Add(text string) {
	s.todos = append(s.todos, model.Item{Text: text})
	s.log.Debug("added", "index", len(s.todos)-1, "text", text)
}

// Remove deletes the item at index. Later items move down one position.
func (s *Store) Remove(index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.todos = append(s.todos[:index], s.todos[index+1:]...)
	s.log.Debug("removed", "index", index, "len", len(s.todos))
	return nil
}

// Toggle flips the completed flag of the item at index.
func (s *Store) Toggle(index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.todos[index].Completed = !s.todos[index].Completed
	s.log.Debug("toggled", "index", index, "completed", s.todos[index].Completed)
	return nil
}

// Edit replaces the text of the item at index. Completed is left as is.
func (s *Store) Edit(index int, text string) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.todos[index].Text = text
	s.log.Debug("edited", "index", index, "text", text)
	return nil
}

// Incomplete counts the items not yet completed.
// It is recomputed on every call.
func (s *Store) Incomplete() int {
	n := 0
	for _, it := range s.todos {
		if !it.Completed {
			n++
		}
	}
	return n
}

// Completed counts the items marked completed.
func (s *Store) Completed() int { return len(s.todos) - s.Incomplete() }

// Len returns the number of items.
func (s *Store) Len() int { return len(s.todos) }

// Item returns a copy of the item at index.
func (s *Store) Item(index int) (model.Item, error) {
	if err := s.check(index); err != nil {
		return model.Item{}, err
	}
	return s.todos[index], nil
}

// Items returns a copy of the list in display order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.todos) {
		s.log.Debug("index out of range", "index", index, "len", len(s.todos))
		return &IndexError{Len: len(s.todos), Index: index}
	}
	return nil
}
