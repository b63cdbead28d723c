/*
session.go - Edit-mode state machine for a collection

PURPOSE:
  Tracks which record (if any) is currently being edited and holds the
  in-flight draft. The UI equivalent is the inline edit row / add row of an
  editable grid.

STATE MACHINE:
  Viewing --BeginEdit(id)--> Editing --Save--> Viewing
                                      --Cancel--> Viewing
  Viewing --BeginAdd(init)--> Adding --Save--> Viewing
                                     --Cancel--> Viewing

  At most one record is in Editing at a time. BeginEdit of another record,
  or BeginAdd, implicitly cancels the current edit without saving.

  Save failures (validation) leave the session in its current state so the
  caller can correct the draft and retry; the error is returned, not
  swallowed.
*/
package collection

import (
	"context"
	"errors"
)

// ErrNoEdit is returned by Save when no edit or add is in progress.
var ErrNoEdit = errors.New("no edit in progress")

// SessionState names the resting states of the edit state machine.
type SessionState string

const (
	StateViewing SessionState = "viewing"
	StateEditing SessionState = "editing"
	StateAdding  SessionState = "adding"
)

// Session is the edit-mode controller for one collection.
type Session[T Record[T]] struct {
	coll  *Collection[T]
	state SessionState
	id    int // target record id while Editing
	draft T
}

// NewSession creates a session over coll, starting in Viewing.
func NewSession[T Record[T]](coll *Collection[T]) *Session[T] {
	return &Session[T]{coll: coll, state: StateViewing}
}

// State returns the current resting state.
func (s *Session[T]) State() SessionState { return s.state }

// EditingID returns the id under edit and whether the session is Editing.
func (s *Session[T]) EditingID() (int, bool) {
	return s.id, s.state == StateEditing
}

// Draft returns the in-flight draft record.
func (s *Session[T]) Draft() T { return s.draft }

// SetDraft replaces the in-flight draft (field-by-field edits land here).
func (s *Session[T]) SetDraft(draft T) { s.draft = draft }

// BeginEdit selects a record for editing, seeding the draft from its current
// state. Any in-progress edit or add is discarded. Returns ErrNotFound when
// the id does not resolve; the session stays in Viewing.
func (s *Session[T]) BeginEdit(id int) error {
	s.Cancel()
	item, ok := s.coll.Get(id)
	if !ok {
		return ErrNotFound
	}
	s.state = StateEditing
	s.id = id
	s.draft = item
	return nil
}

// BeginAdd starts the add-flow with the given initial draft, discarding any
// in-progress edit.
func (s *Session[T]) BeginAdd(initial T) {
	s.Cancel()
	s.state = StateAdding
	s.draft = initial
}

// Save commits the draft: Update while Editing, Create while Adding. On
// success the session returns to Viewing. On failure the state and draft are
// kept so the caller can correct and retry.
func (s *Session[T]) Save(ctx context.Context) (T, error) {
	var zero T
	switch s.state {
	case StateEditing:
		updated, err := s.coll.Update(ctx, s.id, s.draft)
		if err != nil {
			return zero, err
		}
		s.reset()
		return updated, nil
	case StateAdding:
		created, err := s.coll.Create(ctx, s.draft)
		if err != nil {
			return zero, err
		}
		s.reset()
		return created, nil
	default:
		return zero, ErrNoEdit
	}
}

// Cancel abandons the in-flight draft and returns to Viewing.
func (s *Session[T]) Cancel() { s.reset() }

func (s *Session[T]) reset() {
	var zero T
	s.state = StateViewing
	s.id = 0
	s.draft = zero
}
