// Package saves is the state behind the save-slot selection screen: which
// saves exist, which one is selected and what the tip line says.
package saves

import (
	"errors"
	"fmt"

	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/automoto/herbclinic/shared/messages"
)

var (
	ErrSlotsFull     = errors.New("save slots full")
	ErrEmptyNickname = errors.New("empty nickname")
	ErrNoSelection   = errors.New("no save selected")
	ErrUnknownSave   = errors.New("unknown save")
)

// Book is mutated only from the game loop. Network calls run elsewhere and
// report back through the Finish* methods.
type Book struct {
	max      int
	saves    []messages.PlayerRecord
	selected string
	loaded   bool

	Tip           string
	DeleteEnabled bool
}

func NewBook(max int) *Book {
	return &Book{max: max}
}

func (b *Book) Max() int                       { return b.max }
func (b *Book) Count() int                     { return len(b.saves) }
func (b *Book) Saves() []messages.PlayerRecord { return b.saves }
func (b *Book) Selected() string               { return b.selected }
func (b *Book) Loaded() bool                   { return b.loaded }
func (b *Book) ConfirmEnabled() bool           { return b.selected != "" }

// BeginRefresh marks the list as loading.
func (b *Book) BeginRefresh() {
	b.Tip = hudtext.SavesLoading
}

// FinishRefresh applies a list-saves reply. A selection that no longer
// exists is dropped.
func (b *Book) FinishRefresh(list []messages.PlayerRecord, err error) {
	if err != nil {
		b.Tip = hudtext.SavesLoadFailed
		return
	}
	b.saves = list
	b.loaded = true
	b.Tip = hudtext.SaveCount(len(list), b.max)

	if b.selected != "" && b.find(b.selected) == -1 {
		b.selected = ""
	}
	if b.selected == "" {
		b.DeleteEnabled = false
	}
}

// Select highlights a save.
func (b *Book) Select(id string) error {
	if b.find(id) == -1 {
		return fmt.Errorf("%w: %s", ErrUnknownSave, id)
	}
	b.selected = id
	b.DeleteEnabled = true
	return nil
}

// CanOpenCreate checks the slot limit before the create panel is shown.
func (b *Book) CanOpenCreate() error {
	if len(b.saves) >= b.max {
		b.Tip = fmt.Sprintf(hudtext.SavesFull, b.max)
		return ErrSlotsFull
	}
	return nil
}

// ValidateCreate checks a nickname before it is submitted.
func (b *Book) ValidateCreate(nickname string) error {
	if nickname == "" {
		return ErrEmptyNickname
	}
	return b.CanOpenCreate()
}

// FinishCreate reports whether the panel should close and a refresh follow.
func (b *Book) FinishCreate(err error, message string) bool {
	if err != nil {
		b.Tip = hudtext.CreateFailed(message)
		return false
	}
	return true
}

// BeginDelete returns the id to delete and disables the delete button so it
// cannot be pressed twice.
func (b *Book) BeginDelete() (string, error) {
	if b.selected == "" {
		return "", ErrNoSelection
	}
	b.Tip = hudtext.Deleting
	b.DeleteEnabled = false
	return b.selected, nil
}

// FinishDelete reports whether the list should be refreshed.
func (b *Book) FinishDelete(err error, message string) bool {
	if err != nil {
		b.Tip = hudtext.DeleteFailed(message)
		b.DeleteEnabled = true
		return false
	}
	b.Tip = hudtext.Deleted
	b.selected = ""
	b.DeleteEnabled = false
	return true
}

// Confirm returns the selected save to enter the game with.
func (b *Book) Confirm() (string, error) {
	if b.selected == "" {
		return "", ErrNoSelection
	}
	b.Tip = hudtext.EnteringClinic
	return b.selected, nil
}

func (b *Book) find(id string) int {
	for i, s := range b.saves {
		if s.ID == id {
			return i
		}
	}
	return -1
}
