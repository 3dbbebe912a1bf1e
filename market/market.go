// Package market holds the herb market logic: stall catalogue, buy dialog
// state, count validation and the market rumour roll.
package market

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"unicode"

	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/automoto/herbclinic/shared/messages"
)

var (
	ErrInvalidCount = errors.New("invalid count")
	ErrNoHerb       = errors.New("no herb selected")
)

// Herb is one stall entry.
type Herb struct {
	ID     string
	Name   string
	Price  int
	Season string
}

// ParseCount reads the leading integer of s the way the shop dialog always
// has: leading spaces and a sign are allowed and anything after the digits is
// ignored, so "3abc" and "2.5" buy 3 and 2. The result must be positive.
func ParseCount(s string) (int, error) {
	t := strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(t) && (t[end] == '+' || t[end] == '-') {
		end++
	}
	digits := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}
	n, err := strconv.Atoi(t[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return n, nil
}

// RollRumour returns a rumour with the given chance, or false.
func RollRumour(r *rand.Rand, chance float64, rumours []string) (string, bool) {
	if len(rumours) == 0 || r.Float64() >= chance {
		return "", false
	}
	return rumours[r.Intn(len(rumours))], true
}

// Stalls is the buy-dialog state of one market visit.
type Stalls struct {
	herbs    []Herb
	selected *Herb
	pending  int

	DialogOpen bool
	Tip        string
}

func NewStalls(herbs []Herb) *Stalls {
	return &Stalls{herbs: herbs}
}

func (s *Stalls) Herbs() []Herb { return s.herbs }

func (s *Stalls) Selected() (Herb, bool) {
	if s.selected == nil {
		return Herb{}, false
	}
	return *s.selected, true
}

// Open shows the buy dialog for the herb with the given id.
func (s *Stalls) Open(id string) error {
	for i := range s.herbs {
		if s.herbs[i].ID == id {
			s.selected = &s.herbs[i]
			s.DialogOpen = true
			s.Tip = ""
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoHerb, id)
}

func (s *Stalls) Close() {
	s.DialogOpen = false
	s.selected = nil
}

// Request validates the dialog input and builds the buy request. On an
// invalid count the dialog stays open and nothing is sent.
func (s *Stalls) Request(playerID, countText string) (messages.BuyRequest, error) {
	if s.selected == nil {
		return messages.BuyRequest{}, ErrNoHerb
	}
	n, err := ParseCount(countText)
	if err != nil {
		s.Tip = "请输入有效的购买数量"
		return messages.BuyRequest{}, err
	}
	s.pending = n
	return messages.BuyRequest{PlayerID: playerID, ItemID: s.selected.ID, Count: n}, nil
}

// Finish applies the buy reply. It reports whether the player record should
// be refetched.
func (s *Stalls) Finish(err error, message string) bool {
	if err != nil {
		if message == "" {
			message = "未知错误"
		}
		s.Tip = "购买失败: " + message
		return false
	}
	name := ""
	if s.selected != nil {
		name = s.selected.Name
	}
	s.Tip = hudtext.Bought(s.pending, name)
	s.pending = 0
	s.Close()
	return true
}
