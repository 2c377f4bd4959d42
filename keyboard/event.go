package keyboard

import (
	"fmt"

	"github.com/Alia5/scankey/keys"
)

// Action is a logical keyboard action: either a Symbol or a Command.
type Action interface {
	isAction()
	String() string
}

// Symbol is a typed character.
type Symbol rune

func (Symbol) isAction() {}

func (s Symbol) String() string { return fmt.Sprintf("Symbol(%q)", rune(s)) }

// Command is a non-symbol action. It is produced for control keys (Enter,
// Escape, function keys, ...), for keypad navigation and for any typeable key
// pressed together with Ctrl, Alt or Super, e.g. Alt+Tab or Ctrl+C.
type Command struct {
	Modifiers Modifiers
	Key       keys.Key
}

func (Command) isAction() {}

func (c Command) String() string {
	if c.Modifiers == ModNone {
		return fmt.Sprintf("Command(%s)", c.Key)
	}
	return fmt.Sprintf("Command(%s+%s)", c.Modifiers, c.Key)
}

// Event is the result of one key transition.
type Event struct {
	// Key is the key that was actuated.
	Key keys.Key
	// Pressed is true for a press and false for a release.
	Pressed bool
	// Repeat is true when the transition did not change the physical state:
	// a press of a held key (auto-repeat) or a release of a released key.
	Repeat bool
	// Action is the logical action the transition produced, or nil.
	Action Action
}

func (e Event) String() string {
	dir := "release"
	if e.Pressed {
		dir = "press"
	}
	s := fmt.Sprintf("%s %s", dir, e.Key)
	if e.Repeat {
		s += " (repeat)"
	}
	if e.Action != nil {
		s += " " + e.Action.String()
	}
	return s
}
