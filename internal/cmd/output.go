package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Alia5/scankey/keyboard"
)

type eventEncoder interface {
	Encode(ev keyboard.Event) error
}

func newEncoder(format string, w io.Writer) (eventEncoder, error) {
	switch format {
	case "text":
		return textEncoder{w: w}, nil
	case "json":
		return jsonEncoder{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

type textEncoder struct{ w io.Writer }

func (e textEncoder) Encode(ev keyboard.Event) error {
	_, err := fmt.Fprintln(e.w, ev.String())
	return err
}

// eventJSON is the JSON lines representation of a keyboard.Event.
type eventJSON struct {
	Key     string       `json:"key"`
	Code    uint8        `json:"code"`
	Pressed bool         `json:"pressed"`
	Repeat  bool         `json:"repeat,omitempty"`
	Symbol  string       `json:"symbol,omitempty"`
	Command *commandJSON `json:"command,omitempty"`
}

type commandJSON struct {
	Modifiers string `json:"modifiers"`
	Key       string `json:"key"`
}

func toJSON(ev keyboard.Event) eventJSON {
	out := eventJSON{
		Key:     ev.Key.Name(),
		Code:    uint8(ev.Key),
		Pressed: ev.Pressed,
		Repeat:  ev.Repeat,
	}
	switch a := ev.Action.(type) {
	case keyboard.Symbol:
		out.Symbol = string(rune(a))
	case keyboard.Command:
		out.Command = &commandJSON{Modifiers: a.Modifiers.String(), Key: a.Key.Name()}
	}
	return out
}

type jsonEncoder struct{ enc *json.Encoder }

func (e jsonEncoder) Encode(ev keyboard.Event) error {
	return e.enc.Encode(toJSON(ev))
}
