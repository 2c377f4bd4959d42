package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Alia5/scankey/layout"
)

// Layouts groups layout inspection subcommands.
type Layouts struct {
	List LayoutsList `cmd:"" help:"List built-in layouts"`
	Show LayoutsShow `cmd:"" help:"Print a built-in layout as a layout document"`
}

// LayoutsList prints the names of the registered layouts.
type LayoutsList struct{}

func (c *LayoutsList) Run() error {
	return c.Print(os.Stdout)
}

func (c *LayoutsList) Print(w io.Writer) error {
	for _, name := range layout.Names() {
		l, _ := layout.ByName(name)
		altGr := ""
		if l.HasAltGrKey() {
			altGr = " (altgr)"
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", name, altGr); err != nil {
			return err
		}
	}
	return nil
}

// LayoutsShow writes a layout in document form, ready to be edited and
// passed to decode --layout-file.
type LayoutsShow struct {
	Name   string `arg:"" help:"Layout name"`
	Format string `help:"Document format" enum:"json,yaml,toml" default:"yaml"`
}

func (c *LayoutsShow) Run() error {
	return c.Print(os.Stdout)
}

func (c *LayoutsShow) Print(w io.Writer) error {
	l, ok := layout.ByName(c.Name)
	if !ok {
		return fmt.Errorf("unknown layout %q", c.Name)
	}
	format, err := layout.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	data, err := layout.Marshal(l.Document(), format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
