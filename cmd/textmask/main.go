// Package main is the entry point for the textmask demo: a small form
// of masked input fields rendered in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/textmask/internal/config"
	"github.com/dshills/textmask/internal/field"
	"github.com/dshills/textmask/internal/plugin"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath    = flag.String("config", "", "path to a field configuration JSON document")
		notationsPath = flag.String("notations", "", "path to a Lua notation script")
		showVersion   = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("textmask %s\n", version)
		return 0
	}

	fields, err := buildFields(*configPath, *notationsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	form := newForm(fields)
	form.focus(0)

	for {
		form.draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0
			case tcell.KeyTab:
				form.focusNext()
			case tcell.KeyBacktab:
				form.focusPrev()
			default:
				form.active().HandleKey(ev)
			}
		}
	}
}

// buildFields assembles the demo's field widgets from configuration.
func buildFields(configPath, notationsPath string) ([]*field.Field, error) {
	defs := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		defs = loaded
	}

	if notationsPath != "" {
		notations, err := plugin.LoadNotations(notationsPath)
		if err != nil {
			return nil, err
		}
		for i := range defs {
			defs[i].Notations = append(defs[i].Notations, notations...)
		}
	}

	fields := make([]*field.Field, 0, len(defs))
	for _, def := range defs {
		s, err := def.Session()
		if err != nil {
			// A broken format is a configuration bug: fail fast rather
			// than degrade to unmasked passthrough.
			return nil, err
		}
		fields = append(fields, field.New(def.Name, s))
	}
	return fields, nil
}

// form lays the fields out in a column and tracks focus.
type form struct {
	fields []*field.Field
	index  int
}

func newForm(fields []*field.Field) *form {
	return &form{fields: fields}
}

func (f *form) active() *field.Field {
	return f.fields[f.index]
}

func (f *form) focus(i int) {
	f.fields[f.index].Blur()
	f.index = i
	f.fields[f.index].Focus()
}

func (f *form) focusNext() {
	f.focus((f.index + 1) % len(f.fields))
}

func (f *form) focusPrev() {
	f.focus((f.index - 1 + len(f.fields)) % len(f.fields))
}

func (f *form) draw(screen tcell.Screen) {
	screen.Clear()

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	textStyle := tcell.StyleDefault
	ghostStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	labelWidth := 0
	for _, fld := range f.fields {
		if n := len(fld.Label()); n > labelWidth {
			labelWidth = n
		}
	}

	for row, fld := range f.fields {
		y := 1 + row*2
		drawString(screen, 2, y, fld.Label(), labelStyle)
		fld.Draw(screen, 2+labelWidth+2, y, textStyle, ghostStyle)
	}

	active := f.active()
	status := fmt.Sprintf("value: %q  complete: %v", active.Value(), active.Complete())
	drawString(screen, 2, 2+len(f.fields)*2, status, statusStyle)
	drawString(screen, 2, 3+len(f.fields)*2, "Tab: next field  Esc: quit", ghostStyle)
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
