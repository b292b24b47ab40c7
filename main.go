// Demo form exercising the widget set: a few inputs wired together
// with directional focus links, driven by the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arborui/arbor/console"
	"github.com/arborui/arbor/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	terminal, err := console.NewTerminal()
	if err != nil {
		return err
	}
	defer terminal.Close()
	terminal.SetTitle("arbor demo")

	var clip ui.Clipboard
	if sys, err := console.NewSystemClipboard(); err == nil {
		clip = sys
	} else {
		clip = console.NewOSC52Clipboard(os.Stdout)
	}

	opts := []ui.AppOption{ui.WithClipboard(clip)}
	if f, err := os.Create("arbor-demo.log"); err == nil {
		defer f.Close()
		opts = append(opts, ui.WithLogger(slog.New(slog.NewTextHandler(f, nil))))
	}

	app, err := ui.NewApplication(terminal, console.NewTerminalInput(terminal.Input()), console.SystemClock{}, opts...)
	if err != nil {
		return err
	}

	theme := ui.DefaultTheme()
	if _, err := os.Stat("theme.yaml"); err == nil {
		if loaded, err := ui.LoadTheme("theme.yaml"); err == nil {
			theme = loaded
		}
	}

	title := ui.NewLabel(nil, theme, "arbor widget demo - enter submits, escape commits")
	title.Control().Transform().LocalExtent = ui.Extent{W: 50, H: 1}
	title.Control().Transform().LocalOffset = ui.Offset{X: 2, Y: 1}

	name := ui.NewTextInput(nil, theme, 40)
	name.SetPlaceholder("name")
	name.Control().Transform().LocalOffset = ui.Offset{X: 2, Y: 3}

	notes := ui.NewTextInput(nil, theme, 400)
	notes.SetPlaceholder("notes")
	notes.Control().Transform().LocalOffset = ui.Offset{X: 2, Y: 5}
	notes.Control().Transform().LocalExtent = ui.Extent{W: 30, H: 5}

	flavor := ui.NewDropdown(nil, theme, []string{"plain", "spicy", "sweet", "sour"})
	flavor.Control().Transform().LocalOffset = ui.Offset{X: 2, Y: 11}

	extras := ui.NewList(nil, theme, []string{"napkins", "chopsticks", "fork", "receipt", "bag"})
	extras.Multiselect = true
	extras.Control().Transform().LocalOffset = ui.Offset{X: 2, Y: 13}
	extras.Control().Transform().LocalExtent = ui.Extent{W: 20, H: 3}

	urgent := ui.NewCheckbox(nil, theme, "urgent")
	urgent.Control().Transform().LocalOffset = ui.Offset{X: 2, Y: 17}

	amount := ui.NewNumberInput(nil, theme, 0, 99, 1)
	amount.Control().Transform().LocalOffset = ui.Offset{X: 2, Y: 19}

	progress := ui.NewProgressBar(nil, theme)
	progress.Control().Transform().LocalOffset = ui.Offset{X: 2, Y: 21}
	amount.OnChange = func(v float64) error {
		progress.SetValue(v / 99)
		return nil
	}

	quit := ui.NewButton(nil, theme, "quit")
	quit.Control().Transform().LocalOffset = ui.Offset{X: 2, Y: 23}
	quit.Control().Transform().LocalExtent = ui.Extent{W: 10, H: 1}
	quit.OnSubmit = func() error {
		app.Quit()
		return nil
	}

	controls := []*ui.Control{
		title.Control(),
		name.Control(),
		notes.Control(),
		flavor.Control(),
		extras.Control(),
		urgent.Control(),
		amount.Control(),
		progress.Control(),
		quit.Control(),
	}
	for _, c := range controls {
		if err := app.Add(c); err != nil {
			return err
		}
	}

	// vertical focus chain
	chain := []*ui.Control{
		name.Control(),
		notes.Control(),
		flavor.Control(),
		extras.Control(),
		urgent.Control(),
		amount.Control(),
		quit.Control(),
	}
	for i := 0; i < len(chain)-1; i++ {
		if err := chain[i].Link(ui.DirSouth, ui.LinkDouble, chain[i+1]); err != nil {
			return err
		}
	}

	return app.Run()
}
