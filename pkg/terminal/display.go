package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"sol-swap/pkg/form"
)

// Display renders form views on a terminal. While a submission is in
// flight a spinner carries the processing text.
type Display struct {
	mu         sync.Mutex
	out        io.Writer
	spinner    *spinner.Spinner
	jsonOutput bool
	tty        bool
}

// NewDisplay creates a display writing to out. With jsonOutput set every
// final view is printed as a JSON object and the spinner stays off.
func NewDisplay(out io.Writer, jsonOutput bool) *Display {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	return &Display{
		out:        out,
		spinner:    s,
		jsonOutput: jsonOutput,
		tty:        isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetText prints a static line such as the wallet notice
func (d *Display) SetText(text string) {
	if d.jsonOutput {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.out, color.HiBlackString(text))
}

// Render implements form.ResultDisplay
func (d *Display) Render(v form.View) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if v.State == form.StateProcessing {
		switch {
		case d.jsonOutput:
		case d.tty:
			d.spinner.Suffix = " " + v.Text
			d.spinner.Start()
		default:
			// the spinner stays silent off a terminal
			fmt.Fprintln(d.out, v.String())
		}
		return
	}

	d.spinner.Stop()

	if d.jsonOutput {
		data, _ := json.MarshalIndent(v, "", "  ")
		fmt.Fprintln(d.out, string(data))
		return
	}

	switch v.State {
	case form.StateSuccess:
		fmt.Fprintln(d.out, "\n"+strings.Repeat("=", 60))
		color.New(color.FgGreen, color.Bold).Fprintf(d.out, "  %s\n", v.Text)
		fmt.Fprintln(d.out, strings.Repeat("=", 60))
		fmt.Fprintf(d.out, "\n  Transaction: %s\n\n", color.CyanString(v.Link))
	case form.StateError:
		color.New(color.FgRed).Fprintf(d.out, "\n%s\n\n", v.Text)
	default:
		fmt.Fprintln(d.out, v.String())
	}
}
