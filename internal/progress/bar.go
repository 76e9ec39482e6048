package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

const defaultInterval = 100 * time.Millisecond

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Bar redraws a one-line progress bar for a Tracker until stopped.
type Bar struct {
	out      io.Writer
	tracker  *Tracker
	model    progress.Model
	interval time.Duration

	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// NewBar creates a bar drawing tracker to out.
func NewBar(out io.Writer, tracker *Tracker) *Bar {
	return &Bar{
		out:      out,
		tracker:  tracker,
		model:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		interval: defaultInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start redraws the bar in the background.
func (b *Bar) Start() {
	go func() {
		defer close(b.done)
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				b.draw()
			case <-b.stop:
				return
			}
		}
	}()
}

// Stop draws the final state and ends the line. It is safe to call more
// than once.
func (b *Bar) Stop() {
	b.once.Do(func() {
		close(b.stop)
		<-b.done
		b.draw()
		fmt.Fprintln(b.out)
	})
}

func (b *Bar) draw() {
	fmt.Fprint(b.out, "\r"+b.Render())
}

// Render returns the current bar line without carriage return.
func (b *Bar) Render() string {
	label := fmt.Sprintf("%s / %s  %s records",
		humanize.Bytes(uint64(b.tracker.Scanned())),
		humanize.Bytes(uint64(b.tracker.Total())),
		humanize.Comma(b.tracker.Records()),
	)
	return b.model.ViewAs(b.tracker.Fraction()) + "  " + labelStyle.Render(label)
}
