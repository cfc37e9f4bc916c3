package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Spinner initializes the process indicator.
type Spinner struct {
	out      io.Writer
	animate  bool
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewSpinner instantiates a new Spinner struct writing to stderr.
// The indicator is only animated when stderr is a terminal.
func NewSpinner() *Spinner {
	return &Spinner{
		out:     os.Stderr,
		animate: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{}, 1)
	s.doneChan = make(chan struct{})

	if !s.animate {
		fmt.Fprintln(s.out, message)
		close(s.doneChan)
		return
	}

	go func() {
		defer close(s.doneChan)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprint(s.out, "\r")
					return
				default:
					fmt.Fprintf(s.out, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator and waits for it to clear.
func (s *Spinner) Stop() {
	s.stopChan <- struct{}{}
	<-s.doneChan
}
