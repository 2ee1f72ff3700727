// Package logwriter wraps a io.Writer for fac logging.
//
// Log output never goes to stdout, which is reserved for results.
package logwriter // "github.com/nickng/fac/logwriter"

import (
	"bufio"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Writer is a log writer and its configurations.
type Writer struct {
	io.Writer

	LogFile       string    // Path to log file, if empty use Fallback.
	Fallback      io.Writer // Destination when there is no log file.
	EnableLogging bool
	EnableColour  bool
	Cleanup       func()
}

// NewFile creates a new writer to logfile, or to stderr if logfile is empty.
func NewFile(logfile string, enableLogging, enableColour bool) *Writer {
	return &Writer{
		LogFile:       logfile,
		Fallback:      os.Stderr,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// New creates a new writer to logfile, or to w if logfile is empty.
func New(w io.Writer, logfile string, enableLogging, enableColour bool) *Writer {
	return &Writer{
		LogFile:       logfile,
		Fallback:      w,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// Create initialises the writer. Cleanup must be called when done.
func (w *Writer) Create() error {
	if !w.EnableColour {
		color.NoColor = true
	}
	w.Cleanup = func() {}
	if !w.EnableLogging {
		w.Writer = ioutil.Discard
		return nil
	}
	if w.LogFile == "" {
		w.Writer = w.Fallback
		if w.Writer == nil {
			w.Writer = os.Stderr
		}
		return nil
	}

	f, err := os.Create(w.LogFile)
	if err != nil {
		return errors.Wrap(err, "failed to create log file")
	}
	bufWriter := bufio.NewWriter(f)
	w.Writer = bufWriter
	w.Cleanup = func() {
		if err := bufWriter.Flush(); err != nil {
			log.Printf("flush: %s", err)
		}
		if err := f.Close(); err != nil {
			log.Printf("close: %s", err)
		}
	}
	return nil
}

// Logger returns a logger writing to w with the given prefix.
func (w *Writer) Logger(prefix string) *log.Logger {
	return log.New(w, prefix, log.LstdFlags)
}
