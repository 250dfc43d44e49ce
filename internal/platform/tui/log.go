package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	logMu     sync.RWMutex
	tuiLogger = log.New(io.Discard)
)

// SetLogger sets the logger used for save and screenshot errors.
// Local play keeps the default discard logger so output cannot tear the alt screen.
func SetLogger(l *log.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	tuiLogger = l
}

func logger() *log.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return tuiLogger
}
