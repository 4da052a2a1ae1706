// Package logutil provides loggers for debugging output.
//
// All loggers obtained with GetLogger share one output, which discards
// everything until SetOutput or SetOutputFile is called.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu  sync.Mutex
	out io.Writer = io.Discard
	// Non-nil only when the output was set by SetOutputFile.
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// newout. If the previous output was opened by SetOutputFile, it is closed.
func SetOutput(newout io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setOutput(newout)
}

func setOutput(newout io.Writer) {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file, which is created or appended to. An empty name discards the
// output.
func SetOutputFile(fname string) error {
	mu.Lock()
	defer mu.Unlock()
	if fname == "" {
		setOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	setOutput(file)
	outFile = file
	return nil
}
