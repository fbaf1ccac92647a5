package pkg

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/logfmt"
)

// InitLog sends every log entry to dest in logfmt. prefix tags the entries of
// one binary so the client and the server can share a file.
func InitLog(dest, prefix string) error {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	log.SetHandler(logfmt.New(f))
	logger = log.WithField("app", prefix)
	return nil
}

// SetLogLevel accepts the apex level names (debug, info, warn, error, fatal).
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	return nil
}

var logger log.Interface = log.Log

// debugEnabled guards debug entries that are expensive to build
func debugEnabled() bool {
	l, ok := log.Log.(*log.Logger)
	return ok && l.Level <= log.DebugLevel
}
