package repositories

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// badgerLogger routes badger's internal messages into the application logger,
// tagged so they can be told apart from ours. Badger is chatty at info level,
// so its info messages are demoted to debug.
type badgerLogger struct {
	log *slog.Logger
}

var _ badger.Logger = badgerLogger{}

func NewBadgerLogger(log *slog.Logger) badger.Logger {
	return badgerLogger{log: log.With("component", "badger")}
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.log.Error(clean(format, args))
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.log.Warn(clean(format, args))
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.log.Debug(clean(format, args))
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.log.Debug(clean(format, args))
}

// clean drops the trailing newline badger appends to most messages.
func clean(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
