package index

import (
	"time"

	"github.com/hupe1980/wildmap/core"
	"github.com/hupe1980/wildmap/logging"
)

// loggerAdapter wraps a logging.Logger and guarantees a non-nil logger by
// substituting a NoOpLogger when constructed with nil. An *logging.IndexLogger
// gets the index id bound once and its domain helpers are used; any other
// logger receives the id as a key/value pair on every call.
type loggerAdapter struct {
	logger  logging.Logger
	rich    *logging.IndexLogger
	indexID string
}

func newLoggerAdapter(l logging.Logger, indexID string) *loggerAdapter {
	if l == nil {
		l = logging.NoOpLogger{}
	}
	a := &loggerAdapter{logger: l, indexID: indexID}
	if il, ok := l.(*logging.IndexLogger); ok {
		a.rich = il.WithComponent("index").WithIndex(indexID)
		a.logger = a.rich
	}
	return a
}

func (l *loggerAdapter) args(args []any) []any {
	if l.rich != nil {
		return args
	}
	return append([]any{"index_id", l.indexID}, args...)
}

func (l *loggerAdapter) debug(msg string, args ...any) { l.logger.Debug(msg, l.args(args)...) }

func (l *loggerAdapter) info(msg string, args ...any) { l.logger.Info(msg, l.args(args)...) }

func (l *loggerAdapter) warn(msg string, args ...any) { l.logger.Warn(msg, l.args(args)...) }

func (l *loggerAdapter) rejected(err *core.ArgumentError) {
	if l.rich != nil {
		l.rich.LogRejectedPut(string(err.Param), err.Reason.String())
		return
	}
	l.warn("Put rejected", "param", string(err.Param), "reason", err.Reason.String())
}

func (l *loggerAdapter) cleared(rows int, dur time.Duration) {
	if l.rich != nil {
		l.rich.LogClear(rows, dur)
		return
	}
	l.info("Index cleared", "rows_dropped", rows, "duration", dur)
}
