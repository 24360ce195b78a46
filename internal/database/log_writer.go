package database

import (
	"strings"

	"go.uber.org/zap"
)

// gormLogWriter satisfies the Printf interface GORM's logger expects and
// forwards to zap.
type gormLogWriter struct {
	log *zap.SugaredLogger
}

func newGormLogWriter(log *zap.Logger) gormLogWriter {
	return gormLogWriter{log: log.Named("gorm").Sugar()}
}

func (w gormLogWriter) Printf(format string, args ...any) {
	w.log.Infof(strings.TrimSpace(format), args...)
}
