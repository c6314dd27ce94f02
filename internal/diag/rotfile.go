package diag

import (
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingFile is a size-rotated log sink backed by lumberjack.v2 — the
// same library the stats snapshot writer (internal/report) uses, so log
// rotation and stats-file rotation share one dependency instead of two.
type RotatingFile = lumberjack.Logger

// NewRotatingFile opens a rotating log sink under dir, named
// slimefinder.log, rotating once it exceeds maxMB megabytes and keeping a
// handful of backups.
func NewRotatingFile(dir string, maxMB int) *RotatingFile {
	if maxMB <= 0 {
		maxMB = 10
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, "slimefinder.log"),
		MaxSize:    maxMB,
		MaxBackups: 5,
		Compress:   false,
	}
}
