package tactile

import "github.com/kataras/golog"

var logger = golog.Child("[tactile]")

func init() {
	logger.SetLevel("info")
}

// SetDebug enables or disables debug logging of ignored input (unknown touch
// IDs, refused captures, a full touch table).
func SetDebug(on bool) {
	if on {
		logger.SetLevel("debug")
		return
	}
	logger.SetLevel("info")
}

// Logger returns the package logger so hosts can redirect its output.
func Logger() *golog.Logger {
	return logger
}
