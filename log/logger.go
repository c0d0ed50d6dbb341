package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is the verbosity threshold passed to SetLevel
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelMap = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// Render progress lines are scanned visually while a frame is in flight, so
// the level leads and the module trails
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:-8s} %{module}%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	currentLevel   = Notice
)

// Logger is a leveled, named logger
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a new named logger
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output sink, keeping the current verbosity
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveledBackend.SetLevel(levelMap[currentLevel], "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets logger verbosity
func SetLevel(level Level) {
	currentLevel = level
	leveledBackend.SetLevel(levelMap[level], "")
}

func init() {
	SetSink(os.Stderr)
}
