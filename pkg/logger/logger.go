package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	level            = zerolog.InfoLevel
	runID  string
)

func init() {
	rebuild()
}

// SetOutput routes debug/info/warn lines to out and error/fatal/panic lines to errOut.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
	rebuild()
}

func rebuild() {
	writer := zerolog.MultiLevelWriter(
		SpecificLevelWriter{
			Writer: zerolog.ConsoleWriter{
				Out:        stdout,
				TimeFormat: time.RFC3339,
			},
			Levels: []zerolog.Level{
				zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel,
			},
		},
		SpecificLevelWriter{
			Writer: zerolog.ConsoleWriter{
				Out: stderr,
			},
			Levels: []zerolog.Level{
				zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel,
			},
		},
	)
	ctx := zerolog.New(writer).Level(level).With().Timestamp()
	if runID != "" {
		ctx = ctx.Str("run_id", runID)
	}
	logger = ctx.Logger()
}

// SetLevel parses a level name ("debug", "info", ...). An empty name keeps the current level.
func SetLevel(name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level = parsed
	rebuild()
	return nil
}

// WithRunID tags every following line with the given run id.
func WithRunID(id string) {
	runID = id
	rebuild()
}

// Command echoes an argument list before it is handed to the OS.
func Command(command []string) {
	logger.Info().Msgf("=== Running: %v ===", command)
}

func Info(msg string) {
	logger.Info().Msg(msg)
}

func Infof(format string, args ...interface{}) {
	logger.Info().Msgf(format, args...)
}

func Warn(msg string) {
	logger.Warn().Msg(msg)
}

func Warnf(format string, args ...interface{}) {
	logger.Warn().Msgf(format, args...)
}

func Error(msg string) {
	logger.Error().Msg(msg)
}

func Errorf(format string, args ...interface{}) {
	logger.Error().Msgf(format, args...)
}

func Debug(msg string) {
	logger.Debug().Msg(msg)
}

func Debugf(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}

// multilevel writer from https://stackoverflow.com/questions/76858037/how-to-use-zerolog-to-filter-info-logs-to-stdout-and-error-logs-to-stderr
type SpecificLevelWriter struct {
	io.Writer
	Levels []zerolog.Level
}

func (w SpecificLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	for _, l := range w.Levels {
		if l == level {
			return w.Write(p)
		}
	}
	return len(p), nil
}
