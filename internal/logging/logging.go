package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the name of the rotating log file inside the log directory.
const FileName = "glpi-insights.log"

// Init installs the global logger: stderr console output plus a rotating file.
// stdout is never written to, since the MCP transport owns it.
func Init(verbose bool) {
	// Init runs before config.Load, so LOGS_FOLDER may still live in the binary's .env.
	exeDir := ""
	if exePath, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exePath)
		_ = godotenv.Load(filepath.Join(exeDir, ".env"))
	}

	zerolog.SetGlobalLevel(Level(verbose))

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	logDir := Dir(os.Getenv("LOGS_FOLDER"), exeDir)
	fileWriter, err := NewFileWriter(logDir)
	if err != nil {
		// Console only: a read-only install must still be able to serve.
		log.Logger = zerolog.New(console).With().Timestamp().Logger()
		log.Warn().Err(err).Str("path", logDir).Msg("File logging disabled")
		return
	}

	multi := zerolog.MultiLevelWriter(io.Writer(console), fileWriter)
	log.Logger = zerolog.New(multi).
		With().
		Timestamp().
		Logger()
}

// Level maps the verbose flag to a zerolog level.
func Level(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Dir resolves the log directory: LOGS_FOLDER, else logs/ next to the binary, else ./logs.
func Dir(configured, exeDir string) string {
	switch {
	case configured != "":
		return configured
	case exeDir != "":
		return filepath.Join(exeDir, "logs")
	}
	return "logs"
}

// NewFileWriter creates dir if needed, checks it is writable and returns a rotating writer.
func NewFileWriter(dir string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %q: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write-test")
	if err := os.WriteFile(probe, []byte("test"), 0644); err != nil {
		return nil, fmt.Errorf("log directory %q is not writable: %w", dir, err)
	}
	_ = os.Remove(probe)

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, FileName),
		MaxSize:    16, // megabytes
		MaxBackups: 32,
		MaxAge:     365, // days
		Compress:   true,
	}, nil
}
