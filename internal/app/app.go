// Package app prepares what the window host needs before the first frame:
// the logger, the scenario and the dock journal.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spacehole-rogue/autodock/assets"
	"github.com/spacehole-rogue/autodock/internal/config"
	"github.com/spacehole-rogue/autodock/internal/journal"
	"github.com/spacehole-rogue/autodock/internal/logging"
	"github.com/spacehole-rogue/autodock/internal/world"
)

// summaryTimeout bounds the startup journal query.
const summaryTimeout = 2 * time.Second

// Env is everything set up from the config.
type Env struct {
	Log      zerolog.Logger
	Scenario *world.Scenario
	Store    journal.Store // nil when the journal is disabled

	closers []io.Closer
}

// BootLogger is used until the config has been read.
func BootLogger(w io.Writer) zerolog.Logger {
	return logging.Auto("info", w)
}

// NewLogger builds the host logger. Output goes to stdout, pretty-printed on
// a terminal, and is mirrored as JSON into cfg.LogFile when set.
func NewLogger(cfg *config.Config, stdout io.Writer) (zerolog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return logging.Auto(cfg.LogLevel, stdout), nil, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.Tee(cfg.LogLevel, stdout, f), f, nil
}

// Setup builds the environment. scenario overrides cfg.Scenario when not
// empty; it may be a bundled name or a path to a JSON file.
func Setup(cfg *config.Config, stdout io.Writer, scenario string) (*Env, error) {
	log, logFile, err := NewLogger(cfg, stdout)
	if err != nil {
		return nil, err
	}
	env := &Env{Log: log}
	if logFile != nil {
		env.closers = append(env.closers, logFile)
	}
	log.Info().Str("loglevel", log.GetLevel().String()).Msg("Logging set up")

	name := cfg.Scenario
	if scenario != "" {
		name = scenario
	}
	env.Scenario, err = LoadScenario(name)
	if err != nil {
		env.Close()
		return nil, err
	}

	if cfg.Journal.Enabled {
		s, err := journal.OpenSQLite(cfg.Journal.Path)
		if err != nil {
			env.Close()
			return nil, err
		}
		env.Store = s
		env.closers = append(env.closers, s)
		logJournal(log, s, cfg.Journal.Path)
	}
	return env, nil
}

// LoadScenario reads a scenario from a file when name is an existing path,
// otherwise from the bundled set.
func LoadScenario(name string) (*world.Scenario, error) {
	var data []byte
	var err error
	if _, statErr := os.Stat(name); statErr == nil {
		data, err = os.ReadFile(name)
	} else {
		data, err = assets.Scenario(name)
		if err != nil {
			if names, lerr := assets.ScenarioNames(); lerr == nil {
				err = fmt.Errorf("%w (bundled: %s)", err, strings.Join(names, ", "))
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return world.LoadScenario(data)
}

// logJournal reports the session history already in the journal.
func logJournal(log zerolog.Logger, s *journal.SQLiteStore, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
	defer cancel()

	sum, err := s.Summary(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("journal summary failed")
		return
	}
	var total int64
	ev := zerolog.Dict()
	for k, n := range sum {
		ev.Int64(k, n)
		total += n
	}
	log.Info().Str("path", path).Int64("sessions", total).Dict("history", ev).Msg("journal opened")
}

// Close releases the journal and the log file.
func (e *Env) Close() error {
	var first error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	e.closers = nil
	return first
}
