package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spacehole-rogue/autodock/internal/game"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/spacehole-rogue/autodock/internal/journal"

// saveTimeout bounds a single journal write.
const saveTimeout = 250 * time.Millisecond

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder turns dock reports into journal records and metrics.
// It satisfies game.DockListener.
type Recorder struct {
	store Store
	log   zerolog.Logger

	sessions metric.Int64Counter
	duration metric.Float64Histogram
	fuel     metric.Float64Counter
	items    metric.Int64Counter
}

var _ game.DockListener = (*Recorder)(nil)

// NewRecorder creates a recorder writing to store. Metrics go to the global
// OTel meter provider (a no-op unless one is installed).
func NewRecorder(store Store, log zerolog.Logger) (*Recorder, error) {
	r := &Recorder{store: store, log: log}
	m := meter()

	var err error
	r.sessions, err = m.Int64Counter(
		"dock.sessions",
		metric.WithDescription("Dock sessions ended, by kind and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	r.duration, err = m.Float64Histogram(
		"dock.duration",
		metric.WithDescription("Dock session length on the frame clock"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	r.fuel, err = m.Float64Counter(
		"dock.fuel.transferred",
		metric.WithDescription("Fuel added by refuel docks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fuel counter: %w", err)
	}

	r.items, err = m.Int64Counter(
		"dock.items.ejected",
		metric.WithDescription("Bonus items ejected by reward docks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating items counter: %w", err)
	}

	return r, nil
}

// DockEnded records one finished session. Store failures are logged and
// otherwise ignored; the simulation never waits on the journal.
func (r *Recorder) DockEnded(rep game.DockReport) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("kind", rep.Kind.String()),
		attribute.String("outcome", rep.Outcome.String()),
	)
	r.sessions.Add(ctx, 1, attrs)
	r.duration.Record(ctx, rep.DurationMs(), attrs)
	if rep.FuelAdded > 0 {
		r.fuel.Add(ctx, rep.FuelAdded, attrs)
	}
	if rep.ItemsEjected > 0 {
		r.items.Add(ctx, int64(rep.ItemsEjected), attrs)
	}

	rec := FromReport(rep)
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()
	if err := r.store.Save(ctx, &rec); err != nil {
		r.log.Error().Err(err).Stringer("kind", rep.Kind).Str("station", rep.Station).Msg("journal write failed")
		return
	}
	r.log.Info().
		Uint("id", rec.ID).
		Stringer("kind", rep.Kind).
		Str("station", rep.Station).
		Stringer("outcome", rep.Outcome).
		Float64("durationMs", rep.DurationMs()).
		Msg("dock journaled")
}
