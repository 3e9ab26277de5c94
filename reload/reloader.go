package reload

import (
	"context"
	"sync/atomic"
	"time"

	"codnect.io/chrono"
	"github.com/GlintPay/gsbc/build"
	"github.com/rs/zerolog/log"
)

// Loader builds a fresh Resolver, typically from the application configuration file
type Loader func() (*build.Resolver, error)

// Reloader holds the current Resolver and optionally rebuilds it at a fixed rate
type Reloader struct {
	load    Loader
	current atomic.Pointer[build.Resolver]
	task    chrono.ScheduledTask
}

func New(_ context.Context, load Loader, period time.Duration) (*Reloader, error) {
	r := &Reloader{load: load}

	initial, err := load()
	if err != nil {
		return nil, err
	}
	r.current.Store(initial)

	if period <= 0 {
		return r, nil
	}

	scheduler := chrono.NewDefaultTaskScheduler()
	log.Info().Msgf("Scheduling resolver reload every %v", period)

	r.task, err = scheduler.ScheduleAtFixedRate(func(ctx context.Context) {
		r.refresh()
	}, period)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Static wraps an already-built Resolver that never reloads
func Static(resolver *build.Resolver) *Reloader {
	r := &Reloader{load: func() (*build.Resolver, error) { return resolver, nil }}
	r.current.Store(resolver)
	return r
}

func (r *Reloader) Resolver() *build.Resolver {
	return r.current.Load()
}

// refresh keeps the previous Resolver when loading fails
func (r *Reloader) refresh() {
	next, err := r.load()
	if err != nil {
		log.Error().Err(err).Msg("Resolver reload failed, keeping previous")
		return
	}

	if prev := r.current.Swap(next); prev != nil && prev.SiteURL() != next.SiteURL() {
		log.Info().Msgf("Site URL changed from %s to %s", prev.SiteURL(), next.SiteURL())
	}
}

func (r *Reloader) Close() {
	if r.task != nil {
		r.task.Cancel()
	}
}
