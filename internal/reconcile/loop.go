package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"gradproject-teams/internal/domain"
	"gradproject-teams/internal/logger"
	"gradproject-teams/internal/session"
)

// Options controls the polling cadence
type Options struct {
	InitialDelay time.Duration
	Interval     time.Duration
	RefreshDelay time.Duration
	// Buffer is the capacity of the notification channel
	Buffer int
}

func (o Options) withDefaults() Options {
	if o.InitialDelay <= 0 {
		o.InitialDelay = 3 * time.Second
	}
	if o.Interval <= 0 {
		o.Interval = 30 * time.Second
	}
	if o.RefreshDelay <= 0 {
		o.RefreshDelay = 500 * time.Millisecond
	}
	if o.Buffer <= 0 {
		o.Buffer = 16
	}
	return o
}

// Loop keeps the session's team state in step with the server. Each tick
// fetches the profile, replaces local state when it differs and emits at
// most one notification.
type Loop struct {
	session *session.Session
	fetcher ProfileFetcher
	opts    Options

	notifications chan Notification
	refresh       chan struct{}
	flight        singleflight.Group
	stopped       atomic.Bool

	// applyMu orders state application by response arrival
	applyMu sync.Mutex

	mu           sync.Mutex
	refreshTimer *time.Timer
	cancel       context.CancelFunc
	done         chan struct{}

	log *logger.Logger
}

// NewLoop creates a reconciliation loop for sess
func NewLoop(sess *session.Session, fetcher ProfileFetcher, opts Options) *Loop {
	opts = opts.withDefaults()
	return &Loop{
		session:       sess,
		fetcher:       fetcher,
		opts:          opts,
		notifications: make(chan Notification, opts.Buffer),
		refresh:       make(chan struct{}, 1),
		log:           logger.Component("reconcile"),
	}
}

// Notifications delivers the messages produced by ticks
func (l *Loop) Notifications() <-chan Notification {
	return l.notifications
}

// Start runs the loop in the background until ctx is done or Stop is called
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	if l.done != nil || l.stopped.Load() {
		l.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})
	done := l.done
	l.mu.Unlock()

	go func() {
		defer close(done)
		l.run(ctx)
	}()
}

// Run blocks running the loop until ctx is done or Stop is called
func (l *Loop) Run(ctx context.Context) {
	l.Start(ctx)
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (l *Loop) run(ctx context.Context) {
	log := l.log.WithContext(ctx)
	log.WithFields(map[string]interface{}{
		"initial_delay": l.opts.InitialDelay.String(),
		"interval":      l.opts.Interval.String(),
	}).Info("Reconciliation loop started")

	first := time.NewTimer(l.opts.InitialDelay)
	defer first.Stop()

	var ticks <-chan time.Time
	var ticker *time.Ticker
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Reconciliation loop stopped")
			return
		case <-l.session.Done():
			log.Info("Session closed, stopping reconciliation loop")
			return
		case <-first.C:
			ticker = time.NewTicker(l.opts.Interval)
			ticks = ticker.C
			l.Tick(ctx)
		case <-ticks:
			l.Tick(ctx)
		case <-l.refresh:
			l.Tick(ctx)
		}
	}
}

// RefreshSoon schedules an extra tick after the refresh delay. Repeated calls
// before it fires collapse into one tick.
func (l *Loop) RefreshSoon() {
	if l.stopped.Load() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.refreshTimer != nil {
		l.refreshTimer.Stop()
	}
	l.refreshTimer = time.AfterFunc(l.opts.RefreshDelay, func() {
		if l.stopped.Load() {
			return
		}
		select {
		case l.refresh <- struct{}{}:
		default:
		}
	})
}

// Tick fetches the server state once and applies it. It returns the
// notification emitted, if any. Fetch failures are logged and otherwise
// ignored; the next tick retries.
func (l *Loop) Tick(ctx context.Context) *Notification {
	email := l.session.Actor().Email
	ctx = logger.ContextWithUser(ctx, email)
	log := l.log.WithContext(ctx)

	v, err, _ := l.flight.Do(email, func() (interface{}, error) {
		return l.fetcher.FetchProfile(ctx, email)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to fetch team state, retrying on next tick")
		return nil
	}
	fresh, ok := v.(*domain.User)
	if !ok || fresh == nil {
		log.Warn("Empty profile response, retrying on next tick")
		return nil
	}

	if l.stopped.Load() || !l.session.Alive() {
		log.Debug("Dropping response that arrived after teardown")
		return nil
	}
	return l.apply(ctx, fresh.Clone())
}

func (l *Loop) apply(ctx context.Context, fresh domain.User) *Notification {
	l.applyMu.Lock()
	defer l.applyMu.Unlock()

	log := l.log.WithContext(ctx)
	local := l.session.User()

	teamChanged := !SnapshotsEqual(local.Snapshot(), fresh.Snapshot())
	if !teamChanged && ideasEqual(local, fresh) {
		if !l.session.HasProvisional() {
			log.Debug("No team changes")
			return nil
		}
		// the server agrees with the local changes; make them the confirmed state
		if err := l.session.Replace(fresh); err != nil {
			log.WithError(err).Debug("Dropping response for closed session")
			return nil
		}
		log.Debug("Local changes confirmed by server")
		return nil
	}

	if err := l.session.Replace(fresh); err != nil {
		log.WithError(err).Debug("Dropping response for closed session")
		return nil
	}
	if !teamChanged {
		log.Debug("Idea state updated from server")
		return nil
	}

	n, ok := Compare(local.Snapshot(), fresh.Snapshot()).Notify()
	if !ok {
		log.Debug("Team state updated without a notification")
		return nil
	}

	select {
	case l.notifications <- n:
	default:
		log.WithField("kind", n.Kind).Warn("Notification buffer full, dropping notification")
	}
	log.WithField("kind", n.Kind).Info(n.Message)
	return &n
}

// Stop tears the loop down. In-flight responses are dropped and the refresh
// timer is cancelled. Stop is safe to call more than once.
func (l *Loop) Stop() {
	if l.stopped.Swap(true) {
		return
	}
	l.mu.Lock()
	if l.refreshTimer != nil {
		l.refreshTimer.Stop()
		l.refreshTimer = nil
	}
	cancel, done := l.cancel, l.done
	l.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
