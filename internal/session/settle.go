package session

import (
	"context"
	"time"

	"github.com/sessionctl/sessionctl/internal/platform"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultSettleDelay is how long the window manager is given to apply an
// action before the next one is issued.
const DefaultSettleDelay = time.Second

// Settler waits until the window manager has caught up with the previous
// action. Title names the window expected to exist afterwards; it is empty
// when no particular window is expected.
type Settler interface {
	Settle(ctx context.Context, title string) error
}

// FixedDelay sleeps for D regardless of the title.
type FixedDelay struct {
	D time.Duration
}

func (f FixedDelay) Settle(ctx context.Context, _ string) error {
	if f.D <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(f.D)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// PollTitle polls the window list until a window with the expected title
// shows up, at most MaxAttempts times spaced by Interval. When the window
// never appears, or no title is given, it defers to Fallback.
type PollTitle struct {
	Reader      platform.Reader
	Interval    time.Duration
	MaxAttempts int
	Fallback    Settler
	Logger      *zap.Logger
}

func (p PollTitle) Settle(ctx context.Context, title string) error {
	fallback := p.Fallback
	if fallback == nil {
		fallback = FixedDelay{D: DefaultSettleDelay}
	}
	if title == "" || p.Reader == nil {
		return fallback.Settle(ctx, title)
	}
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	limiter := rate.NewLimiter(rate.Every(p.Interval), 1)
	for i := 0; i < attempts; i++ {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		windows, err := p.Reader.ListWindows(ctx, platform.ListOptions{All: true})
		if err != nil {
			log.Debug("poll window list", zap.Int("attempt", i+1), zap.Error(err))
			continue
		}
		for _, w := range windows {
			if w.Title == title {
				log.Debug("window appeared", zap.String("title", title), zap.Int("attempt", i+1))
				return nil
			}
		}
	}
	log.Debug("window did not appear, falling back", zap.String("title", title), zap.Int("attempts", attempts))
	return fallback.Settle(ctx, title)
}
