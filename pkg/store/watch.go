package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the habit document changes on
// disk behind the running process, e.g. a second invocation of the CLI.
type Event struct{}

// Watch streams change notifications until ctx is cancelled. Callers should
// drain the channel; bursts are coalesced so the UI redraws once per burst.
// The channel is closed when ctx is done.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 8)
	docPath := filepath.Join(p.basePath, documentKey)

	go func() {
		defer close(events)
		defer watcher.Close()

		send := func() {
			select {
			case events <- Event{}:
			default:
				// Drop when the consumer lags; the next refresh reads the
				// whole document anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != docPath {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so consumers see one
// event per burst of filesystem activity.
type eventThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(send func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		t.mu.Unlock()
		send()
	})
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
