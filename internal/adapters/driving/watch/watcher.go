package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

// DefaultInterval is the minimum gap between two re-cleans.
const DefaultInterval = 250 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Path is the file to watch.
	Path string

	// Output receives each cleaned result. Empty means results are only
	// delivered on the Watch channel.
	Output string

	// Config is the transform applied on every change.
	Config domain.TransformConfig

	// Format is the markup of the watched file. Empty means plain text.
	Format domain.InputFormat

	// Interval throttles re-cleans; zero uses DefaultInterval.
	Interval time.Duration
}

// Change is emitted after each re-clean.
type Change struct {
	// Path is the watched file.
	Path string

	// Result is the transform result for the file's current content.
	Result domain.TransformResult

	// Err is set when the file could not be read or the output not written.
	Err error
}

// Watcher re-cleans a file whenever it changes.
type Watcher struct {
	ports   *Ports
	opts    Options
	path    string
	output  string
	limiter *rate.Limiter
	fsw     *fsnotify.Watcher
}

// New validates options and creates a watcher. Call Watch to start it.
func New(ports *Ports, opts Options) (*Watcher, error) {
	if ports == nil {
		return nil, ErrMissingNormaliserService
	}
	if err := ports.Validate(); err != nil {
		return nil, err
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("watch: path: %w", domain.ErrInvalidInput)
	}
	if opts.Format == "" {
		opts.Format = domain.FormatText
	}
	if !opts.Format.IsValid() {
		return nil, fmt.Errorf("watch: format %q: %w", opts.Format, domain.ErrInvalidInput)
	}
	if opts.Format != domain.FormatText && ports.Extractor == nil {
		return nil, ErrMissingExtractService
	}

	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", opts.Path, err)
	}

	var output string
	if opts.Output != "" {
		if ports.Actions == nil {
			return nil, ErrMissingActionService
		}
		output, err = filepath.Abs(opts.Output)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve %s: %w", opts.Output, err)
		}
		if output == path {
			return nil, ErrOutputIsInput
		}
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Watcher{
		ports:   ports,
		opts:    opts,
		path:    path,
		output:  output,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

// Watch cleans the file once, then again after every write, until ctx is
// cancelled. The returned channel is closed when watching stops.
func (w *Watcher) Watch(ctx context.Context) (<-chan Change, error) {
	if _, err := os.Stat(w.path); err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: add %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw

	changes := make(chan Change)
	go w.loop(ctx, changes)

	return changes, nil
}

// Close stops the underlying file watcher.
func (w *Watcher) Close() error {
	if w.fsw == nil {
		return nil
	}
	return w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context, changes chan<- Change) {
	defer close(changes)
	defer w.fsw.Close()

	logger.Info("watching %s", w.path)
	if !w.emit(ctx, changes) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.handleEvent(event) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
			w.drainPending()
			if !w.emit(ctx, changes) {
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// handleEvent reports whether event should trigger a re-clean.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// drainPending discards queued events for the file; the next read sees
// the latest content anyway.
func (w *Watcher) drainPending() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.handleEvent(event) {
				logger.Debug("watch: coalesced %s", event.Op)
			}
		default:
			return
		}
	}
}

// emit re-cleans the file and sends the change. It returns false once ctx is done.
func (w *Watcher) emit(ctx context.Context, changes chan<- Change) bool {
	change := w.process(ctx)

	select {
	case changes <- change:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *Watcher) process(ctx context.Context) Change {
	change := Change{Path: w.path}

	data, err := os.ReadFile(w.path)
	if err != nil {
		change.Err = fmt.Errorf("watch: read: %w", err)
		return change
	}

	input := string(data)
	if w.opts.Format != domain.FormatText {
		input, _, err = w.ports.Extractor.Extract(input, w.opts.Format, w.path)
		if err != nil {
			change.Err = fmt.Errorf("watch: %w", err)
			return change
		}
	}

	change.Result = w.ports.Normaliser.Normalise(input, w.opts.Config)
	logger.Debug("watch: %s cleaned, %s saved", w.path, change.Result.SavingsDisplay())

	if w.output != "" {
		if err := w.ports.Actions.WriteToFile(ctx, &change.Result, w.output); err != nil {
			change.Err = err
		}
	}

	return change
}
