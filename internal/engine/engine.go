// Package engine runs one typing session: it turns classified keys into
// word edits and writes them to an output.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/eiannone/keyboard"

	"vitelex/internal/emitter"
	"vitelex/internal/keys"
	"vitelex/internal/logging"
	"vitelex/internal/notify"
	"vitelex/internal/session"
	"vitelex/internal/types"
)

// Options configures New. Output is required.
type Options struct {
	Output   emitter.Output
	Mode     types.InputMode
	Hotkey   keyboard.Key
	Notifier notify.Notifier
	Logger   *slog.Logger
	// OnToggle runs after the hotkey switched modes, typically to persist
	// the new state. Its error is logged, never returned.
	OnToggle func(types.InputMode) error
}

type Engine struct {
	mu         sync.Mutex
	output     emitter.Output
	session    *session.Session
	classifier keys.Classifier
	notifier   notify.Notifier
	logger     *slog.Logger
	onToggle   func(types.InputMode) error
	// column counts characters written since the last line break, so
	// backspace never walks past the start of the line.
	column int
}

func New(opts Options) *Engine {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Hotkey == 0 {
		opts.Hotkey = keyboard.KeyCtrlSpace
	}
	return &Engine{
		output:     opts.Output,
		session:    session.New(opts.Mode == types.ModeVietnamese),
		classifier: keys.NewClassifier(opts.Hotkey),
		notifier:   opts.Notifier,
		logger:     opts.Logger,
		onToggle:   opts.OnToggle,
	}
}

func (e *Engine) Mode() types.InputMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return types.ModeFor(e.session.Enabled())
}

// SetMode switches modes without notifying or persisting. It is used when
// the settings file changes underneath the engine.
func (e *Engine) SetMode(mode types.InputMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	enabled := mode == types.ModeVietnamese
	if e.session.Enabled() == enabled {
		return
	}
	e.session.SetEnabled(enabled)
	e.logger.Info("input mode changed", "mode", mode.String(), "source", "config")
}

func (e *Engine) SetHotkey(hotkey keyboard.Key) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classifier = keys.NewClassifier(hotkey)
}

// Run processes events until ctx is done, the channel closes or the quit
// key arrives.
func (e *Engine) Run(ctx context.Context, events <-chan keyboard.KeyEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				return fmt.Errorf("engine: read key: %w", ev.Err)
			}
			cont, err := e.ProcessEvent(ev)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}
}

// ProcessEvent classifies ev with the current hotkey and handles it.
func (e *Engine) ProcessEvent(ev keyboard.KeyEvent) (bool, error) {
	e.mu.Lock()
	key := e.classifier.Classify(ev)
	e.mu.Unlock()
	return e.ProcessKey(key)
}

// ProcessKey handles one logical key. It reports false once the host
// should stop.
func (e *Engine) ProcessKey(key keys.Key) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch key.Action {
	case keys.ActionQuit:
		return false, nil
	case keys.ActionChar:
		return true, e.typeRune(key.Rune)
	case keys.ActionBoundary:
		e.session.Reset()
		if err := e.write(session.Edit{Insert: string(key.Rune)}); err != nil {
			return false, err
		}
		// A tab spans an unknown number of cells, so backspace stops there
		// as it does at a line break.
		if key.Rune == '\n' || key.Rune == '\t' {
			e.column = 0
		}
		return true, nil
	case keys.ActionBackspace:
		e.session.Backspace()
		if e.column == 0 {
			return true, nil
		}
		return true, e.write(session.Edit{Erase: 1})
	case keys.ActionReset:
		e.session.Reset()
	case keys.ActionToggle:
		e.toggle()
	}
	return true, nil
}

func (e *Engine) typeRune(r rune) error {
	before := e.session.Word()
	edit, changed := e.session.Type(r)
	if changed {
		e.logger.Debug("word transformed", "from", before+string(r), "to", edit.Insert)
	}
	return e.write(edit)
}

func (e *Engine) write(edit session.Edit) error {
	if edit.Erase > 0 {
		if err := e.output.SendBackspace(edit.Erase); err != nil {
			e.logger.Error("erase failed", "count", edit.Erase, "err", err)
			return fmt.Errorf("engine: erase: %w", err)
		}
		e.column -= edit.Erase
		if e.column < 0 {
			e.column = 0
		}
	}
	if edit.Insert != "" {
		if err := e.output.SendText(edit.Insert); err != nil {
			e.logger.Error("insert failed", "text", edit.Insert, "err", err)
			return fmt.Errorf("engine: insert: %w", err)
		}
		e.column += len([]rune(edit.Insert))
	}
	return nil
}

func (e *Engine) toggle() {
	mode := types.ModeFor(e.session.Toggle())
	e.logger.Info("input mode changed", "mode", mode.String(), "source", "hotkey")
	if err := e.notifier.ModeChanged(mode); err != nil {
		e.logger.Warn("notification failed", "err", err)
	}
	if e.onToggle != nil {
		if err := e.onToggle(mode); err != nil {
			e.logger.Warn("saving input mode failed", "err", err)
		}
	}
}
