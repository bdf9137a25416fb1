package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/eiannone/keyboard"

	"vitelex/internal/cli"
	"vitelex/internal/common"
	"vitelex/internal/config"
	"vitelex/internal/emitter"
	"vitelex/internal/engine"
	"vitelex/internal/keys"
	"vitelex/internal/logging"
	"vitelex/internal/notify"
	"vitelex/internal/tty"
	"vitelex/internal/types"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vitelex: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return nil
	}

	path := opts.ConfigPath
	if path == "" {
		path = common.DefaultConfigPath()
	}
	cfg, loadErr := config.Load(path)
	applyOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	if loadErr != nil {
		logger.Warn("using default settings", "path", path, "err", loadErr)
	}

	hotkey, err := keys.ParseHotkey(cfg.Hotkey)
	if err != nil {
		return err
	}
	mode := types.ModeFor(cfg.Enabled)
	if opts.Mode != "" {
		if mode, err = types.ParseMode(opts.Mode); err != nil {
			return err
		}
	}

	if !tty.IsTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("stdin is not a terminal; pipe keystrokes through vitelex-tty instead")
	}
	if name, err := tty.Path(); err == nil {
		logger.Debug("terminal", "path", name)
	}

	notifier := newNotifier(cfg, logger)
	defer notifier.Close()

	events, err := keyboard.GetKeys(16)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	out := emitter.NewTerminal(os.Stdout)
	defer out.Close()

	eng := engine.New(engine.Options{
		Output:   out,
		Mode:     mode,
		Hotkey:   hotkey,
		Notifier: notifier,
		Logger:   logger,
		OnToggle: func(mode types.InputMode) error {
			return config.SetEnabled(path, mode == types.ModeVietnamese)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := config.Watch(ctx, path, logger, reloadHandler(eng, opts, logger)); err != nil {
		logger.Warn("settings will not reload", "err", err)
	}

	if err := out.SendText(fmt.Sprintf("vitelex: %s mode, %s toggles, ctrl+c quits\n", mode, cfg.Hotkey)); err != nil {
		return err
	}
	logger.Info("started", "mode", mode.String(), "hotkey", cfg.Hotkey, "config", path)
	if err := eng.Run(ctx, events); err != nil {
		return err
	}
	return out.SendText("\n")
}

// reloadHandler applies a reloaded settings file to the running engine.
// Values given on the command line stay in effect for the whole run.
func reloadHandler(eng *engine.Engine, opts cli.Options, logger *slog.Logger) func(config.Config) {
	return func(updated config.Config) {
		if opts.Mode == "" {
			eng.SetMode(types.ModeFor(updated.Enabled))
		}
		if opts.Hotkey != "" {
			return
		}
		if key, err := keys.ParseHotkey(updated.Hotkey); err == nil {
			eng.SetHotkey(key)
		} else {
			logger.Warn("ignoring hotkey from settings", "err", err)
		}
	}
}

func applyOverrides(cfg *config.Config, opts cli.Options) {
	if opts.Hotkey != "" {
		cfg.Hotkey = opts.Hotkey
	}
	if opts.NoNotify {
		cfg.Notify = false
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.LogFormat = opts.LogFormat
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
}

func newLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(logging.Options{Level: level, Format: format, FilePath: cfg.LogFile})
}

func newNotifier(cfg config.Config, logger *slog.Logger) notify.Notifier {
	if !cfg.Notify {
		return notify.Nop{}
	}
	n, err := notify.NewDBus()
	if err != nil {
		logger.Warn("desktop notifications disabled", "err", err)
		return notify.Nop{}
	}
	return n
}
