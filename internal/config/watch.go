package config

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the config file at path, and the input file the resulting
// Config names, and calls onChange with the newly loaded Config each time
// either is written. It runs until ctx is cancelled.
//
// Every load parses the file, passes it to override (when non-nil) and then
// validates it, so the input that is watched is the one after overrides.
// If a reload fails (e.g., invalid YAML), the error is logged and onChange
// is not called.
func Watch(ctx context.Context, path string, override func(*Config), onChange func(*Config)) error {
	load := func() (*Config, error) {
		cfg, err := Read(path)
		if err != nil {
			return nil, err
		}
		if override != nil {
			override(cfg)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := load()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}
	input := cfg.Input.Path
	if err := watcher.Add(input); err != nil {
		return err
	}

	slog.Info("config: watching for changes", "config", path, "input", input)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often save via rename, so treat Create like Write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			next, err := load()
			if err != nil {
				slog.Error("config: reload failed, keeping previous config",
					"path", path, "err", err)
				continue
			}

			slog.Info("config: change detected", "file", event.Name)
			onChange(next)

			// Re-add both files in case an atomic save replaced the inode,
			// and follow the input if the config now names another file.
			_ = watcher.Add(path)
			if nextInput := next.Input.Path; nextInput != input {
				_ = watcher.Remove(input)
				input = nextInput
			}
			_ = watcher.Add(input)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}
