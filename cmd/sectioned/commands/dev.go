package commands

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Dev implements the 'sectioned dev' command: watch the catalog/preset
// TOML and regenerate the Go tables whenever it changes. Editors save in
// bursts, so regeneration is debounced.
func Dev(args []string) error {
	fs := flag.NewFlagSet("dev", flag.ExitOnError)
	input := fs.String("config", "sectioned.toml", "Path to the catalog/preset TOML file")
	output := fs.String("out", "sectioned_gen.go", "Output Go file")
	pkg := fs.String("pkg", "main", "Package name for the generated file")
	verbose := fs.Bool("verbose", false, "Show verbose output")
	fs.Parse(args)

	logger := loggerFor(*verbose, os.Stderr)

	absPath, err := filepath.Abs(*input)
	if err != nil {
		return fmt.Errorf("bad config path %q: %w", *input, err)
	}

	regen := func() {
		if err := Generate([]string{"-config", absPath, "-out", *output, "-pkg", *pkg}); err != nil {
			logger.Error("generate failed", "err", err)
		}
	}
	regen()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save
	// and a direct file watch dies with the old inode.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}
	logger.Info("watching", "file", absPath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var timer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, _ := filepath.Abs(event.Name)
			if name != absPath {
				continue
			}
			logger.Debug("change detected", "event", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(300*time.Millisecond, regen)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		case <-sigCh:
			logger.Info("shutting down")
			return nil
		}
	}
}
