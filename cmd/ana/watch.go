package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/boynton/ana"
	"github.com/boynton/ana/util"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Recompile FILE every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		return watch(args[0], stop)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watch compiles path once, then again on every write until stop fires. Compile failures are
// reported and the watch continues.
func watch(path string, stop <-chan os.Signal) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("absolute path: %w", err)
	}
	cache, err := ana.NewCache(16)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	// editors that save atomically replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	util.Log.Info().Str("path", absPath).Msg("watching for changes")
	recompile(absPath, cache)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			util.Log.Debug().Str("event", event.Op.String()).Str("file", event.Name).Msg("source changed")
			recompile(absPath, cache)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			util.Log.Error().Err(err).Msg("file watcher error")
		case <-stop:
			return nil
		}
	}
}

func recompile(path string, cache *ana.Cache) {
	src, err := os.ReadFile(path)
	if err != nil {
		util.Log.Error().Err(err).Msg("read failed")
		return
	}
	doc, err := cache.String(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(path, string(src), err))
		return
	}
	if err := writeDocument(doc, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
