package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/sheetmusic/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	watchCmd.Flags().Duration("debounce", 0, "quiet time before re-rendering")
	cobra.CheckErr(viper.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce")))
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch file",
	Short: "Re-renders a document whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return watch(ctx, args[0])
	},
}

func watch(ctx context.Context, path string) error {
	opts, err := renderOptions()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "could not resolve %v", path)
	}

	var mu sync.Mutex
	redraw := func() {
		mu.Lock()
		defer mu.Unlock()
		s, err := readStaff(abs)
		if err != nil {
			logger.Printf("%v", err)
			return
		}
		fmt.Println()
		if err := render.Write(os.Stdout, s, opts); err != nil {
			logger.Printf("%v", err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not start watcher")
	}
	defer watcher.Close()
	// editors often replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "could not watch %v", filepath.Dir(abs))
	}

	redraw()
	debounced := debounce.New(cfg.Watch.Debounce)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debounced(redraw)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("watch error: %v", err)
		}
	}
}
