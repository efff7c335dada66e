package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/techee/lexilla/internal/cachemanager"
	"github.com/techee/lexilla/internal/highlight"
	"github.com/techee/lexilla/internal/log"
	"github.com/techee/lexilla/internal/pubsub"
	"github.com/techee/lexilla/internal/render"
	"github.com/techee/lexilla/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file.dart>",
	Short: "Watch a Dart file and re-lex incrementally on change",
	Long:  `Watches the file for writes; on each change only the region from the first edited line onward is re-lexed using the stored per-line states, and the highlighted file is reprinted.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// refresh is the payload published after each incremental re-lex.
type refresh struct {
	path        string
	restartLine int
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	provider, err := newProvider()
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cache := cachemanager.NewInMemoryCacheManager[*highlight.Highlighter](
		"watch", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	broker := pubsub.NewBroker[refresh]()
	defer broker.Close()
	events := broker.Subscribe(ctx)

	h, err := loadHighlighter(path, provider)
	if err != nil {
		return err
	}
	cache.Set(path, h)

	renderer := render.New(cfg.Theme)
	fmt.Print(renderer.Render(h.Document()))

	w, err := watcher.New(watcher.Config{Path: path, DebounceDur: cfg.Watch.Debounce})
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	changes, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	go func() {
		dmp := diffmatchpatch.New()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
				if err != nil {
					log.ErrorErr(log.CatWatch, "re-reading watched file", err, "path", path)
					continue
				}
				h, ok := cache.Get(path)
				if !ok {
					h = highlight.New(data, keywordLists())
					h.Lex()
					cache.Set(path, h)
					broker.Publish(pubsub.CreatedEvent, refresh{path: path, restartLine: 0})
					continue
				}
				oldText := string(h.Document().Text())
				_, span := provider.StartPass(ctx, "lexilla.refresh", 0, len(data))
				restart := h.Refresh(data)
				span.End()
				diffs := dmp.DiffMain(oldText, string(data), false)
				log.Debug(log.CatWatch, "file changed",
					"edit_distance", dmp.DiffLevenshtein(diffs), "restart_line", restart)
				broker.Publish(pubsub.UpdatedEvent, refresh{path: path, restartLine: restart})
			}
		}
	}()

	log.Info(log.CatWatch, "watching", "path", path, "debounce", cfg.Watch.Debounce)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			h, found := cache.Get(ev.Payload.path)
			if !found {
				continue
			}
			fmt.Print("\033[2J\033[H") // clear screen before reprint
			fmt.Print(renderer.Render(h.Document()))
			log.Debug(log.CatWatch, "reprinted", "restart_line", ev.Payload.restartLine)
		}
	}
}
