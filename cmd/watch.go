package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamsift/streamsift/board"
	"github.com/streamsift/streamsift/color"
	"github.com/streamsift/streamsift/icon"
	"github.com/streamsift/streamsift/inline"
	"github.com/streamsift/streamsift/key"
	"github.com/streamsift/streamsift/page"
	"github.com/streamsift/streamsift/stream"
	"github.com/streamsift/streamsift/style"
	"github.com/streamsift/streamsift/watch"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	addSelectionFlags(watchCmd.Flags())
	_ = watchCmd.Flags().MarkHidden("interactive")
}

var watchCmd = &cobra.Command{
	Use:   "watch file",
	Short: "Filter a saved stream page again every time it changes",
	Long: `Watch a saved stream page and print the filtered list on every change.

The facet choices are taken from the first version of the page and kept
while watching. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		options, done := optionsFromFlags(cmd, nil)
		defer done()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		handleErr(watchPage(ctx, args[0], options))
	},
}

func watchPage(ctx context.Context, path string, options *inline.Options) error {
	debounce := viper.GetDuration(key.WatchDebounce)
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	b := board.New()
	b.SelectAll(options.Selection)
	b.OnChange(func(b *board.Board) {
		fmt.Fprintf(options.Out, "%s %s %s\n",
			style.Fg(color.Cyan)(icon.Get(icon.Watch)),
			style.Bold(path),
			style.Faint(time.Now().Format(time.TimeOnly)),
		)
		if err := inline.Write(options.Out, b, options); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})

	w := watch.New(path, debounce)
	if year, ok := options.Year.Get(); ok {
		w.WithLoader(func(p string) (stream.Snapshot, error) {
			s, err := page.ReadFile(p)
			s.Year = year
			return s, err
		})
	}
	b.Attach(w)

	return w.Run(ctx)
}
