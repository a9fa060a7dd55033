package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/streamsift/streamsift/inline"
	"github.com/streamsift/streamsift/page"
	"github.com/streamsift/streamsift/stream"
)

func init() {
	rootCmd.AddCommand(filterCmd)
	addSelectionFlags(filterCmd.Flags())
}

// pageLoader reads a saved stream page, or stdin when path is empty or "-".
func pageLoader(path string) inline.Loader {
	return func(context.Context) (stream.Snapshot, error) {
		if path == "" || path == "-" {
			return page.Read(os.Stdin)
		}
		return page.ReadFile(path)
	}
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

var filterCmd = &cobra.Command{
	Use:   "filter [file]",
	Short: "Filter the streams of a saved stream page",
	Long: `Filter the streams of a saved stream page.

The page is read from file, or from stdin when no file is given.
Selections are matched against the text of each stream, so a partial
value such as "1080" keeps every stream mentioning it.`,
	Example: `  streamsift filter page.html -q 1080p -o ThePirateBay
  curl -s $URL | streamsift filter -l 🇲🇽 --json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		options, done := optionsFromFlags(cmd, pageLoader(pathArg(args)))
		defer done()

		handleErr(inline.Run(cmd.Context(), options))
	},
}
