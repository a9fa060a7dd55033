package cmd

import (
	"context"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamsift/streamsift/addon"
	"github.com/streamsift/streamsift/inline"
	"github.com/streamsift/streamsift/key"
	"github.com/streamsift/streamsift/stream"
	"github.com/streamsift/streamsift/where"
)

func init() {
	rootCmd.AddCommand(addonCmd)
	addSelectionFlags(addonCmd.Flags())
	addContentFlags(addonCmd)
}

func addContentFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "movie", "Content type, movie or series")
	cmd.Flags().String("id", "", "Content id, e.g. tt0116483 or tt0903747:1:2 for an episode")
	lo.Must0(cmd.MarkFlagRequired("id"))
	lo.Must0(cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"movie", "series"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

func newAddonClient() *addon.Client {
	opts := addon.Options{
		StreamsURL: viper.GetString(key.AddonURL),
		MetaURL:    viper.GetString(key.AddonMetaURL),
	}
	if viper.GetBool(key.AddonCache) {
		opts.CachePath = where.Streams()
		opts.CacheTTL = viper.GetDuration(key.AddonCacheTTL)
	}
	return addon.New(opts)
}

func addonLoader(cmd *cobra.Command) inline.Loader {
	kind := lo.Must(cmd.Flags().GetString("type"))
	id := lo.Must(cmd.Flags().GetString("id"))
	client := newAddonClient()

	return func(ctx context.Context) (stream.Snapshot, error) {
		return client.Snapshot(ctx, kind, id)
	}
}

var addonCmd = &cobra.Command{
	Use:   "addon",
	Short: "Filter the streams an addon lists for a title",
	Long: `Fetch the stream list of a title from the configured stream addon and filter it.

The release year is read from the metadata addon. When it cannot be
found, titles are left empty and the first line of each stream is shown.`,
	Example: "  streamsift addon --type movie --id tt0116483 -q 4k",
	Run: func(cmd *cobra.Command, args []string) {
		options, done := optionsFromFlags(cmd, addonLoader(cmd))
		defer done()

		handleErr(inline.Run(cmd.Context(), options))
	},
}
