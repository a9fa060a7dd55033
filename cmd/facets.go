package cmd

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/streamsift/streamsift/inline"
	"github.com/streamsift/streamsift/stream"
)

func init() {
	rootCmd.AddCommand(facetsCmd)
	facetsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	facetsCmd.Flags().StringP("type", "t", "movie", "Content type of --id")
	facetsCmd.Flags().String("id", "", "Read the streams from the addon instead of a file")
	facetsCmd.Flags().StringP("facet", "f", "", "Only list the values of this facet")
	lo.Must0(facetsCmd.RegisterFlagCompletionFunc("facet", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(stream.AllFacets(), func(f stream.Facet, _ int) string {
			return string(f)
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

func facetFromFlags(cmd *cobra.Command) (mo.Option[stream.Facet], error) {
	name := lo.Must(cmd.Flags().GetString("facet"))
	if name == "" {
		return mo.None[stream.Facet](), nil
	}

	f, err := stream.ParseFacet(name)
	if err != nil {
		return mo.None[stream.Facet](), err
	}
	return mo.Some(f), nil
}

var facetsCmd = &cobra.Command{
	Use:   "facets [file]",
	Short: "List the qualities, languages and origins found in a stream list",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		load := pageLoader(pathArg(args))
		if cmd.Flags().Changed("id") {
			load = addonLoader(cmd)
		}

		facet, err := facetFromFlags(cmd)
		handleErr(err)

		handleErr(inline.Run(cmd.Context(), &inline.Options{
			Out:        cmd.OutOrStdout(),
			Load:       load,
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			FacetsOnly: true,
			Facet:      facet,
		}))
	},
}
