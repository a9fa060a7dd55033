package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/streamsift/streamsift/filesystem"
	"github.com/streamsift/streamsift/inline"
	"github.com/streamsift/streamsift/key"
	"github.com/streamsift/streamsift/prompt"
	"github.com/streamsift/streamsift/stream"
	"github.com/streamsift/streamsift/util"
)

// titleShare is the part of the terminal width given to the title column.
const titleShare = 3

func addSelectionFlags(flags *pflag.FlagSet) {
	flags.StringP("quality", "q", stream.All, "Quality to keep, e.g. 1080p")
	flags.StringP("language", "l", stream.All, "Language to keep, e.g. 🇲🇽")
	flags.StringP("origin", "o", stream.All, "Origin to keep, e.g. ThePirateBay")
	flags.StringP("year", "y", "", "Release year titles are split on, overriding the one found")
	flags.BoolP("json", "j", false, "Format the output as JSON")
	flags.BoolP("show-hidden", "H", false, "Include streams hidden by the selection")
	flags.BoolP("interactive", "i", false, "Choose the selection from dropdowns")
	flags.String("output", "", "Write the output to a file instead of stdout")
}

func selectionFromFlags(cmd *cobra.Command) stream.Selection {
	return stream.NewSelection().
		With(stream.FacetQuality, lo.Must(cmd.Flags().GetString("quality"))).
		With(stream.FacetLanguage, lo.Must(cmd.Flags().GetString("language"))).
		With(stream.FacetOrigin, lo.Must(cmd.Flags().GetString("origin")))
}

func checkTableStyle(name string) error {
	if lo.Contains(inline.TableStyles(), name) {
		return nil
	}
	return fmt.Errorf("unknown %s %q, expected one of: %s", key.OutputStyle, name, strings.Join(inline.TableStyles(), ", "))
}

func tableStyle() string {
	name := viper.GetString(key.OutputStyle)
	handleErr(checkTableStyle(name))
	return name
}

func titleWidth() int {
	if !viper.GetBool(key.OutputTruncateTitles) {
		return 0
	}
	return util.TerminalWidth(120) / titleShare
}

func openOutput(cmd *cobra.Command) (io.Writer, func()) {
	path := lo.Must(cmd.Flags().GetString("output"))
	if path == "" {
		return os.Stdout, func() {}
	}

	file, err := filesystem.API().Create(path)
	handleErr(err)
	return file, func() { util.Ignore(file.Close) }
}

// optionsFromFlags builds the run options shared by every stream source.
func optionsFromFlags(cmd *cobra.Command, load inline.Loader) (*inline.Options, func()) {
	out, closeOut := openOutput(cmd)

	options := &inline.Options{
		Out:        out,
		Load:       load,
		Selection:  selectionFromFlags(cmd),
		Json:       lo.Must(cmd.Flags().GetBool("json")),
		ShowHidden: lo.Must(cmd.Flags().GetBool("show-hidden")),
		TitleWidth: titleWidth(),
		Style:      tableStyle(),
	}

	if year := lo.Must(cmd.Flags().GetString("year")); year != "" {
		options.Year = mo.Some(year)
	}

	if lo.Must(cmd.Flags().GetBool("interactive")) {
		options.Picker = mo.Some[inline.Picker](prompt.Select)
	}

	return options, closeOut
}
