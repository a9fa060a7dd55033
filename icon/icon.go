// Package icon renders status symbols in the configured variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/streamsift/streamsift/key"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota
	Success
	Warn
	Visible
	Hidden
	Watch
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]*iconDef{
	Fail:    {emoji: "💥", nerd: "", plain: "x"},
	Success: {emoji: "🎉", nerd: "", plain: "ok"},
	Warn:    {emoji: "⚠️", nerd: "", plain: "!"},
	Visible: {emoji: "👁", nerd: "", plain: "+"},
	Hidden:  {emoji: "🙈", nerd: "", plain: "-"},
	Watch:   {emoji: "🔭", nerd: "", plain: "~"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get renders i in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.get()
}
