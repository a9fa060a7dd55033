package main

import (
	"github.com/samber/lo"
	"github.com/streamsift/streamsift/cmd"
	"github.com/streamsift/streamsift/config"
	"github.com/streamsift/streamsift/log"
	"github.com/streamsift/streamsift/network"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Setup()

	cmd.Execute()
}
