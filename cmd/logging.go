package cmd

import (
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("rt")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
