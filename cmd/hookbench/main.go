package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	configKey     = "config"
	componentsKey = "components"
	memosKey      = "memos"
	iterationsKey = "iterations"
	targetKey     = "target"
)

func main() {
	cmd := &cli.Command{
		Name:  "hookbench",
		Usage: "Benchmark and inspect the hooks runtime",
		Commands: []*cli.Command{
			{
				Name:  "bench",
				Usage: "Mount counter components and time setter + flush rounds",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  configKey,
						Usage: "YAML file with benchmark sizes",
					},
					&cli.IntFlag{
						Name:  componentsKey,
						Usage: "Number of mounted components (overrides the config)",
					},
					&cli.IntFlag{
						Name:  memosKey,
						Usage: "Memo hooks per component (overrides the config)",
					},
					&cli.IntFlag{
						Name:  iterationsKey,
						Usage: "Update rounds per size (overrides the config)",
					},
				},
				Action: bench,
			},
			{
				Name:  "inspect",
				Usage: "Mount the memo seed component and dump its slots",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  targetKey,
						Usage: "Target the component renders into",
						Value: "output",
					},
				},
				Action: inspect,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
