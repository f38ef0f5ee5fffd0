package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "meal-plan",
		Usage: "Utility for planning shared team meal orders",
		Commands: []*cli.Command{
			planCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var planCmd = &cli.Command{
	Name:    "plan",
	Usage:   "Plan meal orders for the queued teams",
	Aliases: []string{"p"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "restaurant",
			Required: true,
			Usage:    "specify the input restaurant.json",
		},
		&cli.StringFlag{
			Name:     "team",
			Required: true,
			Usage:    "specify the input team.json",
		},
		&cli.StringFlag{
			Name:     "plan",
			Required: true,
			Usage:    "specify the output plan.json",
		},
		&cli.BoolFlag{
			Name:     "prefer-larger",
			Required: false,
			Usage:    "prefer the larger restaurant on equal rates",
		},
		&cli.BoolFlag{
			Name:     "vv",
			Required: false,
			Usage:    "verbose output",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			restaurantFile = ctx.String("restaurant")
			teamFile       = ctx.String("team")
			planFile       = ctx.String("plan")
			preferLarger   = ctx.Bool("prefer-larger")
			verbose        = ctx.Bool("vv")
		)
		return doPlan(ctx.Context, restaurantFile, teamFile, planFile, preferLarger, verbose)
	},
}
