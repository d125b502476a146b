package session

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/travigo/seatbooker/pkg/ctdf"
	"github.com/travigo/seatbooker/pkg/departureboard"
	"github.com/travigo/seatbooker/pkg/timetable"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	renderFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "schedule format: table, json, yaml or csv",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable coloured output",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "only show trains matching the expression, eg. 'Destination == \"Leeds\"'",
		},
		&cli.BoolFlag{
			Name:  "detailed",
			Usage: "include seat counts and available seats in json output",
		},
	}

	return &cli.Command{
		Name:  "booking",
		Usage: "Train scheduling and seat booking",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run an interactive booking session",
				Flags: renderFlags,
				Action: func(c *cli.Context) error {
					renderer, err := rendererFromContext(c)
					if err != nil {
						return err
					}

					ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
					defer stop()

					bookingSession := &Session{
						Input:    os.Stdin,
						Output:   c.App.Writer,
						Renderer: renderer,
					}

					return bookingSession.Run(ctx)
				},
			},
			{
				Name:  "schedule",
				Usage: "print the schedule for the given trains",
				Flags: append([]cli.Flag{
					&cli.StringSliceFlag{
						Name:     "train",
						Usage:    "train as id,HH:MM,destination,seats (repeatable)",
						Required: true,
					},
				}, renderFlags...),
				Action: func(c *cli.Context) error {
					renderer, err := rendererFromContext(c)
					if err != nil {
						return err
					}

					trains, err := ParseTrainRecords(c.StringSlice("train"))
					if err != nil {
						return err
					}

					timetable.Schedule(trains)

					return renderer.Render(c.App.Writer, ctdf.GenerateDepartureBoardFromTrains(trains))
				},
			},
		},
	}
}

// Flags take priority over the environment
func rendererFromContext(c *cli.Context) (departureboard.Renderer, error) {
	config, err := LoadConfig()
	if err != nil {
		return departureboard.Renderer{}, err
	}

	renderer := departureboard.Renderer{
		Format: config.Format,
		Styler: departureboard.Styler{Colour: config.Colour && !c.Bool("no-color")},
	}

	if c.IsSet("output") {
		if renderer.Format, err = departureboard.ParseFormat(c.String("output")); err != nil {
			return departureboard.Renderer{}, err
		}
	}

	if c.String("filter") != "" {
		if renderer.Filter, err = departureboard.CompileFilter(c.String("filter")); err != nil {
			return departureboard.Renderer{}, err
		}
	}

	if c.Bool("detailed") {
		renderer.Groups = []string{"basic", "detailed"}
	}

	return renderer, nil
}
