package main

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/seatbooker/pkg/session"
	"github.com/travigo/seatbooker/pkg/util"
	"github.com/urfave/cli/v2"
)

func main() {
	env := util.GetEnvironmentVariables()

	// Logs go to stderr so they never end up in a rendered schedule
	if env["SEATBOOKER_LOG_FORMAT"] != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if util.IsEnabled(env["SEATBOOKER_DEBUG"]) {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "seatbooker",
		Description: "Schedules trains onto platforms and books their seats",
		Writer:      colorable.NewColorableStdout(),

		// --train values are whole CSV records
		DisableSliceFlagSeparator: true,

		Commands: []*cli.Command{
			session.RegisterCLI(),
		},
	}
}
