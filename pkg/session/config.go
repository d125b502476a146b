package session

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/travigo/seatbooker/pkg/departureboard"
	"github.com/travigo/seatbooker/pkg/util"
)

type Config struct {
	Format departureboard.Format
	Colour bool
}

// LoadConfig reads SEATBOOKER_OUTPUT, SEATBOOKER_NO_COLOR and NO_COLOR. Colour is only
// enabled by default when stdout is a terminal.
func LoadConfig() (Config, error) {
	stdout := os.Stdout.Fd()
	terminal := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)

	return ConfigFromEnvironment(util.GetEnvironmentVariables(), terminal)
}

func ConfigFromEnvironment(env map[string]string, terminal bool) (Config, error) {
	format, err := departureboard.ParseFormat(env["SEATBOOKER_OUTPUT"])
	if err != nil {
		return Config{}, err
	}

	colour := terminal
	if util.IsEnabled(env["SEATBOOKER_NO_COLOR"]) || env["NO_COLOR"] != "" {
		colour = false
	}

	return Config{
		Format: format,
		Colour: colour,
	}, nil
}
