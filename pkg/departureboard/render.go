package departureboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/liip/sheriff"
	"github.com/travigo/seatbooker/pkg/ctdf"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatCSV}

func ParseFormat(value string) (Format, error) {
	if value == "" {
		return FormatTable, nil
	}

	for _, format := range Formats {
		if strings.EqualFold(value, string(format)) {
			return format, nil
		}
	}

	return "", fmt.Errorf("unsupported output format %q", value)
}

type Renderer struct {
	Format Format
	Styler Styler
	Filter *Filter

	// Sheriff groups included in JSON output, defaults to basic
	Groups []string
}

func (r Renderer) Render(w io.Writer, departureBoard []*ctdf.DepartureBoard) error {
	if r.Filter != nil {
		filtered, err := r.Filter.Apply(departureBoard)
		if err != nil {
			return err
		}
		departureBoard = filtered
	}

	switch r.Format {
	case FormatTable, "":
		return r.renderTable(w, departureBoard)
	case FormatJSON:
		return r.renderJSON(w, departureBoard)
	case FormatYAML:
		return renderYAML(w, departureBoard)
	case FormatCSV:
		return renderCSV(w, departureBoard)
	default:
		return fmt.Errorf("unsupported output format %q", r.Format)
	}
}

func (r Renderer) renderTable(w io.Writer, departureBoard []*ctdf.DepartureBoard) error {
	var output strings.Builder

	output.WriteString("\nTrain Schedule:\n")
	output.WriteString("Platform Train ID  Departure Time  Destination  Seat Status\n")

	for _, record := range departureBoard {
		var seatStatus strings.Builder
		for _, seat := range record.Seats {
			seatStatus.WriteString(r.Styler.SeatMarker(seat))
			seatStatus.WriteString(" ")
		}

		fmt.Fprintf(&output, "%-8d %-9d %-15s %-12s %s\n",
			record.PlatformNumber, record.ID, record.Departure, record.Destination, seatStatus.String())
	}

	_, err := io.WriteString(w, output.String())
	return err
}

func (r Renderer) renderJSON(w io.Writer, departureBoard []*ctdf.DepartureBoard) error {
	groups := r.Groups
	if len(groups) == 0 {
		groups = []string{"basic"}
	}

	departureBoardReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, departureBoard)
	if err != nil {
		return fmt.Errorf("sheriff could not reduce departure board: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(departureBoardReduced)
}

func renderYAML(w io.Writer, departureBoard []*ctdf.DepartureBoard) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(departureBoard); err != nil {
		return err
	}

	return encoder.Close()
}

type csvRecord struct {
	PlatformNumber int    `csv:"platform"`
	ID             int    `csv:"train_id"`
	Departure      string `csv:"departure_time"`
	Destination    string `csv:"destination"`
	SeatCount      int    `csv:"seat_count"`
	AvailableSeats string `csv:"available_seats"`
	BookedSeats    string `csv:"booked_seats"`
}

func renderCSV(w io.Writer, departureBoard []*ctdf.DepartureBoard) error {
	records := make([]*csvRecord, 0, len(departureBoard))

	for _, record := range departureBoard {
		var available, booked []string
		for _, seat := range record.Seats {
			if seat.Status == ctdf.SeatStatusAvailable {
				available = append(available, fmt.Sprint(seat.Number))
			} else {
				booked = append(booked, fmt.Sprint(seat.Number))
			}
		}

		records = append(records, &csvRecord{
			PlatformNumber: record.PlatformNumber,
			ID:             record.ID,
			Departure:      record.Departure,
			Destination:    record.Destination,
			SeatCount:      record.SeatCount,
			AvailableSeats: strings.Join(available, " "),
			BookedSeats:    strings.Join(booked, " "),
		})
	}

	return gocsv.Marshal(records, w)
}
