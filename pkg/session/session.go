package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/seatbooker/pkg/ctdf"
	"github.com/travigo/seatbooker/pkg/departureboard"
	"github.com/travigo/seatbooker/pkg/timetable"
)

var errInvalidInput = errors.New("invalid input")

// Session registers trains from the input, prints the schedule and then takes seat
// bookings until a train id of 0 is entered
type Session struct {
	Input    io.Reader
	Output   io.Writer
	Renderer departureboard.Renderer

	Trains ctdf.Trains

	reader *lineReader
}

func (s *Session) Run(ctx context.Context) error {
	s.reader = newLineReader(s.Input)
	defer s.reader.Close()

	err := s.run(ctx)
	if errors.Is(err, errTerminated) {
		log.Debug().Int("trains", len(s.Trains)).Msg("Session terminated")
		s.println(departureboard.StyleFailure, "Program terminated")

		return nil
	}

	return err
}

func (s *Session) run(ctx context.Context) error {
	if err := s.registerTrains(ctx); err != nil {
		return err
	}

	timetable.Schedule(s.Trains)
	if event := log.Debug(); event.Enabled() {
		event.Msgf("Scheduled trains %s", pretty.Sprint(s.Trains))
	}

	if err := s.renderSchedule(); err != nil {
		return err
	}

	if err := s.bookSeats(ctx); err != nil {
		return err
	}

	return s.renderSchedule()
}

func (s *Session) registerTrains(ctx context.Context) error {
	var count int
	for {
		value, err := s.promptInt(ctx, "Enter the number of trains: ")
		if err != nil && !isInputError(err) {
			return err
		}

		if err == nil && value > 0 {
			count = value
			break
		}

		s.println(departureboard.StyleFailure, "Invalid input. Please enter a positive integer")
	}

	for i := 1; i <= count; i++ {
		for {
			train, err := s.promptTrain(ctx, i)
			if err != nil && !isInputError(err) {
				return err
			}

			if err != nil {
				log.Debug().Err(err).Int("train", i).Msg("Rejected train input")
				s.println(departureboard.StyleFailure, "Invalid input. Please enter valid values")
				continue
			}

			s.Trains = append(s.Trains, train)
			break
		}
	}

	return nil
}

// promptTrain stops at the first invalid field so the caller can restart the whole train
func (s *Session) promptTrain(ctx context.Context, number int) (*ctdf.Train, error) {
	id, err := s.promptInt(ctx, fmt.Sprintf("Enter Train ID for Train %d: ", number))
	if err != nil {
		return nil, err
	}

	departureTime, err := s.prompt(ctx, fmt.Sprintf("Enter Departure Time for Train %d (HH:MM): ", number))
	if err != nil {
		return nil, err
	}
	if _, err := ctdf.ParseDepartureTime(departureTime); err != nil {
		return nil, err
	}

	destination, err := s.prompt(ctx, fmt.Sprintf("Enter Destination for Train %d: ", number))
	if err != nil {
		return nil, err
	}

	seats, err := s.promptInt(ctx, fmt.Sprintf("Enter Number of Seats for Train %d: ", number))
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(s.Output)

	return ctdf.NewTrain(id, departureTime, destination, seats)
}

func (s *Session) bookSeats(ctx context.Context) error {
	for {
		trainID, err := s.promptInt(ctx, "Enter the train ID to book a seat (0 to exit): ")
		if err != nil && !isInputError(err) {
			return err
		}
		if err != nil {
			s.println(departureboard.StyleFailure, "Invalid input. Please enter a valid number")
			continue
		}

		if trainID == 0 {
			return nil
		}

		train := s.Trains.FindByID(trainID)
		if train == nil {
			s.println(departureboard.StylePlain, "Invalid train ID. Please try again.")
			continue
		}

		if train.IsFullyBooked() {
			s.println(departureboard.StylePlain, "Train is fully booked. Please try another train.")
			continue
		}

		seatNumber, err := s.promptInt(ctx, "Enter the seat number to book: ")
		if err != nil && !isInputError(err) {
			return err
		}
		if err != nil {
			s.println(departureboard.StyleFailure, "Invalid input. Please enter a valid number")
			continue
		}

		outcome := train.BookSeat(seatNumber)
		log.Debug().
			Int("train", train.ID).
			Int("seat", seatNumber).
			Str("outcome", outcome.String()).
			Msg("Seat booking attempt")

		s.println(departureboard.OutcomeStyle(outcome), outcome.Message(seatNumber, train.ID))
	}
}

func (s *Session) renderSchedule() error {
	return s.Renderer.Render(s.Output, ctdf.GenerateDepartureBoardFromTrains(s.Trains))
}

func (s *Session) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(s.Output, text)

	return s.reader.ReadLine(ctx)
}

func (s *Session) promptInt(ctx context.Context, text string) (int, error) {
	line, err := s.prompt(ctx, text)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w %q: expected an integer", errInvalidInput, line)
	}

	return value, nil
}

// isInputError reports values the user typed wrongly, which are answered with a re-prompt
func isInputError(err error) bool {
	return errors.Is(err, errInvalidInput) ||
		errors.Is(err, ctdf.ErrInvalidDepartureTime) ||
		errors.Is(err, ctdf.ErrInvalidSeatCount)
}

func (s *Session) println(style departureboard.Style, text string) {
	fmt.Fprintln(s.Output, s.Renderer.Styler.Apply(style, text))
}
