package session

import (
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/travigo/seatbooker/pkg/ctdf"
)

const trainRecordHeader = "id,departure_time,destination,seats"

type trainRecord struct {
	ID            int    `csv:"id"`
	DepartureTime string `csv:"departure_time"`
	Destination   string `csv:"destination"`
	Seats         int    `csv:"seats"`
}

// ParseTrainRecords builds trains from "id,HH:MM,destination,seats" values. Destinations
// containing commas need to be quoted.
func ParseTrainRecords(values []string) (ctdf.Trains, error) {
	if len(values) == 0 {
		return ctdf.Trains{}, nil
	}

	var records []*trainRecord
	document := trainRecordHeader + "\n" + strings.Join(values, "\n")
	if err := gocsv.UnmarshalString(document, &records); err != nil {
		return nil, fmt.Errorf("parse train records: %w", err)
	}

	trains := make(ctdf.Trains, 0, len(records))
	for i, record := range records {
		train, err := ctdf.NewTrain(record.ID, record.DepartureTime, record.Destination, record.Seats)
		if err != nil {
			return nil, fmt.Errorf("train record %d: %w", i+1, err)
		}

		trains = append(trains, train)
	}

	return trains, nil
}
