package timetable

import (
	"time"

	"github.com/travigo/seatbooker/pkg/ctdf"
)

// AssignPlatforms walks the sorted trains and gives platform 2 to any train departing at exactly
// the same time as the train before it, every other train gets platform 1.
// Only the immediate predecessor is compared so runs of equal times are not counted up.
func AssignPlatforms(trains []*ctdf.Train) {
	var previousDepartureTime *time.Time

	for _, train := range trains {
		platformNumber := 1

		if previousDepartureTime != nil && train.DepartureTime.Equal(*previousDepartureTime) {
			platformNumber++
		}

		departureTime := train.DepartureTime
		previousDepartureTime = &departureTime
		train.PlatformNumber = platformNumber
	}
}

// Schedule sorts the trains and assigns their platforms
func Schedule(trains []*ctdf.Train) {
	SortByDepartureTime(trains)
	AssignPlatforms(trains)
}
