package departureboard

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/seatbooker/pkg/ctdf"
	"github.com/travigo/seatbooker/pkg/util"
)

// Filter is a boolean expression over the fields of a ctdf.DepartureBoard record,
// eg. `Destination == "Leeds" && len(AvailableSeats) > 0`
type Filter struct {
	Source string

	program *vm.Program
}

func CompileFilter(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(ctdf.DepartureBoard{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", source, err)
	}

	return &Filter{
		Source:  source,
		program: program,
	}, nil
}

func (f *Filter) Match(record *ctdf.DepartureBoard) (bool, error) {
	result, err := expr.Run(f.program, *record)
	if err != nil {
		return false, fmt.Errorf("run filter %q on train %d: %w", f.Source, record.ID, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T", f.Source, result)
	}

	return matched, nil
}

// Apply returns the matching records without modifying the given slice
func (f *Filter) Apply(departureBoard []*ctdf.DepartureBoard) ([]*ctdf.DepartureBoard, error) {
	filtered := make([]*ctdf.DepartureBoard, len(departureBoard))
	copy(filtered, departureBoard)

	var filterErr error
	util.InPlaceFilter(&filtered, func(record *ctdf.DepartureBoard) bool {
		if filterErr != nil {
			return false
		}

		matched, err := f.Match(record)
		if err != nil {
			filterErr = err
		}

		return matched
	})

	if filterErr != nil {
		return nil, filterErr
	}

	return filtered, nil
}
