package stats

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// Window is a half-open [Start, End) date range used to scope statistics.
type Window struct {
	Start time.Time
	End   time.Time
	Range string
}

var errCustomBounds = errors.New("custom range requires valid fromDate and toDate")

// ResolveWindow turns a range selector into concrete bounds, aligned to
// the calendar period containing now. Unlike the pipeline's lenient date
// filters, a custom range with missing or unparseable bounds is a hard
// input error.
func ResolveWindow(rangeParam, fromStr, toStr string, now time.Time) (Window, error) {
	switch rangeParam {
	case "", "week":
		// ISO week: Monday 00:00 through the following Monday.
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := truncateDay(now).AddDate(0, 0, -(weekday - 1))
		return Window{Start: start, End: start.AddDate(0, 0, 7), Range: "week"}, nil

	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: start.AddDate(0, 1, 0), Range: "month"}, nil

	case "quarter":
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: start.AddDate(0, 3, 0), Range: "quarter"}, nil

	case "custom":
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return Window{}, errCustomBounds
		}
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return Window{}, errCustomBounds
		}
		// Inclusive upper bound: the whole toDate day counts.
		return Window{Start: from, End: to.AddDate(0, 0, 1), Range: "custom"}, nil

	default:
		return Window{}, errors.New("range must be week, month, quarter or custom")
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
