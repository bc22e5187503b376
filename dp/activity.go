package dp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/algoviz/trace"
)

// ActivitySelection picks a maximum set of mutually compatible intervals.
// The input slice is not modified.
//
// Intervals are stable-sorted by End; each is then either selected
// ("Select activity (s, e)") when its Start is not before the End of the
// last selected one, or skipped ("Skip activity (s, e)"). The first
// interval in end order is always selected. A final "Selected: [...]" line
// lists the choice.
func ActivitySelection(activities []Interval) (*ActivityResult, error) {
	for i, iv := range activities {
		if math.IsNaN(iv.Start) || math.IsNaN(iv.End) || iv.End < iv.Start {
			return nil, fmt.Errorf("%w: activity %d %s", ErrInvalidInterval, i, iv)
		}
	}

	acts := make([]Interval, len(activities))
	copy(acts, activities)
	sort.SliceStable(acts, func(i, j int) bool { return acts[i].End < acts[j].End })

	res := &ActivityResult{Selected: make([]Interval, 0, len(acts))}
	for _, iv := range acts {
		if len(res.Selected) == 0 || iv.Start >= res.Selected[len(res.Selected)-1].End {
			res.Selected = append(res.Selected, iv)
			res.Steps.Recordf("Select activity %s", iv)
			continue
		}
		res.Steps.Recordf("Skip activity %s", iv)
	}
	res.Steps.Recordf("Selected: %s", trace.List(res.Selected))

	return res, nil
}
