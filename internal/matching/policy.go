package matching

import (
	"cmp"

	"github.com/nikmy/meowmatch/pkg/errors"
)

type Criterion string

const (
	// ByMastery prefers the smallest mastery level difference.
	ByMastery Criterion = "mastery"

	// ByScore prefers the higher average score of the opposite request.
	ByScore Criterion = "score"

	// ByEarliest prefers the earliest shared time point.
	ByEarliest Criterion = "earliest"
)

// Policy lists selection criteria from the most significant one. Options
// equal by every criterion keep the store order, so the first found wins.
type Policy struct {
	Criteria []Criterion `yaml:"criteria"`
}

// DefaultPolicy is "best match quality first, then earliest start time":
// closest mastery, ties broken by higher average score, then by the
// earliest shared time point.
func DefaultPolicy() Policy {
	return Policy{Criteria: []Criterion{ByMastery, ByScore, ByEarliest}}
}

func (p Policy) Validate() error {
	for _, c := range p.Criteria {
		switch c {
		case ByMastery, ByScore, ByEarliest:
		default:
			return errors.Errorf("unknown matching criterion %q", c)
		}
	}
	return nil
}

// compare returns a negative number when a is a better choice than b.
func (p Policy) compare(a, b option) int {
	for _, c := range p.Criteria {
		var res int
		switch c {
		case ByMastery:
			res = cmp.Compare(a.masteryGap, b.masteryGap)
		case ByScore:
			res = cmp.Compare(b.opposite.AverageScore, a.opposite.AverageScore)
		case ByEarliest:
			res = a.earliest.Compare(b.earliest)
		}
		if res != 0 {
			return res
		}
	}
	return 0
}
