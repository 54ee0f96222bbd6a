package lotto

// Result scores one set of a batch against a winning combination.
type Result struct {
	Position int // 1-based position in the batch
	Numbers  NumberSet
	Matches  int
}

type compareOptions struct {
	mode ParseMode
}

// CompareOption configures Compare.
type CompareOption func(*compareOptions)

// WithLenientParse makes Compare drop malformed tokens instead of failing
// on the first one.
func WithLenientParse() CompareOption {
	return func(o *compareOptions) { o.mode = ParseLenient }
}

// Compare parses winningInput and scores every set of batch against it.
// The batch is only read.
func Compare(batch Batch, winningInput string, opts ...CompareOption) ([]Result, error) {
	var o compareOptions
	for _, opt := range opts {
		opt(&o)
	}
	w, err := ParseWinning(winningInput, o.mode)
	if err != nil {
		return nil, err
	}
	return Score(batch, w), nil
}

// Score counts, for each set in batch, how many of its values are in w.
func Score(batch Batch, w Winning) []Result {
	results := make([]Result, len(batch))
	for i, ns := range batch {
		results[i] = Result{Position: i + 1, Numbers: ns, Matches: matches(ns, w)}
	}
	return results
}

// NumberSet values are distinct, so counting members of w gives the size
// of the intersection even if w holds duplicates.
func matches(ns NumberSet, w Winning) int {
	n := 0
	for _, v := range ns {
		if w.Contains(v) {
			n++
		}
	}
	return n
}

// MaxMatches returns the best match count in results, 0 when empty.
func MaxMatches(results []Result) int {
	best := 0
	for _, r := range results {
		best = max(best, r.Matches)
	}
	return best
}

// Tier is a qualitative bucket for the best match count of a batch.
type Tier int

const (
	TierNone Tier = iota
	TierSome
	TierHigh
	TierTop
)

// TierFor classifies the best match count of a batch.
func TierFor(maxMatches int) Tier {
	switch {
	case maxMatches >= PickSize:
		return TierTop
	case maxMatches >= 4:
		return TierHigh
	case maxMatches > 0:
		return TierSome
	default:
		return TierNone
	}
}

func (t Tier) String() string {
	switch t {
	case TierTop:
		return "top"
	case TierHigh:
		return "high"
	case TierSome:
		return "some"
	default:
		return "none"
	}
}
