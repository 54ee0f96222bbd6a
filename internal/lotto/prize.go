package lotto

// Rank is the Lotto 6/45 prize rank. RankNone means no prize.
type Rank int

const (
	RankNone Rank = iota
	RankFirst
	RankSecond
	RankThird
	RankFourth
	RankFifth
)

// RankOf ranks a set by its main-number matches and whether it holds the
// bonus number. The bonus only matters for 5 matches.
func RankOf(matches int, bonusHit bool) Rank {
	switch {
	case matches == 6:
		return RankFirst
	case matches == 5 && bonusHit:
		return RankSecond
	case matches == 5:
		return RankThird
	case matches == 4:
		return RankFourth
	case matches == 3:
		return RankFifth
	default:
		return RankNone
	}
}

func (r Rank) String() string {
	switch r {
	case RankFirst:
		return "1st"
	case RankSecond:
		return "2nd"
	case RankThird:
		return "3rd"
	case RankFourth:
		return "4th"
	case RankFifth:
		return "5th"
	default:
		return "none"
	}
}

// DrawResult is a Result against an official draw.
type DrawResult struct {
	Result
	BonusHit bool
	Rank     Rank
}

// CheckDraw scores batch against a draw's six numbers and bonus number.
func CheckDraw(batch Batch, numbers Winning, bonus int) []DrawResult {
	scored := Score(batch, numbers)
	out := make([]DrawResult, len(scored))
	for i, r := range scored {
		hit := r.Numbers.Contains(bonus)
		out[i] = DrawResult{Result: r, BonusHit: hit, Rank: RankOf(r.Matches, hit)}
	}
	return out
}

// BestRank returns the highest prize in results; RankNone beats nothing.
func BestRank(results []DrawResult) Rank {
	best := RankNone
	for _, r := range results {
		if r.Rank != RankNone && (best == RankNone || r.Rank < best) {
			best = r.Rank
		}
	}
	return best
}
