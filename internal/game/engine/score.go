package engine

import "github.com/ahmedabadawi/Tarneeb/internal/game/table"

// contractOffset is the standard offset added to the bid trick count:
// a "2 Spades" contract commits to taking 8 of the 13 tricks.
const contractOffset = 6

// GameScore is the signed outcome of one completed hand.
type GameScore struct {
	Bid    Bid
	Scores map[table.TeamPosition]int
}

// scoreHand converts a finished hand into a GameScore. A made contract
// scores the bidding team all the tricks it took; a failed one costs
// it the full contract and hands the defenders their trick count. The
// double flag is recorded on the bid but no multiplier is applied yet.
func scoreHand(bid Bid, bidTeam table.TeamPosition, tricksWon map[table.TeamPosition]int) GameScore {
	bidTricks := bid.Tricks + contractOffset
	taken := tricksWon[bidTeam]

	bidScore, otherScore := 0, 0
	if taken >= bidTricks {
		bidScore = taken
	} else {
		bidScore = -bidTricks
		otherScore = tricksPerHand - taken
	}

	return GameScore{
		Bid: bid,
		Scores: map[table.TeamPosition]int{
			bidTeam:            bidScore,
			bidTeam.Opponent(): otherScore,
		},
	}
}

// MatchScore accumulates game scores until one team's total reaches
// +target, or forces the opposing team past it by dropping to -target.
type MatchScore struct {
	games  []GameScore
	totals map[table.TeamPosition]int
	target int
}

func NewMatchScore(target int) *MatchScore {
	return &MatchScore{
		totals: map[table.TeamPosition]int{
			table.NorthSouth: 0,
			table.EastWest:   0,
		},
		target: target,
	}
}

// Add appends one game score and updates the running totals.
func (m *MatchScore) Add(gs GameScore) {
	m.games = append(m.games, gs)
	m.totals[table.NorthSouth] += gs.Scores[table.NorthSouth]
	m.totals[table.EastWest] += gs.Scores[table.EastWest]
}

// Games returns a copy of the per-hand scores in play order.
func (m *MatchScore) Games() []GameScore {
	out := make([]GameScore, len(m.games))
	copy(out, m.games)
	return out
}

// Totals returns a copy of the running totals.
func (m *MatchScore) Totals() map[table.TeamPosition]int {
	return map[table.TeamPosition]int{
		table.NorthSouth: m.totals[table.NorthSouth],
		table.EastWest:   m.totals[table.EastWest],
	}
}

// Winner reports the winning team once a total crosses the boundary:
// a team wins by reaching +target or by its opponent falling to
// -target.
func (m *MatchScore) Winner() (table.TeamPosition, bool) {
	for _, team := range []table.TeamPosition{table.NorthSouth, table.EastWest} {
		if m.totals[team] >= m.target || m.totals[team.Opponent()] <= -m.target {
			return team, true
		}
	}
	return 0, false
}
