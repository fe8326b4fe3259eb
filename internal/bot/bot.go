// Package bot provides random but rule-abiding players, used by the
// simulation binary and the end-to-end tests.
package bot

import (
	"math/rand"

	"github.com/ahmedabadawi/Tarneeb/internal/game/engine"
	"github.com/ahmedabadawi/Tarneeb/internal/game/table"
)

var bidSuits = []table.Suit{table.Clubs, table.Diamonds, table.Hearts, table.Spades, table.None}

// RandomBot makes legal calls and plays at random from its seat.
type RandomBot struct {
	Player *table.Player
	rnd    *rand.Rand
}

func NewRandomBot(p *table.Player, seed int64) *RandomBot {
	return &RandomBot{Player: p, rnd: rand.New(rand.NewSource(seed))}
}

// MakeBid passes most of the time and otherwise raises the standing
// contract minimally, so every auction stays legal and eventually
// closes.
func (b *RandomBot) MakeBid(st engine.BiddingState) engine.Bid {
	last := lastContract(st.Bids)
	if last == nil {
		if b.rnd.Intn(4) == 0 {
			return engine.PassBid(b.Player)
		}
		return engine.NewBid(b.Player, 1, bidSuits[b.rnd.Intn(len(bidSuits))])
	}
	if b.rnd.Intn(3) > 0 {
		return engine.PassBid(b.Player)
	}
	return minimalRaise(b.Player, *last)
}

// PlayCard picks any card still in hand; follow-suit is not enforced
// by the engine.
func (b *RandomBot) PlayCard(st engine.PlayState) table.Card {
	return st.CurrentCards[b.rnd.Intn(len(st.CurrentCards))]
}

func lastContract(bids []engine.Bid) *engine.Bid {
	for i := len(bids) - 1; i >= 0; i-- {
		if !bids[i].IsPass {
			return &bids[i]
		}
	}
	return nil
}

// minimalRaise returns the smallest bid strictly above last: the next
// stronger suit at the same trick count, or one more trick in Clubs.
func minimalRaise(p *table.Player, last engine.Bid) engine.Bid {
	for _, s := range bidSuits {
		candidate := engine.NewBid(p, last.Tricks, s)
		if candidate.Compare(last) > 0 {
			return candidate
		}
	}
	if last.Tricks >= 13 {
		return engine.PassBid(p)
	}
	return engine.NewBid(p, last.Tricks+1, table.Clubs)
}
