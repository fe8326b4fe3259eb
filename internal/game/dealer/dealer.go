// Package dealer shuffles and deals; it carries no rule knowledge.
package dealer

import (
	"math/rand"
	"sort"

	"github.com/ahmedabadawi/Tarneeb/internal/game/table"
)

const handSize = 13

// dealOrder maps the four contiguous 13-card groups of the shuffled
// deck to seats.
var dealOrder = []table.Position{table.South, table.East, table.North, table.West}

// Dealer owns its own random source so tests can inject a fixed seed.
type Dealer struct {
	rnd *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{rnd: rand.New(rand.NewSource(seed))}
}

// Deal shuffles a fresh 52-card deck and returns the four hands keyed
// by seat, each sorted ascending by card order.
func (d *Dealer) Deal() map[table.Position][]table.Card {
	deck := table.Deck()
	d.shuffle(deck)

	hands := make(map[table.Position][]table.Card, len(dealOrder))
	for i, pos := range dealOrder {
		hand := make([]table.Card, handSize)
		copy(hand, deck[i*handSize:(i+1)*handSize])
		sort.Slice(hand, func(a, b int) bool { return hand[a].Less(hand[b]) })
		hands[pos] = hand
	}
	return hands
}

// shuffle performs an unbiased Fisher-Yates permutation in place.
func (d *Dealer) shuffle(deck []table.Card) {
	for i := len(deck) - 1; i >= 1; i-- {
		j := d.rnd.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}
