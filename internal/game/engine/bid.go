package engine

import (
	"fmt"

	"github.com/ahmedabadawi/Tarneeb/internal/game/table"
)

// Bid is one auction call: a trick count with a suit, or a pass. Suit
// None declares no-trump. IsDouble is recorded but not yet reflected
// in scoring.
type Bid struct {
	Player   *table.Player
	IsPass   bool
	IsDouble bool
	Tricks   int
	Suit     table.Suit
}

// NewBid builds a contract bid for the given trick count and suit.
func NewBid(player *table.Player, tricks int, suit table.Suit) Bid {
	return Bid{Player: player, Tricks: tricks, Suit: suit}
}

// PassBid builds a pass call.
func PassBid(player *table.Player) Bid {
	return Bid{Player: player, IsPass: true}
}

// PassDoubleBid builds a pass that doubles the standing contract.
func PassDoubleBid(player *table.Player) Bid {
	return Bid{Player: player, IsPass: true, IsDouble: true}
}

// suitStrength ranks suits for equal-trick comparison. The enum runs
// Spades(1)..Clubs(4) with None(0) for no-trump, so no-trump is
// strongest, then Spades down to Clubs.
func suitStrength(s table.Suit) int {
	return 4 - int(s)
}

// Compare orders contract bids: more tricks wins; on equal tricks the
// stronger suit wins (NoTrump > Spades > Hearts > Diamonds > Clubs).
// Pass calls are never compared.
func (b Bid) Compare(other Bid) int {
	if b.Tricks != other.Tricks {
		return b.Tricks - other.Tricks
	}
	return suitStrength(b.Suit) - suitStrength(other.Suit)
}

func (b Bid) String() string {
	if b.IsPass {
		if b.IsDouble {
			return fmt.Sprintf("%s - Pass (double)", b.Player)
		}
		return fmt.Sprintf("%s - Pass", b.Player)
	}
	return fmt.Sprintf("%s - %d %s", b.Player, b.Tricks, b.Suit)
}
