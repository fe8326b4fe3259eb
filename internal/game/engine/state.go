package engine

import (
	"time"

	"github.com/ahmedabadawi/Tarneeb/internal/game/table"
	"github.com/google/uuid"
)

// BiddingState is a read-only snapshot of the auction.
type BiddingState struct {
	Bids        []Bid
	CurrentTurn table.Position
	IsClosed    bool
	Winner      table.Position // zero when no contract stands
	WinnerBid   *Bid
}

// PlayState is a read-only snapshot of the trick-play phase from one
// player's point of view; only that player's cards are included.
type PlayState struct {
	CurrentTurn  table.Position
	CurrentCards []table.Card
	CurrentTrick map[table.Position]table.Card
	BaseSuit     table.Suit
	Trump        table.Suit
	TricksWon    map[table.TeamPosition]int
	TricksPlayed int
}

// SessionState is a read-only snapshot of the session itself.
type SessionState struct {
	ID          uuid.UUID
	Players     map[table.Position]*table.Player
	Status      Status
	CreatedAt   time.Time
	MatchTotals map[table.TeamPosition]int
}
