package table

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSeatOccupied is returned when a join targets a filled seat.
	ErrSeatOccupied = errors.New("seat occupied")
	// ErrNotAMember is returned when a leave names an unseated player.
	ErrNotAMember = errors.New("player is not a member")
)

// Position is one of the four seats. The turn cycle follows the seat
// numbering: South, East, North, West, back to South.
type Position int

const (
	South Position = iota + 1
	East
	North
	West
)

var positionNames = map[Position]string{
	South: "South",
	East:  "East",
	North: "North",
	West:  "West",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Next returns the seat that follows p in turn order.
func (p Position) Next() Position {
	if p == West {
		return South
	}
	return p + 1
}

// TeamPosition identifies one of the two partnerships.
type TeamPosition int

const (
	NorthSouth TeamPosition = iota
	EastWest
)

func (t TeamPosition) String() string {
	if t == NorthSouth {
		return "North-South"
	}
	return "East-West"
}

// Opponent returns the other partnership.
func (t TeamPosition) Opponent() TeamPosition {
	if t == NorthSouth {
		return EastWest
	}
	return NorthSouth
}

// TeamOf maps a seat to its partnership: North/South sit together, as
// do East/West.
func TeamOf(p Position) TeamPosition {
	if p == North || p == South {
		return NorthSouth
	}
	return EastWest
}

// Player is identified by its ID only. LastSeen is advisory idle
// bookkeeping for a hosting layer; the engines never act on it.
type Player struct {
	ID       uuid.UUID
	Name     string
	LastSeen time.Time
}

func NewPlayer(name string) *Player {
	return &Player{ID: uuid.New(), Name: name, LastSeen: time.Now()}
}

// Touch records activity now.
func (p *Player) Touch() {
	p.LastSeen = time.Now()
}

// Idle reports whether the player has been inactive for at least the
// given threshold.
func (p *Player) Idle(threshold time.Duration) bool {
	return time.Since(p.LastSeen) >= threshold
}

func (p *Player) String() string {
	return p.Name
}

// Team holds the two seats of one partnership. Player1 sits North or
// East, Player2 sits South or West.
type Team struct {
	Player1  *Player
	Player2  *Player
	Position TeamPosition
}

// Ready reports whether both seats are occupied.
func (t *Team) Ready() bool {
	return t.Player1 != nil && t.Player2 != nil
}

// IsMember reports whether the player occupies either seat.
func (t *Team) IsMember(p *Player) bool {
	return (t.Player1 != nil && t.Player1.ID == p.ID) ||
		(t.Player2 != nil && t.Player2.ID == p.ID)
}

// Join seats the player at the given position.
func (t *Team) Join(p *Player, pos Position) error {
	switch pos {
	case North, East:
		if t.Player1 != nil {
			return fmt.Errorf("%w: %s", ErrSeatOccupied, pos)
		}
		t.Player1 = p
	case South, West:
		if t.Player2 != nil {
			return fmt.Errorf("%w: %s", ErrSeatOccupied, pos)
		}
		t.Player2 = p
	}
	return nil
}

// Leave vacates the player's seat.
func (t *Team) Leave(p *Player) error {
	switch {
	case t.Player1 != nil && t.Player1.ID == p.ID:
		t.Player1 = nil
	case t.Player2 != nil && t.Player2.ID == p.ID:
		t.Player2 = nil
	default:
		return fmt.Errorf("%w: %s", ErrNotAMember, p.Name)
	}
	return nil
}

// Table is the roster of four seats grouped into the two teams.
type Table struct {
	teams map[TeamPosition]*Team
}

func NewTable() *Table {
	return &Table{
		teams: map[TeamPosition]*Team{
			NorthSouth: {Position: NorthSouth},
			EastWest:   {Position: EastWest},
		},
	}
}

// Team returns the partnership at the given team position.
func (t *Table) Team(pos TeamPosition) *Team {
	return t.teams[pos]
}

// Join seats the player at the given position.
func (t *Table) Join(p *Player, pos Position) error {
	return t.teams[TeamOf(pos)].Join(p, pos)
}

// Leave vacates whichever seat the player holds.
func (t *Table) Leave(p *Player) error {
	for _, team := range t.teams {
		if team.IsMember(p) {
			return team.Leave(p)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotAMember, p.Name)
}

// Ready reports whether all four seats are occupied.
func (t *Table) Ready() bool {
	return t.teams[NorthSouth].Ready() && t.teams[EastWest].Ready()
}

// PlayerAt returns the player seated at pos, or nil.
func (t *Table) PlayerAt(pos Position) *Player {
	team := t.teams[TeamOf(pos)]
	switch pos {
	case North, East:
		return team.Player1
	case South, West:
		return team.Player2
	}
	return nil
}

// PositionOf returns the seat the player holds.
func (t *Table) PositionOf(p *Player) (Position, bool) {
	for _, pos := range []Position{South, East, North, West} {
		if seated := t.PlayerAt(pos); seated != nil && seated.ID == p.ID {
			return pos, true
		}
	}
	return 0, false
}

// Players returns a snapshot of the seat assignments. Empty seats are
// present with a nil player.
func (t *Table) Players() map[Position]*Player {
	out := make(map[Position]*Player, 4)
	for _, pos := range []Position{South, East, North, West} {
		out[pos] = t.PlayerAt(pos)
	}
	return out
}
