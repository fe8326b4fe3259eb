package engine

import (
	"fmt"

	"github.com/ahmedabadawi/Tarneeb/internal/game/table"
)

const tricksPerHand = 13

// PlayResult is the signal value returned by Place instead of a
// callback into the owning session.
type PlayResult struct {
	TrickDone    bool
	TrickWinner  table.Position
	HandComplete bool
}

// PlayHand runs the trick-play phase of one hand: thirteen tricks over
// the dealt cards under a trump fixed at hand start. Trump None means
// no-trump; each trick is then judged against its own base suit.
type PlayHand struct {
	hands        map[table.Position][]table.Card
	trick        map[table.Position]table.Card
	baseSuit     table.Suit
	current      table.Position
	trump        table.Suit
	tricksWon    map[table.TeamPosition]int
	tricksPlayed int
}

func NewPlayHand(hands map[table.Position][]table.Card, lead table.Position, trump table.Suit) *PlayHand {
	return &PlayHand{
		hands:   hands,
		trick:   make(map[table.Position]table.Card, 4),
		current: lead,
		trump:   trump,
		tricksWon: map[table.TeamPosition]int{
			table.NorthSouth: 0,
			table.EastWest:   0,
		},
	}
}

// CurrentTurn returns the seat expected to play next.
func (h *PlayHand) CurrentTurn() table.Position {
	return h.current
}

// Trump returns the hand's trump suit; None for a no-trump hand.
func (h *PlayHand) Trump() table.Suit {
	return h.trump
}

// BaseSuit returns the suit led in the current trick, or None before
// the first card.
func (h *PlayHand) BaseSuit() table.Suit {
	return h.baseSuit
}

// Hand returns a copy of the cards still held at pos.
func (h *PlayHand) Hand(pos table.Position) []table.Card {
	out := make([]table.Card, len(h.hands[pos]))
	copy(out, h.hands[pos])
	return out
}

// Trick returns a copy of the cards in the current trick.
func (h *PlayHand) Trick() map[table.Position]table.Card {
	out := make(map[table.Position]table.Card, len(h.trick))
	for pos, c := range h.trick {
		out[pos] = c
	}
	return out
}

// TricksWon returns a copy of the per-team trick counters.
func (h *PlayHand) TricksWon() map[table.TeamPosition]int {
	return map[table.TeamPosition]int{
		table.NorthSouth: h.tricksWon[table.NorthSouth],
		table.EastWest:   h.tricksWon[table.EastWest],
	}
}

// TricksPlayed returns the number of completed tricks.
func (h *PlayHand) TricksPlayed() int {
	return h.tricksPlayed
}

// Complete reports whether all thirteen tricks have been played.
func (h *PlayHand) Complete() bool {
	return h.tricksPlayed >= tricksPerHand
}

// Place records one card for the seat at pos. The fourth card of a
// trick triggers evaluation: the winning team's counter increments,
// the trick clears and the winner leads the next one.
func (h *PlayHand) Place(pos table.Position, card table.Card) (PlayResult, error) {
	if pos != h.current {
		return PlayResult{}, fmt.Errorf("%w: it is %s's play", ErrNotYourTurn, h.current)
	}
	if _, dup := h.trick[pos]; dup {
		return PlayResult{}, fmt.Errorf("%w: %s", ErrAlreadyPlayed, pos)
	}
	if !h.holds(pos, card) {
		return PlayResult{}, fmt.Errorf("%w: %s does not hold %s", ErrInvalidPlay, pos, card)
	}

	h.trick[pos] = card
	h.removeFromHand(pos, card)
	if len(h.trick) == 1 {
		h.baseSuit = card.Suit
	}

	if len(h.trick) < 4 {
		h.current = h.current.Next()
		return PlayResult{}, nil
	}

	winner := h.evaluateTrick()
	h.tricksWon[table.TeamOf(winner)]++
	h.trick = make(map[table.Position]table.Card, 4)
	h.baseSuit = table.None
	h.current = winner
	h.tricksPlayed++

	return PlayResult{
		TrickDone:    true,
		TrickWinner:  winner,
		HandComplete: h.Complete(),
	}, nil
}

// evaluateTrick finds the seat that played the strongest card: a trump
// beats any non-trump, the base suit beats off-suit, rank (Ace high)
// decides within a suit. With no trump declared the trick's base suit
// acts as the trump.
func (h *PlayHand) evaluateTrick() table.Position {
	effTrump := h.trump
	if effTrump == table.None {
		effTrump = h.baseSuit
	}

	var winner table.Position
	best := -1
	for _, pos := range []table.Position{table.South, table.East, table.North, table.West} {
		card, ok := h.trick[pos]
		if !ok {
			continue
		}
		s := h.cardStrength(card, effTrump)
		if s > best {
			best = s
			winner = pos
		}
	}
	return winner
}

// cardStrength collapses the trump/base-suit classes and the in-suit
// rank into one comparable value. Off-suit cards score zero and can
// never win; the base suit always exists so a winner always does.
func (h *PlayHand) cardStrength(card table.Card, effTrump table.Suit) int {
	rank := card.Rank
	if rank == 1 {
		rank = 14 // Ace high
	}
	switch card.Suit {
	case effTrump:
		return 200 + rank
	case h.baseSuit:
		return 100 + rank
	default:
		return 0
	}
}

func (h *PlayHand) holds(pos table.Position, card table.Card) bool {
	for _, c := range h.hands[pos] {
		if c == card {
			return true
		}
	}
	return false
}

func (h *PlayHand) removeFromHand(pos table.Position, card table.Card) {
	hand := h.hands[pos]
	for i, c := range hand {
		if c == card {
			h.hands[pos] = append(hand[:i], hand[i+1:]...)
			return
		}
	}
}
