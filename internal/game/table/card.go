package table

import (
	"fmt"
	"strings"
)

// Suit of a playing card. None is not a valid card suit; it marks a
// no-trump bid.
type Suit int

const (
	None Suit = iota
	Spades
	Hearts
	Diamonds
	Clubs
)

var suitNames = map[Suit]string{
	None:     "No Trump",
	Spades:   "Spades",
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
}

var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// ParseSuit maps a one-letter suit code (S, H, D, C) to a Suit.
func ParseSuit(code string) (Suit, error) {
	switch strings.ToUpper(code) {
	case "S":
		return Spades, nil
	case "H":
		return Hearts, nil
	case "D":
		return Diamonds, nil
	case "C":
		return Clubs, nil
	default:
		return None, fmt.Errorf("suit %q is not a valid suit", code)
	}
}

// Card is an immutable rank/suit pair. Rank runs 1..13 with 1 = Ace,
// 11 = Jack, 12 = Queen, 13 = King.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

var rankNames = map[int]string{1: "A", 11: "J", 12: "Q", 13: "K"}

func (c Card) String() string {
	r, ok := rankNames[c.Rank]
	if !ok {
		r = fmt.Sprintf("%d", c.Rank)
	}
	sym, ok := suitSymbols[c.Suit]
	if !ok {
		sym = "?"
	}
	return r + sym
}

// ParseCard reads the [Rank][SuitCode] form, e.g. "AS" for the Ace of
// Spades or "10D" for the 10 of Diamonds.
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("card %q is too short", s)
	}
	suit, err := ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, err
	}
	rank, ok := parseRank(s[:len(s)-1])
	if !ok {
		return Card{}, fmt.Errorf("card %q has an invalid rank", s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(s string) (int, bool) {
	switch strings.ToUpper(s) {
	case "A":
		return 1, true
	case "J":
		return 11, true
	case "Q":
		return 12, true
	case "K":
		return 13, true
	}
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	if n < 1 || n > 13 {
		return 0, false
	}
	return n, true
}

// order positions the rank for comparison; the Ace outranks the King.
func (c Card) order() int {
	if c.Rank == 1 {
		return 14
	}
	return c.Rank
}

// Compare orders cards suit-first (Spades > Hearts > Diamonds > Clubs)
// and by rank within a suit, Ace high. Returns <0, 0 or >0.
func (c Card) Compare(other Card) int {
	if c.Suit != other.Suit {
		// lower suit value = stronger suit
		return int(other.Suit) - int(c.Suit)
	}
	return c.order() - other.order()
}

// Less reports whether c sorts before other under Compare.
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// Deck returns the 52 distinct cards, unshuffled.
func Deck() []Card {
	deck := make([]Card, 0, 52)
	for s := Spades; s <= Clubs; s++ {
		for r := 1; r <= 13; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}
