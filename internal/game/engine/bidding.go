package engine

import (
	"fmt"

	"github.com/ahmedabadawi/Tarneeb/internal/game/table"
)

// closingPasses is the trailing run of pass calls that ends an auction.
const closingPasses = 3

// BiddingRound runs one auction. It lives from entry into the Bidding
// phase until the auction closes; the owning engine reads the closed
// flag after each accepted bid rather than being called back.
type BiddingRound struct {
	roster      *table.Table
	bids        []Bid
	current     table.Position
	start       table.Position
	closed      bool
	allPassOpen bool // whether three opening passes close a bidless auction
}

func NewBiddingRound(roster *table.Table, start table.Position, allPassCloses bool) *BiddingRound {
	return &BiddingRound{
		roster:      roster,
		current:     start,
		start:       start,
		allPassOpen: allPassCloses,
	}
}

// CurrentTurn returns the seat expected to call next.
func (r *BiddingRound) CurrentTurn() table.Position {
	return r.current
}

// Closed reports whether the auction has ended.
func (r *BiddingRound) Closed() bool {
	return r.closed
}

// Bids returns a copy of the call history.
func (r *BiddingRound) Bids() []Bid {
	out := make([]Bid, len(r.bids))
	copy(out, r.bids)
	return out
}

// Winner returns the standing contract once the auction has closed.
// A closed all-pass auction has no winner.
func (r *BiddingRound) Winner() (Bid, bool) {
	if !r.closed {
		return Bid{}, false
	}
	return r.lastContract()
}

// Place validates and records one call. A pass is always accepted; a
// contract bid must strictly beat the standing contract. The auction
// closes when the trailing run of passes reaches three.
func (r *BiddingRound) Place(bid Bid) error {
	if r.closed {
		return ErrBiddingClosed
	}
	seated := r.roster.PlayerAt(r.current)
	if bid.Player == nil || seated == nil || seated.ID != bid.Player.ID {
		return fmt.Errorf("%w: it is %s's call", ErrNotYourTurn, r.current)
	}

	if !bid.IsPass {
		if last, ok := r.lastContract(); ok && bid.Compare(last) <= 0 {
			return fmt.Errorf("%w: %s does not beat %s", ErrBidTooLow, bid, last)
		}
	}

	r.bids = append(r.bids, bid)

	if bid.IsPass && r.trailingPasses() >= closingPasses {
		if _, ok := r.lastContract(); ok || r.allPassOpen {
			r.closed = true
			return nil
		}
	}
	r.current = r.current.Next()
	return nil
}

// lastContract scans backward for the most recent non-pass bid.
func (r *BiddingRound) lastContract() (Bid, bool) {
	for i := len(r.bids) - 1; i >= 0; i-- {
		if !r.bids[i].IsPass {
			return r.bids[i], true
		}
	}
	return Bid{}, false
}

// trailingPasses counts the run of passes at the end of the history.
func (r *BiddingRound) trailingPasses() int {
	n := 0
	for i := len(r.bids) - 1; i >= 0; i-- {
		if !r.bids[i].IsPass {
			break
		}
		n++
	}
	return n
}
