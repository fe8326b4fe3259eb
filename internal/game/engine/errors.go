package engine

import "errors"

var (
	// ErrWrongPhase is returned when an operation is invoked outside
	// the phase it belongs to.
	ErrWrongPhase = errors.New("operation not valid in the current phase")
	// ErrNotYourTurn is returned on a turn-order violation.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrBiddingClosed is returned for bids submitted after the
	// auction closed.
	ErrBiddingClosed = errors.New("bidding is closed")
	// ErrBidTooLow is returned for a non-pass bid that does not beat
	// the last standing bid.
	ErrBidTooLow = errors.New("bid does not exceed the last bid")
	// ErrAlreadyPlayed is returned when a seat already holds a card in
	// the current trick.
	ErrAlreadyPlayed = errors.New("card already played for the current trick")
	// ErrInvalidPlay is returned for a card the player cannot play.
	ErrInvalidPlay = errors.New("invalid play")
)
