// Package engine holds the authoritative state machine for one
// Tarneeb session: the bidding auction, the trick-play hand and the
// match score, composed under a single phase-driven orchestrator.
package engine

import (
	"fmt"
	"time"

	"github.com/ahmedabadawi/Tarneeb/internal/events"
	"github.com/ahmedabadawi/Tarneeb/internal/game/dealer"
	"github.com/ahmedabadawi/Tarneeb/internal/game/table"
	"github.com/google/uuid"
)

// Status is the session phase.
type Status int

const (
	WaitingForPlayers Status = iota
	Bidding
	GamePlay
	Score
)

var statusNames = map[Status]string{
	WaitingForPlayers: "waiting_for_players",
	Bidding:           "bidding",
	GamePlay:          "game_play",
	Score:             "score",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Rules are the tunable parts of the state machine.
type Rules struct {
	// MatchTarget is the total that ends the match (31 in Tarneeb).
	MatchTarget int
	// AllPassCloses closes an auction after three opening passes even
	// though no contract stands; the session then redeals the auction.
	AllPassCloses bool
}

// DefaultRules are the standard Tarneeb rules.
func DefaultRules() Rules {
	return Rules{MatchTarget: 31, AllPassCloses: true}
}

// firstBidder opens every auction; the seat to the right of South.
const firstBidder = table.East

// Engine is one game session: the four-seat roster, the active phase
// engine (at most one of bidding/play is non-nil) and the match score.
// It is single-threaded; callers serialize access.
type Engine struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Table     *table.Table
	Dealer    *dealer.Dealer

	rules    Rules
	notifier events.Notifier

	status     Status
	bidding    *BiddingRound
	play       *PlayHand
	currentBid *Bid
	matchScore *MatchScore
}

func NewEngine(t *table.Table, rules Rules, notifier events.Notifier) *Engine {
	if notifier == nil {
		notifier = events.Nop{}
	}
	e := &Engine{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		Table:      t,
		Dealer:     dealer.NewDealer(time.Now().UnixNano()),
		rules:      rules,
		notifier:   notifier,
		status:     WaitingForPlayers,
		matchScore: NewMatchScore(rules.MatchTarget),
	}
	// a roster supplier may hand over an already-filled table
	if t.Ready() {
		e.startBidding()
		e.notifier.Notify(events.Event{
			Type: events.SessionReady,
			Data: map[string]any{"session": e.ID.String()},
		})
	}
	return e
}

// Status returns the current phase.
func (e *Engine) Status() Status {
	return e.status
}

// MatchScore returns the accumulated score of the match.
func (e *Engine) MatchScore() *MatchScore {
	return e.matchScore
}

// CurrentBid returns the contract standing from the last auction; it
// stays set through the play phase.
func (e *Engine) CurrentBid() (Bid, bool) {
	if e.currentBid == nil {
		return Bid{}, false
	}
	return *e.currentBid, true
}

// Join seats the player and starts the first auction once all four
// seats are filled.
func (e *Engine) Join(p *table.Player, pos table.Position) error {
	if e.status != WaitingForPlayers {
		return fmt.Errorf("%w: session is %s", ErrWrongPhase, e.status)
	}
	if err := e.Table.Join(p, pos); err != nil {
		return err
	}
	p.Touch()
	if e.Table.Ready() {
		e.startBidding()
		e.notifier.Notify(events.Event{
			Type: events.SessionReady,
			Data: map[string]any{"session": e.ID.String()},
		})
	}
	return nil
}

// Leave vacates the player's seat. Leaving mid-hand abandons the hand
// and drops the session back to waiting; the match score stands.
func (e *Engine) Leave(p *table.Player) error {
	if err := e.Table.Leave(p); err != nil {
		return err
	}
	if e.status == Bidding || e.status == GamePlay {
		e.bidding = nil
		e.play = nil
		e.currentBid = nil
		e.status = WaitingForPlayers
	}
	return nil
}

// PlaceBid submits one auction call for the current-turn player. When
// the auction closes with a contract the session deals and enters
// play; a winnerless all-pass close redeals the auction.
func (e *Engine) PlaceBid(bid Bid) error {
	if e.status != Bidding || e.bidding == nil {
		return fmt.Errorf("%w: session is %s", ErrWrongPhase, e.status)
	}
	if err := e.bidding.Place(bid); err != nil {
		return err
	}
	if bid.Player != nil {
		bid.Player.Touch()
	}
	if !e.bidding.Closed() {
		return nil
	}

	winner, ok := e.bidding.Winner()
	if !ok {
		e.startBidding()
		e.notifier.Notify(events.Event{
			Type: events.BiddingRestarted,
			Data: map[string]any{"session": e.ID.String()},
		})
		return nil
	}

	e.currentBid = &winner
	e.bidding = nil
	e.startPlay(winner)
	declarer, _ := e.Table.PositionOf(winner.Player)
	e.notifier.Notify(events.Event{
		Type: events.BiddingComplete,
		Data: map[string]any{
			"session":  e.ID.String(),
			"declarer": declarer.String(),
			"tricks":   winner.Tricks,
			"trump":    winner.Suit.String(),
		},
	})
	return nil
}

// PlaceCard plays one card for the current-turn player. Completing the
// thirteenth trick scores the hand and either re-opens the auction or
// ends the match.
func (e *Engine) PlaceCard(p *table.Player, card table.Card) error {
	if e.status != GamePlay || e.play == nil {
		return fmt.Errorf("%w: session is %s", ErrWrongPhase, e.status)
	}
	pos, ok := e.Table.PositionOf(p)
	if !ok {
		return fmt.Errorf("%w: %s", table.ErrNotAMember, p.Name)
	}
	res, err := e.play.Place(pos, card)
	if err != nil {
		return err
	}
	p.Touch()
	if res.HandComplete {
		e.finishHand()
	}
	return nil
}

// BiddingState snapshots the auction.
func (e *Engine) BiddingState() (BiddingState, error) {
	if e.status != Bidding || e.bidding == nil {
		return BiddingState{}, fmt.Errorf("%w: session is %s", ErrWrongPhase, e.status)
	}
	st := BiddingState{
		Bids:        e.bidding.Bids(),
		CurrentTurn: e.bidding.CurrentTurn(),
		IsClosed:    e.bidding.Closed(),
	}
	if winner, ok := e.bidding.Winner(); ok {
		pos, _ := e.Table.PositionOf(winner.Player)
		st.Winner = pos
		st.WinnerBid = &winner
	}
	return st, nil
}

// PlayState snapshots the trick-play phase for one player; only that
// player's own cards are disclosed.
func (e *Engine) PlayState(p *table.Player) (PlayState, error) {
	if e.status != GamePlay || e.play == nil {
		return PlayState{}, fmt.Errorf("%w: session is %s", ErrWrongPhase, e.status)
	}
	pos, ok := e.Table.PositionOf(p)
	if !ok {
		return PlayState{}, fmt.Errorf("%w: %s", table.ErrNotAMember, p.Name)
	}
	return PlayState{
		CurrentTurn:  e.play.CurrentTurn(),
		CurrentCards: e.play.Hand(pos),
		CurrentTrick: e.play.Trick(),
		BaseSuit:     e.play.BaseSuit(),
		Trump:        e.play.Trump(),
		TricksWon:    e.play.TricksWon(),
		TricksPlayed: e.play.TricksPlayed(),
	}, nil
}

// SessionState snapshots the session; valid in every phase.
func (e *Engine) SessionState() SessionState {
	return SessionState{
		ID:          e.ID,
		Players:     e.Table.Players(),
		Status:      e.status,
		CreatedAt:   e.CreatedAt,
		MatchTotals: e.matchScore.Totals(),
	}
}

func (e *Engine) startBidding() {
	e.play = nil
	e.bidding = NewBiddingRound(e.Table, firstBidder, e.rules.AllPassCloses)
	e.status = Bidding
}

func (e *Engine) startPlay(winner Bid) {
	lead, _ := e.Table.PositionOf(winner.Player)
	e.play = NewPlayHand(e.Dealer.Deal(), lead, winner.Suit)
	e.status = GamePlay
}

// finishHand scores the completed hand and moves to the next phase.
func (e *Engine) finishHand() {
	declarer, _ := e.Table.PositionOf(e.currentBid.Player)
	gs := scoreHand(*e.currentBid, table.TeamOf(declarer), e.play.TricksWon())
	e.matchScore.Add(gs)
	e.play = nil
	e.currentBid = nil

	e.notifier.Notify(events.Event{
		Type: events.HandComplete,
		Data: map[string]any{
			"session": e.ID.String(),
			"scores": map[string]int{
				table.NorthSouth.String(): gs.Scores[table.NorthSouth],
				table.EastWest.String():   gs.Scores[table.EastWest],
			},
		},
	})

	if winner, done := e.matchScore.Winner(); done {
		e.status = Score
		e.notifier.Notify(events.Event{
			Type: events.MatchComplete,
			Data: map[string]any{
				"session": e.ID.String(),
				"winner":  winner.String(),
			},
		})
		return
	}
	e.startBidding()
}
