// Package lobby supplies seated rosters: it queues waiting players
// and, once four are available, seats them on a fresh table.
package lobby

import (
	"fmt"
	"sync"

	"github.com/ahmedabadawi/Tarneeb/internal/game/table"
	"github.com/google/uuid"
)

// seatOrder assigns queue positions to seats, partners opposite.
var seatOrder = []table.Position{table.South, table.East, table.North, table.West}

// Service holds the waiting queue. OnTableReady fires with the filled
// table and its seated players once four players have joined.
type Service struct {
	mu      sync.Mutex
	waiting []*table.Player
	queued  map[uuid.UUID]struct{}

	OnTableReady func(*table.Table)
}

func NewService() *Service {
	return &Service{queued: make(map[uuid.UUID]struct{})}
}

// Join enqueues the player. It returns true while the player is still
// waiting for a table; false when this join completed one.
func (s *Service) Join(p *table.Player) (bool, error) {
	s.mu.Lock()
	if _, dup := s.queued[p.ID]; dup {
		s.mu.Unlock()
		return false, fmt.Errorf("player %s is already queued", p.Name)
	}
	s.waiting = append(s.waiting, p)
	s.queued[p.ID] = struct{}{}

	if len(s.waiting) < len(seatOrder) {
		s.mu.Unlock()
		return true, nil
	}

	seated := s.waiting[:len(seatOrder)]
	s.waiting = append([]*table.Player{}, s.waiting[len(seatOrder):]...)
	for _, q := range seated {
		delete(s.queued, q.ID)
	}
	s.mu.Unlock()

	tbl := table.NewTable()
	for i, q := range seated {
		// seats were free on a fresh table; a failure here is a bug
		if err := tbl.Join(q, seatOrder[i]); err != nil {
			return false, err
		}
	}
	if s.OnTableReady != nil {
		s.OnTableReady(tbl)
	}
	return false, nil
}

// Cancel removes a waiting player from the queue.
func (s *Service) Cancel(p *table.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.queued[p.ID]; !ok {
		return fmt.Errorf("player %s is not queued", p.Name)
	}
	delete(s.queued, p.ID)
	for i, q := range s.waiting {
		if q.ID == p.ID {
			s.waiting = append(s.waiting[:i], s.waiting[i+1:]...)
			break
		}
	}
	return nil
}

// Waiting returns the number of queued players.
func (s *Service) Waiting() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.waiting)
}
