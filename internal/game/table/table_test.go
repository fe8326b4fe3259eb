package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionCycle(t *testing.T) {
	assert.Equal(t, East, South.Next())
	assert.Equal(t, North, East.Next())
	assert.Equal(t, West, North.Next())
	assert.Equal(t, South, West.Next())
}

func TestTeamOf(t *testing.T) {
	assert.Equal(t, NorthSouth, TeamOf(North))
	assert.Equal(t, NorthSouth, TeamOf(South))
	assert.Equal(t, EastWest, TeamOf(East))
	assert.Equal(t, EastWest, TeamOf(West))
	assert.Equal(t, EastWest, NorthSouth.Opponent())
	assert.Equal(t, NorthSouth, EastWest.Opponent())
}

func TestTableJoinAndLookup(t *testing.T) {
	tbl := NewTable()
	players := map[Position]*Player{}
	for _, pos := range []Position{South, East, North, West} {
		p := NewPlayer(pos.String())
		players[pos] = p
		require.NoError(t, tbl.Join(p, pos))
	}

	assert.True(t, tbl.Ready())
	for pos, p := range players {
		assert.Equal(t, p, tbl.PlayerAt(pos))
		got, ok := tbl.PositionOf(p)
		require.True(t, ok)
		assert.Equal(t, pos, got)
	}
}

func TestTableJoinOccupiedSeat(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Join(NewPlayer("first"), North))

	err := tbl.Join(NewPlayer("second"), North)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSeatOccupied)

	// the partner seat of the same team is still free
	assert.NoError(t, tbl.Join(NewPlayer("third"), South))
}

func TestTableLeave(t *testing.T) {
	tbl := NewTable()
	p := NewPlayer("sitter")
	require.NoError(t, tbl.Join(p, West))
	require.NoError(t, tbl.Leave(p))
	assert.Nil(t, tbl.PlayerAt(West))

	err := tbl.Leave(NewPlayer("stranger"))
	assert.ErrorIs(t, err, ErrNotAMember)
}

func TestTeamNotReadyWithOnePlayer(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Join(NewPlayer("solo"), East))
	assert.False(t, tbl.Ready())
	assert.False(t, tbl.Team(EastWest).Ready())
}

func TestPlayerIdentityAndIdle(t *testing.T) {
	a := NewPlayer("same name")
	b := NewPlayer("same name")
	assert.NotEqual(t, a.ID, b.ID, "identity is by id, not name")

	a.LastSeen = time.Now().Add(-2 * time.Minute)
	assert.True(t, a.Idle(time.Minute))
	a.Touch()
	assert.False(t, a.Idle(time.Minute))
}
