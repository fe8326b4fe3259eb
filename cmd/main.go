package main

import (
	"github.com/ahmedabadawi/Tarneeb/config"
	"github.com/ahmedabadawi/Tarneeb/internal/bot"
	"github.com/ahmedabadawi/Tarneeb/internal/events"
	"github.com/ahmedabadawi/Tarneeb/internal/game/engine"
	"github.com/ahmedabadawi/Tarneeb/internal/game/table"
	"github.com/ahmedabadawi/Tarneeb/internal/lobby"
	"github.com/ahmedabadawi/Tarneeb/internal/utils"

	"github.com/google/uuid"
)

// maxSteps bounds the simulation; random play converges to +-31 long
// before this.
const maxSteps = 1_000_000

func main() {
	config.Load()
	utils.Init(config.C.Log.Level)

	//-------------------------------------------------------
	// 1. Event hub (the hosting-layer seam)
	//-------------------------------------------------------
	hub := events.NewHub()
	sub := hub.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range sub {
			utils.Print.Info("event", "type", e.Type, "data", e.Data)
		}
	}()

	rules := engine.Rules{
		MatchTarget:   config.C.Rules.MatchTarget,
		AllPassCloses: config.C.Rules.AllPassCloses,
	}

	//-------------------------------------------------------
	// 2. Lobby seats four players, handing the engine a roster
	//-------------------------------------------------------
	var eng *engine.Engine
	lob := lobby.NewService()
	lob.OnTableReady = func(tbl *table.Table) {
		eng = engine.NewEngine(tbl, rules, hub)
		utils.Print.Info("table ready", "session", eng.ID)
	}

	players := []*table.Player{
		table.NewPlayer("Nadia"),
		table.NewPlayer("Omar"),
		table.NewPlayer("Salma"),
		table.NewPlayer("Karim"),
	}
	bots := make(map[uuid.UUID]*bot.RandomBot, len(players))
	for i, p := range players {
		bots[p.ID] = bot.NewRandomBot(p, int64(i+1))
		if _, err := lob.Join(p); err != nil {
			utils.Print.Fatal("lobby join failed", "err", err)
		}
	}
	if eng == nil {
		utils.Print.Fatal("lobby did not produce a table")
	}

	//-------------------------------------------------------
	// 3. Bots drive the match to completion
	//-------------------------------------------------------
	anyPlayer := players[0]
	for step := 0; eng.Status() != engine.Score; step++ {
		if step >= maxSteps {
			utils.Print.Fatal("simulation did not converge")
		}
		switch eng.Status() {
		case engine.Bidding:
			st, err := eng.BiddingState()
			if err != nil {
				utils.Print.Fatal("bidding state", "err", err)
			}
			p := eng.Table.PlayerAt(st.CurrentTurn)
			if err := eng.PlaceBid(bots[p.ID].MakeBid(st)); err != nil {
				utils.Print.Fatal("place bid", "err", err)
			}
		case engine.GamePlay:
			st, err := eng.PlayState(anyPlayer)
			if err != nil {
				utils.Print.Fatal("play state", "err", err)
			}
			p := eng.Table.PlayerAt(st.CurrentTurn)
			own, err := eng.PlayState(p)
			if err != nil {
				utils.Print.Fatal("play state", "err", err)
			}
			if err := eng.PlaceCard(p, bots[p.ID].PlayCard(own)); err != nil {
				utils.Print.Fatal("place card", "err", err)
			}
		}
	}

	totals := eng.MatchScore().Totals()
	winner, _ := eng.MatchScore().Winner()
	utils.Print.Info("match finished",
		"winner", winner,
		"games", len(eng.MatchScore().Games()),
		"north-south", totals[table.NorthSouth],
		"east-west", totals[table.EastWest],
	)

	hub.Close()
	<-done
}
