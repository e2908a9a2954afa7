package game

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/salvo/internal/board"
	"github.com/samdwyer/salvo/internal/gamedata"
	"github.com/samdwyer/salvo/internal/ui"
)

func newSimGame(t *testing.T, cfg Config) (*Game, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	sim.SetSize(80, 24)
	return newGame(cfg, screen), sim
}

func typeLine(sim tcell.SimulationScreen, text string) {
	for _, r := range text {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
}

func TestGameRunQuit(t *testing.T) {
	g, sim := newSimGame(t, Config{Seed: 1})

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v, want clean exit on quit", err)
	}
	if g.match.State() != StatePlayerTurn {
		t.Errorf("State() = %v after quit, want player_turn", g.match.State())
	}
}

func TestGameRunPlayerWins(t *testing.T) {
	cfg := Config{Seed: 31, Fleet: gamedata.Fleet{{ID: "dinghy", Name: "Dinghy", Size: 1}}}

	// A match with the same seed places the opponent's ship in the same square.
	preview := NewMatch(cfg, nil, nil)
	if err := preview.Setup(context.Background()); err != nil {
		t.Fatal(err)
	}
	target := preview.OpponentBoard().ShipParts()[0]

	g, sim := newSimGame(t, cfg)
	typeLine(sim, fmt.Sprintf("%d,%d", target.Row, target.Col))
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if g.match.State() != StatePlayerWon {
		t.Errorf("State() = %v, want player_won", g.match.State())
	}
	if g.tone != ui.ToneWin || !strings.HasPrefix(g.status, "Congratulations") {
		t.Errorf("final status = %q (tone %d)", g.status, g.tone)
	}
}

func TestDescribeTurn(t *testing.T) {
	carrier := &board.Ship{Name: "Aircraft Carrier", Size: 5}

	tests := []struct {
		name   string
		turn   Turn
		prefix string
		tone   ui.Tone
	}{
		{
			"player miss",
			Turn{Side: SidePlayer, Report: board.Report{Outcome: board.Miss}, State: StateOpponentTurn},
			"You missed!", ui.ToneMiss,
		},
		{
			"player hit",
			Turn{Side: SidePlayer, Report: board.Report{Outcome: board.Hit}, State: StateOpponentTurn},
			"You hit a ship!", ui.ToneHit,
		},
		{
			"player repeat",
			Turn{Side: SidePlayer, Report: board.Report{Target: board.C(3, 3), Repeat: true}, State: StateOpponentTurn},
			"You already fired at (3,3)", ui.ToneMiss,
		},
		{
			"player sinks",
			Turn{Side: SidePlayer, Report: board.Report{Outcome: board.Hit, Sunk: carrier}, State: StateOpponentTurn},
			"You sank the Aircraft Carrier!", ui.ToneHit,
		},
		{
			"opponent miss",
			Turn{Side: SideOpponent, Report: board.Report{Target: board.C(1, 2)}, State: StatePlayerTurn},
			"Opponent fired at (1,2) and missed!", ui.ToneMiss,
		},
		{
			"opponent hit",
			Turn{Side: SideOpponent, Report: board.Report{Target: board.C(1, 2), Outcome: board.Hit}, State: StatePlayerTurn},
			"Opponent fired at (1,2) and hit", ui.ToneHit,
		},
		{
			"opponent sinks",
			Turn{Side: SideOpponent, Report: board.Report{Outcome: board.Hit, Sunk: carrier}, State: StatePlayerTurn},
			"Opponent fired at (0,0) and sank your Aircraft Carrier!", ui.ToneHit,
		},
		{
			"player won",
			Turn{Side: SidePlayer, Report: board.Report{Outcome: board.Hit, Sunk: carrier}, State: StatePlayerWon},
			"Congratulations!", ui.ToneWin,
		},
		{
			"opponent won",
			Turn{Side: SideOpponent, Report: board.Report{Outcome: board.Hit}, State: StateOpponentWon},
			"Oh no!", ui.ToneLoss,
		},
	}

	for _, tt := range tests {
		msg, tone := describeTurn(tt.turn)
		if !strings.HasPrefix(msg, tt.prefix) {
			t.Errorf("%s: describeTurn() = %q, want prefix %q", tt.name, msg, tt.prefix)
		}
		if tone != tt.tone {
			t.Errorf("%s: describeTurn() tone = %d, want %d", tt.name, tone, tt.tone)
		}
	}
}
