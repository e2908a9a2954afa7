package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/salvo/internal/board"
	"github.com/samdwyer/salvo/internal/telemetry"
	"github.com/samdwyer/salvo/internal/ui"
)

const (
	firePrompt     = "Enter coordinates to fire (row, col): "
	continuePrompt = "Press any key to continue..."
)

// Game runs a match in the terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	keyboard *ui.KeyboardSource
	match    *Match
	status   string
	tone     ui.Tone
}

// New creates a new game instance with its own terminal screen.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(cfg, screen), nil
}

func newGame(cfg Config, screen *ui.Screen) *Game {
	g := &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, ui.DefaultTheme()),
		status:   "Fleets deployed. Fire when ready!",
	}
	g.keyboard = ui.NewKeyboardSource(screen, func(input, problem string) {
		g.render(firePrompt+input, problem)
	})
	return g
}

// Run plays one match until a fleet is destroyed or the player quits.
// The screen is closed when Run returns.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	opponent := NewRandomSource(g.cfg.RNG(streamOpponentMoves))
	g.match = NewMatch(g.cfg, g.keyboard, opponent)

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()
	span.SetAttributes(attribute.String("match.id", g.match.ID()))

	if err := g.match.Setup(ctx); err != nil {
		return err
	}

	state, err := g.match.Play(ctx, ObserverFunc(g.onTurn))
	span.SetAttributes(
		attribute.String("outcome", state.String()),
		attribute.Int("turns", g.match.Turns()),
	)
	if errors.Is(err, ui.ErrQuit) {
		span.SetAttributes(attribute.Bool("quit", true))
		return nil
	}
	if err != nil {
		return err
	}

	if winner, ok := g.match.Winner(); ok {
		span.SetAttributes(attribute.String("winner", winner.String()))
	}
	g.render("Press any key to exit.", "")
	if err := g.keyboard.WaitForKey(ctx); err != nil && !errors.Is(err, ui.ErrQuit) {
		return err
	}
	return nil
}

// onTurn reports a resolved shot and pauses until the player is ready.
func (g *Game) onTurn(ctx context.Context, m *Match, turn Turn) error {
	g.status, g.tone = describeTurn(turn)
	if turn.State.IsTerminal() {
		return nil
	}
	g.render(continuePrompt, "")
	return g.keyboard.WaitForKey(ctx)
}

// render draws the current match with the given prompt line.
func (g *Game) render(prompt, problem string) {
	if g.match == nil {
		return
	}
	g.renderer.Render(ui.View{
		Player:         g.match.PlayerBoard().Snapshot(),
		Opponent:       g.match.OpponentBoard().Snapshot(),
		PlayerAfloat:   g.match.PlayerBoard().Remaining(),
		OpponentAfloat: g.match.OpponentBoard().Remaining(),
		Status:         g.status,
		Tone:           g.tone,
		Prompt:         prompt,
		Error:          problem,
	})
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}

// describeTurn returns the status message for a turn.
func describeTurn(turn Turn) (string, ui.Tone) {
	switch turn.State {
	case StatePlayerWon:
		return "Congratulations! You sank all of your opponent's ships!", ui.ToneWin
	case StateOpponentWon:
		return "Oh no! All of your ships have been sunk!", ui.ToneLoss
	}

	r := turn.Report
	if turn.Side == SidePlayer {
		switch {
		case r.Repeat:
			return fmt.Sprintf("You already fired at %v. You missed!", r.Target), ui.ToneMiss
		case r.Sunk != nil:
			return fmt.Sprintf("You sank the %s!", r.Sunk.Name), ui.ToneHit
		case r.Outcome == board.Hit:
			return "You hit a ship!", ui.ToneHit
		default:
			return "You missed!", ui.ToneMiss
		}
	}

	switch {
	case r.Sunk != nil:
		return fmt.Sprintf("Opponent fired at %v and sank your %s!", r.Target, r.Sunk.Name), ui.ToneHit
	case r.Outcome == board.Hit:
		return fmt.Sprintf("Opponent fired at %v and hit one of your ships!", r.Target), ui.ToneHit
	default:
		return fmt.Sprintf("Opponent fired at %v and missed!", r.Target), ui.ToneMiss
	}
}
