package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/salvo/internal/board"
	"github.com/samdwyer/salvo/internal/gamedata"
	"github.com/samdwyer/salvo/internal/telemetry"
)

var (
	// ErrNotSetUp is returned when a turn is requested before fleets are placed.
	ErrNotSetUp = errors.New("match is not set up")
	// ErrAlreadySetUp is returned when Setup is called twice.
	ErrAlreadySetUp = errors.New("match is already set up")
	// ErrMatchOver is returned when a turn is requested after a fleet was destroyed.
	ErrMatchOver = errors.New("match is over")
)

// Turn records one resolved shot.
type Turn struct {
	Number int          // 1-based count of shots fired in the match
	Side   Side         // Who fired
	Report board.Report // What the shot did
	State  State        // Match state after the shot
}

// Observer is notified after every turn of Play.
type Observer interface {
	OnTurn(ctx context.Context, m *Match, turn Turn) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, m *Match, turn Turn) error

// OnTurn calls f(ctx, m, turn).
func (f ObserverFunc) OnTurn(ctx context.Context, m *Match, turn Turn) error {
	return f(ctx, m, turn)
}

// Match coordinates alternating turns between the player and the opponent.
type Match struct {
	id            string
	cfg           Config
	state         State
	playerBoard   *board.Board
	opponentBoard *board.Board
	player        MoveSource
	opponent      MoveSource
	turns         int
}

// NewMatch creates a match in the set-up state with two empty boards.
func NewMatch(cfg Config, player, opponent MoveSource) *Match {
	return &Match{
		id:            uuid.NewString()[:8],
		cfg:           cfg,
		state:         StateSetUp,
		playerBoard:   board.New(cfg.RNG(streamPlayerBoard)),
		opponentBoard: board.New(cfg.RNG(streamOpponentBoard)),
		player:        player,
		opponent:      opponent,
	}
}

// Setup places the configured fleet on both boards and hands the first turn
// to the player. Fleets are placed on fresh boards that replace the match's
// boards only once every ship fits, so a failed Setup leaves the match untouched.
func (m *Match) Setup(ctx context.Context) error {
	if m.state != StateSetUp {
		return ErrAlreadySetUp
	}

	fleet := m.cfg.fleet()
	if err := fleet.Validate(board.Size); err != nil {
		return fmt.Errorf("invalid fleet: %w", err)
	}

	tracer := telemetry.Tracer("match")
	_, span := tracer.Start(ctx, "match.setup")
	defer span.End()
	span.SetAttributes(
		attribute.String("match.id", m.id),
		attribute.Int("fleet.ships", len(fleet)),
		attribute.Int("fleet.parts", fleet.TotalParts()),
		attribute.IntSlice("fleet.sizes", fleet.Sizes()),
		attribute.Int64("match.seed", m.cfg.Seed),
	)

	player, err := deploy(board.New(m.cfg.RNG(streamPlayerBoard)), fleet)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fleet placement failed")
		return fmt.Errorf("invalid fleet: %w", err)
	}
	opponent, err := deploy(board.New(m.cfg.RNG(streamOpponentBoard)), fleet)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fleet placement failed")
		return fmt.Errorf("invalid fleet: %w", err)
	}

	m.playerBoard, m.opponentBoard = player, opponent
	m.state = StatePlayerTurn
	return nil
}

// deploy places every ship of the fleet on b in order.
func deploy(b *board.Board, fleet gamedata.Fleet) (*board.Board, error) {
	for _, def := range fleet {
		if _, err := b.PlaceRandom(def.Name, def.Size); err != nil {
			return nil, fmt.Errorf("placing %s: %w", def.ID, err)
		}
	}
	return b, nil
}

// Step plays a single turn for whichever side is due to fire.
// If the move source fails, the error is returned and the state is unchanged.
func (m *Match) Step(ctx context.Context) (Turn, error) {
	if m.state == StateSetUp {
		return Turn{}, ErrNotSetUp
	}
	if m.state.IsTerminal() {
		return Turn{}, ErrMatchOver
	}

	side, source, target := SidePlayer, m.player, m.opponentBoard
	won, next := StatePlayerWon, StateOpponentTurn
	if m.state == StateOpponentTurn {
		side, source, target = SideOpponent, m.opponent, m.playerBoard
		won, next = StateOpponentWon, StatePlayerTurn
	}

	tracer := telemetry.Tracer("match")
	ctx, span := tracer.Start(ctx, "match.turn")
	defer span.End()

	coord, err := source.NextMove(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "move source failed")
		return Turn{}, fmt.Errorf("%s move: %w", side, err)
	}

	report := target.Strike(coord)
	m.turns++

	if target.IsDestroyed() {
		m.state = won
	} else {
		m.state = next
	}

	span.SetAttributes(
		attribute.String("match.id", m.id),
		attribute.Int("turn", m.turns),
		attribute.String("side", side.String()),
		attribute.Int("target.row", coord.Row),
		attribute.Int("target.col", coord.Col),
		attribute.String("outcome", report.Outcome.String()),
		attribute.Bool("repeat", report.Repeat),
		attribute.String("state", m.state.String()),
	)
	if report.Sunk != nil {
		span.SetAttributes(attribute.String("sunk", report.Sunk.Name))
	}

	return Turn{Number: m.turns, Side: side, Report: report, State: m.state}, nil
}

// Play runs turns until a fleet is destroyed and returns the final state.
// The observer, if non-nil, is called after each turn; an observer error
// stops the match early.
func (m *Match) Play(ctx context.Context, observer Observer) (State, error) {
	for !m.state.IsTerminal() {
		turn, err := m.Step(ctx)
		if err != nil {
			return m.state, err
		}
		if observer != nil {
			if err := observer.OnTurn(ctx, m, turn); err != nil {
				return m.state, err
			}
		}
	}
	return m.state, nil
}

// ID returns the short match identifier used in telemetry.
func (m *Match) ID() string {
	return m.id
}

// State returns the current match state.
func (m *Match) State() State {
	return m.state
}

// PlayerBoard returns the human player's board.
func (m *Match) PlayerBoard() *board.Board {
	return m.playerBoard
}

// OpponentBoard returns the automated opponent's board.
func (m *Match) OpponentBoard() *board.Board {
	return m.opponentBoard
}

// Turns returns the number of shots fired so far.
func (m *Match) Turns() int {
	return m.turns
}

// Winner returns the winning side, or false if the match is still running.
func (m *Match) Winner() (Side, bool) {
	switch m.state {
	case StatePlayerWon:
		return SidePlayer, true
	case StateOpponentWon:
		return SideOpponent, true
	default:
		return 0, false
	}
}
