// Package game provides the turn coordinator and the terminal game loop.
package game

// State represents the current match state.
type State int

const (
	// StateSetUp is the initial state before fleets are placed.
	StateSetUp State = iota
	// StatePlayerTurn waits for the human player to fire.
	StatePlayerTurn
	// StateOpponentTurn waits for the automated opponent to fire.
	StateOpponentTurn
	// StatePlayerWon means the opponent's fleet was destroyed.
	StatePlayerWon
	// StateOpponentWon means the player's fleet was destroyed.
	StateOpponentWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSetUp:
		return "set_up"
	case StatePlayerTurn:
		return "player_turn"
	case StateOpponentTurn:
		return "opponent_turn"
	case StatePlayerWon:
		return "player_won"
	case StateOpponentWon:
		return "opponent_won"
	default:
		return "unknown"
	}
}

// IsTerminal returns true if the match has ended.
func (s State) IsTerminal() bool {
	return s == StatePlayerWon || s == StateOpponentWon
}

// Side identifies which player acted in a turn.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}
