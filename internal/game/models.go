package game

import (
	"time"

	"gorm.io/gorm"
)

// Match status values.
const (
	StatusWaiting    = "waiting"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Outcome labels stored on finished matches.
const (
	OutcomeControlVictory     = "control_victory"
	OutcomeEliminationVictory = "elimination_victory"
	OutcomeResignation        = "resignation"
	OutcomeDrawMaxTurns       = "draw_max_turns"
	OutcomeDrawRepetition     = "draw_repetition"
	OutcomeDrawNoProgress     = "draw_no_progress"
	OutcomeAbandoned          = "abandoned"
)

// Match is the persisted record of one game. The engine snapshot and the
// draw-arbitration state are stored as JSON documents; the engine itself
// never sees this type.
type Match struct {
	gorm.Model
	Name     string        `json:"name" gorm:"size:32"`
	Private  bool          `json:"private"`
	JoinCode string        `json:"join_code" gorm:"unique"`
	Players  []MatchPlayer `json:"players"`
	Status   string        `json:"status"`
	// Winner holds the winning player's UUID, empty for draws and
	// unfinished matches.
	Winner  string `json:"winner"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
	// TurnNumber mirrors the snapshot's turn counter so lists and the
	// timeout scanner can read it without decoding the document.
	TurnNumber int `json:"turn_number"`
	// Snapshot is the canonical engine state document (see EncodeSnapshot).
	// Arbiter is the serialized draw tracker fed after every action.
	Snapshot string `json:"-" gorm:"type:text"`
	Arbiter  string `json:"-" gorm:"type:text"`
	// ActionDeadline bounds how long the current player may sit on their
	// turn before the inactivity scanner expires the match.
	ActionDeadline   time.Time `json:"action_deadline"`
	StatsCounted     bool      `json:"-"`
	TimeoutClaimedBy string    `json:"-"`
	TimeoutClaimedAt time.Time `json:"-"`
	// Rematch negotiation: the offering player's UUID, and once accepted
	// the id of the follow-up match.
	RematchOfferedBy string `json:"rematch_offered_by"`
	RematchMatchID   uint   `json:"rematch_match_id"`
}

// MatchPlayer joins a player identity to a match seat. Seat 0 moves first.
type MatchPlayer struct {
	gorm.Model
	MatchID    uint   `json:"-"`
	PlayerUUID string `json:"player_uuid"`
	PlayerName string `json:"player_name"`
	Seat       int    `json:"seat"`
	Resigned   bool   `json:"resigned"`
}

func (MatchPlayer) TableName() string { return "match_players" }

// User stores unique player identity and aggregate stats.
type User struct {
	gorm.Model
	PlayerUUID   string `json:"player_uuid" gorm:"uniqueIndex"`
	PlayerName   string `json:"player_name"`
	GamesPlayed  int    `json:"games_played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Resignations int    `json:"resignations"`
}

func (User) TableName() string { return "player_profiles" }

// PlayerBySeat returns the participant seated at seat, or nil.
func (m *Match) PlayerBySeat(seat int) *MatchPlayer {
	for i := range m.Players {
		if m.Players[i].Seat == seat {
			return &m.Players[i]
		}
	}
	return nil
}

// PlayerByUUID returns the participant with the given identity, or nil.
func (m *Match) PlayerByUUID(uuid string) *MatchPlayer {
	for i := range m.Players {
		if m.Players[i].PlayerUUID == uuid {
			return &m.Players[i]
		}
	}
	return nil
}
