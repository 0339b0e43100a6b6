package constants

// Centralized constants for env keys, headers, routes and shared messages.
const (
	// Environment variable keys
	EnvConfigPath = "NOVUSX_CONFIG"
	EnvDBPath     = "NOVUSX_DB"

	// Identity headers sent by clients on protected routes
	HeaderPlayerUUID = "X-Player-UUID"
	HeaderPlayerName = "X-Player-Name"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RoutePlayers       = "/players"
	RoutePlayerStats   = "/player-stats"
	RouteLeaderboard   = "/leaderboard"
	RoutePublicMatches = "/public-matches"
	RouteVersion       = "/version"
	RouteMatches       = "/matches"
	RouteMatchesJoin   = "/matches/join"
	RouteMatchByCode   = "/matches/:matchCode"
	RouteMatchAction   = "/matches/:matchCode/action"
	RouteMatchLeave    = "/matches/:matchCode/leave"
	RouteMatchRematch  = "/matches/:matchCode/rematch"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidMatchCode  = "Invalid match code"
	ErrMatchNotFound     = "Match not found"
	ErrMatchFull         = "Match is full"
	ErrMatchNotJoinable  = "Match is not accepting players"
	ErrMatchNotRunning   = "Match is not in progress"
	ErrPlayerNotInMatch  = "Player not in this match"
	ErrIdentityRequired  = "Player identity required"
	ErrMatchNameExceeds  = "Match name exceeds 32 characters"
	ErrPlayerNameInvalid = "Invalid player name"

	ErrFailedCreateMatch      = "Failed to create match"
	ErrFailedUpdateMatch      = "Failed to update match"
	ErrFailedFetchMatches     = "Failed to fetch matches"
	ErrFailedEncodeMatch      = "Failed to encode match"
	ErrFailedApplyAction      = "Failed to apply action"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrFailedRegisterPlayer   = "Failed to register player"
)

// Logging field names
const (
	LogFieldMatchID = "match_id"
	LogFieldPlayer  = "player_uuid"
	LogFieldTurn    = "turn"
	LogFieldAddr    = "addr"
	LogFieldWorker  = "worker_id"
)
