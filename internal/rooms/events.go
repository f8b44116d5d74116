// internal/rooms/events.go
//
// Broadcast event names and payloads. Names and payload shapes match the
// reference realtime protocol so existing clients keep working:
//   roomCreated, roomUpdated, gameStarted, playerUpdate, roundComplete.
//
// The secret appears in exactly one payload: RoundComplete.

package rooms

import "github.com/wordroom/go-server/internal/game"

const (
	EventRoomCreated   = "roomCreated"
	EventRoomUpdated   = "roomUpdated"
	EventGameStarted   = "gameStarted"
	EventPlayerUpdate  = "playerUpdate"
	EventRoundComplete = "roundComplete"
)

// Broadcaster delivers an event to every current member of a room.
// Delivery is fire-and-forget; room correctness never waits on it.
type Broadcaster interface {
	ToRoom(code, event string, payload any)
}

// RoomCreatedPayload is delivered to the creator only.
type RoomCreatedPayload struct {
	Code      string            `json:"code"`
	RoomState game.RoomSnapshot `json:"roomState"`
}

// RoomUpdatedPayload accompanies membership and connectivity changes.
type RoomUpdatedPayload struct {
	RoomState game.RoomSnapshot `json:"roomState"`
}

// GameStartedPayload announces a round start; the secret is never in it.
type GameStartedPayload struct {
	RoomState game.RoomSnapshot `json:"roomState"`
}

// PlayerUpdatePayload follows every accepted guess.
type PlayerUpdatePayload struct {
	PlayerID  string              `json:"playerId"`
	Snapshot  game.PlayerSnapshot `json:"snapshot"`
	RoomState game.RoomSnapshot   `json:"roomState"`
}

// RoundCompletePayload reveals the secret and the ranked winners.
type RoundCompletePayload struct {
	Winners []game.Winner `json:"winners"`
	Secret  string        `json:"secret"`
}
