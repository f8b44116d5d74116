// internal/rooms/machine.go
//
// The room state machine: the single component allowed to mutate rooms.
// Each operation looks the room up in the registry, applies the mutation
// under that room's lock, then fans resulting events out through the
// broadcaster. Direct acknowledgements travel back on the return value;
// failures are never broadcast.

package rooms

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wordroom/go-server/internal/game"
)

// WordSource supplies a lowercase word for a new round. The production
// implementation lives in internal/words; tests substitute a fixed pick.
type WordSource interface {
	Random() string
}

// Clock is the time source for round and guess timestamps; tests
// substitute a fixed or stepped clock.
type Clock func() time.Time

// Machine coordinates the registry, the word source, and the broadcast
// transport. Both the registry and the capabilities are injected so tests
// run with deterministic substitutes.
type Machine struct {
	registry *Registry
	words    WordSource
	bcast    Broadcaster
	now      Clock
}

// NewMachine wires a state machine over reg and source. The broadcaster
// is attached separately (see Bind) because the gateway that implements
// it also needs the machine.
func NewMachine(reg *Registry, source WordSource) *Machine {
	return &Machine{registry: reg, words: source, now: time.Now}
}

// Bind attaches the broadcast transport. Must be called before any
// client events are dispatched.
func (m *Machine) Bind(b Broadcaster) { m.bcast = b }

// SetClock overrides the timestamp source; tests only.
func (m *Machine) SetClock(c Clock) { m.now = c }

// Registry exposes the owned registry for lookups by callers that only read.
func (m *Machine) Registry() *Registry { return m.registry }

// CreateRoom allocates a room with requester as sole member and host.
// Never fails. The creator's roomCreated acknowledgement is the caller's
// to deliver; nothing is broadcast because nobody else is in the room yet.
func (m *Machine) CreateRoom(requester, name, word string) game.RoomSnapshot {
	room := m.registry.Create(func(code string) *game.Room {
		return game.NewRoom(code, requester, name, lower(word), m.now())
	})
	log.Info().Str("code", room.Code()).Str("host", requester).Msg("room created")
	return room.Snapshot()
}

// JoinRoom adds requester as a new member and broadcasts the updated
// snapshot. Fails with RoomNotFound or GameAlreadyStarted.
func (m *Machine) JoinRoom(requester, code, name string) (game.RoomSnapshot, error) {
	room, ok := m.registry.Get(code)
	if !ok {
		return game.RoomSnapshot{}, game.ErrRoomNotFound
	}
	snap, err := room.AddPlayer(requester, name)
	if err != nil {
		return game.RoomSnapshot{}, err
	}
	m.broadcast(code, EventRoomUpdated, RoomUpdatedPayload{RoomState: snap})
	return snap, nil
}

// StartGame transitions the room into a round and broadcasts gameStarted.
// Returns the started snapshot for the requester's direct acknowledgement.
// Fails with RoomNotFound, NotHost, AlreadyStarted, or InvalidWord.
func (m *Machine) StartGame(requester, code, chosenWord string) (game.RoomSnapshot, error) {
	room, ok := m.registry.Get(code)
	if !ok {
		return game.RoomSnapshot{}, game.ErrRoomNotFound
	}
	snap, err := room.Start(requester, chosenWord, m.words.Random, m.now())
	if err != nil {
		return game.RoomSnapshot{}, err
	}
	log.Info().Str("code", code).Msg("round started")
	m.broadcast(code, EventGameStarted, GameStartedPayload{RoomState: snap})
	return snap, nil
}

// SubmitGuess scores one guess, broadcasts the player update, and, if the
// round just completed, broadcasts the ranked winners with the revealed
// secret. Returns the requester's feedback for the direct acknowledgement.
func (m *Machine) SubmitGuess(requester, code, guess string) ([]game.Mark, error) {
	room, ok := m.registry.Get(code)
	if !ok {
		return nil, game.ErrRoomNotFound
	}
	out, err := room.SubmitGuess(requester, guess, m.now())
	if err != nil {
		return nil, err
	}
	m.broadcast(code, EventPlayerUpdate, PlayerUpdatePayload{
		PlayerID:  out.PlayerID,
		Snapshot:  out.Player,
		RoomState: out.Room,
	})
	if out.Complete {
		log.Info().Str("code", code).Int("winners", len(out.Winners)).Msg("round complete")
		m.broadcast(code, EventRoundComplete, RoundCompletePayload{Winners: out.Winners, Secret: out.Secret})
	}
	return out.Feedback, nil
}

// LeaveRoom removes the member entirely. The last member leaving destroys
// the room; a departing host hands off before the updated snapshot goes
// out. Unknown codes and non-members are ignored.
func (m *Machine) LeaveRoom(requester, code string) {
	room, ok := m.registry.Get(code)
	if !ok {
		return
	}
	dep, wasMember := room.RemovePlayer(requester)
	if !wasMember {
		return
	}
	if dep.Empty {
		m.registry.Delete(code)
		log.Info().Str("code", code).Msg("room destroyed")
		return
	}
	if dep.NewHost != "" {
		log.Info().Str("code", code).Str("host", dep.NewHost).Msg("host changed")
	}
	m.broadcast(code, EventRoomUpdated, RoomUpdatedPayload{RoomState: dep.Room})
}

// Disconnect marks requester unconnected in every room where it is a
// member and broadcasts each affected room's snapshot. The player record,
// the host role, and the room itself all survive; only an explicit leave
// removes them.
func (m *Machine) Disconnect(requester string) {
	for _, room := range m.registry.All() {
		if snap, ok := room.MarkDisconnected(requester); ok {
			m.broadcast(room.Code(), EventRoomUpdated, RoomUpdatedPayload{RoomState: snap})
		}
	}
}

// broadcast fans an event out to the room, if a transport is bound.
func (m *Machine) broadcast(code, event string, payload any) {
	if m.bcast != nil {
		m.bcast.ToRoom(code, event, payload)
	}
}

// lower normalizes an optional host-chosen word.
func lower(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
