// internal/gateway/handlers.go
//
// Per-event socket handlers. Each is a closure over the machine and the
// client socket, registered on connection. Successful requests answer
// with a requester-only emit (roomCreated / roomJoined / startResult /
// guessResult);
// failures answer with a requester-only "error" emit carrying the
// structured taxonomy code. Broadcasts to the whole room are the state
// machine's job, not ours.

package gateway

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/wordroom/go-server/internal/game"
	"github.com/wordroom/go-server/internal/rooms"
)

// joinAck acknowledges a successful join to the requester alone.
type joinAck struct {
	OK        bool              `json:"ok"`
	RoomState game.RoomSnapshot `json:"roomState"`
}

// startAck acknowledges a successful round start to the requester alone.
type startAck struct {
	OK        bool              `json:"ok"`
	RoomState game.RoomSnapshot `json:"roomState"`
}

// guessAck carries the requester's own feedback marks.
type guessAck struct {
	OK       bool        `json:"ok"`
	Feedback []game.Mark `json:"feedback"`
}

func handleCreateRoom(m *rooms.Machine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data := objectArg(args)
		snap := m.CreateRoom(string(client.Id()), stringField(data, "name"), stringField(data, "word"))
		client.Join(socket.Room(snap.Code))
		client.Emit(rooms.EventRoomCreated, rooms.RoomCreatedPayload{Code: snap.Code, RoomState: snap})
	}
}

func handleJoinRoom(m *rooms.Machine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data := objectArg(args)
		code := stringField(data, "code")
		if code == "" {
			emitError(client, "joinRoom", game.ErrBadRequest)
			return
		}
		// Join the socket room first so the membership broadcast reaches
		// the new member too; undo on failure.
		client.Join(socket.Room(code))
		snap, err := m.JoinRoom(string(client.Id()), code, stringField(data, "name"))
		if err != nil {
			client.Leave(socket.Room(code))
			emitError(client, "joinRoom", err)
			return
		}
		client.Emit("roomJoined", joinAck{OK: true, RoomState: snap})
	}
}

func handleStartGame(m *rooms.Machine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data := objectArg(args)
		code := stringField(data, "code")
		if code == "" {
			emitError(client, "startGame", game.ErrBadRequest)
			return
		}
		snap, err := m.StartGame(string(client.Id()), code, stringField(data, "chosenWord"))
		if err != nil {
			emitError(client, "startGame", err)
			return
		}
		client.Emit("startResult", startAck{OK: true, RoomState: snap})
	}
}

func handleSubmitGuess(m *rooms.Machine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data := objectArg(args)
		code := stringField(data, "code")
		if code == "" {
			emitError(client, "submitGuess", game.ErrBadRequest)
			return
		}
		feedback, err := m.SubmitGuess(string(client.Id()), code, stringField(data, "guess"))
		if err != nil {
			emitError(client, "submitGuess", err)
			return
		}
		client.Emit("guessResult", guessAck{OK: true, Feedback: feedback})
	}
}

func handleLeaveRoom(m *rooms.Machine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		data := objectArg(args)
		code := stringField(data, "code")
		if code == "" {
			emitError(client, "leaveRoom", game.ErrBadRequest)
			return
		}
		// Leave the socket room first so the departing member does not
		// receive the membership broadcast about their own exit.
		client.Leave(socket.Room(code))
		m.LeaveRoom(string(client.Id()), code)
	}
}

func handleDisconnect(m *rooms.Machine, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Info().Str("socket", string(client.Id())).Msg("socket disconnected")
		m.Disconnect(string(client.Id()))
	}
}

// errorEmit is the structured failure sent back on the requester's
// acknowledgement channel. Event names which request failed.
type errorEmit struct {
	Event   string `json:"event"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// emitError maps any error to the taxonomy payload and emits it to the
// requester only. Unknown errors degrade to bad_request.
func emitError(client *socket.Socket, event string, err error) {
	var ge *game.Error
	if !errors.As(err, &ge) {
		ge = game.ErrBadRequest
	}
	log.Debug().Str("socket", string(client.Id())).Str("event", event).Str("code", ge.Code).Msg("request rejected")
	client.Emit("error", errorEmit{Event: event, Code: ge.Code, Message: ge.Message})
}
