// internal/gateway/gateway.go
//
// Socket.IO event gateway: the bidirectional transport between clients
// and the room state machine.
// Responsibilities:
//   - Own the socket.io server and its transport options (polling +
//     websocket, CORS, ping cadence).
//   - On each connection, register the per-event handlers that translate
//     client requests into state-machine calls.
//   - Implement the state machine's Broadcaster contract: fan events out
//     to every socket joined to a room.
//
// The connection id (socket id) is the opaque identity used throughout
// the room model; there is no further authentication.

package gateway

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/wordroom/go-server/internal/rooms"
)

// Gateway bundles the socket.io server with the machine it drives.
type Gateway struct {
	sio     *socket.Server
	machine *rooms.Machine
}

// New constructs the gateway, binds itself as the machine's broadcast
// transport, and installs the connection handler.
func New(machine *rooms.Machine) *Gateway {
	g := &Gateway{sio: socket.NewServer(nil, nil), machine: machine}
	machine.Bind(g)

	g.sio.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		id := string(client.Id())
		log.Info().Str("socket", id).Msg("socket connected")

		client.On("createRoom", handleCreateRoom(machine, client))
		client.On("joinRoom", handleJoinRoom(machine, client))
		client.On("startGame", handleStartGame(machine, client))
		client.On("submitGuess", handleSubmitGuess(machine, client))
		client.On("leaveRoom", handleLeaveRoom(machine, client))
		client.On("disconnect", handleDisconnect(machine, client))
	})
	return g
}

// Handler returns the HTTP handler serving the socket.io endpoint.
func (g *Gateway) Handler() http.Handler {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// Higher ping interval/timeout to reduce network load and tolerate
	// slower networks.
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      clientOrigin(),
		Credentials: true,
	})
	return g.sio.ServeHandler(c)
}

// ToRoom broadcasts an event to every socket currently in the room.
// Fire-and-forget: room state never waits on delivery.
func (g *Gateway) ToRoom(code, event string, payload any) {
	g.sio.To(socket.Room(code)).Emit(event, payload)
}

// Close shuts the socket.io server down; used on process exit.
func (g *Gateway) Close() {
	g.sio.Close(nil)
}

// clientOrigin reads the allowed CORS origin; "*" keeps local development
// and same-origin deployments working out of the box.
func clientOrigin() string {
	if v := os.Getenv("CLIENT_ORIGIN"); v != "" {
		return v
	}
	return "*"
}
