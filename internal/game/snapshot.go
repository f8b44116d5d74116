// internal/game/snapshot.go
//
// Wire projections of room state.
// Responsibilities:
//   - RoomSnapshot: the non-secret view broadcast to members (guess counts
//     only, never guess text or the secret).
//   - PlayerSnapshot: the full per-player view carried by playerUpdate
//     (guess texts and feedback included).
//
// Timestamps cross the wire as Unix milliseconds for compatibility with
// the original Date.now()-based clients; unset times serialize as null.

package game

import "time"

// RoomSnapshot is the roomState payload attached to every broadcast.
type RoomSnapshot struct {
	Code        string          `json:"code"`
	Host        string          `json:"host"`
	Started     bool            `json:"started"`
	PlayerCount int             `json:"playerCount"`
	Players     []PlayerSummary `json:"players"`
	CreatedAt   int64           `json:"createdAt"`
	StartedAt   *int64          `json:"startedAt"`
}

// PlayerSummary is one row of a RoomSnapshot: identity plus counters,
// no guess contents.
type PlayerSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Guesses   int    `json:"guesses"`
	SolvedAt  *int64 `json:"solvedAt"`
	Connected bool   `json:"connected"`
}

// PlayerSnapshot is the full player record broadcast after a guess.
type PlayerSnapshot struct {
	Name      string        `json:"name"`
	Guesses   []GuessRecord `json:"guesses"`
	SolvedAt  *int64        `json:"solvedAt"`
	Connected bool          `json:"connected"`
}

// GuessRecord is one scored guess in a PlayerSnapshot.
type GuessRecord struct {
	Guess    string `json:"guess"`
	Feedback []Mark `json:"feedback"`
	At       int64  `json:"at"`
}

// Winner is one entry of the ranked list inside roundComplete.
type Winner struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SolvedAt int64  `json:"solvedAt"`
	Guesses  int    `json:"guesses"`
}

// Snapshot projects the room into its broadcast form. Players are listed
// in join order so snapshots are deterministic.
func (r *Room) Snapshot() RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// snapshotLocked builds the projection; callers hold r.mu.
func (r *Room) snapshotLocked() RoomSnapshot {
	players := make([]PlayerSummary, 0, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		players = append(players, PlayerSummary{
			ID:        id,
			Name:      p.Name,
			Guesses:   len(p.Guesses),
			SolvedAt:  millisOrNil(p.SolvedAt),
			Connected: p.Connected,
		})
	}
	return RoomSnapshot{
		Code:        r.code,
		Host:        r.host,
		Started:     r.started,
		PlayerCount: len(r.players),
		Players:     players,
		CreatedAt:   r.createdAt.UnixMilli(),
		StartedAt:   millisOrNil(r.startedAt),
	}
}

// snapshotPlayerLocked projects one member; callers hold r.mu.
func (r *Room) snapshotPlayerLocked(p *Player) PlayerSnapshot {
	guesses := make([]GuessRecord, 0, len(p.Guesses))
	for _, g := range p.Guesses {
		guesses = append(guesses, GuessRecord{Guess: g.Text, Feedback: g.Feedback, At: g.At.UnixMilli()})
	}
	return PlayerSnapshot{
		Name:      p.Name,
		Guesses:   guesses,
		SolvedAt:  millisOrNil(p.SolvedAt),
		Connected: p.Connected,
	}
}

// millisOrNil converts a possibly-unset time to Unix milliseconds.
func millisOrNil(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
