// internal/game/room.go
//
// Room lifecycle and mutations: membership, round start, guess recording,
// winner determination, host succession. Each method locks the room for
// its full duration, so per-room operations never interleave; unrelated
// rooms stay independent.
//
// State transitions:
//   Open --Start--> Started --winning guess--> Open --Start--> ...
//   Open/Started --last member removed--> gone (dropped from the registry).

package game

import (
	"sort"
	"strings"
	"time"
)

// AddPlayer registers a new member with an empty guess history.
// Fails with ErrGameAlreadyStarted while a round is in progress
// (no mid-round joins) and with ErrRoomNotFound on a retired room.
func (r *Room) AddPlayer(id, name string) (RoomSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone {
		return RoomSnapshot{}, ErrRoomNotFound
	}
	if r.started {
		return RoomSnapshot{}, ErrGameAlreadyStarted
	}
	if name == "" {
		name = "Player"
	}
	if _, exists := r.players[id]; !exists {
		r.order = append(r.order, id)
	}
	r.players[id] = &Player{Name: name, Connected: true}
	return r.snapshotLocked(), nil
}

// Start begins a round. Only the host may start, and only while no round
// is in progress. The secret is the host's chosen word (lowercased,
// letters only) or a pick from the word source. Every member's guess
// history and solve time
// are reset so results from a previous round can never skew this one.
func (r *Room) Start(requester, chosen string, pick func() string, at time.Time) (RoomSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone {
		return RoomSnapshot{}, ErrRoomNotFound
	}
	if requester != r.host {
		return RoomSnapshot{}, ErrNotHost
	}
	if r.started {
		return RoomSnapshot{}, ErrAlreadyStarted
	}
	if w := strings.ToLower(strings.TrimSpace(chosen)); w != "" {
		if !isAlpha(w) {
			return RoomSnapshot{}, ErrInvalidWord
		}
		r.secret = w
	} else {
		r.secret = pick()
	}
	for _, p := range r.players {
		p.Guesses = nil
		p.SolvedAt = time.Time{}
	}
	r.started = true
	r.startedAt = at
	return r.snapshotLocked(), nil
}

// GuessOutcome is everything a successful guess produces: the requester's
// feedback, the broadcast snapshots, and, when the round ends, the ranked
// winners plus the revealed secret.
type GuessOutcome struct {
	PlayerID string
	Feedback []Mark
	Player   PlayerSnapshot
	Room     RoomSnapshot

	Complete bool
	Winners  []Winner
	Secret   string
}

// SubmitGuess validates and scores one guess, appends it to the member's
// history, and re-evaluates winners. An all-correct result stamps the
// member's solve time; once any member has solved, the round completes:
// winners are ranked by earliest solve, tie-broken by fewest guesses,
// and the room returns to the Open state.
func (r *Room) SubmitGuess(id, text string, at time.Time) (GuessOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone {
		return GuessOutcome{}, ErrRoomNotFound
	}
	if !r.started {
		return GuessOutcome{}, ErrNotStarted
	}
	text = strings.ToLower(strings.TrimSpace(text))
	// Length is compared in runes, not bytes, so a multibyte character can
	// never slip a short guess past validation and into the evaluator.
	if text == "" || len([]rune(text)) != len([]rune(r.secret)) {
		return GuessOutcome{}, ErrInvalidLength
	}
	if !isAlpha(text) {
		return GuessOutcome{}, ErrInvalidGuess
	}
	p, ok := r.players[id]
	if !ok {
		return GuessOutcome{}, ErrNotAMember
	}

	feedback := Evaluate(r.secret, text)
	p.Guesses = append(p.Guesses, Guess{Text: text, Feedback: feedback, At: at})
	if allCorrect(feedback) {
		p.SolvedAt = at
	}

	// The player-update snapshot is taken before winner evaluation, so a
	// winning guess still shows the round in progress there; the round
	// ending is roundComplete's news.
	out := GuessOutcome{
		PlayerID: id,
		Feedback: feedback,
		Player:   r.snapshotPlayerLocked(p),
		Room:     r.snapshotLocked(),
	}

	if winners := r.winnersLocked(); len(winners) > 0 {
		out.Complete = true
		out.Winners = winners
		out.Secret = r.secret
		r.started = false // end round; Start must assign a fresh secret
	}
	return out, nil
}

// winnersLocked ranks all solved members: earliest SolvedAt first, then
// fewest total guesses. Members tied on both stay in join order.
// Callers hold r.mu.
func (r *Room) winnersLocked() []Winner {
	type solved struct {
		Winner
		at time.Time
	}
	var list []solved
	for _, id := range r.order {
		p := r.players[id]
		if p.SolvedAt.IsZero() {
			continue
		}
		list = append(list, solved{
			Winner: Winner{ID: id, Name: p.Name, SolvedAt: p.SolvedAt.UnixMilli(), Guesses: len(p.Guesses)},
			at:     p.SolvedAt,
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].at.Equal(list[j].at) {
			return list[i].at.Before(list[j].at)
		}
		return list[i].Guesses < list[j].Guesses
	})
	winners := make([]Winner, 0, len(list))
	for _, s := range list {
		winners = append(winners, s.Winner)
	}
	return winners
}

// Departure is the result of removing a member. When Empty is true the
// room has been retired and must be dropped from the registry; the
// snapshot is only meaningful otherwise.
type Departure struct {
	Empty   bool
	NewHost string // non-empty when host succession occurred
	Room    RoomSnapshot
}

// RemovePlayer deletes a member entirely (unlike a disconnect). The last
// member leaving retires the room; a departing host hands off to the
// earliest-joined remaining member. Reports false if id was not a member.
func (r *Room) RemovePlayer(id string) (Departure, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok || r.gone {
		return Departure{}, false
	}
	delete(r.players, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if len(r.players) == 0 {
		r.gone = true
		return Departure{Empty: true}, true
	}
	var dep Departure
	if r.host == id {
		r.host = r.order[0]
		dep.NewHost = r.host
	}
	dep.Room = r.snapshotLocked()
	return dep, true
}

// MarkDisconnected flips a member's Connected flag off, keeping the
// record (and the host role) intact so history survives transient drops.
// Reports false if id is not a member of this room.
func (r *Room) MarkDisconnected(id string) (RoomSnapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok || r.gone {
		return RoomSnapshot{}, false
	}
	p.Connected = false
	return r.snapshotLocked(), true
}
