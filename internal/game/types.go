// internal/game/types.go
//
// Core type definitions for a multiplayer word-guessing room.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - Guess: one submitted guess with its feedback and timestamp.
//   - Player: a member's state within a room (history, solve time, liveness).
//   - Room: one game session identified by a short code.

package game

import (
	"sync"
	"time"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is correct and in the correct position.
//   - "present": letter exists in the secret but in a different position.
//   - "absent":  letter has no remaining match in the secret.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent      = "present"
	MarkAbsent       = "absent"
)

// Guess is one scored submission. Feedback always has the same length
// as Text, which always has the same length as the round's secret.
type Guess struct {
	Text     string
	Feedback []Mark
	At       time.Time
}

// Player holds a member's state within a room. The record survives
// transient disconnects: dropping the connection only clears Connected,
// it never removes the Player.
type Player struct {
	Name      string
	Guesses   []Guess
	SolvedAt  time.Time // zero until an all-correct guess lands
	Connected bool
}

// Room is a single game session. All fields are guarded by mu; mutations
// go through the methods in room.go, which hold the lock for the whole
// operation so no other event for this room can interleave.
type Room struct {
	mu sync.Mutex

	code      string
	host      string
	secret    string
	started   bool
	createdAt time.Time
	startedAt time.Time

	players map[string]*Player
	order   []string // connection ids in join order, drives host succession

	// set once the room is emptied and dropped from the registry, so a
	// racing join on a stale pointer fails instead of resurrecting it
	gone bool
}

// NewRoom constructs a room in the Open state with the creator as sole
// member and host. An explicit word may be empty; a secret is only
// required once a round starts.
func NewRoom(code, hostID, hostName, word string, at time.Time) *Room {
	if hostName == "" {
		hostName = "Host"
	}
	return &Room{
		code:      code,
		host:      hostID,
		secret:    word,
		createdAt: at,
		players:   map[string]*Player{hostID: {Name: hostName, Connected: true}},
		order:     []string{hostID},
	}
}

// Code returns the room's short identifier. Immutable, safe without the lock.
func (r *Room) Code() string { return r.code }

// Host returns the current host's connection id.
func (r *Room) Host() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.host
}

// Started reports whether a round is in progress.
func (r *Room) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}
