// internal/rooms/registry.go
//
// In-memory registry mapping room codes to live rooms.
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Insert and delete are atomic with respect to concurrent lookups on the
//     same code; per-room state is guarded by each room's own lock.
//   - Codes come from an injected generator; Create retries on the (already
//     negligible) chance of a collision, so no two live rooms share a code.
//   - State is lost when the process restarts.

package rooms

import (
	"sync"

	"github.com/wordroom/go-server/internal/game"
)

// Registry owns the code -> room mapping.
type Registry struct {
	mu    sync.RWMutex
	codes CodeGenerator
	rooms map[string]*game.Room
}

// NewRegistry constructs an empty registry using gen for room codes.
func NewRegistry(gen CodeGenerator) *Registry {
	return &Registry{codes: gen, rooms: make(map[string]*game.Room)}
}

// Create allocates a fresh code, builds the room via build, and inserts it,
// all under the write lock.
func (reg *Registry) Create(build func(code string) *game.Room) *game.Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for {
		code := reg.codes.NewCode()
		if _, taken := reg.rooms[code]; taken {
			continue
		}
		r := build(code)
		reg.rooms[code] = r
		return r
	}
}

// Get looks up a room by code.
func (reg *Registry) Get(code string) (*game.Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rooms[code]
	return r, ok
}

// Delete removes a room by code. Safe to call for codes already gone.
func (reg *Registry) Delete(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, code)
}

// All returns the current rooms; used for connection-drop sweeps.
func (reg *Registry) All() []*game.Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]*game.Room, 0, len(reg.rooms))
	for _, r := range reg.rooms {
		out = append(out, r)
	}
	return out
}

// Len reports the number of live rooms.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// CodeGenerator mints candidate room codes. Injected so tests can force
// deterministic (or colliding) codes.
type CodeGenerator interface {
	NewCode() string
}
