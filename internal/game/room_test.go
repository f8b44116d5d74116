package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func pickFixed(w string) func() string { return func() string { return w } }

func TestNewRoomDefaults(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	snap := r.Snapshot()

	assert.Equal(t, "ABCDE", snap.Code)
	assert.Equal(t, "c1", snap.Host)
	assert.False(t, snap.Started)
	assert.Equal(t, 1, snap.PlayerCount)
	require.Len(t, snap.Players, 1)
	assert.Equal(t, "Host", snap.Players[0].Name)
	assert.True(t, snap.Players[0].Connected)
	assert.Equal(t, t0.UnixMilli(), snap.CreatedAt)
	assert.Nil(t, snap.StartedAt)
}

func TestAddPlayerDefaultsAndOrder(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "Ana", "", t0)
	_, err := r.AddPlayer("c2", "")
	require.NoError(t, err)
	snap, err := r.AddPlayer("c3", "Cleo")
	require.NoError(t, err)

	require.Len(t, snap.Players, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"}, []string{snap.Players[0].ID, snap.Players[1].ID, snap.Players[2].ID})
	assert.Equal(t, "Player", snap.Players[1].Name)
	assert.Equal(t, "Cleo", snap.Players[2].Name)
}

func TestAddPlayerRejectedMidRound(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	_, err := r.Start("c1", "", pickFixed("crane"), t0)
	require.NoError(t, err)

	_, err = r.AddPlayer("c2", "Late")
	assert.ErrorIs(t, err, ErrGameAlreadyStarted)
}

func TestStartChecksHostAndState(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	_, _ = r.AddPlayer("c2", "")

	_, err := r.Start("c2", "", pickFixed("crane"), t0)
	assert.ErrorIs(t, err, ErrNotHost)

	snap, err := r.Start("c1", "  CRANE ", pickFixed("other"), t0)
	require.NoError(t, err)
	assert.True(t, snap.Started)
	require.NotNil(t, snap.StartedAt)
	assert.Equal(t, t0.UnixMilli(), *snap.StartedAt)

	_, err = r.Start("c1", "", pickFixed("other"), t0)
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestStartResetsHistory(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	_, err := r.Start("c1", "crane", nil, t0)
	require.NoError(t, err)
	out, err := r.SubmitGuess("c1", "crane", t0.Add(time.Second))
	require.NoError(t, err)
	require.True(t, out.Complete)

	// New round: prior guesses and solve times must not carry over.
	snap, err := r.Start("c1", "toast", nil, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Players[0].Guesses)
	assert.Nil(t, snap.Players[0].SolvedAt)
}

func TestSubmitGuessValidation(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)

	_, err := r.SubmitGuess("c1", "crane", t0)
	assert.ErrorIs(t, err, ErrNotStarted)

	_, err = r.Start("c1", "crane", nil, t0)
	require.NoError(t, err)

	_, err = r.SubmitGuess("c1", "", t0)
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = r.SubmitGuess("c1", "cranes", t0)
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = r.SubmitGuess("ghost", "crane", t0)
	assert.ErrorIs(t, err, ErrNotAMember)
}

func TestSubmitGuessRejectsNonLetterInput(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	_, err := r.Start("c1", "crane", nil, t0)
	require.NoError(t, err)

	// "héll" is 5 bytes but 4 runes; it must be rejected, never scored.
	assert.NotPanics(t, func() {
		_, err = r.SubmitGuess("c1", "héll", t0)
	})
	assert.ErrorIs(t, err, ErrInvalidLength)

	// Right rune count, wrong alphabet.
	_, err = r.SubmitGuess("c1", "héllo", t0)
	assert.ErrorIs(t, err, ErrInvalidGuess)
	_, err = r.SubmitGuess("c1", "cr4ne", t0)
	assert.ErrorIs(t, err, ErrInvalidGuess)
}

func TestStartRejectsNonLetterWord(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)

	_, err := r.Start("c1", "crâne", nil, t0)
	assert.ErrorIs(t, err, ErrInvalidWord)
	_, err = r.Start("c1", "no pe", nil, t0)
	assert.ErrorIs(t, err, ErrInvalidWord)
	assert.False(t, r.Started())

	_, err = r.Start("c1", "crane", nil, t0)
	require.NoError(t, err)
}

func TestSubmitGuessRecordsAndCompletes(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	_, _ = r.AddPlayer("c2", "")
	_, err := r.Start("c1", "crane", nil, t0)
	require.NoError(t, err)

	out, err := r.SubmitGuess("c2", " CRANK ", t0.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, out.Complete)
	assert.Equal(t, []Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkAbsent}, out.Feedback)
	require.Len(t, out.Player.Guesses, 1)
	assert.Equal(t, "crank", out.Player.Guesses[0].Guess)
	assert.Nil(t, out.Player.SolvedAt)
	assert.True(t, out.Room.Started)

	out, err = r.SubmitGuess("c2", "crane", t0.Add(2*time.Second))
	require.NoError(t, err)
	assert.True(t, out.Complete)
	assert.Equal(t, "crane", out.Secret)
	require.Len(t, out.Winners, 1)
	assert.Equal(t, "c2", out.Winners[0].ID)
	assert.Equal(t, 2, out.Winners[0].Guesses)
	assert.True(t, out.Room.Started, "the update snapshot predates the round ending")
	assert.False(t, r.Started(), "round must end once someone solves")
}

func TestWinnersRankedBySolveTimeThenGuessCount(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	_, _ = r.AddPlayer("c2", "")
	_, _ = r.AddPlayer("c3", "")

	r.mu.Lock()
	// c1 solved later despite fewer guesses; c2 and c3 tie on time, c3
	// took fewer guesses.
	r.players["c1"].SolvedAt = t0.Add(5 * time.Second)
	r.players["c1"].Guesses = make([]Guess, 1)
	r.players["c2"].SolvedAt = t0.Add(2 * time.Second)
	r.players["c2"].Guesses = make([]Guess, 4)
	r.players["c3"].SolvedAt = t0.Add(2 * time.Second)
	r.players["c3"].Guesses = make([]Guess, 2)
	winners := r.winnersLocked()
	r.mu.Unlock()

	require.Len(t, winners, 3)
	assert.Equal(t, "c3", winners[0].ID)
	assert.Equal(t, "c2", winners[1].ID)
	assert.Equal(t, "c1", winners[2].ID)
}

func TestRemovePlayerPromotesEarliestRemaining(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	_, _ = r.AddPlayer("c2", "")
	_, _ = r.AddPlayer("c3", "")

	dep, ok := r.RemovePlayer("c1")
	require.True(t, ok)
	assert.False(t, dep.Empty)
	assert.Equal(t, "c2", dep.NewHost)
	assert.Equal(t, "c2", dep.Room.Host)
	assert.Equal(t, 2, dep.Room.PlayerCount)
}

func TestRemoveLastPlayerRetiresRoom(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	dep, ok := r.RemovePlayer("c1")
	require.True(t, ok)
	assert.True(t, dep.Empty)

	// A racing join on the retired room must not resurrect it.
	_, err := r.AddPlayer("c2", "")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, ok = r.RemovePlayer("c1")
	assert.False(t, ok)
}

func TestMarkDisconnectedKeepsRecordAndHost(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	_, _ = r.AddPlayer("c2", "")

	snap, ok := r.MarkDisconnected("c1")
	require.True(t, ok)
	assert.Equal(t, "c1", snap.Host, "disconnect never changes the host")
	assert.Equal(t, 2, snap.PlayerCount)
	assert.False(t, snap.Players[0].Connected)
	assert.True(t, snap.Players[1].Connected)

	_, ok = r.MarkDisconnected("stranger")
	assert.False(t, ok)
}

func TestSnapshotOmitsGuessContents(t *testing.T) {
	r := NewRoom("ABCDE", "c1", "", "", t0)
	_, err := r.Start("c1", "crane", nil, t0)
	require.NoError(t, err)
	_, err = r.SubmitGuess("c1", "toast", t0.Add(time.Second))
	require.NoError(t, err)

	snap := r.Snapshot()
	assert.Equal(t, 1, snap.Players[0].Guesses, "room snapshot carries counts only")
}
