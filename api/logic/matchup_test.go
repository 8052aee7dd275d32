/* matchup_test.go
 * Contains unit tests for matchup.go functions
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"testing"

	"wahoo-bot/api/external"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasTeam(t *testing.T) {
	m := match("m1", team("a", "A"), team("b", "B"))

	side, ok := HasTeam(m, "a")
	assert.True(t, ok)
	assert.Equal(t, external.SideTop, side)

	side, ok = HasTeam(m, "b")
	assert.True(t, ok)
	assert.Equal(t, external.SideBottom, side)

	_, ok = HasTeam(m, "c")
	assert.False(t, ok)
}

// TestHasTeam_SameTeamBothSlots tests that the top slot is checked first
func TestHasTeam_SameTeamBothSlots(t *testing.T) {
	side, ok := HasTeam(match("m1", team("a", "A"), team("a", "A")), "a")

	assert.True(t, ok)
	assert.Equal(t, external.SideTop, side)
}

func TestFindMatch_RemovesClaimedMatch(t *testing.T) {
	matches := []external.Match{
		match("m1", team("a", "A"), team("b", "B")),
		match("m2", team("c", "C"), team("d", "D")),
		match("m3", team("e", "E"), team("f", "F")),
	}

	m, side, ok := FindMatch(&matches, "d")

	require.True(t, ok)
	assert.Equal(t, "m2", m.ID)
	assert.Equal(t, external.SideBottom, side)
	require.Len(t, matches, 2)
	assert.Equal(t, "m1", matches[0].ID)
	assert.Equal(t, "m3", matches[1].ID)

	_, _, ok = FindMatch(&matches, "d")
	assert.False(t, ok, "a claimed match cannot be found again")
}

func TestFindMatch_FirstMatchWins(t *testing.T) {
	matches := []external.Match{
		match("m1", team("x", "X"), team("a", "A")),
		match("m2", team("a", "A"), team("y", "Y")),
	}

	m, side, ok := FindMatch(&matches, "a")

	require.True(t, ok)
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, external.SideBottom, side)
	assert.Len(t, matches, 1)
}

// TestFindMatch_EmptyTeamID tests that an empty id never matches a bye slot
func TestFindMatch_EmptyTeamID(t *testing.T) {
	matches := []external.Match{
		match("m1", team("a", "A"), external.Team{}),
	}

	_, _, ok := FindMatch(&matches, "")

	assert.False(t, ok)
	assert.Len(t, matches, 1)
}

func TestFindMatch_NotFound(t *testing.T) {
	matches := []external.Match{match("m1", team("a", "A"), team("b", "B"))}

	_, _, ok := FindMatch(&matches, "z")

	assert.False(t, ok)
	assert.Len(t, matches, 1)
}

func TestFindMatch_EmptyList(t *testing.T) {
	var matches []external.Match

	_, _, ok := FindMatch(&matches, "a")

	assert.False(t, ok)
}

func TestResolver_Matchup(t *testing.T) {
	opponent := team("b", "Bravo")
	bracket := &fakeBracket{
		matches: []external.Match{
			match("m1", team("x", "X"), team("y", "Y")),
			match("m2", opponent, team("a", "Alpha")),
		},
		opponent: &opponent,
	}
	r := NewResolver(bracket, zerolog.Nop())

	got, err := r.Matchup(t.Context(), "stage", "a", 1)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bravo", got.Name())
	assert.True(t, bracket.fetched)
	assert.Equal(t, "m2", bracket.gotMatchID)
	assert.Equal(t, external.SideBottom, bracket.gotSide)
}

func TestResolver_Matchup_NoMatch(t *testing.T) {
	bracket := &fakeBracket{
		matches: []external.Match{match("m1", team("x", "X"), team("y", "Y"))},
	}
	r := NewResolver(bracket, zerolog.Nop())

	got, err := r.Matchup(t.Context(), "stage", "a", 2)

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, bracket.fetched)
}

// TestResolver_Matchup_UnexpectedCount tests that an extended fetch returning no team is not an error
func TestResolver_Matchup_UnexpectedCount(t *testing.T) {
	bracket := &fakeBracket{
		matches: []external.Match{match("m1", team("a", "A"), team("b", "B"))},
	}
	r := NewResolver(bracket, zerolog.Nop())

	got, err := r.Matchup(t.Context(), "stage", "a", 1)

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, external.SideTop, bracket.gotSide)
}

func TestResolver_Matchup_ListError(t *testing.T) {
	netErr := &external.NetworkError{URL: "u", Err: errors.New("down")}
	r := NewResolver(&fakeBracket{err: netErr}, zerolog.Nop())

	got, err := r.Matchup(t.Context(), "stage", "a", 1)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, external.IsNetworkError(err))
}

func TestResolver_Matchup_FetchError(t *testing.T) {
	decErr := &external.DecodeError{URL: "u", Err: errors.New("bad json")}
	bracket := &fakeBracket{
		matches:  []external.Match{match("m1", team("a", "A"), team("b", "B"))},
		fetchErr: decErr,
	}
	r := NewResolver(bracket, zerolog.Nop())

	_, err := r.Matchup(t.Context(), "stage", "b", 1)

	require.Error(t, err)
	assert.True(t, external.IsDecodeError(err))
	assert.Contains(t, err.Error(), "m1")
}
