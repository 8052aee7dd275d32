/* links_test.go
 * Contains unit tests for links.go functions
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	tournamentID = "5c6f6ea3a8b0cd0339a1b4d6"
	stageID      = "5c7b2b5d7f1e4b03f7c7d6a1"
)

func TestTournamentIDFromLink(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
		ok   bool
	}{
		{"full bracket link", "https://battlefy.com/overwatch-open/oo-2019/" + tournamentID + "/stage/" + stageID + "/bracket/3", tournamentID, true},
		{"long slug", "https://battlefy.com/some-organisation/a-much-longer-tournament-slug-than-usual/" + tournamentID + "/stage/" + stageID + "/bracket/", tournamentID, true},
		{"www host", "https://www.battlefy.com/org/slug/" + tournamentID + "/info", tournamentID, true},
		{"no stage", "https://battlefy.com/org/slug/" + tournamentID + "/participants", tournamentID, true},
		{"surrounding spaces", "  https://battlefy.com/org/slug/" + tournamentID + "/stage/" + stageID + "  ", tournamentID, true},
		{"other host", "https://example.com/org/slug/" + tournamentID + "/stage/" + stageID, "", false},
		{"no id", "https://battlefy.com/org/slug/info", "", false},
		{"short id", "https://battlefy.com/org/slug/5c6f6ea3a8b0/stage/", "", false},
		{"not a link", "hello there", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TournamentIDFromLink(tt.link)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStageIDFromLink(t *testing.T) {
	got, ok := StageIDFromLink("https://battlefy.com/org/slug/" + tournamentID + "/stage/" + stageID + "/bracket/1")
	assert.True(t, ok)
	assert.Equal(t, stageID, got)

	_, ok = StageIDFromLink("https://battlefy.com/org/slug/" + tournamentID + "/info")
	assert.False(t, ok)

	_, ok = StageIDFromLink("https://battlefy.com/org/slug/" + tournamentID + "/stage/")
	assert.False(t, ok)
}

func TestTeamIDFromLink(t *testing.T) {
	got, ok := TeamIDFromLink("https://battlefy.com/teams/5bfe1b9418ddd9114f14efb0")
	assert.True(t, ok)
	assert.Equal(t, "5bfe1b9418ddd9114f14efb0", got)

	got, ok = TeamIDFromLink("https://battlefy.com/teams/5bfe1b9418ddd9114f14efb0/roster?x=1")
	assert.True(t, ok)
	assert.Equal(t, "5bfe1b9418ddd9114f14efb0", got)

	_, ok = TeamIDFromLink("https://battlefy.com/teams/not-an-id")
	assert.False(t, ok)

	_, ok = TeamIDFromLink("https://battlefy.com/org/slug/" + tournamentID)
	assert.False(t, ok)

	_, ok = TeamIDFromLink("https://evil.com/teams/5bfe1b9418ddd9114f14efb0")
	assert.False(t, ok)
}
