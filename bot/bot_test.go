/* bot_test.go
 * Contains unit tests for bot.go functions
 * Authors: Zachary Bower
 */

package bot

import (
	"testing"

	"wahoo-bot/api/api"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStartsWith_ExactMatch tests when input exactly matches the substring
func TestStartsWith_ExactMatch(t *testing.T) {
	assert.True(t, startsWith("hello", "hello"))
}

// TestStartsWith_DoesNotStartWith tests when substring is present but not at start
func TestStartsWith_DoesNotStartWith(t *testing.T) {
	assert.False(t, startsWith("world hello", "hello"))
}

// TestStartsWith_EmptyInput tests with empty input string
func TestStartsWith_EmptyInput(t *testing.T) {
	assert.False(t, startsWith("", "hello"))
	assert.True(t, startsWith("hello", ""))
}

func TestIsCommand(t *testing.T) {
	assert.True(t, isCommand("$od", "od"))
	assert.True(t, isCommand("$od 3", "od"))
	assert.False(t, isCommand("$odd 3", "od"))
	assert.False(t, isCommand("od 3", "od"))
	assert.True(t, isCommand("$set_team link", "set_team"))
	assert.False(t, isCommand("$set_team link", "set_tournament"))
	assert.False(t, isCommand("$team", "teams"))
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"no args", "$od", nil},
		{"single", "$od 3", []string{"3"}},
		{"quoted", `$team "Hanzo Mains Anonymous"`, []string{"Hanzo Mains Anonymous"}},
		{"curly quotes", "$team “Hanzo Mains”", []string{"Hanzo Mains"}},
		{"extra spaces", "$round   2  ", []string{"2"}},
		{"several", `$team Hanzo "Mains Anonymous"`, []string{"Hanzo", "Mains Anonymous"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitArgs(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitArgs_UnclosedQuote(t *testing.T) {
	_, err := splitArgs(`$team "Hanzo Mains`)
	assert.Error(t, err)
}

func TestParseRound(t *testing.T) {
	round, ok := parseRound("3")
	assert.True(t, ok)
	assert.Equal(t, 3, round)

	round, ok = parseRound("-1")
	assert.True(t, ok)
	assert.Equal(t, -1, round)

	_, ok = parseRound("three")
	assert.False(t, ok)
}

func TestNewBot(t *testing.T) {
	_, err := NewBot("", &api.API{}, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewBot("token", nil, zerolog.Nop())
	assert.Error(t, err)

	b, err := NewBot("token", &api.API{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "token", b.BotToken)
}
