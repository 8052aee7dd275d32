/* bot.go
 * Contains logic used for creating the bot and the commands it responds to. Requires a discord bot token, and APIPtr
 * both of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wahoo-bot/api/api"

	"github.com/go-andiamo/splitter"
	"github.com/rs/zerolog"
)

// Prefix starts every command
const Prefix = "$"

// commandTimeout bounds the Battlefy and Overbuff calls made for a single command
const commandTimeout = 60 * time.Second

type Bot struct {
	BotToken string
	APIPtr   *api.API
	logger   zerolog.Logger
}

func NewBot(botToken string, apiPtr *api.API, logger zerolog.Logger) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		logger:   logger,
	}, nil
}

type command struct {
	name        string
	usage       string
	description string
}

var commands = []command{
	{"od", "$od [round OR team name]", "Search for a team by name, or by round number. Round number grabs stats on the team matched with you in that round."},
	{"round", "$round [round]", "Grab stats on the team you're matched with in a round."},
	{"team", "$team \"[name]\"", "Search for a team in this tournament, and show their stats."},
	{"set_team", "$set_team [battlefy team link]", "Set the Battlefy team this channel plays as, e.g. https://battlefy.com/teams/5bfe1b9418ddd9114f14efb0"},
	{"set_tournament", "$set_tournament [battlefy bracket link]", "Set the tournament this channel plays in. The link must include the stage, e.g. https://battlefy.com/org/tournament/{id}/stage/{id}/bracket/"},
	{"help", "$help [command]", "Show the list of commands, or details about one command."},
}

// commandContext returns the context a single command runs under
func (b *Bot) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// splitArgs splits a message into its command and arguments. Arguments may be wrapped in straight or curly double
// quotes to include spaces, the quotes are removed
// Preconditions: Receives the message content
// Postconditions: Returns the arguments after the command, or an error if a quote is not closed
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}

	var args []string
	for _, p := range parts[1:] {
		p = strings.NewReplacer("\"", "", "“", "", "”", "").Replace(p)
		p = strings.TrimSpace(p)
		if p != "" {
			args = append(args, p)
		}
	}
	return args, nil
}

// Helper function to check if a message is a given command
// Preconditions: Recieves the message content and a command name without the prefix
// Postconditions: Returns true if the message is the command on its own or followed by arguments
func isCommand(content string, name string) bool {
	cmd := Prefix + name
	if !startsWith(content, cmd) {
		return false
	}
	return len(content) == len(cmd) || content[len(cmd)] == ' '
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
