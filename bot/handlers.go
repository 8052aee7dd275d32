/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wahoo-bot/api/api"
	"wahoo-bot/api/external"

	"github.com/bwmarrin/discordgo"
)

const (
	msgNotConfigured = "No Battlefy config for this server, use `$set_team` and `$set_tournament`."
	msgNoTeam        = "No team in this server, ask an admin to register one."
	msgNoMatch       = "No match found."
	msgNoTeams       = "No teams found."
	msgBadRound      = "that's not how it works"
	msgGuildOnly     = "This command only works in a server."
)

// location returns the server and channel a message was sent in as the ids the store uses
func location(message *discordgo.MessageCreate) (int64, int64, bool) {
	guildID, err := strconv.ParseInt(message.GuildID, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	channelID, err := strconv.ParseInt(message.ChannelID, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return guildID, channelID, true
}

// parseRound parses a round argument
// Preconditions: Receives the argument given to a command
// Postconditions: Returns the round and true if arg is a whole number, the round may be negative
func parseRound(arg string) (int, bool) {
	round, err := strconv.Atoi(arg)
	if err != nil {
		return 0, false
	}
	return round, true
}

// send posts content to the channel, logging if discord rejects it
func (b *Bot) send(session DiscordSession, channelID string, content string) {
	if _, err := session.ChannelMessageSend(channelID, content); err != nil {
		b.logger.Error().Err(err).Str("channel_id", channelID).Msg("error sending message")
	}
}

func (b *Bot) sendEmbed(session DiscordSession, channelID string, embed *discordgo.MessageEmbed) {
	if _, err := session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		b.logger.Error().Err(err).Str("channel_id", channelID).Msg("error sending embed")
	}
}

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	b.send(session, message.ChannelID, helpMessage(name))
}

// odHandler handles the $od command. A number is treated as a round, anything else as a team name
func (b *Bot) odHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		b.send(session, message.ChannelID, "Usage: `$od [round OR team name]`")
		return
	}

	if round, ok := parseRound(args[0]); ok {
		b.roundReport(session, message, round)
		return
	}
	b.teamSearch(session, message, strings.Join(args, " "))
}

// roundHandler handles the $round command with a DiscordSession interface
func (b *Bot) roundHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		b.send(session, message.ChannelID, "Usage: `$round [round]`")
		return
	}

	round, ok := parseRound(args[0])
	if !ok {
		b.send(session, message.ChannelID, fmt.Sprintf("Expected a number, got \"%s\"", args[0]))
		return
	}
	b.roundReport(session, message, round)
}

// teamHandler handles the $team command with a DiscordSession interface
func (b *Bot) teamHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		b.send(session, message.ChannelID, "Usage: `$team \"[name]\"`")
		return
	}
	b.teamSearch(session, message, strings.Join(args, " "))
}

// roundReport posts the report of the team the channel's team plays in round
func (b *Bot) roundReport(session DiscordSession, message *discordgo.MessageCreate, round int) {
	if round < 0 {
		b.send(session, message.ChannelID, msgBadRound)
		return
	}
	guildID, channelID, ok := location(message)
	if !ok {
		b.send(session, message.ChannelID, msgGuildOnly)
		return
	}

	ctx, cancel := b.commandContext()
	defer cancel()

	report, found, err := b.APIPtr.RoundReport(ctx, guildID, channelID, round)
	switch {
	case api.IsNotConfigured(err):
		b.send(session, message.ChannelID, msgNotConfigured)
	case err != nil:
		b.logger.Error().Err(err).Int64("guild_id", guildID).Int("round", round).Msg("error grabbing match")
		b.send(session, message.ChannelID, fmt.Sprintf("Error grabbing match: %s", describe(err)))
	case !found:
		b.send(session, message.ChannelID, msgNoMatch)
	default:
		b.sendEmbed(session, message.ChannelID, teamEmbed(report))
	}
}

// teamSearch searches the channel's tournament for name, posting the report on one result or the names on many
func (b *Bot) teamSearch(session DiscordSession, message *discordgo.MessageCreate, name string) {
	guildID, channelID, ok := location(message)
	if !ok {
		b.send(session, message.ChannelID, msgGuildOnly)
		return
	}

	ctx, cancel := b.commandContext()
	defer cancel()

	outcome, err := b.APIPtr.SearchInTournament(ctx, guildID, channelID, name)
	if api.IsNotConfigured(err) {
		b.send(session, message.ChannelID, msgNotConfigured)
		return
	} else if err != nil {
		b.logger.Error().Err(err).Int64("guild_id", guildID).Str("name", name).Msg("error searching")
		b.send(session, message.ChannelID, fmt.Sprintf("Error searching: %s", describe(err)))
		return
	}

	switch o := outcome.(type) {
	case external.NoMatch:
		b.send(session, message.ChannelID, msgNoTeams)
	case external.Ambiguous:
		b.send(session, message.ChannelID, teamListMessage(name, o.Teams))
	case external.ExactlyOne:
		b.teamReport(ctx, session, message, o.Team)
	}
}

func (b *Bot) teamReport(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate, team external.Team) {
	report, err := b.APIPtr.TeamReport(ctx, team)
	if err != nil {
		b.logger.Error().Err(err).Str("team", team.Name()).Msg("error building team report")
		b.send(session, message.ChannelID, fmt.Sprintf("Error grabbing players: %s", describe(err)))
		return
	}
	b.sendEmbed(session, message.ChannelID, teamEmbed(report))
}

// setTeamHandler handles the $set_team command with a DiscordSession interface
func (b *Bot) setTeamHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		b.send(session, message.ChannelID, "No link given.")
		return
	}
	guildID, channelID, ok := location(message)
	if !ok {
		b.send(session, message.ChannelID, msgGuildOnly)
		return
	}

	ctx, cancel := b.commandContext()
	defer cancel()

	_, err := b.APIPtr.SetTeam(ctx, guildID, channelID, args[0])
	b.replySet(session, message, err, "Updated team URL.")
}

// setTournamentHandler handles the $set_tournament command with a DiscordSession interface
func (b *Bot) setTournamentHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		b.send(session, message.ChannelID, "No link given.")
		return
	}
	guildID, channelID, ok := location(message)
	if !ok {
		b.send(session, message.ChannelID, msgGuildOnly)
		return
	}

	ctx, cancel := b.commandContext()
	defer cancel()

	err := b.APIPtr.SetTournament(ctx, guildID, channelID, args[0])
	b.replySet(session, message, err, "Updated tournament URL.")
}

func (b *Bot) replySet(session DiscordSession, message *discordgo.MessageCreate, err error, success string) {
	switch {
	case err == nil:
		b.send(session, message.ChannelID, success)
	case errors.Is(err, api.ErrInvalidLink):
		b.send(session, message.ChannelID, "Invalid URL.")
	case api.IsNotConfigured(err):
		b.send(session, message.ChannelID, msgNoTeam)
	default:
		b.logger.Error().Err(err).Str("channel_id", message.ChannelID).Msg("error updating database")
		b.send(session, message.ChannelID, "Error updating database.")
	}
}

// describe turns an error from the api into something safe to show in discord
func describe(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	case external.IsNetworkError(err):
		return "couldn't reach Battlefy or Overbuff"
	case external.IsDecodeError(err):
		return "got a response that couldn't be read"
	default:
		return "an unexpected error occurred"
	}
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author == nil || message.Author.ID == botUserID || message.Author.Bot {
		return
	}
	if !startsWith(message.Content, Prefix) {
		return
	}

	args, err := splitArgs(message.Content)
	if err != nil {
		b.send(session, message.ChannelID, "Couldn't read that command, check your quotes.")
		return
	}

	// Route to appropriate handler
	switch {
	case isCommand(message.Content, "help"):
		b.helpMessageHandler(session, message, args)

	case isCommand(message.Content, "od"):
		b.odHandler(session, message, args)

	case isCommand(message.Content, "round"):
		b.roundHandler(session, message, args)

	case isCommand(message.Content, "team"):
		b.teamHandler(session, message, args)

	case isCommand(message.Content, "set_team"):
		b.setTeamHandler(session, message, args)

	case isCommand(message.Content, "set_tournament"):
		b.setTournamentHandler(session, message, args)
	}
}
