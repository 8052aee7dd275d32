/* embed.go
 * Contains the functions that turn reports and search results into discord messages
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"sort"
	"strings"

	"wahoo-bot/api/external"
	"wahoo-bot/api/logic"

	"github.com/bwmarrin/discordgo"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	embedColor    = 0xe74c3c
	embedFooter   = "SR is scraped from Overbuff, and may not be accurate."
	battlefyIcon  = "http://s3.amazonaws.com/battlefy-assets/helix/images/logos/logo.png"
	unknownSymbol = ":grey_question:"
)

func roleIcon(r external.Role) string {
	switch r {
	case external.RoleTank:
		return ":shield:"
	case external.RoleOffense, external.RoleDefense:
		return ":crossed_swords:"
	case external.RoleSupport:
		return ":ambulance:"
	default:
		return unknownSymbol
	}
}

func srText(sr int) string {
	if sr <= 0 {
		return unknownSymbol
	}
	return fmt.Sprintf("%d", sr)
}

// teamEmbed builds the embed posted for a team report
// Preconditions: Receives a report built by the api
// Postconditions: Returns an embed with one line per player, highest SR first, under a field holding the top 6 average
func teamEmbed(r logic.Report) *discordgo.MessageEmbed {
	var players strings.Builder
	for _, p := range r.Players {
		players.WriteString(fmt.Sprintf("%s %s: %s\n", roleIcon(p.Role), p.Battletag, srText(p.SR)))
	}
	value := players.String()
	if value == "" {
		value = "No players found."
	}

	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    r.TeamName,
			URL:     r.TeamURL,
			IconURL: battlefyIcon,
		},
		Color:  embedColor,
		Footer: &discordgo.MessageEmbedFooter{Text: embedFooter},
		Fields: []*discordgo.MessageEmbedField{{
			Name:   fmt.Sprintf("Top %d Average: %s", logic.TopN, r.AverageText()),
			Value:  value,
			Inline: false,
		}},
	}
	if r.LogoURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: r.LogoURL}
	}
	return embed
}

// rankTeamNames orders the names of an ambiguous search so the closest to query come first. Names fuzzy search
// can't match keep Battlefy's order after the ranked ones
func rankTeamNames(query string, teams []external.Team) []string {
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	ordered := make([]string, 0, len(names))
	used := make(map[int]bool)
	for _, r := range ranks {
		ordered = append(ordered, r.Target)
		used[r.OriginalIndex] = true
	}
	for i, n := range names {
		if !used[i] {
			ordered = append(ordered, n)
		}
	}
	return ordered
}

// teamListMessage formats the team names of an ambiguous search as a code block
func teamListMessage(query string, teams []external.Team) string {
	var res strings.Builder
	res.WriteString("```\n")
	for _, name := range rankTeamNames(query, teams) {
		res.WriteString(name + "\n")
	}
	res.WriteString("```")
	return res.String()
}

// helpMessage returns the list of commands, or the usage of the command closest to name
func helpMessage(name string) string {
	if name == "" {
		var res strings.Builder
		res.WriteString("__**Commands**__\nTo get help with a command, pass its name as an argument to this command.\n")
		for i, c := range commands {
			res.WriteString(fmt.Sprintf("`%s`", c.name))
			if i != len(commands)-1 {
				res.WriteString(", ")
			}
		}
		return res.String()
	}

	c, ok := findCommand(name)
	if !ok {
		return "No command found."
	}
	return fmt.Sprintf("__**%s**__\n**Usage**: `%s`\n**Description**: %s", c.name, c.usage, c.description)
}

// findCommand looks a command up by name. An exact name wins, otherwise the closest fuzzy match is used
func findCommand(name string) (command, bool) {
	name = strings.TrimPrefix(strings.ToLower(name), Prefix)

	names := make([]string, len(commands))
	for i, c := range commands {
		if c.name == name {
			return c, true
		}
		names[i] = c.name
	}

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) == 0 {
		return command{}, false
	}
	sort.Sort(ranks)
	return commands[ranks[0].OriginalIndex], true
}
