/* links.go
 * Contains the logic used to pull Battlefy ids out of the team and tournament links users paste into discord.
 * Links are parsed by path segment, so slugs of any length are handled
 * Authors: Zachary Bower
 */

package logic

import (
	"net/url"
	"regexp"
	"strings"
)

var objectIDRegex = regexp.MustCompile(`^[0-9a-f]{24}$`)

// isObjectID reports whether s looks like a Battlefy (mongo) object id
func isObjectID(s string) bool {
	return objectIDRegex.MatchString(s)
}

// battlefySegments parses a battlefy.com link and returns its non empty path segments
func battlefySegments(link string) ([]string, bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return nil, false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host != "battlefy.com" {
		return nil, false
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments, true
}

// TeamIDFromLink returns the persistent team id from a link such as https://battlefy.com/teams/5bfe1b9418ddd9114f14efb0
func TeamIDFromLink(link string) (string, bool) {
	segments, ok := battlefySegments(link)
	if !ok || len(segments) < 2 || segments[0] != "teams" {
		return "", false
	}
	if !isObjectID(segments[1]) {
		return "", false
	}
	return segments[1], true
}

// TournamentIDFromLink returns the tournament id from a tournament link
// Preconditions: Receives a link such as https://battlefy.com/{org}/{slug}/{tournamentId}/stage/{stageId}/bracket/
// Postconditions: Returns the id before the "stage" segment, or the first id in the path if there is no stage,
// or false if the link holds no id
func TournamentIDFromLink(link string) (string, bool) {
	segments, ok := battlefySegments(link)
	if !ok {
		return "", false
	}

	for i, s := range segments {
		if s == "stage" && i > 0 && isObjectID(segments[i-1]) {
			return segments[i-1], true
		}
	}
	for _, s := range segments {
		if isObjectID(s) {
			return s, true
		}
	}
	return "", false
}

// StageIDFromLink returns the id following the "stage" segment of a tournament link
func StageIDFromLink(link string) (string, bool) {
	segments, ok := battlefySegments(link)
	if !ok {
		return "", false
	}

	for i, s := range segments {
		if s == "stage" && i+1 < len(segments) && isObjectID(segments[i+1]) {
			return segments[i+1], true
		}
	}
	return "", false
}
