/* parser.go
 * Contains the logic used to pull the battletag, skill rating and role out of an Overbuff player profile. Overbuff
 * controls the page layout, so every step can come up empty and each field is extracted independently
 * Authors: Zachary Bower
 */

package external

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ParseBattletag reads the player's name and tag from the profile heading
// Preconditions: Receives the parsed profile document
// Postconditions: Returns name+tag (e.g. "heckoffnerd#1772") and true, or false if either part is missing
func ParseBattletag(doc *goquery.Document) (string, bool) {
	heading := doc.Find("h1").First()

	name, ok := firstText(heading)
	if !ok {
		return "", false
	}

	tag, ok := firstText(heading.Find("small").First())
	if !ok {
		return "", false
	}

	return name + tag, true
}

// ParseSR reads the skill rating shown on the profile
// Preconditions: Receives the parsed profile document
// Postconditions: Returns the rating and true, or false if the element is missing or does not hold a number
func ParseSR(doc *goquery.Document) (int, bool) {
	text, ok := firstText(doc.Find(".player-skill-rating").First())
	if !ok {
		return 0, false
	}

	sr, err := strconv.ParseUint(strings.TrimSpace(text), 10, 16)
	if err != nil {
		return 0, false
	}
	return int(sr), true
}

// ParseRole reads the most played role from the first row of the roles table. Anything unexpected is RoleUnknown
func ParseRole(doc *goquery.Document) Role {
	roles := doc.Find(`[data-portable="roles"]`).First()
	if roles.Length() == 0 {
		return RoleUnknown
	}

	row := roles.Find(".stripe-rows > tr").First()
	if row.Length() == 0 {
		return RoleUnknown
	}

	name, ok := firstText(row.Find(".color-white").First())
	if !ok {
		return RoleUnknown
	}
	return roleFromName(name)
}

// firstText returns the data of the selection's first child if that child is a text node
func firstText(s *goquery.Selection) (string, bool) {
	if s.Length() == 0 {
		return "", false
	}

	child := s.Get(0).FirstChild
	if child == nil || child.Type != html.TextNode {
		return "", false
	}
	return child.Data, true
}
