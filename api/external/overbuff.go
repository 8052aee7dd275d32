/* overbuff.go
 * Contains the client used to scrape player profiles from Overbuff
 * Authors: Zachary Bower
 */

package external

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const (
	// DefaultOverbuffURL is the Overbuff site the profiles are scraped from
	DefaultOverbuffURL = "https://www.overbuff.com/"

	overbuffUserAgent = "wahoo :)"
)

type OverbuffClient struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewOverbuffClient creates an Overbuff client. An empty baseURL uses DefaultOverbuffURL
func NewOverbuffClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *OverbuffClient {
	if baseURL == "" {
		baseURL = DefaultOverbuffURL
	}
	return &OverbuffClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
		logger:  logger,
	}
}

// ProfileURL returns the Overbuff profile page for a battletag. Overbuff uses '-' where the battletag has '#'
func (c *OverbuffClient) ProfileURL(battletag string) string {
	return joinURL(c.baseURL, fmt.Sprintf("players/pc/%s", url.PathEscape(strings.ReplaceAll(battletag, "#", "-"))))
}

// FindPlayer scrapes the profile page of a player
// Preconditions: Receives context and a non empty battletag
// Postconditions: Returns the RatedPlayer, named as the profile shows it, with SR 0 if no rating could be parsed, or an error if the page could not
// be fetched or parsed as HTML
func (c *OverbuffClient) FindPlayer(ctx context.Context, battletag string) (RatedPlayer, error) {
	u := c.ProfileURL(battletag)

	body, err := fetch(ctx, c.client, u, map[string]string{"User-Agent": overbuffUserAgent})
	if err != nil {
		return RatedPlayer{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return RatedPlayer{}, &DecodeError{URL: u, Err: err}
	}

	tag, ok := ParseBattletag(doc)
	if !ok {
		tag = battletag
	}

	sr, ok := ParseSR(doc)
	if !ok {
		c.logger.Debug().Str("battletag", battletag).Msg("no skill rating on profile")
	}

	return RatedPlayer{
		Battletag: tag,
		SR:        sr,
		Role:      ParseRole(doc),
	}, nil
}
