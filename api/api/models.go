/* models.go
 * This file contain the errors and structs that are used by api consumers
 * Authors: Zachary Bower
 */

package api

import "errors"

// ErrInvalidLink is returned when a link given to SetTeam or SetTournament is not a Battlefy link of the right kind
var ErrInvalidLink = errors.New("invalid battlefy link")

// ErrInvalidRound is returned for round numbers below zero
var ErrInvalidRound = errors.New("round must not be negative")

// Options tunes how rosters are enriched
type Options struct {
	Concurrency int
	RPS         float64
}
