/* api.go
 * This file contains the public methods for interacting with this package. Consumers (the bot and web server) should
 * only call these methods, not the sub packages for external, logic and store
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"errors"
	"fmt"

	"wahoo-bot/api/config"
	"wahoo-bot/api/external"
	"wahoo-bot/api/logic"
	"wahoo-bot/api/metrics"
	"wahoo-bot/api/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// API provides methods for building team reports and managing per server settings
type API struct {
	Store    store.Interface
	Bracket  logic.BracketClient
	Resolver *logic.Resolver
	Enricher *logic.Enricher
	Metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewAPI creates a new API instance with the provided configuration, connecting to mongo and registering metrics
// on reg
func NewAPI(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, logger zerolog.Logger) (*API, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	s, err := store.NewStore(ctx, cfg.MongoDB, cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	bracket := external.NewBattlefyClient(cfg.BattlefyURL, cfg.HTTPTimeout, logger.With().Str("client", "battlefy").Logger())
	finder := external.NewOverbuffClient(cfg.OverbuffURL, cfg.HTTPTimeout, logger.With().Str("client", "overbuff").Logger())

	a := New(s, bracket, finder, Options{Concurrency: cfg.ScrapeConcurrency, RPS: cfg.ScrapeRPS}, logger)
	if reg != nil {
		a.SetMetrics(metrics.New(reg))
	}
	return a, nil
}

// New creates an API from already built parts
func New(s store.Interface, bracket logic.BracketClient, finder logic.PlayerFinder, opts Options, logger zerolog.Logger) *API {
	return &API{
		Store:    s,
		Bracket:  bracket,
		Resolver: logic.NewResolver(bracket, logger),
		Enricher: logic.NewEnricher(finder, opts.Concurrency, opts.RPS, logger),
		logger:   logger,
	}
}

// SetMetrics records lookups and reports on m
func (a *API) SetMetrics(m *metrics.Metrics) {
	a.Metrics = m
	a.Enricher.SetMetrics(m)
}

// Close disconnects from the database
func (a *API) Close(ctx context.Context) error {
	return a.Store.GetClient().Disconnect(ctx)
}

// Ping checks the database can be reached
func (a *API) Ping(ctx context.Context) error {
	return a.Store.Ping(ctx)
}

// TeamReport looks up every player of team and builds its report
func (a *API) TeamReport(ctx context.Context, team external.Team) (logic.Report, error) {
	rated, err := a.Enricher.Enrich(ctx, team.Players)
	if err != nil {
		return logic.Report{}, err
	}
	return logic.BuildReport(team, rated), nil
}

// MatchupReport builds the report of the team teamID plays in a round
// Preconditions: Receives context, stage id, the persistent id of the caller's team and the round
// Postconditions: Returns the opponent's report and true, false if the team has no match that round, or an error
// if it occurs
func (a *API) MatchupReport(ctx context.Context, stageID string, teamID string, round int) (logic.Report, bool, error) {
	if round < 0 {
		return logic.Report{}, false, ErrInvalidRound
	}

	team, err := a.Resolver.Matchup(ctx, stageID, teamID, round)
	if err != nil {
		a.Metrics.ObserveReport("round", metrics.ReportError)
		return logic.Report{}, false, err
	}
	if team == nil {
		a.Metrics.ObserveReport("round", metrics.ReportNotFound)
		return logic.Report{}, false, nil
	}

	report, err := a.TeamReport(ctx, *team)
	if err != nil {
		a.Metrics.ObserveReport("round", metrics.ReportError)
		return logic.Report{}, false, err
	}
	a.Metrics.ObserveReport("round", metrics.ReportOK)
	return report, true, nil
}

// SearchTeam searches a tournament for teams by name
func (a *API) SearchTeam(ctx context.Context, tournamentID string, name string) (external.SearchOutcome, error) {
	outcome, err := a.Bracket.FindTeamsByName(ctx, tournamentID, name)
	if err != nil {
		a.Metrics.ObserveReport("search", metrics.ReportError)
		return nil, err
	}

	if _, ok := outcome.(external.ExactlyOne); ok {
		a.Metrics.ObserveReport("search", metrics.ReportOK)
	} else {
		a.Metrics.ObserveReport("search", metrics.ReportNotFound)
	}
	return outcome, nil
}

// battlefyConfig fetches the Battlefy settings of the team that owns a channel
func (a *API) battlefyConfig(ctx context.Context, guildID int64, channelID int64) (store.BattlefyConfig, error) {
	teamID, err := a.Store.TeamIDIn(ctx, guildID, channelID)
	if err != nil {
		return store.BattlefyConfig{}, err
	}
	return a.Store.BattlefyConfig(ctx, teamID)
}

// RoundReport builds the report of the team the channel's team plays in a round
// Preconditions: Receives context, discord server and channel ids and the round
// Postconditions: Returns the report and true, false if there is no match that round, store.ErrNotConfigured if the
// team or tournament was never set, or another error if it occurs
func (a *API) RoundReport(ctx context.Context, guildID int64, channelID int64, round int) (logic.Report, bool, error) {
	cfg, err := a.battlefyConfig(ctx, guildID, channelID)
	if err != nil {
		return logic.Report{}, false, err
	}
	if !cfg.HasTeam() || !cfg.HasTournament() {
		return logic.Report{}, false, store.ErrNotConfigured
	}

	return a.MatchupReport(ctx, cfg.StageID, cfg.TeamID, round)
}

// SearchInTournament searches the tournament set for the channel's team
func (a *API) SearchInTournament(ctx context.Context, guildID int64, channelID int64, name string) (external.SearchOutcome, error) {
	cfg, err := a.battlefyConfig(ctx, guildID, channelID)
	if err != nil {
		return nil, err
	}
	if !cfg.HasTournament() {
		return nil, store.ErrNotConfigured
	}

	tournamentID, ok := logic.TournamentIDFromLink(cfg.TournamentLink)
	if !ok {
		return nil, fmt.Errorf("stored tournament link %q: %w", cfg.TournamentLink, ErrInvalidLink)
	}
	return a.SearchTeam(ctx, tournamentID, name)
}

// SetTeam stores the Battlefy team the channel's team plays as
// Preconditions: Receives context, discord server and channel ids and a link such as https://battlefy.com/teams/{id}
// Postconditions: Returns the stored Battlefy team id, ErrInvalidLink if the link holds no team id, or an error
func (a *API) SetTeam(ctx context.Context, guildID int64, channelID int64, link string) (string, error) {
	battlefyTeamID, ok := logic.TeamIDFromLink(link)
	if !ok {
		return "", ErrInvalidLink
	}

	teamID, err := a.Store.TeamIDIn(ctx, guildID, channelID)
	if err != nil {
		return "", err
	}
	if err := a.Store.SetBattlefyTeam(ctx, teamID, battlefyTeamID); err != nil {
		return "", err
	}

	a.logger.Info().Int64("guild_id", guildID).Int("team", teamID).Str("battlefy_team", battlefyTeamID).Msg("battlefy team set")
	return battlefyTeamID, nil
}

// SetTournament stores the tournament the channel's team plays in. The link must include the stage
func (a *API) SetTournament(ctx context.Context, guildID int64, channelID int64, link string) error {
	if _, ok := logic.TournamentIDFromLink(link); !ok {
		return ErrInvalidLink
	}
	stageID, ok := logic.StageIDFromLink(link)
	if !ok {
		return fmt.Errorf("link has no stage: %w", ErrInvalidLink)
	}

	teamID, err := a.Store.TeamIDIn(ctx, guildID, channelID)
	if err != nil {
		return err
	}
	if err := a.Store.SetBattlefyTournament(ctx, teamID, link, stageID); err != nil {
		return err
	}

	a.logger.Info().Int64("guild_id", guildID).Int("team", teamID).Str("stage_id", stageID).Msg("battlefy tournament set")
	return nil
}

// IsNotConfigured reports whether err means the server, team or tournament has not been set up
func IsNotConfigured(err error) bool {
	return errors.Is(err, store.ErrNotConfigured)
}
