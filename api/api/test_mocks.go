/* test_mocks.go
 * Contains mock structures for testing the API package and its consumers
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"wahoo-bot/api/external"
	"wahoo-bot/api/store"

	"github.com/rs/zerolog"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	mu sync.Mutex

	// ChannelTeams maps a channel to the team that claims it, DefaultTeams maps a server to its default team
	ChannelTeams map[int64]int
	DefaultTeams map[int64]int
	Configs      map[int]store.BattlefyConfig

	// Error injection for testing error paths
	TeamIDInError       error
	BattlefyConfigError error
	SetError            error
	PingError           error

	Database interface{ Name() string }
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

type mockClient struct{}

func (mockClient) Disconnect(context.Context) error {
	return nil
}

// NewMockStore creates a new MockStore with no teams registered
func NewMockStore() *MockStore {
	return &MockStore{
		ChannelTeams: make(map[int64]int),
		DefaultTeams: make(map[int64]int),
		Configs:      make(map[int]store.BattlefyConfig),
		Database:     &mockDatabase{name: "test_db"},
	}
}

func (m *MockStore) TeamIDIn(ctx context.Context, guildID int64, channelID int64) (int, error) {
	if m.TeamIDInError != nil {
		return 0, m.TeamIDInError
	}
	if id, ok := m.ChannelTeams[channelID]; ok {
		return id, nil
	}
	if id, ok := m.DefaultTeams[guildID]; ok {
		return id, nil
	}
	return 0, store.ErrNotConfigured
}

func (m *MockStore) BattlefyConfig(ctx context.Context, teamID int) (store.BattlefyConfig, error) {
	if m.BattlefyConfigError != nil {
		return store.BattlefyConfig{}, m.BattlefyConfigError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.Configs[teamID]
	if !ok {
		return store.BattlefyConfig{}, store.ErrNotConfigured
	}
	return cfg, nil
}

func (m *MockStore) SetBattlefyTeam(ctx context.Context, teamID int, battlefyTeamID string) error {
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg := m.Configs[teamID]
	cfg.Team = teamID
	cfg.TeamID = battlefyTeamID
	m.Configs[teamID] = cfg
	return nil
}

func (m *MockStore) SetBattlefyTournament(ctx context.Context, teamID int, link string, stageID string) error {
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg := m.Configs[teamID]
	cfg.Team = teamID
	cfg.TournamentLink = link
	cfg.StageID = stageID
	m.Configs[teamID] = cfg
	return nil
}

func (m *MockStore) Ping(ctx context.Context) error {
	return m.PingError
}

func (m *MockStore) GetDatabase() interface{ Name() string } {
	return m.Database
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return mockClient{}
}

// MockBracket implements logic.BracketClient with canned responses
type MockBracket struct {
	Teams    []external.Team
	Matches  map[int][]external.Match
	Extended map[string]external.Match
	Err      error
}

func NewMockBracket() *MockBracket {
	return &MockBracket{
		Matches:  make(map[int][]external.Match),
		Extended: make(map[string]external.Match),
	}
}

// FindTeamsByName returns every team whose name starts with name
func (m *MockBracket) FindTeamsByName(ctx context.Context, tournamentID string, name string) (external.SearchOutcome, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var found []external.Team
	for _, t := range m.Teams {
		if strings.HasPrefix(t.Name(), name) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return external.NoMatch{}, nil
	case 1:
		return external.ExactlyOne{Team: found[0]}, nil
	default:
		return external.Ambiguous{Teams: found}, nil
	}
}

func (m *MockBracket) ListMatches(ctx context.Context, stageID string, round int) ([]external.Match, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]external.Match(nil), m.Matches[round]...), nil
}

func (m *MockBracket) FetchExtendedMatch(ctx context.Context, matchID string, self external.Side) (*external.Team, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	match, ok := m.Extended[matchID]
	if !ok {
		return nil, nil
	}
	team := match.Slot(self.Opposite())
	return &team, nil
}

// MockFinder implements logic.PlayerFinder from a map of battletag to rating
type MockFinder struct {
	Players map[string]external.RatedPlayer
}

func (m *MockFinder) FindPlayer(ctx context.Context, battletag string) (external.RatedPlayer, error) {
	p, ok := m.Players[battletag]
	if !ok {
		return external.RatedPlayer{}, &external.NetworkError{URL: battletag, Err: fmt.Errorf("unexpected status code 404")}
	}
	return p, nil
}

// NewMockAPI creates an API over mocks with rate limiting disabled
func NewMockAPI(s store.Interface, bracket *MockBracket, finder *MockFinder) *API {
	return New(s, bracket, finder, Options{Concurrency: 2}, zerolog.Nop())
}
