package tournament_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

// newTestTournament creates a five-player tournament with the base game
// defaults and a fixed first-game order.
func newTestTournament(t *testing.T) *tournament.Tournament {
	t.Helper()

	tour, err := tournament.New(tournament.Config{
		Name:         "Test Season",
		Players:      []string{"Anna", "Ben", "Cleo", "Dana", "Emil"},
		InitialOrder: []string{"Ben", "Anna", "Emil", "Cleo", "Dana"},
	})
	require.NoError(t, err)

	return tour
}

// recordGame records a valid game and fails the test if it is rejected.
func recordGame(t *testing.T, tour *tournament.Tournament, gameMap tournament.Map, proposed []tournament.ProposedResult) *tournament.Game {
	t.Helper()

	game, _, err := tour.RecordGame(gameMap, proposed)
	require.NoError(t, err)

	return game
}

// resultsFor builds one proposed result per player in the given turn order,
// assigning distinct factions and the given victory points.
func resultsFor(order []string, vps []int) []tournament.ProposedResult {
	factions := tournament.DefaultFactions()
	proposed := make([]tournament.ProposedResult, len(order))
	for i, name := range order {
		proposed[i] = tournament.ProposedResult{
			Player:        name,
			Faction:       factions[i],
			VictoryPoints: vps[i],
		}
	}

	return proposed
}
