// Copyright © 2025 Philipp Büchner
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tournament_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

func TestNewSetupErrors(t *testing.T) {
	tests := []struct {
		name    string
		config  tournament.Config
		wantErr string
	}{
		{
			name: "too few players",
			config: tournament.Config{
				Players:      []string{"Anna"},
				InitialOrder: []string{"Anna"},
			},
			wantErr: "player count",
		},
		{
			name: "duplicate names",
			config: tournament.Config{
				Players:      []string{"Anna", "Anna", "Ben"},
				InitialOrder: []string{"Anna", "Anna", "Ben"},
			},
			wantErr: `duplicate player name "Anna"`,
		},
		{
			name: "empty name",
			config: tournament.Config{
				Players:      []string{"Anna", ""},
				InitialOrder: []string{"Anna", ""},
			},
			wantErr: "must not be empty",
		},
		{
			name: "initial order wrong size",
			config: tournament.Config{
				Players:      []string{"Anna", "Ben", "Cleo"},
				InitialOrder: []string{"Anna", "Ben"},
			},
			wantErr: "initial turn order lists 2 players",
		},
		{
			name: "initial order duplicate entry",
			config: tournament.Config{
				Players:      []string{"Anna", "Ben", "Cleo"},
				InitialOrder: []string{"Anna", "Ben", "Ben"},
			},
			wantErr: `initial turn order lists "Ben" twice`,
		},
		{
			name: "initial order unknown player",
			config: tournament.Config{
				Players:      []string{"Anna", "Ben", "Cleo"},
				InitialOrder: []string{"Anna", "Ben", "Zora"},
			},
			wantErr: `unknown player "Zora"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tournament.New(tt.config)

			var setupErr *tournament.SetupError
			require.ErrorAs(t, err, &setupErr)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGamesCapFinishesTournament(t *testing.T) {
	tour, err := tournament.New(tournament.Config{
		Players:      []string{"Anna", "Ben", "Cleo", "Dana", "Emil"},
		InitialOrder: []string{"Ben", "Anna", "Emil", "Cleo", "Dana"},
		GamesCap:     1,
	})
	require.NoError(t, err)
	require.Equal(t, tournament.PhaseInProgress, tour.Phase)

	recordGame(t, tour, "Autumn", resultsFor(tour.NextOrder(), []int{20, 15, 10, 5, 3}))
	require.Equal(t, tournament.PhaseFinished, tour.Phase)

	_, _, err = tour.RecordGame("Winter", resultsFor(tour.Config.InitialOrder, []int{1, 2, 3, 4, 5}))
	require.ErrorContains(t, err, "finished")
	require.Len(t, tour.Ledger, 1)
}

func TestFinishRejectsFurtherGames(t *testing.T) {
	tour := newTestTournament(t)
	tour.Finish()

	_, _, err := tour.RecordGame("Autumn", resultsFor(tour.Config.InitialOrder, []int{1, 2, 3, 4, 5}))
	require.ErrorContains(t, err, "finished")
}

func TestStandingsConsistencyGuard(t *testing.T) {
	tour := newTestTournament(t)
	recordGame(t, tour, "Autumn", resultsFor(tour.NextOrder(), []int{20, 15, 10, 5, 3}))

	// Simulate a roster/ledger drift, e.g. a hand-edited state file.
	tour.Ledger[0].Results[0].Player = "Zora"

	standings, err := tour.Standings()
	require.Error(t, err)
	require.ErrorContains(t, err, `unknown player "Zora"`)
	require.NotNil(t, standings)
	require.Empty(t, standings, "inconsistent state must yield an empty result, not a partial one")
}

func TestStandingsOrder(t *testing.T) {
	tour := newTestTournament(t)
	recordGame(t, tour, "Autumn", resultsFor(tour.NextOrder(), []int{20, 15, 10, 5, 3}))

	standings, err := tour.Standings()
	require.NoError(t, err)

	names := make([]string, len(standings))
	for i, player := range standings {
		names[i] = player.Name
	}
	require.Equal(t, []string{"Ben", "Anna", "Emil", "Cleo", "Dana"}, names)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tour := newTestTournament(t)
	recordGame(t, tour, "Autumn", resultsFor(tour.NextOrder(), []int{20, 15, 10, 5, 3}))
	recordGame(t, tour, "Winter", resultsFor(tour.NextOrder(), []int{3, 5, 10, 15, 29}))

	file := filepath.Join(t.TempDir(), "tournament.yaml")
	require.NoError(t, tour.Save(file))

	loaded, err := tournament.Load(file)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(tour.Ledger, loaded.Ledger))
	require.Empty(t, cmp.Diff(tour.Players, loaded.Players))
	require.Equal(t, tour.Phase, loaded.Phase)
}

func TestLoadMigratesVersion1(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tournament.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
version: 1
config:
  players: [Anna, Ben]
  initial-order: [Ben, Anna]
`), 0o644))

	tour, err := tournament.Load(file)
	require.NoError(t, err)
	require.Equal(t, tournament.PolicyFixed, tour.Config.Scoring.Policy)
	require.Equal(t, tournament.PhaseInProgress, tour.Phase)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tournament.yaml")
	require.NoError(t, os.WriteFile(file, []byte("version: 99\n"), 0o644))

	_, err := tournament.Load(file)
	require.ErrorContains(t, err, "unsupported state file version 99")
}
