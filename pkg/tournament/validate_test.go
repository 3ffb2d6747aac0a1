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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

func TestRecordGameDominanceRejection(t *testing.T) {
	tour := newTestTournament(t)

	proposed := resultsFor(tour.NextOrder(), []int{29, 30, 30, 5, 3})
	_, _, err := tour.RecordGame("Autumn", proposed)

	var rejections tournament.ValidationErrors
	require.ErrorAs(t, err, &rejections)
	require.Contains(t, err.Error(), "dominance threshold")
	// Both offenders are named; the player below the threshold is not.
	require.Contains(t, err.Error(), "Anna")
	require.Contains(t, err.Error(), "Emil")
	require.NotContains(t, err.Error(), "Ben")

	require.Empty(t, tour.Ledger, "a rejected game must not reach the ledger")
}

func TestRecordGameDuplicateFactionRejection(t *testing.T) {
	tour := newTestTournament(t)

	proposed := resultsFor(tour.NextOrder(), []int{10, 12, 14, 16, 18})
	proposed[0].Faction = "Vagabond"
	proposed[1].Faction = "Vagabond"

	_, _, err := tour.RecordGame("Autumn", proposed)

	var rejections tournament.ValidationErrors
	require.ErrorAs(t, err, &rejections)
	require.Contains(t, err.Error(), "Vagabond")
	require.Empty(t, tour.Ledger)
}

func TestRecordGameCompleteness(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]tournament.ProposedResult) []tournament.ProposedResult
		wantErr string
	}{
		{
			name: "missing player",
			mutate: func(proposed []tournament.ProposedResult) []tournament.ProposedResult {
				return proposed[1:]
			},
			wantErr: "missing results for: Ben",
		},
		{
			name: "unknown player",
			mutate: func(proposed []tournament.ProposedResult) []tournament.ProposedResult {
				extra := proposed[0]
				extra.Player = "Frida"
				extra.Faction = "Corvid Conspiracy"
				return append(proposed, extra)
			},
			wantErr: "outside the turn order: Frida",
		},
		{
			name: "doubled player",
			mutate: func(proposed []tournament.ProposedResult) []tournament.ProposedResult {
				doubled := proposed[2]
				doubled.Faction = "Corvid Conspiracy"
				return append(proposed, doubled)
			},
			wantErr: "multiple results for: Emil",
		},
		{
			name: "negative victory points",
			mutate: func(proposed []tournament.ProposedResult) []tournament.ProposedResult {
				proposed[3].VictoryPoints = -2
				return proposed
			},
			wantErr: "negative victory points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tour := newTestTournament(t)
			proposed := tt.mutate(resultsFor(tour.NextOrder(), []int{10, 12, 14, 16, 18}))

			_, _, err := tour.RecordGame("Autumn", proposed)

			var rejections tournament.ValidationErrors
			require.ErrorAs(t, err, &rejections)
			require.Contains(t, err.Error(), tt.wantErr)
			require.Empty(t, tour.Ledger)
		})
	}
}

func TestRecordGameCollectsAllViolations(t *testing.T) {
	tour := newTestTournament(t)

	proposed := resultsFor(tour.NextOrder(), []int{30, 31, 14, 16, 18})
	proposed[2].Faction = proposed[3].Faction

	_, _, err := tour.RecordGame("Moon", proposed)

	var rejections tournament.ValidationErrors
	require.ErrorAs(t, err, &rejections)
	require.Len(t, rejections, 3) // unknown map, dominance, duplicate faction
}

func TestRecordGameRankTieBreak(t *testing.T) {
	tour := newTestTournament(t)

	// Order for game 1 is Ben, Anna, Emil, Cleo, Dana. Anna and Emil tie
	// on victory points; Anna moved earlier and must take the better rank.
	game := recordGame(t, tour, "Autumn", resultsFor(tour.NextOrder(), []int{5, 20, 20, 3, 1}))

	anna, ok := game.ResultOf("Anna")
	require.True(t, ok)
	emil, ok := game.ResultOf("Emil")
	require.True(t, ok)

	require.Equal(t, 1, anna.Rank)
	require.Equal(t, 2, emil.Rank)
	require.Equal(t, 10, anna.TournamentPoints)
	require.Equal(t, 7, emil.TournamentPoints)
	require.Equal(t, "Anna", game.Winner())
}

func TestRecordGameFactionRepeatAdvisory(t *testing.T) {
	tour := newTestTournament(t)

	recordGame(t, tour, "Autumn", []tournament.ProposedResult{
		{Player: "Ben", Faction: "Vagabond", VictoryPoints: 20},
		{Player: "Anna", Faction: "Marquise de Cat", VictoryPoints: 15},
		{Player: "Emil", Faction: "Eyrie Dynasties", VictoryPoints: 10},
		{Player: "Cleo", Faction: "Lizard Cult", VictoryPoints: 5},
		{Player: "Dana", Faction: "Corvid Conspiracy", VictoryPoints: 3},
	})

	order := tour.NextOrder()
	proposed := resultsFor(order, []int{8, 9, 10, 11, 12})
	for i := range proposed {
		if proposed[i].Player == "Ben" {
			proposed[i].Faction = "Vagabond"
		} else if proposed[i].Faction == "Vagabond" {
			proposed[i].Faction = "Underground Duchy"
		}
	}

	game, advisories, err := tour.RecordGame("Winter", proposed)
	require.NoError(t, err)
	require.NotNil(t, game, "advisories must not block the game")
	require.Len(t, advisories, 1)
	require.Contains(t, string(advisories[0]), "Ben")
	require.Contains(t, string(advisories[0]), "Vagabond")
	require.Len(t, tour.Ledger, 2)
}

func TestRecordGameUnknownFaction(t *testing.T) {
	tour := newTestTournament(t)

	proposed := resultsFor(tour.NextOrder(), []int{10, 12, 14, 16, 18})
	proposed[0].Faction = "Keepers in Iron"

	_, _, err := tour.RecordGame("Autumn", proposed)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown faction "Keepers in Iron"`)

	var rejections tournament.ValidationErrors
	require.True(t, errors.As(err, &rejections))
}
