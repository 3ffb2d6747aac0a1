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

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
	"github.com/phbuechner/Root-Tournament/pkg/tournament/stats"
)

func testLedger() []tournament.Game {
	return []tournament.Game{
		{
			Number:    1,
			Map:       "Autumn",
			TurnOrder: []string{"Anna", "Ben", "Cleo"},
			Results: []tournament.GameResult{
				{Player: "Anna", Faction: "Vagabond", VictoryPoints: 20, Rank: 1, TournamentPoints: 10},
				{Player: "Ben", Faction: "Marquise de Cat", VictoryPoints: 10, Rank: 2, TournamentPoints: 7},
				{Player: "Cleo", Faction: "Lizard Cult", VictoryPoints: 5, Rank: 3, TournamentPoints: 5},
			},
		},
		{
			Number:    2,
			Map:       "Autumn",
			TurnOrder: []string{"Cleo", "Ben", "Anna"},
			Results: []tournament.GameResult{
				{Player: "Ben", Faction: "Vagabond", VictoryPoints: 30, Rank: 1, TournamentPoints: 10},
				{Player: "Anna", Faction: "Eyrie Dynasties", VictoryPoints: 12, Rank: 2, TournamentPoints: 7},
				{Player: "Cleo", Faction: "Lizard Cult", VictoryPoints: 8, Rank: 3, TournamentPoints: 5},
			},
		},
	}
}

func TestFactions(t *testing.T) {
	factionStats := stats.Factions(testLedger(), tournament.DefaultFactions())

	byName := make(map[tournament.Faction]stats.FactionStat)
	for _, stat := range factionStats {
		byName[stat.Faction] = stat
	}

	vagabond := byName["Vagabond"]
	require.Equal(t, 2, vagabond.Played)
	require.Equal(t, 2, vagabond.Wins)
	require.InDelta(t, 25.0, vagabond.AvgVictoryPoints, 1e-9)
	require.InDelta(t, 10.0, vagabond.AvgTournamentPoints, 1e-9)
	require.True(t, vagabond.HasData())

	lizards := byName["Lizard Cult"]
	require.Equal(t, 2, lizards.Played)
	require.Equal(t, 0, lizards.Wins)
	require.InDelta(t, 6.5, lizards.AvgVictoryPoints, 1e-9)
}

func TestFactionsNeverPlayedSentinel(t *testing.T) {
	factionStats := stats.Factions(testLedger(), tournament.DefaultFactions())

	for _, stat := range factionStats {
		if stat.Faction != "Corvid Conspiracy" {
			continue
		}
		require.False(t, stat.HasData())
		require.Zero(t, stat.Played)
		require.Zero(t, stat.Wins)
		require.Zero(t, stat.AvgVictoryPoints)
		return
	}
	t.Fatal("never-played faction missing from the stats")
}

func TestFactionsOrderedByAppearances(t *testing.T) {
	factionStats := stats.Factions(testLedger(), tournament.DefaultFactions())

	for i := 1; i < len(factionStats); i++ {
		require.GreaterOrEqual(t, factionStats[i-1].Played, factionStats[i].Played)
	}
}

func TestMapsAveragePerAppearance(t *testing.T) {
	mapStats := stats.Maps(testLedger(), tournament.DefaultMaps())

	autumn := mapStats[0]
	require.Equal(t, tournament.Map("Autumn"), autumn.Map)
	require.Equal(t, 2, autumn.Games)
	require.Equal(t, 6, autumn.Appearances)
	// (20+10+5+30+12+8) / 6 player-appearances, not / 2 games.
	require.InDelta(t, 85.0/6.0, autumn.AvgVictoryPoints, 1e-9)

	for _, stat := range mapStats[1:] {
		require.False(t, stat.HasData())
	}
}

func TestProgression(t *testing.T) {
	players := []string{"Anna", "Ben", "Cleo"}
	points := stats.Progression(testLedger(), players)

	// One leading zero sample plus one per game for every player.
	require.Len(t, points, len(players)*3)

	series := make(map[string][]int)
	lastIndex := make(map[string]int)
	for _, point := range points {
		require.GreaterOrEqual(t, point.GameIndex, lastIndex[point.Player],
			"game index must not decrease within a player's series")
		lastIndex[point.Player] = point.GameIndex
		series[point.Player] = append(series[point.Player], point.Points)
	}

	require.Equal(t, []int{0, 10, 17}, series["Anna"])
	require.Equal(t, []int{0, 7, 17}, series["Ben"])
	require.Equal(t, []int{0, 5, 10}, series["Cleo"])
}

func TestProgressionEmptyLedger(t *testing.T) {
	points := stats.Progression(nil, []string{"Anna"})

	require.Len(t, points, 1)
	require.Zero(t, points[0].GameIndex)
	require.Zero(t, points[0].Points)
}
