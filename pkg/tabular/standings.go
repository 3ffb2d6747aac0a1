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

package tabular

import (
	"fmt"
	"strings"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
	"github.com/phbuechner/Root-Tournament/pkg/tournament/stats"
)

// NoData is the cell written where an average has nothing to average over.
const NoData = "-"

// Headers of the derived, export-only tables.
var (
	StandingsHeader = []string{
		"Position", "Name", "Tournament Points", "Victory Points",
		"Wins", "Last Game VP", "Avg Placement", "Factions Played",
	}
	FactionStatsHeader = []string{
		"Faction", "Played", "Wins", "Avg Victory Points", "Avg Tournament Points",
	}
	MapStatsHeader = []string{"Map", "Games", "Avg Victory Points"}
)

// StandingsRow is one player's line in the derived standings table.
type StandingsRow struct {
	Position          int
	Name              string
	TournamentPoints  int
	VictoryPoints     int
	Wins              int
	LastVictoryPoints int
	AvgPlacement      string
	Factions          string
}

// Standings renders players, already ordered for display, into the
// standings table. Averages are formatted to two decimals, or NoData for a
// player yet to finish a game.
func Standings(players []*tournament.Player) []StandingsRow {
	rows := make([]StandingsRow, len(players))
	for i, player := range players {
		placement := NoData
		if avg, ok := player.AveragePlacement(); ok {
			placement = fmt.Sprintf("%.2f", avg)
		}

		factions := make([]string, len(player.PlayedFactions))
		for j, faction := range player.PlayedFactions {
			factions[j] = string(faction)
		}

		rows[i] = StandingsRow{
			Position:          i + 1,
			Name:              player.Name,
			TournamentPoints:  player.TotalTournamentPoints,
			VictoryPoints:     player.TotalVictoryPoints,
			Wins:              player.Wins,
			LastVictoryPoints: player.LastVictoryPoints,
			AvgPlacement:      placement,
			Factions:          strings.Join(factions, ListSeparator),
		}
	}

	return rows
}

// FactionStatsRow is one faction's line in the derived faction-stats table.
type FactionStatsRow struct {
	Faction string
	Played  int
	Wins    int
	AvgVP   string
	AvgTP   string
}

// FactionStats renders faction aggregates into table rows, with NoData in
// place of averages for factions never played.
func FactionStats(factionStats []stats.FactionStat) []FactionStatsRow {
	rows := make([]FactionStatsRow, len(factionStats))
	for i, stat := range factionStats {
		row := FactionStatsRow{
			Faction: string(stat.Faction),
			Played:  stat.Played,
			Wins:    stat.Wins,
			AvgVP:   NoData,
			AvgTP:   NoData,
		}
		if stat.HasData() {
			row.AvgVP = fmt.Sprintf("%.2f", stat.AvgVictoryPoints)
			row.AvgTP = fmt.Sprintf("%.2f", stat.AvgTournamentPoints)
		}
		rows[i] = row
	}

	return rows
}

// MapStatsRow is one map's line in the derived map-stats table.
type MapStatsRow struct {
	Map   string
	Games int
	AvgVP string
}

// MapStats renders map aggregates into table rows.
func MapStats(mapStats []stats.MapStat) []MapStatsRow {
	rows := make([]MapStatsRow, len(mapStats))
	for i, stat := range mapStats {
		row := MapStatsRow{Map: string(stat.Map), Games: stat.Games, AvgVP: NoData}
		if stat.HasData() {
			row.AvgVP = fmt.Sprintf("%.2f", stat.AvgVictoryPoints)
		}
		rows[i] = row
	}

	return rows
}
