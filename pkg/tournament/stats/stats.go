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

// Package stats derives read-only projections from a tournament ledger.
// Every function recomputes from scratch on each call; ledgers in this
// domain stay small enough that caching would only add staleness bugs.
package stats

import (
	"sort"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

// FactionStat aggregates one faction's record across all games.
type FactionStat struct {
	Faction tournament.Faction
	Played  int
	Wins    int

	// Averages per appearance. Meaningless while Played is zero; check
	// HasData before using them.
	AvgVictoryPoints    float64
	AvgTournamentPoints float64
}

// HasData reports whether the faction appeared in any recorded game.
func (stat FactionStat) HasData() bool { return stat.Played > 0 }

// Factions aggregates appearances, wins and average points for every
// configured faction. Factions never played are still listed, with zero
// counts. The result is ordered by appearances, most played first, ties in
// configuration order.
func Factions(ledger []tournament.Game, factions []tournament.Faction) []FactionStat {
	factions = append([]tournament.Faction(nil), factions...)

	type totals struct{ played, wins, vp, tp int }
	acc := make(map[tournament.Faction]*totals, len(factions))
	for _, faction := range factions {
		acc[faction] = &totals{}
	}

	for _, game := range ledger {
		for _, result := range game.Results {
			sum, ok := acc[result.Faction]
			if !ok {
				// Ledger entries from an import may carry factions the
				// current configuration does not know; count them anyway.
				sum = &totals{}
				acc[result.Faction] = sum
				factions = append(factions, result.Faction)
			}

			sum.played++
			sum.vp += result.VictoryPoints
			sum.tp += result.TournamentPoints
			if result.Rank == 1 {
				sum.wins++
			}
		}
	}

	out := make([]FactionStat, 0, len(factions))
	for _, faction := range factions {
		sum := acc[faction]
		stat := FactionStat{Faction: faction, Played: sum.played, Wins: sum.wins}
		if sum.played > 0 {
			stat.AvgVictoryPoints = float64(sum.vp) / float64(sum.played)
			stat.AvgTournamentPoints = float64(sum.tp) / float64(sum.played)
		}
		out = append(out, stat)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Played > out[j].Played })
	return out
}

// MapStat aggregates one map's record across all games.
type MapStat struct {
	Map         tournament.Map
	Games       int
	Appearances int

	// Average victory points per player-appearance on this map, not per
	// game. Meaningless while Appearances is zero.
	AvgVictoryPoints float64
}

// HasData reports whether any game was played on the map.
func (stat MapStat) HasData() bool { return stat.Appearances > 0 }

// Maps aggregates game counts and average victory points for every
// configured map, ordered by game count, most played first.
func Maps(ledger []tournament.Game, maps []tournament.Map) []MapStat {
	maps = append([]tournament.Map(nil), maps...)

	type totals struct{ games, appearances, vp int }
	acc := make(map[tournament.Map]*totals, len(maps))
	for _, gameMap := range maps {
		acc[gameMap] = &totals{}
	}

	for _, game := range ledger {
		sum, ok := acc[game.Map]
		if !ok {
			sum = &totals{}
			acc[game.Map] = sum
			maps = append(maps, game.Map)
		}

		sum.games++
		for _, result := range game.Results {
			sum.appearances++
			sum.vp += result.VictoryPoints
		}
	}

	out := make([]MapStat, 0, len(maps))
	for _, gameMap := range maps {
		sum := acc[gameMap]
		stat := MapStat{Map: gameMap, Games: sum.games, Appearances: sum.appearances}
		if sum.appearances > 0 {
			stat.AvgVictoryPoints = float64(sum.vp) / float64(sum.appearances)
		}
		out = append(out, stat)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Games > out[j].Games })
	return out
}

// ProgressionPoint is one sample of a player's running tournament-point
// total: their cumulative points after GameIndex games, with index 0 being
// the start of the tournament.
type ProgressionPoint struct {
	GameIndex int
	Player    string
	Points    int
}

// Progression returns every player's cumulative tournament-point series
// over the ledger, one leading zero sample plus one sample per game. Within
// one player the samples are in game order.
func Progression(ledger []tournament.Game, players []string) []ProgressionPoint {
	out := make([]ProgressionPoint, 0, len(players)*(len(ledger)+1))
	running := make(map[string]int, len(players))

	for _, name := range players {
		out = append(out, ProgressionPoint{GameIndex: 0, Player: name})
	}

	for i, game := range ledger {
		for _, result := range game.Results {
			running[result.Player] += result.TournamentPoints
		}
		for _, name := range players {
			out = append(out, ProgressionPoint{
				GameIndex: i + 1,
				Player:    name,
				Points:    running[name],
			})
		}
	}

	return out
}
