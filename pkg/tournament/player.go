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

package tournament

// Player is one roster entry together with its cumulative statistics. The
// cumulative fields are a cache over the ledger: Recompute is their only
// mutation path, so they can never drift from the recorded games.
type Player struct {
	ID   int
	Name string

	TotalTournamentPoints int
	TotalVictoryPoints    int
	Wins                  int
	LastVictoryPoints     int
	RankSum               int
	GamesPlayed           int
	PlayedFactions        []Faction
}

// HasPlayed reports whether the player has already used the given faction
// in an earlier game.
func (player *Player) HasPlayed(faction Faction) bool {
	for _, played := range player.PlayedFactions {
		if played == faction {
			return true
		}
	}

	return false
}

// AveragePlacement returns the player's mean finishing rank. The second
// return value is false before the player's first game.
func (player *Player) AveragePlacement() (float64, bool) {
	if player.GamesPlayed == 0 {
		return 0, false
	}

	return float64(player.RankSum) / float64(player.GamesPlayed), true
}

func (player *Player) reset() {
	player.TotalTournamentPoints = 0
	player.TotalVictoryPoints = 0
	player.Wins = 0
	player.LastVictoryPoints = 0
	player.RankSum = 0
	player.GamesPlayed = 0
	player.PlayedFactions = nil
}

func (player *Player) credit(result GameResult) {
	player.TotalTournamentPoints += result.TournamentPoints
	player.TotalVictoryPoints += result.VictoryPoints
	player.LastVictoryPoints = result.VictoryPoints
	player.RankSum += result.Rank
	player.GamesPlayed++
	if result.Rank == 1 {
		player.Wins++
	}
	if !player.HasPlayed(result.Faction) {
		player.PlayedFactions = append(player.PlayedFactions, result.Faction)
	}
}

// Recompute resets every player's cumulative fields and folds the ledger
// over them in game order. Running it any number of times over the same
// ledger produces the same roster state.
func Recompute(players []*Player, ledger []Game) {
	index := make(map[string]*Player, len(players))
	for _, player := range players {
		player.reset()
		index[player.Name] = player
	}

	for _, game := range ledger {
		for _, result := range game.Results {
			if player, ok := index[result.Player]; ok {
				player.credit(result)
			}
		}
	}
}
