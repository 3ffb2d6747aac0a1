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

// Faction is one of the playable factions configured for the tournament.
type Faction string

// Map is one of the boards configured for the tournament.
type Map string

// GameResult is one player's outcome in a single game. Rank and
// TournamentPoints are assigned by the validator when the game is accepted.
type GameResult struct {
	Player           string  `yaml:"player"`
	Faction          Faction `yaml:"faction"`
	VictoryPoints    int     `yaml:"victory-points"`
	Rank             int     `yaml:"rank"`
	TournamentPoints int     `yaml:"tournament-points"`
}

// Game is one accepted entry of the ledger. Games are never mutated after
// acceptance; corrections go through the ledger and a full recompute.
type Game struct {
	Number    int          `yaml:"number"`
	Map       Map          `yaml:"map"`
	TurnOrder []string     `yaml:"turn-order"`
	Results   []GameResult `yaml:"results"`
}

// ResultOf returns the result the given player scored in this game.
func (game *Game) ResultOf(name string) (GameResult, bool) {
	for _, result := range game.Results {
		if result.Player == name {
			return result, true
		}
	}

	return GameResult{}, false
}

// Winner returns the name of the player who finished first.
func (game *Game) Winner() string {
	for _, result := range game.Results {
		if result.Rank == 1 {
			return result.Player
		}
	}

	return ""
}
