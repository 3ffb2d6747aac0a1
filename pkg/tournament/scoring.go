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

// Policy selects how the rank-to-points table is applied across games.
type Policy string

const (
	// PolicyFixed uses the configured table for every game, regardless of
	// how many players took part. Ranks beyond the table score zero.
	PolicyFixed Policy = "fixed"

	// PolicyScaled regenerates the table for each game as N, N-1, ..., 1
	// points for a game of N players.
	PolicyScaled Policy = "scaled"
)

// Scoring is the tournament's rank-to-points configuration. The table is
// fixed at setup and never changes mid-tournament.
type Scoring struct {
	Policy Policy      `yaml:"policy"`
	Table  map[int]int `yaml:"table"`
}

// DefaultTable is the rank-to-points mapping used when the setup file does
// not provide one.
func DefaultTable() map[int]int {
	return map[int]int{1: 10, 2: 7, 3: 5, 4: 3, 5: 1}
}

// PointsForRank returns the tournament points awarded for finishing at the
// given rank in a game with the given number of players. It is total: any
// rank outside the table's domain scores zero.
func (scoring Scoring) PointsForRank(rank, playersInGame int) int {
	switch scoring.Policy {
	case PolicyScaled:
		if rank < 1 || rank > playersInGame {
			return 0
		}
		return playersInGame - rank + 1

	default:
		return scoring.Table[rank]
	}
}
