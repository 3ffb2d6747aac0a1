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

import "sort"

// NextTurnOrder computes the player ordering for the upcoming game from the
// current standings: trailing players (lowest total tournament points) go
// first. Ties are broken towards the player with the lower victory-point
// score in their most recent game, so a strong last game is rewarded with a
// later, less favourable slot. The sort is stable, leaving registration
// order as the final fallback.
//
// The very first game is not covered by this rule; its order is the one the
// organizer picked at setup.
func NextTurnOrder(players []*Player) []string {
	ordered := make([]*Player, len(players))
	copy(ordered, players)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TotalTournamentPoints != ordered[j].TotalTournamentPoints {
			return ordered[i].TotalTournamentPoints < ordered[j].TotalTournamentPoints
		}
		return ordered[i].LastVictoryPoints < ordered[j].LastVictoryPoints
	})

	names := make([]string, len(ordered))
	for i, player := range ordered {
		names[i] = player.Name
	}

	return names
}
