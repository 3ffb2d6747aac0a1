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

import (
	"fmt"
	"sort"
	"strings"
)

// ProposedResult is one player's reported outcome, before validation.
type ProposedResult struct {
	Player        string
	Faction       Faction
	VictoryPoints int
}

// ValidationErrors aggregates every rule violation found in a proposed
// game. A proposed game is only rejected as a whole; the list names every
// offending player and faction, not just the first one found.
type ValidationErrors []error

func (errs ValidationErrors) Error() string {
	reasons := make([]string, len(errs))
	for i, err := range errs {
		reasons[i] = err.Error()
	}

	return strings.Join(reasons, "; ")
}

// Advisory is a non-blocking warning attached to an accepted game, shown to
// the organizer once and then discarded.
type Advisory string

// Validate checks a full set of proposed results against the expected turn
// order and the tournament rules. All rules are checked; every violation is
// collected.
//
// On success it returns the game with ranks and tournament points assigned:
// results are ordered by descending victory points, exact ties going to the
// player earlier in the turn order. The game's number and map are left for
// the caller to fill in. On rejection the returned ValidationErrors is
// non-empty and the game must be discarded.
func Validate(proposed []ProposedResult, turnOrder []string, roster []*Player, config *Config) (Game, []Advisory, ValidationErrors) {
	var errs ValidationErrors

	errs = append(errs, checkCompleteness(proposed, turnOrder)...)
	errs = append(errs, checkDominance(proposed, config.DominanceThreshold)...)
	errs = append(errs, checkFactions(proposed, config)...)

	if len(errs) > 0 {
		return Game{}, nil, errs
	}

	var advisories []Advisory
	for _, result := range proposed {
		for _, player := range roster {
			if player.Name == result.Player && player.HasPlayed(result.Faction) {
				advisories = append(advisories, Advisory(fmt.Sprintf(
					"%s has already played %s in an earlier game",
					result.Player, result.Faction)))
			}
		}
	}

	return rank(proposed, turnOrder, config.Scoring), advisories, nil
}

// checkCompleteness verifies that the proposed results cover the expected
// turn order exactly: no missing players, no strangers, no doubles.
func checkCompleteness(proposed []ProposedResult, turnOrder []string) []error {
	var errs []error

	expected := make(map[string]bool, len(turnOrder))
	for _, name := range turnOrder {
		expected[name] = true
	}

	counts := make(map[string]int, len(proposed))
	for _, result := range proposed {
		counts[result.Player]++
	}

	var missing, extra, doubled []string
	for _, name := range turnOrder {
		if counts[name] == 0 {
			missing = append(missing, name)
		}
	}
	for _, result := range proposed {
		switch {
		case !expected[result.Player]:
			if counts[result.Player] > 0 {
				extra = append(extra, result.Player)
				counts[result.Player] = 0 // report each stranger once
			}
		case counts[result.Player] > 1:
			doubled = append(doubled, result.Player)
			counts[result.Player] = 0
		}
	}

	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf(
			"missing results for: %s", strings.Join(missing, ", ")))
	}
	if len(extra) > 0 {
		errs = append(errs, fmt.Errorf(
			"results for players outside the turn order: %s", strings.Join(extra, ", ")))
	}
	if len(doubled) > 0 {
		errs = append(errs, fmt.Errorf(
			"multiple results for: %s", strings.Join(doubled, ", ")))
	}

	for _, result := range proposed {
		if result.VictoryPoints < 0 {
			errs = append(errs, fmt.Errorf(
				"%s reported negative victory points", result.Player))
		}
	}

	return errs
}

// checkDominance enforces that at most one player reached the dominance
// threshold. Two outright wins in one game cannot be ranked.
func checkDominance(proposed []ProposedResult, threshold int) []error {
	var dominant []string
	for _, result := range proposed {
		if result.VictoryPoints >= threshold {
			dominant = append(dominant, result.Player)
		}
	}

	if len(dominant) <= 1 {
		return nil
	}

	return []error{fmt.Errorf(
		"%d players reached the dominance threshold of %d victory points: %s",
		len(dominant), threshold, strings.Join(dominant, ", "))}
}

// checkFactions enforces faction uniqueness within the game and that every
// faction is part of the configuration.
func checkFactions(proposed []ProposedResult, config *Config) []error {
	var errs []error

	counts := make(map[Faction]int, len(proposed))
	var order []Faction
	for _, result := range proposed {
		if !config.KnownFaction(result.Faction) {
			errs = append(errs, fmt.Errorf("unknown faction %q", result.Faction))
			continue
		}
		if counts[result.Faction] == 0 {
			order = append(order, result.Faction)
		}
		counts[result.Faction]++
	}

	var duplicated []string
	for _, faction := range order {
		if counts[faction] > 1 {
			duplicated = append(duplicated, string(faction))
		}
	}
	if len(duplicated) > 0 {
		errs = append(errs, fmt.Errorf(
			"factions chosen more than once: %s", strings.Join(duplicated, ", ")))
	}

	return errs
}

// rank orders validated results by descending victory points, assigns ranks
// and tournament points, and builds the ledger entry. The sort is stable
// over the turn order, so an exact victory-point tie goes to the player who
// moved earlier.
func rank(proposed []ProposedResult, turnOrder []string, scoring Scoring) Game {
	position := make(map[string]int, len(turnOrder))
	for i, name := range turnOrder {
		position[name] = i
	}

	results := make([]GameResult, len(proposed))
	for i, result := range proposed {
		results[i] = GameResult{
			Player:        result.Player,
			Faction:       result.Faction,
			VictoryPoints: result.VictoryPoints,
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return position[results[i].Player] < position[results[j].Player]
	})
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].VictoryPoints > results[j].VictoryPoints
	})

	for i := range results {
		results[i].Rank = i + 1
		results[i].TournamentPoints = scoring.PointsForRank(i+1, len(results))
	}

	order := make([]string, len(turnOrder))
	copy(order, turnOrder)

	return Game{TurnOrder: order, Results: results}
}
