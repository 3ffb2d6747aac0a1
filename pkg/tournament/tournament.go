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

	"github.com/sirupsen/logrus"
)

// Phase is the lifecycle state of a tournament.
type Phase string

const (
	PhaseSetup      Phase = "setup"
	PhaseInProgress Phase = "in-progress"
	PhaseFinished   Phase = "finished"
)

// Tournament is the full state of one tournament: its configuration, the
// roster, and the ledger of accepted games. The roster's cumulative fields
// are rebuilt from the ledger after every change; the ledger is the only
// source of truth.
//
// The type is built for a single operator entering one game at a time. One
// RecordGame call is one complete validate-append-recompute transaction.
type Tournament struct {
	Config  Config
	Players []*Player
	Ledger  []Game
	Phase   Phase
}

// New validates the setup and creates a tournament ready for its first
// game. The roster is fixed here; players cannot join or leave later.
func New(config Config) (*Tournament, error) {
	config.normalize()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tour := &Tournament{Config: config, Phase: PhaseInProgress}
	for i, name := range config.Players {
		tour.Players = append(tour.Players, &Player{ID: i + 1, Name: name})
	}

	return tour, nil
}

// Rebuild creates a tournament from a setup and an already-recorded ledger,
// as reconstructed by an import. The roster statistics are derived with a
// full recompute; any totals the import source carried are ignored.
func Rebuild(config Config, ledger []Game) (*Tournament, error) {
	tour, err := New(config)
	if err != nil {
		return nil, err
	}

	for i, game := range ledger {
		if game.Number != i+1 {
			return nil, fmt.Errorf(
				"ledger is not sequential: game %d is numbered %d", i+1, game.Number)
		}
	}

	tour.Ledger = ledger
	Recompute(tour.Players, tour.Ledger)

	if tour.Config.GamesCap > 0 && len(tour.Ledger) >= tour.Config.GamesCap {
		tour.Phase = PhaseFinished
	}

	return tour, nil
}

// NextOrder returns the turn order for the upcoming game. Game 1 uses the
// order the organizer chose at setup; every later game derives it from the
// standings.
func (tour *Tournament) NextOrder() []string {
	if len(tour.Ledger) == 0 {
		order := make([]string, len(tour.Config.InitialOrder))
		copy(order, tour.Config.InitialOrder)
		return order
	}

	return NextTurnOrder(tour.Players)
}

// RecordGame validates a proposed game and, if it is acceptable, appends it
// to the ledger and rebuilds the roster statistics. On rejection the
// returned error is a ValidationErrors and the tournament is untouched.
func (tour *Tournament) RecordGame(gameMap Map, proposed []ProposedResult) (*Game, []Advisory, error) {
	if tour.Phase == PhaseFinished {
		return nil, nil, fmt.Errorf("the tournament is finished, no more games can be recorded")
	}

	var errs ValidationErrors
	if !tour.Config.KnownMap(gameMap) {
		errs = append(errs, fmt.Errorf("unknown map %q", gameMap))
	}

	game, advisories, verrs := Validate(proposed, tour.NextOrder(), tour.Players, &tour.Config)
	if errs = append(errs, verrs...); len(errs) > 0 {
		return nil, nil, errs
	}

	game.Number = len(tour.Ledger) + 1
	game.Map = gameMap

	tour.Ledger = append(tour.Ledger, game)
	Recompute(tour.Players, tour.Ledger)

	if tour.Config.GamesCap > 0 && len(tour.Ledger) >= tour.Config.GamesCap {
		tour.Phase = PhaseFinished
		logrus.Infof("Game cap of %d reached, tournament finished", tour.Config.GamesCap)
	}

	return &tour.Ledger[len(tour.Ledger)-1], advisories, nil
}

// Finish closes the tournament. No further games are accepted.
func (tour *Tournament) Finish() {
	tour.Phase = PhaseFinished
}

// Standings returns the roster ordered for display: descending total
// tournament points, stable over registration order.
//
// If the ledger and roster have drifted apart (a recorded game naming an
// unknown player), an empty slice and the reason are returned instead of a
// half-correct table.
func (tour *Tournament) Standings() ([]*Player, error) {
	if err := tour.checkConsistency(); err != nil {
		return []*Player{}, err
	}

	ordered := make([]*Player, len(tour.Players))
	copy(ordered, tour.Players)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TotalTournamentPoints > ordered[j].TotalTournamentPoints
	})

	return ordered, nil
}

// checkConsistency verifies that every ledger entry can be credited to a
// roster player.
func (tour *Tournament) checkConsistency() error {
	roster := make(map[string]bool, len(tour.Players))
	for _, player := range tour.Players {
		roster[player.Name] = true
	}

	for _, game := range tour.Ledger {
		for _, result := range game.Results {
			if !roster[result.Player] {
				return fmt.Errorf(
					"ledger and roster are inconsistent: game %d names unknown player %q",
					game.Number, result.Player)
			}
		}
	}

	return nil
}

// PlayerNames returns the roster names in registration order.
func (tour *Tournament) PlayerNames() []string {
	names := make([]string, len(tour.Players))
	for i, player := range tour.Players {
		names[i] = player.Name
	}

	return names
}
