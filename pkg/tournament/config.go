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
	"strings"
)

// Bounds on the roster size of a single tournament.
const (
	MinPlayers = 2
	MaxPlayers = 10
)

// DefaultDominanceThreshold is the victory-point score treated as an
// outright win when the setup file does not configure one.
const DefaultDominanceThreshold = 30

// Config is the tournament setup surface, normally read from a yaml file.
// Everything in it is fixed once the tournament is created; there are no
// mid-tournament rule changes.
type Config struct {
	// Name of the tournament, used for display only.
	Name string `yaml:"name"`

	// The fixed roster, in registration order.
	Players []string `yaml:"players"`

	// The boards and factions games may be played with.
	Maps     []Map     `yaml:"maps"`
	Factions []Faction `yaml:"factions"`

	Scoring Scoring `yaml:"scoring"`

	// Victory points at which a single player wins outright. At most one
	// player per game may reach it.
	DominanceThreshold int `yaml:"dominance-threshold"`

	// Optional cap on the number of games; the tournament finishes on its
	// own once it is reached. Zero means no cap.
	GamesCap int `yaml:"games-cap"`

	// The turn order of game 1, chosen by the organizer. Every later
	// order is derived from the standings.
	InitialOrder []string `yaml:"initial-order"`
}

// DefaultMaps are the boards of the base game.
func DefaultMaps() []Map {
	return []Map{"Autumn", "Winter", "Mountain", "Lake"}
}

// DefaultFactions are the factions of the base game and its expansions.
func DefaultFactions() []Faction {
	return []Faction{
		"Marquise de Cat", "Eyrie Dynasties", "Woodland Alliance",
		"Vagabond", "Riverfolk Company", "Lizard Cult",
		"Underground Duchy", "Corvid Conspiracy",
	}
}

// SetupError reports everything wrong with a tournament setup at once, so
// the organizer can fix the file in a single pass.
type SetupError struct {
	Problems []string
}

func (err *SetupError) Error() string {
	return fmt.Sprintf("invalid setup: %s", strings.Join(err.Problems, "; "))
}

// normalize fills the parts of the configuration the setup file may omit.
// It is the single place defaults are applied; nothing patches fields later.
func (config *Config) normalize() {
	if len(config.Maps) == 0 {
		config.Maps = DefaultMaps()
	}
	if len(config.Factions) == 0 {
		config.Factions = DefaultFactions()
	}
	if config.Scoring.Policy == "" {
		config.Scoring.Policy = PolicyFixed
	}
	if config.Scoring.Policy == PolicyFixed && len(config.Scoring.Table) == 0 {
		config.Scoring.Table = DefaultTable()
	}
	if config.DominanceThreshold == 0 {
		config.DominanceThreshold = DefaultDominanceThreshold
	}
}

// Validate checks the setup surface and reports every problem found as a
// single SetupError. It must be called after normalize.
func (config *Config) Validate() error {
	var problems []string

	if n := len(config.Players); n < MinPlayers || n > MaxPlayers {
		problems = append(problems, fmt.Sprintf(
			"player count must be between %d and %d, got %d",
			MinPlayers, MaxPlayers, len(config.Players)))
	}

	seen := make(map[string]bool, len(config.Players))
	for _, name := range config.Players {
		switch {
		case name == "":
			problems = append(problems, "player names must not be empty")
		case seen[name]:
			problems = append(problems, fmt.Sprintf("duplicate player name %q", name))
		}
		seen[name] = true
	}

	if len(config.Factions) < len(config.Players) {
		problems = append(problems, fmt.Sprintf(
			"%d factions cannot cover %d players without repeats in a game",
			len(config.Factions), len(config.Players)))
	}

	switch config.Scoring.Policy {
	case PolicyFixed, PolicyScaled:
	default:
		problems = append(problems, fmt.Sprintf(
			"unknown scoring policy %q", config.Scoring.Policy))
	}

	if config.GamesCap < 0 {
		problems = append(problems, "games cap must not be negative")
	}

	problems = append(problems, checkInitialOrder(config.InitialOrder, config.Players, seen)...)

	if len(problems) > 0 {
		return &SetupError{Problems: problems}
	}

	return nil
}

// checkInitialOrder verifies that the chosen first-game order is a
// permutation of the roster.
func checkInitialOrder(order, players []string, roster map[string]bool) []string {
	var problems []string

	if len(order) != len(players) {
		problems = append(problems, fmt.Sprintf(
			"initial turn order lists %d players, roster has %d",
			len(order), len(players)))
	}

	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if !roster[name] {
			problems = append(problems, fmt.Sprintf(
				"initial turn order names unknown player %q", name))
		}
		if seen[name] {
			problems = append(problems, fmt.Sprintf(
				"initial turn order lists %q twice", name))
		}
		seen[name] = true
	}

	return problems
}

// KnownMap reports whether the given map is part of the configuration.
func (config *Config) KnownMap(gameMap Map) bool {
	for _, known := range config.Maps {
		if known == gameMap {
			return true
		}
	}

	return false
}

// KnownFaction reports whether the given faction is part of the
// configuration.
func (config *Config) KnownFaction(faction Faction) bool {
	for _, known := range config.Factions {
		if known == faction {
			return true
		}
	}

	return false
}
