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

// Package tabular maps tournament state to and from flat row tables, the
// boundary consumed by exporters and importers. The game-log table round
// trips: exporting a ledger and parsing the result reproduces it exactly.
package tabular

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

// ListSeparator joins player names in turn-order cells and factions in the
// standings table.
const ListSeparator = ", "

// GameLogHeader is the column set of the game-log table. Imports require
// every one of these columns.
var GameLogHeader = []string{
	"Game", "Map", "Player", "Faction",
	"Victory Points", "Rank", "Tournament Points", "Turn Order",
}

// GameLogRow is one player's result in one game, flattened for export. All
// rows of the same game carry the same map and turn-order cell.
type GameLogRow struct {
	GameNumber       int
	Map              string
	Player           string
	Faction          string
	VictoryPoints    int
	Rank             int
	TournamentPoints int
	TurnOrder        string
}

// GameLog flattens the ledger into one row per player per game.
func GameLog(ledger []tournament.Game) []GameLogRow {
	var rows []GameLogRow
	for _, game := range ledger {
		order := strings.Join(game.TurnOrder, ListSeparator)
		for _, result := range game.Results {
			rows = append(rows, GameLogRow{
				GameNumber:       game.Number,
				Map:              string(game.Map),
				Player:           result.Player,
				Faction:          string(result.Faction),
				VictoryPoints:    result.VictoryPoints,
				Rank:             result.Rank,
				TournamentPoints: result.TournamentPoints,
				TurnOrder:        order,
			})
		}
	}

	return rows
}

// ImportFormatError reports a game-log table that cannot be reconstructed
// into a ledger. Row 0 refers to the table as a whole or its header.
type ImportFormatError struct {
	Row    int
	Reason string
}

func (err *ImportFormatError) Error() string {
	if err.Row == 0 {
		return fmt.Sprintf("game log: %s", err.Reason)
	}

	return fmt.Sprintf("game log row %d: %s", err.Row, err.Reason)
}

// ParseGameLog reconstructs a ledger and the player roster from a game-log
// table. Rows are grouped by game number ascending; the roster is the
// distinct player names in first-appearance order. The per-result rank and
// tournament-point cells are carried into the ledger verbatim so the round
// trip is exact — callers must still rebuild all cumulative statistics with
// a recompute rather than trusting imported totals.
func ParseGameLog(rows []GameLogRow) ([]tournament.Game, []string, error) {
	if len(rows) == 0 {
		return nil, nil, &ImportFormatError{Reason: "table has no rows"}
	}

	var roster []string
	seen := make(map[string]bool)

	games := make(map[int]*tournament.Game)
	rowOf := make(map[int]int) // game number -> first row, for error reports
	var numbers []int

	for i, row := range rows {
		rowNum := i + 1

		if row.GameNumber < 1 {
			return nil, nil, &ImportFormatError{Row: rowNum, Reason: fmt.Sprintf("invalid game number %d", row.GameNumber)}
		}
		if row.Player == "" {
			return nil, nil, &ImportFormatError{Row: rowNum, Reason: "empty player name"}
		}

		if !seen[row.Player] {
			seen[row.Player] = true
			roster = append(roster, row.Player)
		}

		game, ok := games[row.GameNumber]
		if !ok {
			game = &tournament.Game{
				Number:    row.GameNumber,
				Map:       tournament.Map(row.Map),
				TurnOrder: splitList(row.TurnOrder),
			}
			games[row.GameNumber] = game
			rowOf[row.GameNumber] = rowNum
			numbers = append(numbers, row.GameNumber)
			continue // results are collected in the second pass
		}

		if string(game.Map) != row.Map {
			return nil, nil, &ImportFormatError{Row: rowNum, Reason: fmt.Sprintf(
				"game %d has conflicting maps %q and %q", row.GameNumber, game.Map, row.Map)}
		}
		if strings.Join(game.TurnOrder, ListSeparator) != row.TurnOrder {
			return nil, nil, &ImportFormatError{Row: rowNum, Reason: fmt.Sprintf(
				"game %d has conflicting turn orders", row.GameNumber)}
		}
	}

	for i, row := range rows {
		game := games[row.GameNumber]
		if _, dup := game.ResultOf(row.Player); dup {
			return nil, nil, &ImportFormatError{Row: i + 1, Reason: fmt.Sprintf(
				"game %d has two rows for player %q", row.GameNumber, row.Player)}
		}

		game.Results = append(game.Results, tournament.GameResult{
			Player:           row.Player,
			Faction:          tournament.Faction(row.Faction),
			VictoryPoints:    row.VictoryPoints,
			Rank:             row.Rank,
			TournamentPoints: row.TournamentPoints,
		})
	}

	sort.Ints(numbers)
	ledger := make([]tournament.Game, 0, len(numbers))
	for i, number := range numbers {
		if number != i+1 {
			return nil, nil, &ImportFormatError{Row: rowOf[number], Reason: fmt.Sprintf(
				"game numbers are not sequential: expected %d, found %d", i+1, number)}
		}

		game := games[number]
		if len(game.Results) != len(game.TurnOrder) {
			return nil, nil, &ImportFormatError{Row: rowOf[number], Reason: fmt.Sprintf(
				"game %d has %d results for %d players in its turn order",
				number, len(game.Results), len(game.TurnOrder))}
		}

		ledger = append(ledger, *game)
	}

	return ledger, roster, nil
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}

	return strings.Split(joined, ListSeparator)
}
