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
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
	"github.com/phbuechner/Root-Tournament/pkg/tournament/stats"
)

// Sheet names of the exported workbook.
const (
	SheetGameLog      = "Game Log"
	SheetStandings    = "Standings"
	SheetFactionStats = "Faction Stats"
	SheetMapStats     = "Map Stats"
)

// WriteWorkbook renders the tournament's tables into a single workbook:
// the game log plus the derived standings, faction-stats and map-stats
// sheets. The caller owns the returned file and must Close or SaveAs it.
func WriteWorkbook(tour *tournament.Tournament) (*excelize.File, error) {
	standings, err := tour.Standings()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetGameLog); err != nil {
		return nil, err
	}

	if err := writeSheet(f, SheetGameLog, GameLogHeader, gameLogCells(GameLog(tour.Ledger))); err != nil {
		return nil, err
	}

	for _, sheet := range []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{SheetStandings, StandingsHeader, standingsCells(Standings(standings))},
		{SheetFactionStats, FactionStatsHeader, factionStatsCells(
			FactionStats(stats.Factions(tour.Ledger, tour.Config.Factions)))},
		{SheetMapStats, MapStatsHeader, mapStatsCells(
			MapStats(stats.Maps(tour.Ledger, tour.Config.Maps)))},
	} {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, err
		}
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	cells := make([]any, len(header))
	for i, name := range header {
		cells[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &cells); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func gameLogCells(rows []GameLogRow) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = []any{
			row.GameNumber, row.Map, row.Player, row.Faction,
			row.VictoryPoints, row.Rank, row.TournamentPoints, row.TurnOrder,
		}
	}
	return out
}

func standingsCells(rows []StandingsRow) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = []any{
			row.Position, row.Name, row.TournamentPoints, row.VictoryPoints,
			row.Wins, row.LastVictoryPoints, row.AvgPlacement, row.Factions,
		}
	}
	return out
}

func factionStatsCells(rows []FactionStatsRow) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = []any{row.Faction, row.Played, row.Wins, row.AvgVP, row.AvgTP}
	}
	return out
}

func mapStatsCells(rows []MapStatsRow) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = []any{row.Map, row.Games, row.AvgVP}
	}
	return out
}

// ReadGameLog parses the game-log sheet of a workbook produced by
// WriteWorkbook (or any sheet with the same columns) back into a ledger and
// a roster. Format problems are reported as ImportFormatError without any
// partial result.
func ReadGameLog(r io.Reader) ([]tournament.Game, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, &ImportFormatError{Reason: fmt.Sprintf("cannot open workbook: %v", err)}
	}
	defer f.Close()

	sheet := SheetGameLog
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, &ImportFormatError{Reason: "workbook has no sheets"}
		}
		sheet = sheets[0]
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, &ImportFormatError{Reason: fmt.Sprintf("cannot read sheet %q: %v", sheet, err)}
	}
	if len(cells) == 0 {
		return nil, nil, &ImportFormatError{Reason: fmt.Sprintf("sheet %q is empty", sheet)}
	}

	columns, err := headerColumns(cells[0])
	if err != nil {
		return nil, nil, err
	}

	rows := make([]GameLogRow, 0, len(cells)-1)
	for i, line := range cells[1:] {
		row, err := parseRow(line, columns, i+1)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}

	return ParseGameLog(rows)
}

// headerColumns maps every required column name to its index, reporting
// all missing columns at once.
func headerColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	var missing []string
	for _, name := range GameLogHeader {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &ImportFormatError{Reason: fmt.Sprintf(
			"missing required columns: %v", missing)}
	}

	return columns, nil
}

func parseRow(line []string, columns map[string]int, rowNum int) (GameLogRow, error) {
	cell := func(name string) string {
		// GetRows trims trailing empty cells, so a short line is not
		// automatically malformed.
		if idx := columns[name]; idx < len(line) {
			return line[idx]
		}
		return ""
	}

	number := func(name string) (int, error) {
		value, err := strconv.Atoi(cell(name))
		if err != nil {
			return 0, &ImportFormatError{Row: rowNum, Reason: fmt.Sprintf(
				"column %q: %q is not an integer", name, cell(name))}
		}
		return value, nil
	}

	var row GameLogRow
	var err error
	if row.GameNumber, err = number("Game"); err != nil {
		return row, err
	}
	if row.VictoryPoints, err = number("Victory Points"); err != nil {
		return row, err
	}
	if row.Rank, err = number("Rank"); err != nil {
		return row, err
	}
	if row.TournamentPoints, err = number("Tournament Points"); err != nil {
		return row, err
	}

	row.Map = cell("Map")
	row.Player = cell("Player")
	row.Faction = cell("Faction")
	row.TurnOrder = cell("Turn Order")

	return row, nil
}
