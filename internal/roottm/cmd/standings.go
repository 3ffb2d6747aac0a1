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

package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phbuechner/Root-Tournament/pkg/tabular"
	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

// roottm standings
func Standings() *cobra.Command {
	standingsCmd := &cobra.Command{
		Use:   "standings",
		Short: "Show the current standings and the next turn order",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			tour, _, err := loadTournament(cmd)
			if err != nil {
				return err
			}

			standings, err := tour.Standings()
			if err != nil {
				return err
			}

			printStandings(tabular.Standings(standings))

			if tour.Phase == tournament.PhaseFinished {
				fmt.Println("The tournament is finished.")
			} else {
				fmt.Printf("Turn order for game %d: %s\n",
					len(tour.Ledger)+1, strings.Join(tour.NextOrder(), " → "))
			}

			if log, _ := cmd.Flags().GetBool("log"); log {
				printGameLog(tour)
			}
			return nil
		},
	}

	standingsCmd.Flags().Bool("log", false, "Also show the game log, most recent game first")
	return standingsCmd
}

func printStandings(rows []tabular.StandingsRow) {
	leader := color.New(color.FgGreen).SprintfFunc()

	header := fmt.Sprintf(" %3s  %-12s  %4s  %4s  %4s  %4s  %5s  %-24s ",
		"Pos", "Name", "TP", "VP", "Wins", "Last", "Avg", "Factions")
	openTable(header)
	for _, row := range rows {
		line := fmt.Sprintf(
			" %2d.  %-12s  %4d  %4d  %4d  %4d  %5s  %-24s ",
			row.Position, clip(row.Name, 12),
			row.TournamentPoints, row.VictoryPoints,
			row.Wins, row.LastVictoryPoints,
			row.AvgPlacement, clip(row.Factions, 24))
		if row.Position == 1 && row.TournamentPoints > 0 {
			line = leader("%s", line)
		}
		fmt.Printf("║%s║\n", line)
	}
	closeTable(header)
}

func printGameLog(tour *tournament.Tournament) {
	for i := len(tour.Ledger) - 1; i >= 0; i-- {
		game := tour.Ledger[i]
		fmt.Printf("\nGame %d on %s (order: %s)\n",
			game.Number, game.Map, strings.Join(game.TurnOrder, " → "))
		for _, result := range game.Results {
			fmt.Printf("  %d. %-12s  %-18s  %3d VP  %3d TP\n",
				result.Rank, clip(result.Player, 12),
				clip(string(result.Faction), 18),
				result.VictoryPoints, result.TournamentPoints)
		}
	}
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-1] + "…"
}
