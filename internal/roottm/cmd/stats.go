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

	"github.com/spf13/cobra"

	"github.com/phbuechner/Root-Tournament/pkg/tabular"
	"github.com/phbuechner/Root-Tournament/pkg/tournament/stats"
)

// roottm stats
func Stats() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show faction and map statistics",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			tour, _, err := loadTournament(cmd)
			if err != nil {
				return err
			}

			header := fmt.Sprintf(" %-18s  %6s  %4s  %6s  %7s ",
				"Faction", "Played", "Wins", "Avg VP", "Avg TP")
			openTable(header)
			for _, row := range tabular.FactionStats(stats.Factions(tour.Ledger, tour.Config.Factions)) {
				fmt.Printf("║ %-18s  %6d  %4d  %6s  %7s ║\n",
					clip(row.Faction, 18), row.Played, row.Wins, row.AvgVP, row.AvgTP)
			}
			closeTable(header)

			header = fmt.Sprintf(" %-18s  %5s  %6s ", "Map", "Games", "Avg VP")
			openTable(header)
			for _, row := range tabular.MapStats(stats.Maps(tour.Ledger, tour.Config.Maps)) {
				fmt.Printf("║ %-18s  %5d  %6s ║\n",
					clip(row.Map, 18), row.Games, row.AvgVP)
			}
			closeTable(header)

			return nil
		},
	}
}

func openTable(header string) {
	border := strings.Repeat("═", len([]rune(header)))
	fmt.Printf("╔%s╗\n║%s║\n╠%s╣\n", border, header, border)
}

func closeTable(header string) {
	fmt.Printf("╚%s╝\n", strings.Repeat("═", len([]rune(header))))
}
