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
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phbuechner/Root-Tournament/pkg/common"
	"github.com/phbuechner/Root-Tournament/pkg/tabular"
	"github.com/phbuechner/Root-Tournament/pkg/tournament/stats"
)

// roottm export
func Export() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export [workbook-file]",
		Short: "Export the tournament to a spreadsheet workbook",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`export writes the full tournament into one workbook with a
			sheet each for the game log, the standings, the faction
			statistics and the map statistics. The game-log sheet is
			the authoritative one: 'roottm resume' rebuilds the whole
			tournament from it.

			With --chart, a PNG line chart of every player's running
			tournament-point total is written next to the workbook.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			tour, _, err := loadTournament(cmd)
			if err != nil {
				return err
			}
			if len(tour.Ledger) == 0 {
				return fmt.Errorf("no games have been played yet, nothing to export")
			}

			target := "tournament.xlsx"
			if len(args) == 1 {
				target = args[0]
			}

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Start()
			defer s.Stop()

			workbook, err := tabular.WriteWorkbook(tour)
			if err != nil {
				return err
			}
			defer workbook.Close()

			if err := workbook.SaveAs(target); err != nil {
				return err
			}

			if chartFile, _ := cmd.Flags().GetString("chart"); chartFile != "" {
				png, err := tabular.ProgressionChart(
					stats.Progression(tour.Ledger, tour.PlayerNames()), tour.PlayerNames())
				if err != nil {
					return err
				}
				if err := os.WriteFile(chartFile, png, common.FilePermissions); err != nil {
					return err
				}
			}

			s.Stop()
			logrus.Infof("Exported %d games to %s", len(tour.Ledger), target)
			return nil
		},
	}

	exportCmd.Flags().String("chart", "", "Also write a point-progression chart PNG to the given file")
	return exportCmd
}
