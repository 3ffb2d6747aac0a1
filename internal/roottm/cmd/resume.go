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
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phbuechner/Root-Tournament/pkg/tabular"
	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

// roottm resume
func Resume() *cobra.Command {
	resumeCmd := &cobra.Command{
		Use:   "resume workbook-file",
		Short: "Rebuild a tournament from an exported workbook",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`resume reconstructs a tournament from the game-log sheet of
			a workbook written by 'roottm export': the roster from the
			player names in order of first appearance, the ledger from
			the rows grouped by game number, and all player statistics
			by recomputing over that ledger. Total columns in the
			workbook are never trusted.

			The maps, factions, scoring table and other settings are
			not part of the workbook; pass the original setup file
			with --setup to restore them, otherwise the base game
			defaults are assumed.

			If the workbook cannot be parsed, nothing is changed.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			workbook, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer workbook.Close()

			ledger, roster, err := tabular.ReadGameLog(workbook)
			if err != nil {
				return err
			}

			var config tournament.Config
			if setup, _ := cmd.Flags().GetString("setup"); setup != "" {
				data, err := os.ReadFile(setup)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal(data, &config); err != nil {
					return err
				}
			}

			config.Players = roster
			if len(ledger) > 0 {
				config.InitialOrder = ledger[0].TurnOrder
			}

			tour, err := tournament.Rebuild(config, ledger)
			if err != nil {
				return err
			}

			file := stateFile(cmd)
			if err := refuseOverwrite(cmd, file); err != nil {
				return err
			}
			if err := tour.Save(file); err != nil {
				return err
			}

			logrus.Infof("Rebuilt tournament with %d players and %d games at %s",
				len(tour.Players), len(tour.Ledger), file)
			return nil
		},
	}

	resumeCmd.Flags().String("setup", "", "Setup file to restore configuration from")
	resumeCmd.Flags().Bool("force", false, "Replace an existing tournament")
	return resumeCmd
}
