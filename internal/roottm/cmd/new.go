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
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

// roottm new
func New() *cobra.Command {
	newCmd := &cobra.Command{
		Use:   "new setup-file",
		Short: "Create a tournament from a setup file",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`new creates a tournament from a yaml setup file and saves it
			to the state file. The setup fixes the roster, the maps and
			factions, the points awarded per rank, the dominance
			threshold and the turn order of the first game; none of
			these change once the tournament has started.

			A minimal setup file looks like:

			    players: [Anna, Ben, Cleo, Dana, Emil]
			    initial-order: [Ben, Anna, Emil, Cleo, Dana]

			Maps, factions and the scoring table default to the base
			game values when omitted.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var config tournament.Config
			if err := yaml.Unmarshal(data, &config); err != nil {
				return err
			}

			tour, err := tournament.New(config)
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

			logrus.Infof("Created tournament with %d players at %s", len(tour.Players), file)
			logrus.Infof("Turn order for game 1: %s", strings.Join(tour.NextOrder(), " → "))
			return nil
		},
	}

	newCmd.Flags().Bool("force", false, "Replace an existing tournament")
	return newCmd
}
