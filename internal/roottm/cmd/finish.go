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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

// roottm finish
func Finish() *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Close the tournament; no further games are accepted",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			tour, file, err := loadTournament(cmd)
			if err != nil {
				return err
			}

			if tour.Phase == tournament.PhaseFinished {
				return fmt.Errorf("the tournament is already finished")
			}

			tour.Finish()
			if err := tour.Save(file); err != nil {
				return err
			}

			logrus.Infof("Tournament finished after %d games", len(tour.Ledger))
			return nil
		},
	}
}
