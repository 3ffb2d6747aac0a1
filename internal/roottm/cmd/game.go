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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

// roottm game
func Game() *cobra.Command {
	return &cobra.Command{
		Use:   "game map player=faction:vp ...",
		Short: "Record the result of a finished game",
		Args:  cobra.MinimumNArgs(2),
		Long: heredoc.Doc(`game validates one finished game against the tournament
			rules and appends it to the ledger. One result is expected
			for every player in the current turn order, written as
			player=faction:vp, for example:

			    roottm game Autumn "Anna=Marquise de Cat:23" \
			        "Ben=Vagabond:30" "Cleo=Eyrie Dynasties:17"

			If any rule is violated the game is rejected as a whole,
			every violation is reported, and the ledger stays as it
			was.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			proposed := make([]tournament.ProposedResult, 0, len(args)-1)
			for _, arg := range args[1:] {
				result, err := parseResult(arg)
				if err != nil {
					return err
				}
				proposed = append(proposed, result)
			}

			tour, file, err := loadTournament(cmd)
			if err != nil {
				return err
			}

			game, advisories, err := tour.RecordGame(tournament.Map(args[0]), proposed)

			var rejections tournament.ValidationErrors
			if errors.As(err, &rejections) {
				for _, reason := range rejections {
					logrus.Error(reason)
				}
				return fmt.Errorf("game rejected, nothing was recorded")
			}
			if err != nil {
				return err
			}

			for _, advisory := range advisories {
				logrus.Warn(advisory)
			}

			if err := tour.Save(file); err != nil {
				return err
			}

			logrus.Infof("Recorded game %d on %s, won by %s", game.Number, game.Map, game.Winner())
			if tour.Phase != tournament.PhaseFinished {
				logrus.Infof("Turn order for game %d: %s",
					game.Number+1, strings.Join(tour.NextOrder(), " → "))
			}
			return nil
		},
	}
}

// parseResult parses a player=faction:vp argument. Faction names may
// contain anything but '=', so the victory points are split off at the last
// colon.
func parseResult(arg string) (tournament.ProposedResult, error) {
	var result tournament.ProposedResult

	name, rest, found := strings.Cut(arg, "=")
	if !found || name == "" {
		return result, fmt.Errorf("%q is not of the form player=faction:vp", arg)
	}

	colon := strings.LastIndex(rest, ":")
	if colon < 0 {
		return result, fmt.Errorf("%q is not of the form player=faction:vp", arg)
	}

	vp, err := strconv.Atoi(rest[colon+1:])
	if err != nil {
		return result, fmt.Errorf("%q: victory points %q is not an integer", arg, rest[colon+1:])
	}

	result.Player = name
	result.Faction = tournament.Faction(rest[:colon])
	result.VictoryPoints = vp
	return result, nil
}
