package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/phbuechner/Root-Tournament/pkg/tournament"
)

// stateFile resolves the tournament file the command operates on.
func stateFile(cmd *cobra.Command) string {
	file, _ := cmd.Flags().GetString("file")
	return file
}

func loadTournament(cmd *cobra.Command) (*tournament.Tournament, string, error) {
	file := stateFile(cmd)

	tour, err := tournament.Load(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, file, fmt.Errorf(
			"no tournament found at %s, create one with 'roottm new'", file)
	}

	return tour, file, err
}

// refuseOverwrite guards commands that create a fresh tournament from
// silently clobbering one that already exists.
func refuseOverwrite(cmd *cobra.Command, file string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(file); err == nil && !force {
		return fmt.Errorf("%s already holds a tournament, pass --force to replace it", file)
	}

	return nil
}
