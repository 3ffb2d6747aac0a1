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

package tournament

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/phbuechner/Root-Tournament/pkg/common"
)

// StateVersion is the schema version written to saved tournament files.
// Load migrates older versions once, at load time; files from a newer
// version are rejected.
const StateVersion = 2

// state is the on-disk shape of a saved tournament. Only the ledger and the
// configuration are persisted: the roster statistics are a cache and are
// rebuilt on load.
type state struct {
	Version int    `yaml:"version"`
	Config  Config `yaml:"config"`
	Phase   Phase  `yaml:"phase"`
	Ledger  []Game `yaml:"ledger"`
}

// Save writes the tournament to the given file, creating the parent
// directory if needed.
func (tour *Tournament) Save(file string) error {
	data, err := yaml.Marshal(state{
		Version: StateVersion,
		Config:  tour.Config,
		Phase:   tour.Phase,
		Ledger:  tour.Ledger,
	})
	if err != nil {
		return err
	}

	common.TryMkdir(filepath.Dir(file))
	return os.WriteFile(file, data, common.FilePermissions)
}

// Load reads a saved tournament and rebuilds the roster statistics from its
// ledger with a full recompute.
func Load(file string) (*Tournament, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var saved state
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("%s is not a tournament file: %w", file, err)
	}

	if err := migrate(&saved); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	tour, err := Rebuild(saved.Config, saved.Ledger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	if saved.Phase == PhaseFinished {
		tour.Phase = PhaseFinished
	}

	return tour, nil
}

// migrate upgrades an older state file to the current schema. It runs once
// per load; nothing else in the package tolerates missing fields.
func migrate(saved *state) error {
	switch saved.Version {
	case StateVersion:
		return nil

	case 1:
		// Version 1 predates scoring policies and explicit phases.
		if saved.Config.Scoring.Policy == "" {
			saved.Config.Scoring.Policy = PolicyFixed
		}
		if saved.Phase == "" {
			saved.Phase = PhaseInProgress
		}
		saved.Version = StateVersion
		return nil

	default:
		return fmt.Errorf("unsupported state file version %d", saved.Version)
	}
}
