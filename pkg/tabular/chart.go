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
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/phbuechner/Root-Tournament/pkg/tournament/stats"
)

// ProgressionChart renders the point-progression series as a PNG line
// chart: one line per player, cumulative tournament points over the game
// number, starting at zero before game one.
func ProgressionChart(points []stats.ProgressionPoint, players []string) ([]byte, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("progression chart: no players")
	}

	byPlayer := make(map[string]*chart.ContinuousSeries, len(players))
	series := make([]chart.Series, 0, len(players))
	for _, name := range players {
		s := &chart.ContinuousSeries{Name: name}
		byPlayer[name] = s
		series = append(series, s)
	}

	for _, point := range points {
		s, ok := byPlayer[point.Player]
		if !ok {
			continue
		}
		s.XValues = append(s.XValues, float64(point.GameIndex))
		s.YValues = append(s.YValues, float64(point.Points))
	}

	graph := chart.Chart{
		Title:  "Tournament Points",
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name:           "After Game",
			ValueFormatter: chart.IntValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Cumulative Points",
			ValueFormatter: chart.IntValueFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buffer bytes.Buffer
	if err := graph.Render(chart.PNG, &buffer); err != nil {
		return nil, fmt.Errorf("progression chart: %w", err)
	}

	return buffer.Bytes(), nil
}
