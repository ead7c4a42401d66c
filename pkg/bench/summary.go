package bench

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AgentSummary aggregates one agent's final scores over the whole run
type AgentSummary struct {
	Name  string
	Games int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

type Summary struct {
	Games  int
	Agents []AgentSummary
}

func (s Summary) String() string {
	builder := strings.Builder{}
	fmt.Fprintf(&builder, "games per agent: %d\n", s.Games)
	for _, a := range s.Agents {
		fmt.Fprintf(&builder, "%-12s mean=%.2f std=%.2f min=%.0f max=%.0f\n",
			a.Name, a.Mean, a.Std, a.Min, a.Max)
	}
	return builder.String()
}

func (sa *ScoreArena[T, E, S]) summarize() Summary {
	summary := Summary{
		Games:  sa.NGames,
		Agents: make([]AgentSummary, len(sa.Agents)),
	}

	for i, agent := range sa.Agents {
		scores := sa.scores[i]
		row := &summary.Agents[i]
		row.Name = agent.Name()
		row.Games = len(scores)
		row.Mean = stat.Mean(scores, nil)
		row.Min = floats.Min(scores)
		row.Max = floats.Max(scores)
		if len(scores) > 1 {
			row.Std = stat.StdDev(scores, nil)
		}
	}

	return summary
}
