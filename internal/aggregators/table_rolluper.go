package aggregators

import (
	"access-stats/internal/models"
)

//go:generate mockgen -source=table_rolluper.go -destination=./mocks/table_rolluper_mock.go -package=mocks
type StatisticsTableRolluper interface {
	// Rollup mutates agg by accumulating values from partial. Scalar counters
	// are summed and date sets unioned per key, so merging partial tables in
	// any order is equivalent to aggregating the concatenated inputs.
	Rollup(agg models.StatisticsTable, partial models.StatisticsTable)
}

type tableRolluper struct{}

func NewTableRolluper() StatisticsTableRolluper {
	return &tableRolluper{}
}

func (r *tableRolluper) Rollup(agg models.StatisticsTable, partial models.StatisticsTable) {
	for key, partialStats := range partial {
		stats := agg.Get(key)
		stats.Downloads += partialStats.Downloads
		stats.Bandwidth += partialStats.Bandwidth
		stats.TotalRequestTimeInMinutes += partialStats.TotalRequestTimeInMinutes
		stats.Dates.Union(partialStats.Dates)
	}
}
