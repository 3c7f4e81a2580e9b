package models

import (
	"encoding/json"
	"sort"
)

// DateSet is a set of ISO calendar days (YYYY-MM-DD). It marshals as a
// sorted JSON array so report output is deterministic.
type DateSet map[string]struct{}

func NewDateSet() DateSet {
	return make(DateSet)
}

// Add inserts day into the set. Inserting an existing day is a no-op.
func (s DateSet) Add(day string) {
	s[day] = struct{}{}
}

func (s DateSet) Contains(day string) bool {
	_, ok := s[day]
	return ok
}

// Union adds every day of other into s.
func (s DateSet) Union(other DateSet) {
	for day := range other {
		s[day] = struct{}{}
	}
}

func (s DateSet) MarshalJSON() ([]byte, error) {
	days := make([]string, 0, len(s))
	for day := range s {
		days = append(days, day)
	}
	sort.Strings(days)
	return json.Marshal(days)
}

func (s *DateSet) UnmarshalJSON(data []byte) error {
	var days []string
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	set := make(DateSet, len(days))
	for _, day := range days {
		set[day] = struct{}{}
	}
	*s = set
	return nil
}

// ResourceStats accumulates usage for one resource key.
//
// Downloads counts every retained record for the key, including records
// older than the configured cutoff date. Bandwidth, TotalRequestTimeInMinutes
// and Dates accumulate only for records on or after the cutoff.
type ResourceStats struct {
	Downloads                 int64   `json:"downloads"`
	Bandwidth                 int64   `json:"bandwidth"`
	TotalRequestTimeInMinutes float64 `json:"totalRequestTimeInMinutes"`
	Dates                     DateSet `json:"dates"`
}

func NewResourceStats() *ResourceStats {
	return &ResourceStats{Dates: NewDateSet()}
}

// StatisticsTable maps resource key to its accumulated usage. It is owned by
// a single aggregation run and returned by value; nothing mutates it after
// the run completes.
type StatisticsTable map[string]*ResourceStats

func NewStatisticsTable() StatisticsTable {
	return make(StatisticsTable)
}

// Get returns the stats entry for key, creating a zeroed entry on first use.
func (t StatisticsTable) Get(key string) *ResourceStats {
	stats, ok := t[key]
	if !ok {
		stats = NewResourceStats()
		t[key] = stats
	}
	return stats
}
