package model

import (
	"sort"
	"strconv"
	"strings"
)

// Subtopic is one unit of a weekly plan.
type Subtopic struct {
	Subtopic    string `json:"subtopic"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// WeekPlan is the plan for one week of a roadmap.
type WeekPlan struct {
	Topic     string     `json:"topic"`
	Subtopics []Subtopic `json:"subtopics"`
}

// Roadmap maps lower-case week labels ("week 1", "week 2", ...) to plans.
// It is produced wholesale by a single generation call and never merged.
type Roadmap map[string]WeekPlan

// Weeks returns the week labels in chronological order. Labels without a
// trailing number sort after the numbered ones, alphabetically.
func (r Roadmap) Weeks() []string {
	labels := make([]string, 0, len(r))
	for label := range r {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ni, oki := weekNumber(labels[i])
		nj, okj := weekNumber(labels[j])
		if oki && okj {
			return ni < nj
		}
		if oki != okj {
			return oki
		}
		return labels[i] < labels[j]
	})
	return labels
}

func weekNumber(label string) (int, bool) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}
