// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package teamalloc assigns ordering teams to restaurants under a
// rate-based ranking with deterministic tie-breaking. Teams are served
// strictly in arrival order.
package teamalloc

// TieBreak selects how restaurants with equal rate are ordered
// relative to each other.
type TieBreak int

const (
	// OriginalOrder keeps equal-rate restaurants in their input order.
	OriginalOrder TieBreak = iota
	// PreferLarger puts the restaurant with the larger size class first,
	// falling back to input order on equal size class.
	PreferLarger
)

// Restaurant is one meal supplier. Cap is the number of teams it can
// serve in a run, CapRest the remaining number. The ranker resets
// CapRest to Cap; the scheduler consumes it.
type Restaurant struct {
	ID        string
	Rate      float64
	Cap       int64
	CapRest   int64
	SizeClass string // tie-break signal only, e.g. "large", "small"
	Assigned  []string
	Info      interface{}
}

// Team is one ordering team. Seq is the arrival sequence number,
// assigned at request time and monotonically increasing.
type Team struct {
	ID   string
	Seq  int64
	Info interface{}
}

// Unassigned is the restaurant ID recorded for a team that was
// processed but could not be placed.
const Unassigned = ""

// TeamState tracks a team through a scheduling run.
type TeamState int

const (
	StatePending TeamState = iota
	StateAssigned
	StateUnassigned
)

// Assignment is the result of a scheduling run.
type Assignment struct {
	// Teams maps a team ID to the restaurant it was placed at,
	// or Unassigned.
	Teams map[string]string
	// Placements maps a restaurant ID to the teams placed there,
	// in assignment order.
	Placements map[string][]string
}

// Allocate ranks restaurants and schedules teams in one pass. It is the
// composition of RankRestaurants and a Scheduler run, and is
// deterministic: identical inputs produce an identical Assignment.
func Allocate(restaurants []Restaurant, teams []Team, tieBreak TieBreak) (Assignment, error) {
	ranked, err := RankRestaurants(restaurants, tieBreak)
	if err != nil {
		return Assignment{}, err
	}

	s := NewScheduler(false)
	if err := s.EnqueueAll(teams); err != nil {
		return Assignment{}, err
	}
	return s.Run(ranked)
}
