// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teamalloc

import (
	"fmt"
	"sort"

	"github.com/golang-collections/collections/queue"
)

// Scheduler consumes a ranked restaurant sequence and a FIFO queue of
// team arrivals, producing an Assignment. The FIFO models request
// arrival order: teams are dequeued strictly lowest sequence number
// first, each is offered the first ranked restaurant with remaining
// capacity, and a team is never reconsidered after being processed.
type Scheduler struct {
	fifo    *queue.Queue
	seen    map[string]bool
	state   map[string]TeamState
	verbose bool
}

func NewScheduler(verbose bool) *Scheduler {
	return &Scheduler{
		fifo:    queue.New(),
		seen:    make(map[string]bool),
		state:   make(map[string]TeamState),
		verbose: verbose,
	}
}

// Enqueue appends one team to the arrival queue. Callers enqueue in
// arrival order; use EnqueueAll to order a batch by sequence number.
func (s *Scheduler) Enqueue(t Team) error {
	if s.seen[t.ID] {
		return &DuplicateTeamError{ID: t.ID}
	}
	s.seen[t.ID] = true
	s.state[t.ID] = StatePending
	s.fifo.Enqueue(t)
	return nil
}

// EnqueueAll enqueues a batch of teams ordered by arrival sequence
// number, lowest first. Teams with equal sequence numbers keep their
// slice order.
func (s *Scheduler) EnqueueAll(teams []Team) error {
	arrival := make([]Team, len(teams))
	copy(arrival, teams)
	sort.SliceStable(arrival, func(i, j int) bool {
		return arrival[i].Seq < arrival[j].Seq
	})
	for _, t := range arrival {
		if err := s.Enqueue(t); err != nil {
			return err
		}
	}
	return nil
}

// State reports where a team is in the run. Teams never enqueued are
// StatePending.
func (s *Scheduler) State(teamID string) TeamState {
	return s.state[teamID]
}

// Run drains the arrival queue against the ranked sequence. Each
// dequeued team takes the first restaurant with CapRest > 0; if none
// remains the team is recorded as Unassigned. Consumed capacity never
// frees up within a run. If the ranked sequence is empty while teams
// are queued, every queued team is recorded as Unassigned and Run
// returns the populated Assignment together with
// EmptyRestaurantListError.
func (s *Scheduler) Run(ranked []Restaurant) (Assignment, error) {
	out := Assignment{
		Teams:      make(map[string]string),
		Placements: make(map[string][]string),
	}

	if len(ranked) == 0 && s.fifo.Len() > 0 {
		queued := 0
		for s.fifo.Len() > 0 {
			t := s.fifo.Dequeue().(Team)
			s.state[t.ID] = StateUnassigned
			out.Teams[t.ID] = Unassigned
			queued++
		}
		return out, &EmptyRestaurantListError{Queued: queued}
	}

	for s.fifo.Len() > 0 {
		t := s.fifo.Dequeue().(Team)

		placed := false
		for i := range ranked {
			r := &ranked[i]
			if r.CapRest <= 0 {
				continue
			}
			r.CapRest--
			r.Assigned = append(r.Assigned, t.ID)
			out.Teams[t.ID] = r.ID
			out.Placements[r.ID] = append(out.Placements[r.ID], t.ID)
			s.state[t.ID] = StateAssigned
			placed = true
			if s.verbose {
				fmt.Println(t.ID, "seq:", t.Seq, "->", r.ID, "cap_rest:", r.CapRest)
			}
			break
		}

		if !placed {
			out.Teams[t.ID] = Unassigned
			s.state[t.ID] = StateUnassigned
			if s.verbose {
				fmt.Println(t.ID, "seq:", t.Seq, "-> unassigned")
			}
		}
	}

	return out, nil
}
