// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package teamalloc

import "fmt"

// InvalidRateError reports a restaurant whose rate is negative or not a
// finite number. The run is aborted.
type InvalidRateError struct {
	ID   string
	Rate float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("restaurant %s: invalid rate %v", e.ID, e.Rate)
}

// DuplicateTeamError reports a team ID enqueued twice on the same
// scheduler.
type DuplicateTeamError struct {
	ID string
}

func (e *DuplicateTeamError) Error() string {
	return fmt.Sprintf("team %s: already enqueued", e.ID)
}

// EmptyRestaurantListError reports a run started with teams queued but
// no restaurants to rank. The queued teams are all recorded as
// unassigned before the error is returned.
type EmptyRestaurantListError struct {
	Queued int
}

func (e *EmptyRestaurantListError) Error() string {
	return fmt.Sprintf("no restaurants to rank, %d teams queued", e.Queued)
}
