// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	mo "github.com/someonegg/teamalloc/mealorder"
)

type Restaurants struct {
	Restaurants []*mo.Restaurant `json:"restaurants"`
}

type Teams struct {
	Teams []*mo.Team `json:"teams"`
}

type Plans struct {
	Perfect bool       `json:"perfect"`
	Plans   []*mo.Plan `json:"plans"`
}

func doPlan(ctx context.Context, restaurantFile, teamFile, planFile string,
	preferLarger, verbose bool) error {

	restaurants, err := loadRestaurants(restaurantFile)
	if err != nil {
		return fmt.Errorf("load restaurant file failed: %w", err)
	}

	teams, err := loadTeams(teamFile)
	if err != nil {
		return fmt.Errorf("load team file failed: %w", err)
	}

	matcher := &mo.Matcher{
		PreferLarger: preferLarger,
		Verbose:      verbose,
	}

	plans, perfect, summ, err := matcher.Match(restaurants, teams)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}
	fmt.Printf("%+v\n", summ)
	if !perfect {
		fmt.Println("some teams could not be fully served")
	}

	err = writePlans(planFile, plans, perfect)
	if err != nil {
		return fmt.Errorf("write plan file failed: %w", err)
	}

	return nil
}

func loadRestaurants(file string) ([]*mo.Restaurant, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var restaurants Restaurants

	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&restaurants); err != nil {
		return nil, err
	}

	for _, r := range restaurants.Restaurants {
		if r.Stock == nil {
			r.Stock = make(map[string]int)
		}
	}

	return restaurants.Restaurants, nil
}

func loadTeams(file string) ([]*mo.Team, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var teams Teams

	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&teams); err != nil {
		return nil, err
	}

	for _, t := range teams.Teams {
		if t.Demand == nil {
			t.Demand = make(map[string]int)
		}
	}

	return teams.Teams, nil
}

func writePlans(file string, plans []*mo.Plan, perfect bool) error {
	data, err := json.MarshalIndent(&Plans{Perfect: perfect, Plans: plans}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0644)
}
