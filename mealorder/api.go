// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mealorder uses teamalloc to order team meals. Unlike the core
// engine, which seats whole teams, this package splits a team's
// per-meal-class demand across restaurants in rate order, consuming
// restaurant stock as orders are placed.
package mealorder

// Meal classes a restaurant can stock and a team can demand.
const (
	Normal     = "normal"
	Vegetarian = "vegetarian"
	GlutenFree = "gluten_free"
	NutFree    = "nut_free"
	FishFree   = "fish_free"
)

// MealClasses lists every known meal class in placement order.
var MealClasses = []string{Normal, Vegetarian, GlutenFree, NutFree, FishFree}

type Restaurant struct {
	Name  string         `json:"name"`
	Rate  float64        `json:"rate"`
	Stock map[string]int `json:"stock"` // meal class -> portions left today

	// Orders is the history of orders placed here, in placement order.
	Orders []Order `json:"orders,omitempty"`
}

type Team struct {
	Name   string         `json:"name"`
	Demand map[string]int `json:"demand"` // meal class -> portions needed

	// Orders is the history of orders this team placed.
	Orders []Order `json:"orders,omitempty"`
}

// Order is one order line between a team and a restaurant.
type Order struct {
	Team       string         `json:"team"`
	Restaurant string         `json:"restaurant"`
	Meals      map[string]int `json:"meals"`
}

// Plan is the ordering outcome for one team.
type Plan struct {
	Team     string         `json:"team"`
	Orders   []Order        `json:"orders"`
	Unfilled map[string]int `json:"unfilled,omitempty"`
}

type Matcher struct {
	// When set, equal-rate restaurants are tried larger first
	// (more portions left in stock).
	PreferLarger bool `json:"prefer_larger"`

	Verbose bool `json:"vv"`
}

type Summary struct {
	RestaurantsCount int `json:"restaurants"`
	TeamsCount       int `json:"teams"`
	MealsStocked     int `json:"meals_stocked"`
	MealsDemanded    int `json:"meals_demanded"`
	MealsUnfilled    int `json:"meals_unfilled"`
	MealsRemaining   int `json:"meals_remaining"`
}
