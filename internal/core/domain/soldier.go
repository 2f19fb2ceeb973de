package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrSoldierNotFound = errors.New("soldier not found")
var ErrDuplicateSoldier = errors.New("soldier already exists")
var ErrUnknownRankName = errors.New("unknown rank name")
var ErrUnknownRankValue = errors.New("unknown rank value")

// rankNames lists the seven grade names in ascending order; the index of a
// name is its numeric level.
var rankNames = []string{
	"private",    // 0
	"corporal",   // 1
	"sergeant",   // 2
	"lieutenant", // 3
	"captain",    // 4
	"major",      // 5
	"colonel",    // 6
}

var rankValues = func() map[string]int {
	m := make(map[string]int, len(rankNames))
	for v, n := range rankNames {
		m[n] = v
	}
	return m
}()

// Rank is a military grade. Stored and returned records always carry both the
// canonical lowercase name and the numeric level, kept mutually consistent.
type Rank struct {
	Name  string `json:"name" bson:"name"`
	Value int    `json:"value" bson:"value"`
}

// RankByName resolves a rank from its symbolic name. Lookup is
// case-insensitive; the returned rank carries the canonical lowercase name.
func RankByName(name string) (Rank, error) {
	canonical := strings.ToLower(strings.TrimSpace(name))
	value, ok := rankValues[canonical]
	if !ok {
		return Rank{}, ErrUnknownRankName
	}
	return Rank{Name: canonical, Value: value}, nil
}

// RankByValue resolves a rank from its numeric level (0–6).
func RankByValue(value int) (Rank, error) {
	if value < 0 || value >= len(rankNames) {
		return Rank{}, ErrUnknownRankValue
	}
	return Rank{Name: rankNames[value], Value: value}, nil
}

// Soldier is the sole domain entity. The 7-digit id doubles as the document
// primary key.
type Soldier struct {
	ID          string    `json:"_id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Rank        Rank      `json:"rank" bson:"rank"`
	Limitations []string  `json:"limitations" bson:"limitations"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
