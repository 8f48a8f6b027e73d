package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func catalog() ProblemInput {
	return ProblemInput{
		Groups: []GroupInput{
			{Name: "MI-41", Students: 15, Subjects: []string{"Decision Theory", "Neural Networks"}},
			{Name: "K-14", Students: 30, Subjects: []string{"Calculus"}},
		},
		SubjectTeachers: map[string][]string{
			"Decision Theory": {"Mashchenko"},
			"Neural Networks": {"Bobyl"},
			"Calculus":        {"Molodtsov", "Anikushyn"},
		},
		Days:    []string{"Monday", "Tuesday"},
		Periods: []int{1, 2},
		Rooms: []RoomInput{
			{Name: "39", Capacity: 300},
			{Name: "201", Capacity: 20},
		},
	}
}

func TestBuildRequirements(t *testing.T) {
	t.Run("lists variables in catalog order", func(t *testing.T) {
		// Arrange
		input := catalog()

		// Act
		requirements := BuildRequirements(input)

		// Assert
		assert.Equal(t, []Requirement{
			{Group: Group{Name: "MI-41", Students: 15}, Subject: "Decision Theory"},
			{Group: Group{Name: "MI-41", Students: 15}, Subject: "Neural Networks"},
			{Group: Group{Name: "K-14", Students: 30}, Subject: "Calculus"},
		}, requirements)
	})
}

func TestBuildDomains(t *testing.T) {
	t.Run("cross-products teachers, days, periods and rooms", func(t *testing.T) {
		// Arrange
		input := catalog()
		requirements := BuildRequirements(input)

		// Act
		domains := BuildDomains(input, requirements)

		// Assert
		calculus := Requirement{Group: Group{Name: "K-14", Students: 30}, Subject: "Calculus"}
		assert.Len(t, domains[calculus], 2*2*2*2)
		assert.Equal(t, Lesson{
			Group:   Group{Name: "K-14", Students: 30},
			Subject: "Calculus",
			Teacher: "Molodtsov",
			Day:     "Monday",
			Period:  1,
			Room:    Room{Name: "39", Capacity: 300},
		}, domains[calculus][0])
	})

	t.Run("unknown subject yields an empty domain", func(t *testing.T) {
		// Arrange
		input := catalog()
		requirement := Requirement{Group: Group{Name: "MI-41", Students: 15}, Subject: "Quantum Computing"}

		// Act
		domains := BuildDomains(input, []Requirement{requirement})

		// Assert
		assert.Empty(t, domains[requirement])
	})

	t.Run("capacity filter prunes small rooms", func(t *testing.T) {
		// Arrange
		input := catalog()
		input.FilterByCapacity = true
		requirements := BuildRequirements(input)

		// Act
		domains := BuildDomains(input, requirements)

		// Assert: K-14 has 30 students, so the 20-seat room disappears
		calculus := Requirement{Group: Group{Name: "K-14", Students: 30}, Subject: "Calculus"}
		assert.Len(t, domains[calculus], 2*2*2*1)
		assert.False(t, lo.SomeBy(domains[calculus], func(candidate Lesson) bool {
			return candidate.Room.Capacity < 30
		}))
	})
}
