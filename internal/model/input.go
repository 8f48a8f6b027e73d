package model

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// GroupInput is one catalog entry: a group and the subjects it must
// take. Groups are a list, not a map, so their declaration order (and
// with it the default variable order of the search) survives decoding.
type GroupInput struct {
	Name     string
	Students int
	Subjects []string
}

type RoomInput struct {
	Name     string
	Capacity int
}

// ProblemInput is the catalog handed over by the caller: who must
// learn what, who may teach what, and the available days, periods and
// rooms. A subject missing from SubjectTeachers has zero qualified
// teachers and therefore an empty candidate domain.
type ProblemInput struct {
	Groups           []GroupInput        `mapstructure:"groups"`
	SubjectTeachers  map[string][]string `mapstructure:"subjectTeachers"`
	Days             []string            `mapstructure:"days"`
	Periods          []int               `mapstructure:"periods"`
	Rooms            []RoomInput         `mapstructure:"rooms"`
	FilterByCapacity bool                `mapstructure:"filterByCapacity"`
}

func InputFromJson(file string) (ProblemInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ProblemInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ProblemInput{}, err
	}

	var input ProblemInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ProblemInput{}, err
	}

	return input, nil
}
