package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/timetablecsp/internal/csp"
	"github.com/limaJavier/timetablecsp/internal/model"
)

var (
	validCapacityModes = []string{"total", "slot", "off"}
	capacityModes      = map[string]model.CapacityMode{
		"total": model.CapacityPerRoomTotal,
		"slot":  model.CapacityPerSlot,
		"off":   model.CapacityIgnored,
	}
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input catalog file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the timetable will be written; if empty, it'll be written into the Standard Output")
	capacityPtr := flag.String("capacity", "total", `Room-capacity accounting. Allowed values are:
- "total" (students are summed per room across the whole timetable, the default),
- "slot" (students are summed per room, day and period) and
- "off" (capacity is not enforced)`)
	verbosePtr := flag.Bool("verbose", false, "Log search progress")
	flag.Parse()
	capacity := strings.ToLower(*capacityPtr)
	filePath := *filePathPtr

	// Validate arguments
	if !slices.Contains(validCapacityModes, capacity) {
		log.Fatalf("%v is not a valid capacity mode", capacity)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	input, err := model.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	requirements := model.BuildRequirements(input)
	domains := model.BuildDomains(input, requirements)
	capacityMode := capacityModes[capacity]

	solver := csp.NewSolver(csp.Options{Verbose: *verbosePtr})
	solution, stats, err := solver.Solve(context.Background(), csp.Problem{
		Variables:   requirements,
		Domains:     domains,
		Constraints: model.Constraints(capacityMode),
	})
	if err != nil {
		log.Fatal(err)
	} else if solution == nil {
		fmt.Println("Not satisfiable")
		fmt.Println("Steps:", stats.Steps)
		return
	}

	if !model.Verify(solution, requirements, capacityMode) {
		log.Fatal("Verification failed")
	}

	output := render(solution, input, stats)
	if *outFilePathPtr == "" {
		fmt.Print(output)
	} else if err := os.WriteFile(*outFilePathPtr, []byte(output), 0644); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}

func render(solution model.Assignment, input model.ProblemInput, stats csp.Stats) string {
	dayOrder := map[string]int{}
	for i, day := range input.Days {
		dayOrder[day] = i
	}

	lessons := lo.Values(solution)
	slices.SortFunc(lessons, func(a, b model.Lesson) int {
		if comparison := dayOrder[a.Day] - dayOrder[b.Day]; comparison != 0 {
			return comparison
		}
		if comparison := a.Period - b.Period; comparison != 0 {
			return comparison
		}
		return strings.Compare(a.Group.Name, b.Group.Name)
	})

	var builder strings.Builder
	for _, lesson := range lessons {
		fmt.Fprintf(&builder, "Day: %v, Period: %v, Group: %v, Subject: %v, Teacher: %v, Room: %v\n",
			lesson.Day, lesson.Period, lesson.Group.Name, lesson.Subject, lesson.Teacher, lesson.Room.Name)
	}
	fmt.Fprintf(&builder, "Steps: %v\n", stats.Steps)

	return builder.String()
}
