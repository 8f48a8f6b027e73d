package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/timetablecsp/internal/csp"
	"github.com/limaJavier/timetablecsp/internal/model"
)

type BenchmarkResult struct {
	Test        string
	Satisfiable bool
	Solved      bool
	TimedOut    bool
	Steps       uint64
	Duration    time.Duration
}

func main() {
	directoryPtr := flag.String("dir", "testdata", "Directory containing satisfiable/ and unsatisfiable/ instance files")
	timeoutPtr := flag.Duration("timeout", time.Minute, "Per-instance timeout")
	outPtr := flag.String("out", "benchmark.csv", "Path to the CSV report")
	flag.Parse()

	results := []BenchmarkResult{}
	for _, tuple := range lo.Zip2([]string{"satisfiable", "unsatisfiable"}, []bool{true, false}) {
		directory, satisfiable := path.Join(*directoryPtr, tuple.A), tuple.B

		files, err := os.ReadDir(directory)
		if err != nil {
			log.Fatalf("cannot read directory: %v", err)
		}

		for _, file := range files {
			instance := path.Join(directory, file.Name())
			fmt.Printf("Benchmarking instance %q\n", instance)
			results = append(results, run(instance, satisfiable, *timeoutPtr))
		}
	}

	toCsv(results, *outPtr)
}

func run(file string, satisfiable bool, timeout time.Duration) BenchmarkResult {
	input, err := model.InputFromJson(file)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	requirements := model.BuildRequirements(input)
	domains := model.BuildDomains(input, requirements)
	solver := csp.NewSolver(csp.Options{})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	solution, stats, err := solver.Solve(ctx, csp.Problem{
		Variables:   requirements,
		Domains:     domains,
		Constraints: model.Constraints(model.CapacityPerRoomTotal),
	})
	duration := time.Since(start)
	if err != nil {
		log.Printf("instance %v timed out after %v", file, timeout)
	}

	return BenchmarkResult{
		Test:        file,
		Satisfiable: satisfiable,
		Solved:      solution != nil,
		TimedOut:    err != nil,
		Steps:       stats.Steps,
		Duration:    duration,
	}
}

func toCsv(results []BenchmarkResult, out string) {
	records := [][]string{{"test", "satisfiable", "solved", "timed_out", "steps", "duration"}}
	records = append(records, lo.Map(results, func(result BenchmarkResult, _ int) []string {
		return []string{
			result.Test,
			strconv.FormatBool(result.Satisfiable),
			strconv.FormatBool(result.Solved),
			strconv.FormatBool(result.TimedOut),
			strconv.FormatUint(result.Steps, 10),
			result.Duration.String(),
		}
	})...)

	file, err := os.Create(out)
	if err != nil {
		log.Fatalf("cannot create report file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		log.Fatalf("cannot write report: %v", err)
	}
}
