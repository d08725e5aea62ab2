// Command e2ereport turns the JSON-lines log emitted by the browser test suite
// into a standalone HTML report.
//
// Usage:
//
//	e2ereport [-o report.html] results.jsonl
//
// Each input line is one test result; malformed lines are counted and listed
// in the report rather than aborting the run.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	out := flag.String("o", "report.html", "output HTML file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: e2ereport [-o report.html] results.jsonl")
		os.Exit(2)
	}

	in, err := os.Open(flag.Arg(0))
	if err != nil {
		slog.Error("open results log", "error", err)
		os.Exit(1)
	}
	defer in.Close()

	report, err := parseLog(in)
	if err != nil {
		slog.Error("parse results log", "error", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("create report file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := render(f, report); err != nil {
		slog.Error("render report", "error", err)
		os.Exit(1)
	}

	slog.Info("report written", "file", *out,
		"total", report.Total, "passed", report.Passed,
		"failed", report.Failed, "skipped", report.Skipped,
		"malformed_lines", report.Malformed)
}
