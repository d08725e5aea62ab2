package main

import (
	"bufio"
	"encoding/json"
	"html/template"
	"io"
	"strings"
	"time"
)

// TestResult is one line of the browser suite's JSONL log.
type TestResult struct {
	Name       string   `json:"name"`
	Status     string   `json:"status"` // pass, fail or skip
	DurationMS float64  `json:"duration_ms"`
	Error      string   `json:"error,omitempty"`
	Steps      []string `json:"steps,omitempty"`
}

// Report is the aggregated view rendered to HTML.
type Report struct {
	GeneratedAt time.Time
	Results     []TestResult
	Total       int
	Passed      int
	Failed      int
	Skipped     int
	Malformed   int
}

// parseLog reads a JSONL results log. Malformed lines are tallied, not fatal;
// only an unreadable input stream produces an error.
func parseLog(r io.Reader) (*Report, error) {
	report := &Report{GeneratedAt: time.Now()}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var result TestResult
		if err := json.Unmarshal([]byte(line), &result); err != nil || result.Name == "" {
			report.Malformed++
			continue
		}

		report.Results = append(report.Results, result)
		report.Total++
		switch result.Status {
		case "pass":
			report.Passed++
		case "fail":
			report.Failed++
		case "skip":
			report.Skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return report, nil
}

// render writes the HTML report.
func render(w io.Writer, report *Report) error {
	return reportTemplate.Execute(w, report)
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"ms": func(d float64) string {
		return (time.Duration(d) * time.Millisecond).String()
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>E2E Test Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #ddd; }
.pass { color: #1a7f37; }
.fail { color: #cf222e; }
.skip { color: #9a6700; }
.error { font-family: monospace; white-space: pre-wrap; background: #fff1f0; padding: 0.5rem; }
.summary span { margin-right: 1.5rem; }
</style>
</head>
<body>
<h1>E2E Test Report</h1>
<p>Generated {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
<p class="summary">
<span>Total: {{.Total}}</span>
<span class="pass">Passed: {{.Passed}}</span>
<span class="fail">Failed: {{.Failed}}</span>
<span class="skip">Skipped: {{.Skipped}}</span>
{{if .Malformed}}<span>Malformed lines: {{.Malformed}}</span>{{end}}
</p>
<table>
<tr><th>Test</th><th>Status</th><th>Duration</th></tr>
{{range .Results}}
<tr>
<td>{{.Name}}</td>
<td class="{{.Status}}">{{.Status}}</td>
<td>{{ms .DurationMS}}</td>
</tr>
{{end}}
</table>
{{if .Failed}}
<h2>Failures</h2>
{{range .Results}}{{if eq .Status "fail"}}
<h3>{{.Name}}</h3>
{{if .Steps}}<ol>{{range .Steps}}<li>{{.}}</li>{{end}}</ol>{{end}}
<div class="error">{{.Error}}</div>
{{end}}{{end}}
{{end}}
</body>
</html>
`))
