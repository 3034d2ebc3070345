package engine

import (
	"encoding/json"
	"fmt"
	"io"
)

// CheckStats counts the results of one check over a run.
type CheckStats struct {
	Check   string `json:"check"`
	Passed  int    `json:"passed"`
	Failed  int    `json:"failed"`
	Skipped int    `json:"skipped"`
}

// Failure describes a tree that broke a property.
type Failure struct {
	Check       string `json:"check"`
	Tree        string `json:"tree"`
	Prefix      string `json:"prefix"` // parseable form of Tree
	Shrunk      string `json:"shrunk,omitempty"`
	ShrunkError string `json:"shrunk_error,omitempty"` // may differ from Error
	Error       string `json:"error"`
}

// Report summarizes a property run.
type Report struct {
	Numeric  string       `json:"numeric"`
	Pool     string       `json:"pool"`
	Seed     int64        `json:"seed"`
	Trees    int          `json:"trees"`
	Stats    []CheckStats `json:"stats"`
	Failures []Failure    `json:"failures,omitempty"`
}

// BatchLine is the result of one line of batch input.
type BatchLine struct {
	Line   int    `json:"line"`
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// WriteText writes a run report in human-readable format.
func WriteText(w io.Writer, r Report) {
	fmt.Fprintf(w, "Checked %d trees (pool %s, numeric %s, seed %d)\n", r.Trees, r.Pool, r.Numeric, r.Seed)
	for _, s := range r.Stats {
		fmt.Fprintf(w, "  %-12s pass %5d | fail %5d | skip %5d\n", s.Check, s.Passed, s.Failed, s.Skipped)
	}
	if len(r.Failures) == 0 {
		return
	}
	fmt.Fprintln(w, "\n--- Failures ---")
	for i, f := range r.Failures {
		fmt.Fprintf(w, "  #%d [%s] %s\n", i+1, f.Check, f.Tree)
		fmt.Fprintf(w, "      prefix: %s\n", f.Prefix)
		if f.Shrunk != "" {
			fmt.Fprintf(w, "      shrunk: %s\n", f.Shrunk)
		}
		fmt.Fprintf(w, "      error:  %s\n", f.Error)
		if f.ShrunkError != "" && f.ShrunkError != f.Error {
			fmt.Fprintf(w, "      shrunk error: %s\n", f.ShrunkError)
		}
	}
}

// WriteBatchText writes one batch result per line.
func WriteBatchText(w io.Writer, l BatchLine) {
	if l.Error != "" {
		fmt.Fprintf(w, "%d: %s => error: %s\n", l.Line, l.Input, l.Error)
		return
	}
	fmt.Fprintf(w, "%d: %s => %s\n", l.Line, l.Input, l.Output)
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
