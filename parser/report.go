package parser

import "fmt"

// Stats summarizes a tokenizer run.
type Stats struct {
	Lines      int
	Chars      int
	Checksum   rune
	Errors     int
	Warnings   int
	Recoveries int
}

// Stats returns the counters collected so far.
func (p *Tokenizer) Stats() Stats {
	return Stats{
		Lines:      p.stream.Line(),
		Chars:      p.stream.CharCount(),
		Checksum:   p.stream.Checksum(),
		Errors:     p.numErrors,
		Warnings:   p.numWarnings,
		Recoveries: p.numRecoveries,
	}
}

// CompletionReport renders the run summary, e.g.
//
//	Parsed 3 lines containing 42 characters. Reported 2 errors (recovered 1) and 1 warnings.
func (p *Tokenizer) CompletionReport() string {
	return p.Stats().String()
}

func (s Stats) String() string {
	return fmt.Sprintf("Parsed %d lines containing %d characters. Reported %d errors (recovered %d) and %d warnings.",
		s.Lines, s.Chars, s.Errors, s.Recoveries, s.Warnings)
}
