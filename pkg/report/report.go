// Package report collects check results into titled sections.
package report

import "github.com/vertti/setupcheck/pkg/check"

// Section is an ordered group of results under a title.
type Section struct {
	Title   string
	Results []check.Result
}

// Add appends a result to the section.
func (s *Section) Add(r check.Result) {
	s.Results = append(s.Results, r)
}

// Report is the ordered list of sections produced by one run.
type Report struct {
	Title    string
	Sections []*Section
}

// New creates an empty report.
func New(title string) *Report {
	return &Report{Title: title}
}

// Section starts a new section and returns it for results to be added.
func (r *Report) Section(title string) *Section {
	s := &Section{Title: title}
	r.Sections = append(r.Sections, s)
	return s
}

// Counts holds the number of results per status.
type Counts struct {
	OK   int
	Warn int
	Fail int
}

// Counts tallies results across all sections.
func (r *Report) Counts() Counts {
	var c Counts
	for _, s := range r.Sections {
		for _, res := range s.Results {
			switch {
			case res.OK():
				c.OK++
			case res.Failed():
				c.Fail++
			default:
				c.Warn++
			}
		}
	}
	return c
}

// Passed reports whether no result failed. Warnings do not count.
func (r *Report) Passed() bool {
	return r.Counts().Fail == 0
}
