//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kat

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/shs"
	"github.com/markkurossi/shs/env"
	"github.com/markkurossi/tabulate"
)

// Result holds the outcome of one test.
type Result struct {
	Name      string
	Algorithm shs.Algorithm
	Length    int
	Got       string
	Want      string
	Passed    bool
}

// Report collects test results.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
	Timing  *Timing
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		Timing: NewTiming(),
	}
}

// OK tests if all tests passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Add adds the result to the report.
func (r *Report) Add(result Result) {
	r.Results = append(r.Results, result)
	if result.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
}

// Print prints the test results and pass/fail counts.
func (r *Report) Print(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Test").SetAlign(tabulate.ML)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Result").SetAlign(tabulate.ML)

	for _, result := range r.Results {
		row := tab.Row()
		row.Column(result.Name)
		row.Column(result.Algorithm.String())
		row.Column(ByteSize(result.Length).String())
		if result.Passed {
			row.Column("pass")
		} else {
			row.Column("FAIL").SetFormat(tabulate.FmtBold)
		}
	}
	tab.Print(w)

	fmt.Fprintf(w, "%d passed, %d failed\n", r.Passed, r.Failed)
}

// Run runs the vectors for the algorithms. Vectors without an expected
// digest for an algorithm are skipped for that algorithm.
func Run(config *env.Config, vectors []Vector, algs []shs.Algorithm) (
	*Report, error) {

	log := config.Logger()
	report := NewReport()

	for _, alg := range algs {
		if alg.Words() == 0 {
			return nil, fmt.Errorf("unsupported algorithm %v", alg)
		}
		var total ByteSize
		type sub struct {
			label string
			end   time.Time
			size  ByteSize
		}
		var subs []sub

		for _, v := range vectors {
			want, ok := v.Expected(alg)
			if !ok {
				continue
			}
			msg := v.Message()
			digest, err := shs.Hash(alg, msg, len(msg))
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub{
				label: v.Name,
				end:   time.Now(),
				size:  ByteSize(len(msg)),
			})
			total += ByteSize(len(msg))

			result := Result{
				Name:      v.Name,
				Algorithm: alg,
				Length:    len(msg),
				Got:       digest.String(),
				Want:      want,
			}
			result.Passed = result.Got == result.Want
			if result.Passed {
				log.Debugf("%s %v: %s", v.Name, alg, result.Got)
			} else {
				log.Errorf(v.Name, "%v mismatch\n got: %s\nwant: %s",
					alg, result.Got, result.Want)
			}
			report.Add(result)
		}

		sample := report.Timing.Sample(alg.String(), total)
		for _, s := range subs {
			sample.SubSample(s.label, s.end, s.size)
		}
	}

	return report, nil
}
