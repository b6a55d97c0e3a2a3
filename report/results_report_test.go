// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report_test

import (
	"bytes"
	"context"
	"strings"

	"github.com/danielhkuo/evote/candidates"
	"github.com/danielhkuo/evote/ledger"
	"github.com/danielhkuo/evote/report"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResultsReport", func() {

	var (
		coord *ledger.Coordinator
		buf   *bytes.Buffer
	)

	BeforeEach(func() {
		var err error
		coord, err = ledger.New(context.Background(), candidates.Default(), nil, ledger.Options{ApplySeedVotes: true})
		Expect(err).NotTo(HaveOccurred())
		buf = &bytes.Buffer{}
	})

	Describe("#PrintResultsTable", func() {
		It("lists every candidate with formatted counts", func() {
			report.NewResultsReport(coord.Results()).PrintResultsTable(buf)
			out := buf.String()

			Expect(out).To(ContainSubstring("| Candidate"))
			Expect(out).To(ContainSubstring("2,156"))
			Expect(out).To(ContainSubstring("1,247"))
			Expect(out).To(ContainSubstring("5,829"))
			Expect(out).To(ContainSubstring("37.0%"))
		})

		It("keeps ballot order", func() {
			report.NewResultsReport(coord.Results()).PrintResultsTable(buf)
			out := buf.String()

			Expect(strings.Index(out, "NCP")).To(BeNumerically("<", strings.Index(out, "BNP")))
			Expect(strings.Index(out, "BNP")).To(BeNumerically("<", strings.Index(out, "Jatio Party")))
		})

		It("reflects accepted votes", func() {
			_, err := coord.CastVote(context.Background(), "1234567890", "jamayat")
			Expect(err).NotTo(HaveOccurred())

			report.NewResultsReport(coord.Results()).PrintResultsTable(buf)
			Expect(buf.String()).To(ContainSubstring("5,830"))
		})
	})

	Describe("#PrintStandings", func() {
		It("ranks the leader first", func() {
			report.NewResultsReport(coord.Results()).PrintStandings(buf)
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

			// header, separator, then the first ranked row
			Expect(len(lines)).To(BeNumerically(">=", 3))
			Expect(lines[2]).To(ContainSubstring("BNP"))
			Expect(lines[2]).To(ContainSubstring("1"))
		})
	})

	Describe("Standings()", func() {
		It("sorts by votes and keeps ballot order on ties", func() {
			results := ledger.Results{Rows: []ledger.ResultRow{
				{CandidateID: "a", Votes: 1},
				{CandidateID: "b", Votes: 3},
				{CandidateID: "c", Votes: 1},
			}}

			ids := []string{}
			for _, row := range report.Standings(results) {
				ids = append(ids, row.CandidateID)
			}
			Expect(ids).To(Equal([]string{"b", "a", "c"}))
		})

		It("does not reorder the input", func() {
			results := ledger.Results{Rows: []ledger.ResultRow{
				{CandidateID: "a", Votes: 1},
				{CandidateID: "b", Votes: 3},
			}}
			report.Standings(results)
			Expect(results.Rows[0].CandidateID).To(Equal("a"))
		})
	})
})
