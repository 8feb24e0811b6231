// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/markdown"

	"github.com/danielhkuo/scylla/models"
)

func ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func code(s string) string {
	return "`" + s + "`"
}

func (v *HomeView) Render(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1("Scylla")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Collection", "Count"},
		Rows: [][]string{
			{"Reports", strconv.Itoa(len(v.Reports))},
			{"A/B Compares", strconv.Itoa(len(v.Compares))},
			{"Batches", strconv.Itoa(len(v.Batches))},
		},
	})
	md.PlainText("")

	if n := v.WithoutMaster(); n > 0 {
		md.Warningf("%d report(s) have no master result.", n)
		md.PlainText("")
	}
	return md.Build()
}

func (v *ReportListView) Render(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1("Reports")
	md.PlainText("")

	if v.ShowDeleteReport && v.ReportToDelete != nil {
		md.Warningf("Delete report %q and all of its results?", v.ReportToDelete.Name)
		md.PlainText("")
	}
	if v.CreateFailed {
		md.Cautionf("The report could not be saved.")
		md.PlainText("")
	}

	if len(v.Reports) == 0 {
		md.PlainText("No reports yet.")
		md.PlainText("")
		return md.Build()
	}

	rows := make([][]string, 0, len(v.Reports))
	for i := range v.Reports {
		r := &v.Reports[i]
		rows = append(rows, []string{code(r.ID), r.Name, r.URL, v.Thumbnail(r), ago(r.CreatedAt)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Name", "URL", "Thumbnail", "Created"},
		Rows:   rows,
	})
	md.PlainText("")
	return md.Build()
}

func (v *ReportDetailView) Render(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1(v.Report.Name)
	md.PlainText("")
	md.PlainTextf("URL: %s", v.Report.URL)
	md.PlainText("")

	if v.Report.MasterResult == nil {
		md.Note("No master result set.")
		md.PlainText("")
	}

	md.H2("Results")
	md.PlainText("")
	if len(v.Report.Results) == 0 {
		md.PlainText("No results recorded.")
		md.PlainText("")
		return md.Build()
	}

	rows := make([][]string, 0, len(v.Report.Results))
	for _, r := range v.Report.Results {
		master := ""
		if v.IsMaster(r.ID) {
			master = "★"
		}
		rows = append(rows, []string{code(r.ID), ago(r.Timestamp), r.Screenshot, master})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Taken", "Screenshot", "Master"},
		Rows:   rows,
	})
	md.PlainText("")
	return md.Build()
}

func (v *CompareListView) Render(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1("A/B Compares")
	md.PlainText("")

	if v.ShowDeleteCompare && v.CompareToDelete != nil {
		md.Warningf("Delete compare %q?", v.CompareToDelete.Name)
		md.PlainText("")
	}
	if v.CreateFailed {
		md.Cautionf("The compare could not be saved.")
		md.PlainText("")
	}

	if len(v.Compares) == 0 {
		md.PlainText("No compares yet.")
		md.PlainText("")
		return md.Build()
	}

	rows := make([][]string, 0, len(v.Compares))
	for _, c := range v.Compares {
		rows = append(rows, []string{code(c.ID), c.Name, c.URLA, c.URLB})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Name", "URL A", "URL B"},
		Rows:   rows,
	})
	md.PlainText("")
	return md.Build()
}

func (v *CompareDetailView) Render(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1(v.Compare.Name)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Side", "URL"},
		Rows: [][]string{
			{"A", v.Compare.URLA},
			{"B", v.Compare.URLB},
		},
	})
	md.PlainText("")
	return md.Build()
}

func (v *DiffDetailView) Render(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1("Diff " + v.Diff.ID)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"State", v.Diff.State},
			{"Distortion", strconv.FormatFloat(v.Diff.Distortion, 'f', 4, 64)},
			{"Result A", code(v.Diff.ReportResultA)},
			{"Result B", code(v.Diff.ReportResultB)},
			{"Image", v.Diff.Image},
		},
	})
	md.PlainText("")

	switch v.Diff.State {
	case models.DiffApproved:
		md.Tip("Approved.")
	case models.DiffRejected:
		md.Cautionf("Rejected.")
	default:
		md.Note("Waiting for review.")
	}
	md.PlainText("")
	return md.Build()
}

func (v *BatchListView) Render(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1("Batches")
	md.PlainText("")

	if v.ShowDeleteBatch && v.BatchToDelete != nil {
		md.Warningf("Delete batch %q and all of its results?", v.BatchToDelete.Name)
		md.PlainText("")
	}
	if v.CreateFailed {
		md.Cautionf("The batch could not be saved.")
		md.PlainText("")
	}

	if len(v.Batches) == 0 {
		md.PlainText("No batches yet.")
		md.PlainText("")
		return md.Build()
	}

	rows := make([][]string, 0, len(v.Batches))
	for _, b := range v.Batches {
		rows = append(rows, []string{code(b.ID), b.Name, strconv.Itoa(len(b.Reports)), ago(b.CreatedAt)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Name", "Reports", "Created"},
		Rows:   rows,
	})
	md.PlainText("")
	return md.Build()
}

func (v *BatchDetailView) Render(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1(v.Batch.Name)
	md.PlainText("")

	md.H2("Reports")
	md.PlainText("")
	if len(v.Batch.Reports) == 0 {
		md.PlainText("No reports in this batch.")
	} else {
		names := make([]string, 0, len(v.Batch.Reports))
		for _, id := range v.Batch.Reports {
			names = append(names, v.ReportName(id))
		}
		md.BulletList(names...)
	}
	md.PlainText("")

	md.H2("Results")
	md.PlainText("")
	if len(v.Batch.Results) == 0 {
		md.PlainText("This batch has not run yet.")
		md.PlainText("")
		return md.Build()
	}

	rows := make([][]string, 0, len(v.Batch.Results))
	for _, r := range v.Batch.Results {
		rows = append(rows, []string{
			code(r.ID), ago(r.Start),
			strconv.Itoa(r.Pass), strconv.Itoa(r.Fail), strconv.Itoa(r.Exception),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Started", "Pass", "Fail", "Exception"},
		Rows:   rows,
	})
	md.PlainText("")
	return md.Build()
}

func (v *BatchResultView) Render(w io.Writer) error {
	md := markdown.NewMarkdown(w)
	md.H1(fmt.Sprintf("%s: run %s", v.Batch.Name, v.Result.ID))
	md.PlainText("")

	duration := "running"
	if v.Result.End != nil {
		duration = v.Result.End.Sub(v.Result.Start).Round(time.Second).String()
	}
	md.Table(markdown.TableSet{
		Header: []string{"Started", "Duration", "Pass", "Fail", "Exception"},
		Rows: [][]string{{
			ago(v.Result.Start), duration,
			strconv.Itoa(v.Result.Pass), strconv.Itoa(v.Result.Fail), strconv.Itoa(v.Result.Exception),
		}},
	})
	md.PlainText("")

	md.H2("Diffs")
	md.PlainText("")
	if len(v.Result.Diffs) == 0 {
		md.PlainText("No diffs.")
		md.PlainText("")
		return md.Build()
	}

	rows := make([][]string, 0, len(v.Result.Diffs))
	for _, d := range v.Result.Diffs {
		rows = append(rows, []string{code(d.ID), d.State, strconv.FormatFloat(d.Distortion, 'f', 4, 64), d.Thumb})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "State", "Distortion", "Thumb"},
		Rows:   rows,
	})
	md.PlainText("")

	if n := v.Pending(); n > 0 {
		md.Importantf("%d diff(s) waiting for review.", n)
		md.PlainText("")
	}
	return md.Build()
}
