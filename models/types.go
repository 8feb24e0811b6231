package models

import (
	"strings"
	"time"
)

// Result diff states
const (
	DiffUnapproved = "unapproved"
	DiffApproved   = "approved"
	DiffRejected   = "rejected"
)

// Image shown for a report that has no master result yet
const NoMasterThumbnail = "images/reportHasNoMasterResult.png"

// Domain types

type Report struct {
	ID           string         `json:"_id"`
	Name         string         `json:"name"`
	URL          string         `json:"url"`
	MasterID     *string        `json:"-"`
	MasterResult *ReportResult  `json:"masterResult,omitempty"`
	Results      []ReportResult `json:"results,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type ReportResult struct {
	ID         string    `json:"_id"`
	ReportID   string    `json:"report"`
	Timestamp  time.Time `json:"timestamp"`
	Screenshot string    `json:"screenshot"`
	Thumb      string    `json:"thumb"`
}

type AbCompare struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	URLA string `json:"urlA"`
	URLB string `json:"urlB"`
}

type Batch struct {
	ID        string        `json:"_id"`
	Name      string        `json:"name"`
	Reports   []string      `json:"reports"`
	Results   []BatchResult `json:"results,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type BatchResult struct {
	ID        string       `json:"_id"`
	BatchID   string       `json:"batch"`
	Start     time.Time    `json:"start"`
	End       *time.Time   `json:"end,omitempty"`
	Pass      int          `json:"pass"`
	Fail      int          `json:"fail"`
	Exception int          `json:"exception"`
	Diffs     []ResultDiff `json:"diffs,omitempty"`
}

type ResultDiff struct {
	ID            string  `json:"_id"`
	BatchResultID *string `json:"batchResult,omitempty"`
	ReportResultA string  `json:"reportResultA"`
	ReportResultB string  `json:"reportResultB"`
	Distortion    float64 `json:"distortion"`
	Image         string  `json:"image"`
	Thumb         string  `json:"thumb"`
	State         string  `json:"state"`
}

// MasterResultID reads the master result id from either the stored reference
// or an expanded master result sent by a client.
func (r Report) MasterResultID() *string {
	if r.MasterID != nil {
		return r.MasterID
	}
	if r.MasterResult != nil && r.MasterResult.ID != "" {
		id := r.MasterResult.ID
		return &id
	}
	return nil
}

// Response types

// DeleteResponse is returned by every successful DELETE
type DeleteResponse struct {
	ID string `json:"_id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Validation

// MissingField returns the first required field that is empty, or "" when
// the report is complete.
func (r Report) MissingField() string {
	switch {
	case blank(r.Name):
		return "name"
	case blank(r.URL):
		return "url"
	}
	return ""
}

func (r ReportResult) MissingField() string {
	switch {
	case blank(r.ReportID):
		return "report"
	case blank(r.Screenshot):
		return "screenshot"
	}
	return ""
}

func (c AbCompare) MissingField() string {
	switch {
	case blank(c.Name):
		return "name"
	case blank(c.URLA):
		return "urlA"
	case blank(c.URLB):
		return "urlB"
	}
	return ""
}

func (b Batch) MissingField() string {
	if blank(b.Name) {
		return "name"
	}
	return ""
}

func (b BatchResult) MissingField() string {
	if blank(b.BatchID) {
		return "batch"
	}
	return ""
}

func (d ResultDiff) MissingField() string {
	switch {
	case blank(d.ReportResultA):
		return "reportResultA"
	case blank(d.ReportResultB):
		return "reportResultB"
	case d.State != "" && !IsValidDiffState(d.State):
		return "state"
	}
	return ""
}

// IsValidDiffState reports whether s is one of the known diff states
func IsValidDiffState(s string) bool {
	switch s {
	case DiffUnapproved, DiffApproved, DiffRejected:
		return true
	}
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
