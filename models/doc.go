// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the documents exchanged by the Scylla API.

# Documents

Every document carries an opaque id serialized as "_id":

  - Report: name, url, optional master result, optional results
  - ReportResult: parent report, timestamp, screenshot and thumbnail URLs
  - AbCompare: name, urlA, urlB
  - Batch: name, report ids, optional results
  - BatchResult: parent batch, start/end, pass/fail/exception counts
  - ResultDiff: the two report results compared, distortion, diff image, state

# Validation

Each document exposes MissingField, which names the first required field
that is blank:

	if field := compare.MissingField(); field != "" {
		// reject with 400
	}

# Response Types

  - DeleteResponse: {"_id": "..."} returned after a delete
  - ErrorResponse: error, message

# Constants

Diff states:

	DiffUnapproved = "unapproved"
	DiffApproved   = "approved"
	DiffRejected   = "rejected"
*/
package models
