// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Scylla API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(s)

Collection routes answer both with and without a trailing slash.

# Endpoints

Health:

	GET /health - Pings the database

A/B compares:

	GET    /abcompares      - List compares
	POST   /abcompares      - Create compare
	GET    /abcompares/{id} - Get compare
	PUT    /abcompares/{id} - Replace compare
	DELETE /abcompares/{id} - Delete compare

Reports:

	GET    /reports                - List reports
	POST   /reports                - Create report
	GET    /reports/{id}           - Get report (?includeResults=true)
	PUT    /reports/{id}           - Replace report, sets the master result
	DELETE /reports/{id}           - Delete report (?cascade=true)
	GET    /reports/{id}/results   - List screenshots of the report
	POST   /reports/{id}/results   - Record a screenshot
	GET    /report-results/{id}    - Get report result
	PUT    /report-results/{id}    - Replace report result
	DELETE /report-results/{id}    - Delete report result

Batches:

	GET    /batches                                  - List batches
	POST   /batches                                  - Create batch
	GET    /batches/{id}                             - Get batch (?includeResults=true)
	PUT    /batches/{id}                             - Replace batch
	DELETE /batches/{id}                             - Delete batch (?cascade=true)
	GET    /batches/{batchId}/results                - List executions
	POST   /batches/{batchId}/results                - Record an execution
	GET    /batches/{batchId}/results/{resultId}     - Get execution (?includeDiffs=true)
	PUT    /batches/{batchId}/results/{resultId}     - Replace execution
	DELETE /batches/{batchId}/results/{resultId}     - Delete execution

Result diffs:

	GET    /result-diffs        - List diffs (?batchResult=<id>)
	POST   /result-diffs        - Create diff
	GET    /result-diffs/{id}   - Get diff
	PUT    /result-diffs/{id}   - Replace diff (approve, reject)
	DELETE /result-diffs/{id}   - Delete diff

# Middleware

All API routes are wrapped with middleware.WithLogging. CORS is applied
around the whole mux in main.
*/
package router
