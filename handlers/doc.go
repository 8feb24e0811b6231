// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Scylla API.

# Handler Types

ResourceHandler serves the five CRUD operations for any entity whose
controller implements controllers.Controller:

	compares := handlers.NewResourceHandler[models.AbCompare]("compare", ctrl,
		func(c models.AbCompare) string { return c.ID }, "")

Entities with children embed it and add the nested routes:

  - ReportHandler: reports, cascade delete, /reports/{id}/results
  - BatchHandler: batches, cascade delete, /batches/{batchId}/results/...
  - ResultDiffHandler: diffs, ?batchResult= filtering

# Status Codes

	400  malformed JSON or a missing required field (controller not called)
	404  unknown id, or a nested result that belongs to another batch
	500  delete or update that matched no record, or any store failure
	200  everything else, including create; delete answers {"_id": id}
*/
package handlers
