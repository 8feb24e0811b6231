// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/scylla/testutil"
)

func TestBatchList_AddAndDelete(t *testing.T) {
	env := newTestEnv(t)
	v := NewBatchListView(env.deps)
	ctx := context.Background()

	require.NoError(t, v.Activate(ctx))
	v.NewBatch()
	require.NoError(t, v.AddBatch(ctx, "Nightly"))
	assert.Equal(t, []string{"New Batch Created: Nightly"}, env.notify.successes)
	require.Len(t, v.Batches, 1)
	batch := v.Batches[0]

	first := testutil.CreateTestBatchResult(t, env.store, batch.ID)
	second := testutil.CreateTestBatchResult(t, env.store, batch.ID)
	testutil.CreateTestDiff(t, env.store, first.ID)

	v.DeleteBatch(batch)
	env.log.reset()
	require.NoError(t, v.ConfirmDeleteBatch(ctx))

	lines := env.log.all()
	require.NotEmpty(t, lines)
	parent := "DELETE /batches/" + batch.ID
	parentAt := -1
	childDeletes := 0
	for i, line := range lines {
		switch {
		case line == parent:
			parentAt = i
		case strings.HasPrefix(line, "DELETE "):
			childDeletes++
			assert.Equal(t, -1, parentAt, "child delete %q after the parent", line)
		}
	}
	require.NotEqual(t, -1, parentAt)
	assert.Equal(t, 3, childDeletes, "one diff and two results")
	assert.Equal(t, "GET /batches", lines[len(lines)-1])

	ctx2 := context.Background()
	left, err := env.store.BatchResults.ListByBatch(ctx2, batch.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	for _, id := range []string{first.ID, second.ID} {
		diffs, err := env.store.ResultDiffs.ListByBatchResult(ctx2, id)
		require.NoError(t, err)
		assert.Empty(t, diffs)
	}

	assert.False(t, v.ShowDeleteBatch)
	assert.Empty(t, v.Batches)
}

func TestBatchList_AddBatchMissingName(t *testing.T) {
	env := newTestEnv(t)
	v := NewBatchListView(env.deps)

	require.Error(t, v.AddBatch(context.Background(), "  "))
	assert.True(t, v.CreateFailed)
	require.Len(t, env.notify.errors, 1)
	assert.Contains(t, env.notify.errors[0], "batch: name is required")
}

func TestBatchDetail_Reports(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	home := testutil.CreateTestReport(t, env.store, "Home", "https://example.com")
	about := testutil.CreateTestReport(t, env.store, "About", "https://example.com/about")
	batch := testutil.CreateTestBatch(t, env.store, "Nightly", home.ID)

	v := NewBatchDetailView(env.deps, batch.ID)
	require.NoError(t, v.Activate(ctx))
	assert.Len(t, v.Reports, 2)
	assert.Equal(t, []string{home.ID}, v.Batch.Reports)

	require.NoError(t, v.AddReport(ctx, about.ID))
	assert.Equal(t, []string{home.ID, about.ID}, v.Batch.Reports)
	assert.Contains(t, env.notify.successes, "Report Added: About")

	// adding again changes nothing
	env.log.reset()
	require.NoError(t, v.AddReport(ctx, about.ID))
	assert.Empty(t, env.log.all())

	require.NoError(t, v.RemoveReport(ctx, home.ID))
	assert.Equal(t, []string{about.ID}, v.Batch.Reports)
	assert.Contains(t, env.notify.successes, "Report Removed: Home")

	assert.Equal(t, "About", v.ReportName(about.ID))
	assert.Equal(t, "unknown-id", v.ReportName("unknown-id"))

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	assert.Contains(t, buf.String(), "- About")
	assert.Contains(t, buf.String(), "This batch has not run yet.")
}

func TestBatchResultView(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	batch := testutil.CreateTestBatch(t, env.store, "Nightly")
	result := testutil.CreateTestBatchResult(t, env.store, batch.ID)
	testutil.CreateTestDiff(t, env.store, result.ID)

	end := result.Start.Add(90 * time.Second)
	result.End = &end
	_, err := env.store.BatchResults.Replace(ctx, result.ID, result)
	require.NoError(t, err)

	v := NewBatchResultView(env.deps, batch.ID, result.ID)
	require.NoError(t, v.Activate(ctx))
	assert.Equal(t, "Nightly", v.Batch.Name)
	assert.Len(t, v.Result.Diffs, 1)
	assert.Equal(t, 1, v.Pending())

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	assert.Contains(t, buf.String(), "1m30s")
	assert.Contains(t, buf.String(), "1 diff(s) waiting for review.")

	other := testutil.CreateTestBatch(t, env.store, "Weekly")
	wrong := NewBatchResultView(env.deps, other.ID, result.ID)
	assert.Error(t, wrong.Activate(ctx))
}
