// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/scylla/models"
	"github.com/danielhkuo/scylla/testutil"
)

func TestDiffDetail_ApproveReject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	batch := testutil.CreateTestBatch(t, env.store, "Nightly")
	result := testutil.CreateTestBatchResult(t, env.store, batch.ID)
	diff := testutil.CreateTestDiff(t, env.store, result.ID)

	v := NewDiffDetailView(env.deps, diff.ID)
	require.NoError(t, v.Activate(ctx))
	assert.Equal(t, models.DiffUnapproved, v.Diff.State)

	require.NoError(t, v.Approve(ctx))
	assert.Equal(t, models.DiffApproved, v.Diff.State)

	stored, err := env.store.ResultDiffs.FindByID(ctx, diff.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DiffApproved, stored.State)

	require.NoError(t, v.Reject(ctx))
	stored, err = env.store.ResultDiffs.FindByID(ctx, diff.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DiffRejected, stored.State)

	assert.Equal(t, []string{"Diff Approved", "Diff Rejected"}, env.notify.successes)

	var buf bytes.Buffer
	require.NoError(t, v.Render(&buf))
	assert.Contains(t, buf.String(), "Rejected.")
	assert.Contains(t, buf.String(), "0.2500")
}

func TestDiffDetail_UnknownDiff(t *testing.T) {
	env := newTestEnv(t)
	v := NewDiffDetailView(env.deps, "missing")

	require.Error(t, v.Activate(context.Background()))
	assert.False(t, v.Loaded)
	assert.Len(t, env.notify.errors, 1)
}
