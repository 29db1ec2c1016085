package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/partmatch-mcp/internal/classifier"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

func newRunner(t *testing.T, workers int) *Runner {
	t.Helper()
	c, err := classifier.New(classifier.Options{})
	require.NoError(t, err)
	return New(c, workers)
}

func TestClassify_PreservesInputOrder(t *testing.T) {
	r := newRunner(t, 4)

	// Enough items to make out-of-order completion likely if slot
	// assignment were wrong.
	var items []Item
	for i := 0; i < 50; i++ {
		items = append(items,
			Item{MPN: "RC0805FR-0710KL", Reference: fmt.Sprintf("R%d", i)},
			Item{MPN: "FQP30N06L", Reference: fmt.Sprintf("Q%d", i)},
			Item{MPN: "GRM21BR71H104KA01L", Reference: fmt.Sprintf("C%d", i)},
		)
	}

	results, err := r.Classify(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, len(items))

	for i, res := range results {
		assert.Equal(t, items[i].Reference, res.Item.Reference)
		require.NoError(t, res.Err)
		assert.Equal(t, types.NormalizeMPN(items[i].MPN), res.Part.MPN)
	}
	assert.Equal(t, types.TypeResistorYageoChip, results[0].Part.Type)
	assert.Equal(t, types.TypeMOSFETOnsemi, results[1].Part.Type)
}

func TestClassify_PerItemErrorsDoNotAbort(t *testing.T) {
	r := newRunner(t, 2)

	items := []Item{
		{MPN: "RC0805FR-0710KL", Reference: "R1"},
		{MPN: "   ", Reference: "R2"},
		{MPN: "ZZZ-NOT-A-PART", Reference: "U1"},
	}

	results, err := r.Classify(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.False(t, results[0].Part.IsUnknown())

	assert.ErrorIs(t, results[1].Err, types.ErrMalformedInput)

	assert.NoError(t, results[2].Err)
	assert.True(t, results[2].Part.IsUnknown())

	stats := Summarize(results)
	assert.Equal(t, Stats{Total: 3, Classified: 1, Unknown: 1, Failed: 1}, stats)
}

func TestClassify_CancelledContext(t *testing.T) {
	r := newRunner(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]Item, 100)
	for i := range items {
		items[i] = Item{MPN: "RC0805FR-0710KL"}
	}

	_, err := r.Classify(ctx, items)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassify_EmptyInput(t *testing.T) {
	r := newRunner(t, 0) // default worker count

	results, err := r.Classify(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, Stats{}, Summarize(results))
}
