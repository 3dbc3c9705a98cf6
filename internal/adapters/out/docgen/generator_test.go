package docgen_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/docgen"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDocumentGenerator_Generate(t *testing.T) {
	ctx := t.Context()
	baseDir := t.TempDir()

	item, err := order.NewItem(kernel.NewUUID(), "Bolt M6", 4, 250, "pcs")
	require.NoError(t, err)
	draft, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, time.Now().UTC(),
	)
	require.NoError(t, err)

	generator := docgen.NewFileDocumentGenerator(baseDir)
	folder, err := generator.Generate(ctx, draft)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(baseDir, draft.ID().String()), folder)

	content, err := os.ReadFile(filepath.Join(folder, "order.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), draft.ID().String())
	assert.Contains(t, string(content), "Bolt M6")
	assert.Contains(t, string(content), "Total\t1000")
}

func TestFileDocumentGenerator_Generate_NilOrder(t *testing.T) {
	generator := docgen.NewFileDocumentGenerator(t.TempDir())

	_, err := generator.Generate(t.Context(), nil)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}
