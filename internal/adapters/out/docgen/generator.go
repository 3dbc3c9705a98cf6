// Package docgen generates order documents on the local filesystem. Each
// signed order gets its own folder with a plain text summary; the folder
// path is what the order stores as its document link.
package docgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fulfillment/internal/core/domain/model/order"
)

// FileDocumentGenerator implements the DocumentGenerator port by writing
// order papers under a base directory.
type FileDocumentGenerator struct {
	baseDir string
}

// NewFileDocumentGenerator creates a generator rooted at baseDir.
// The directory is created on first use.
func NewFileDocumentGenerator(baseDir string) *FileDocumentGenerator {
	return &FileDocumentGenerator{baseDir: baseDir}
}

// Generate writes the order summary into a folder named after the order and
// returns the folder path. A failure at any point returns the error without
// cleaning up partial output; the caller treats generation as failed and the
// order keeps its previous status.
func (g *FileDocumentGenerator) Generate(ctx context.Context, aggregate *order.Order) (string, error) {
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	folder := filepath.Join(g.baseDir, aggregate.ID().String())
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("create order folder: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Order %s\n", aggregate.ID().String())
	fmt.Fprintf(&sb, "Client %s\n", aggregate.ClientID().String())
	fmt.Fprintf(&sb, "Employee %s\n", aggregate.EmployeeID().String())
	fmt.Fprintf(&sb, "Date %s\n\n", aggregate.OrderDate().Format("2006-01-02"))

	var total int64
	for _, item := range aggregate.Items() {
		lineTotal := item.Price() * int64(item.Quantity())
		total += lineTotal
		fmt.Fprintf(&sb, "%s\t%d %s\t%d\t%d\n",
			item.Name(), item.Quantity(), item.Unit(), item.Price(), lineTotal)
	}
	fmt.Fprintf(&sb, "\nTotal\t%d\n", total)

	file := filepath.Join(folder, "order.txt")
	if err := os.WriteFile(file, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write order document: %w", err)
	}

	return folder, nil
}
