// Package pdf renders order invoices as PDF files for mail attachment.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"solarstore/internal/core/domain/model/account"
	"solarstore/internal/core/domain/model/order"
	"solarstore/internal/pkg/errs"

	"github.com/go-pdf/fpdf"
)

// FpdfInvoiceRenderer implements InvoiceRenderer using the fpdf library.
// Rendered files are written to a scratch directory and are expected to be
// discarded right after the mail dispatch attempt.
type FpdfInvoiceRenderer struct {
	dir string
}

// NewFpdfInvoiceRenderer creates a renderer writing into dir. An empty dir
// falls back to the system temp directory.
func NewFpdfInvoiceRenderer(dir string) *FpdfInvoiceRenderer {
	if dir == "" {
		dir = os.TempDir()
	}
	return &FpdfInvoiceRenderer{dir: dir}
}

// Render writes the invoice PDF for the given order and returns its path.
func (r *FpdfInvoiceRenderer) Render(
	ctx context.Context,
	aggregate *order.Order,
	details account.Details,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := aggregate.Validate(); err != nil {
		return "", err
	}
	if err := details.Validate(); err != nil {
		return "", err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, "Invoice", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, "Order Number: "+aggregate.Number(), "", 1, "L", false, 0, "")

	customer := aggregate.Customer()
	doc.CellFormat(0, 7, "Customer: "+customer.Name(), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, "Phone: "+customer.Phone(), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, "Address: "+customer.Address(), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	doc.CellFormat(35, 8, "Unit Price", "1", 0, "R", false, 0, "")
	doc.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	doc.CellFormat(40, 8, "Subtotal", "1", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	for _, item := range aggregate.Items() {
		doc.CellFormat(90, 8, item.Name(), "1", 0, "L", false, 0, "")
		doc.CellFormat(35, 8, item.UnitPrice().StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity()), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 8, item.Subtotal().StringFixed(2), "1", 1, "R", false, 0, "")
	}

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	doc.CellFormat(40, 8, aggregate.TotalPrice().StringFixed(2), "1", 1, "R", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 7, "Payment Details", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, "Account Number: "+details.AccountNumber(), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, "Bank Name: "+details.BankName(), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, "Account Name: "+details.AccountName(), "", 1, "L", false, 0, "")

	path := filepath.Join(r.dir, "invoice-"+aggregate.Number()+".pdf")
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write invoice %s: %w", path, err)
	}

	return path, nil
}

// Discard removes a previously rendered invoice file.
func (r *FpdfInvoiceRenderer) Discard(path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("path")
	}
	return os.Remove(path)
}
