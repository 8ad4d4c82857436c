// Package export renders an owner's data graph as an Excel workbook for
// offline backup, one sheet per entity family.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"folio/internal/domain"
)

const dateLayout = "2006-01-02"

// Workbook builds the backup workbook and returns its serialized bytes.
func Workbook(payload *domain.SyncPayload) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeClients(f, payload.Clients); err != nil {
		return nil, err
	}
	if err := writeInvoices(f, payload.Invoices); err != nil {
		return nil, err
	}
	if err := writeQuotations(f, payload.Quotations); err != nil {
		return nil, err
	}
	if err := writeReceipts(f, payload.Receipts); err != nil {
		return nil, err
	}
	if err := writeContracts(f, payload.Contracts); err != nil {
		return nil, err
	}
	if err := writeTimeEntries(f, payload.TimeEntries); err != nil {
		return nil, err
	}

	// Replace the default sheet with the first data sheet.
	f.DeleteSheet("Sheet1")
	idx, err := f.GetSheetIndex("Clients")
	if err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export.Workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, name string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %s: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("writing header on %s: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("writing row %d on %s: %w", i+2, name, err)
		}
	}
	return nil
}

func writeClients(f *excelize.File, clients []domain.Client) error {
	rows := make([][]interface{}, len(clients))
	for i, c := range clients {
		rows[i] = []interface{}{
			c.ID.String(), c.Name, c.Email, c.Phone, c.Address,
			c.City, c.State, c.ZipCode, c.Country, c.TaxID,
		}
	}
	return writeSheet(f, "Clients",
		[]interface{}{"ID", "Name", "Email", "Phone", "Address", "City", "State", "Zip", "Country", "Tax ID"},
		rows)
}

func writeInvoices(f *excelize.File, invoices []domain.Invoice) error {
	rows := make([][]interface{}, len(invoices))
	for i, inv := range invoices {
		client := ""
		if inv.Client != nil {
			client = inv.Client.Name
		}
		rows[i] = []interface{}{
			inv.InvoiceNumber, client, inv.IssueDate.Format(dateLayout),
			inv.DueDate.Format(dateLayout), string(inv.Status),
			inv.Subtotal.String(), inv.TaxAmount.String(), inv.Total.String(),
			inv.Currency, inv.ViewCount,
		}
	}
	return writeSheet(f, "Invoices",
		[]interface{}{"Number", "Client", "Issue Date", "Due Date", "Status", "Subtotal", "Tax", "Total", "Currency", "Views"},
		rows)
}

func writeQuotations(f *excelize.File, quotations []domain.Quotation) error {
	rows := make([][]interface{}, len(quotations))
	for i, q := range quotations {
		client := ""
		if q.Client != nil {
			client = q.Client.Name
		}
		rows[i] = []interface{}{
			q.QuotationNumber, client, q.IssueDate.Format(dateLayout),
			q.ValidUntil.Format(dateLayout), string(q.Status),
			q.Subtotal.String(), q.TaxAmount.String(), q.Total.String(),
			q.Currency, q.ViewCount,
		}
	}
	return writeSheet(f, "Quotations",
		[]interface{}{"Number", "Client", "Issue Date", "Valid Until", "Status", "Subtotal", "Tax", "Total", "Currency", "Views"},
		rows)
}

func writeReceipts(f *excelize.File, receipts []domain.Receipt) error {
	rows := make([][]interface{}, len(receipts))
	for i, rec := range receipts {
		client := ""
		if rec.Client != nil {
			client = rec.Client.Name
		}
		rows[i] = []interface{}{
			rec.ReceiptNumber, client, rec.PaymentDate.Format(dateLayout),
			rec.PaymentMethod, rec.RelatedInvoiceNumber,
			rec.Total.String(), rec.AmountPaid.String(), rec.Currency, rec.ViewCount,
		}
	}
	return writeSheet(f, "Receipts",
		[]interface{}{"Number", "Client", "Payment Date", "Method", "Related Invoice", "Total", "Amount Paid", "Currency", "Views"},
		rows)
}

func writeContracts(f *excelize.File, contracts []domain.Contract) error {
	rows := make([][]interface{}, len(contracts))
	for i, ct := range contracts {
		client := ""
		if ct.Client != nil {
			client = ct.Client.Name
		}
		rows[i] = []interface{}{
			ct.ContractNumber, client, ct.ProjectName, ct.TemplateType,
			ct.StartDate.Format(dateLayout), ct.EndDate.Format(dateLayout),
			string(ct.Status), ct.ProjectFee.String(), ct.Currency, ct.ViewCount,
		}
	}
	return writeSheet(f, "Contracts",
		[]interface{}{"Number", "Client", "Project", "Template", "Start Date", "End Date", "Status", "Fee", "Currency", "Views"},
		rows)
}

func writeTimeEntries(f *excelize.File, entries []domain.TimeEntry) error {
	rows := make([][]interface{}, len(entries))
	for i, e := range entries {
		end := ""
		if e.EndTime != nil {
			end = e.EndTime.Format("2006-01-02 15:04")
		}
		rows[i] = []interface{}{
			e.ProjectName, e.Description,
			e.StartTime.Format("2006-01-02 15:04"), end, e.DurationMinutes,
		}
	}
	return writeSheet(f, "Time Entries",
		[]interface{}{"Project", "Description", "Start", "End", "Minutes"},
		rows)
}
