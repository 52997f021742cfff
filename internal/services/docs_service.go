package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"brtc-gateway/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the admin tables as printable PDFs. Loaders are plugged
// in at the composition root (CounterService.Summary, PaymentService.History)
// so tests can feed fixed data.
type DocsService struct {
	SummaryLoader func(ctx context.Context, selectedDate string, page int) (CounterSummaryPage, error)
	HistoryLoader func(ctx context.Context, busName, selectedDate string) (PaymentHistory, error)
	RequestID     string
}

// CounterSummaryPDF renders the counter-master sales table across every page
// of masters.
func (s DocsService) CounterSummaryPDF(ctx context.Context, selectedDate string) ([]byte, string, error) {
	var masters []MasterSummary
	page := 1
	for {
		res, err := s.SummaryLoader(ctx, selectedDate, page)
		if err != nil {
			return nil, "", err
		}
		masters = append(masters, res.Masters...)
		if page >= res.Pagination.TotalPages {
			break
		}
		page++
	}
	utils.LogEvent(s.RequestID, "docs", "counter_summary_pdf", fmt.Sprintf("masters=%d", len(masters)))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Counter Master Summary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Counter Master Summary")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	if selectedDate != "" {
		pdf.Cell(0, 6, "Date: "+selectedDate)
	} else {
		pdf.Cell(0, 6, "Date: all days")
	}
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	for _, m := range masters {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("%s (%s)", m.Name, safe(m.Location, "-")))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		if !m.HasTransactions {
			pdf.Cell(0, 6, "No transactions available")
			pdf.Ln(8)
			continue
		}
		lines := []string{
			"Buses       : " + safe(m.Buses, "-"),
			"Seats       : " + safe(m.Seats, "-"),
			fmt.Sprintf("Seats Sold  : %d", m.TotalSeatsSold),
			"Total Price : " + utils.FormatTaka(m.TotalPrice),
		}
		for _, l := range lines {
			pdf.MultiCell(0, 6, l, "", "", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := "COUNTER_SUMMARY_" + safeFilenamePart(selectedDate) + ".pdf"
	return buf.Bytes(), filename, nil
}

// PaymentHistoryPDF renders one bus's payment history table.
func (s DocsService) PaymentHistoryPDF(ctx context.Context, busName, selectedDate string) ([]byte, string, error) {
	history, err := s.HistoryLoader(ctx, busName, selectedDate)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "payment_history_pdf", "bus="+busName)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment History", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payment History - "+history.BusName)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	if history.SelectedDate != "" {
		pdf.Cell(0, 6, "Date: "+history.SelectedDate)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Total Seats: %d", history.TotalSeats))
	pdf.Ln(10)

	for _, g := range history.Groups {
		for _, o := range g.Orders {
			line := fmt.Sprintf("%s | seats %s | %s | %s | %s | %s",
				g.BusName,
				safe(utils.JoinSeats(o.AllocatedSeat), "-"),
				utils.FormatTaka(o.Price),
				safe(o.Name, "-"),
				safe(o.Phone, "-"),
				safe(o.CounterMaster, "-"),
			)
			pdf.MultiCell(0, 6, line, "", "", false)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total Allocated Seats: %d", history.TotalAllocatedSeats))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Total Price: "+utils.FormatTaka(history.TotalPrice))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("PAYMENTS_%s_%s.pdf", safeFilenamePart(busName), safeFilenamePart(selectedDate))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "ALL"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
