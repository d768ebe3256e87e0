// Command deliveries prints the delivery schedule with outstanding balances.
//
//	go run ./cmd/deliveries -from 2025-01-01 -to 2025-01-31 -status ready
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/services"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

func main() {
	var (
		from   = flag.String("from", "", "first delivery date to include (YYYY-MM-DD)")
		to     = flag.String("to", "", "last delivery date to include (YYYY-MM-DD)")
		status = flag.String("status", "", "only orders in this status")
	)
	flag.Parse()

	filter, err := buildFilter(*from, *to, *status)
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	deliveries, err := services.NewDeliveryService(db).List(context.Background(), filter)
	if err != nil {
		log.Fatalf("Failed to load deliveries: %v", err)
	}

	if err := renderDeliveries(os.Stdout, deliveries); err != nil {
		log.Fatalf("Failed to render deliveries: %v", err)
	}
}

// buildFilter checks the flag values the same way the HTTP query is checked
func buildFilter(from, to, status string) (models.DeliveryFilter, error) {
	filter := models.DeliveryFilter{StartDate: from, EndDate: to, Status: status}
	for _, date := range []string{from, to} {
		if date != "" && !models.IsValidDate(date) {
			return filter, fmt.Errorf("date %q is not in YYYY-MM-DD form", date)
		}
	}
	if status != "" && !models.IsValidStatus(status) {
		return filter, fmt.Errorf("unknown status %q", status)
	}
	return filter, nil
}

func renderDeliveries(w io.Writer, deliveries []models.DeliveryResponse) error {
	table := tablewriter.NewWriter(w)
	table.Header("Order", "Customer", "Phone", "Delivery", "Status", "Total", "Paid", "Due")

	due := decimal.Zero
	for _, d := range deliveries {
		row := []string{
			strconv.FormatUint(uint64(d.ID), 10),
			d.CustomerName,
			d.CustomerPhone,
			d.DeliveryDate,
			d.Status,
			money(d.TotalAmount),
			money(d.PaidAmount),
			money(d.RemainingAmount),
		}
		if err := table.Append(row); err != nil {
			return err
		}
		due = due.Add(decimal.NewFromFloat(d.RemainingAmount))
	}

	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d order(s), %s outstanding\n", len(deliveries), due.StringFixed(2))
	return err
}

func money(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
