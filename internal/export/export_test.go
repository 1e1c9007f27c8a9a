package export

import (
	"bytes"
	"encoding/csv"
	"math/rand"
	"strings"
	"testing"

	"weekly-menu-planner/internal/grocery"
	"weekly-menu-planner/internal/planner"
)

func TestWritePlanCSV(t *testing.T) {
	state := planner.NewEngine(rand.NewSource(1)).RegenerateWeek(planner.DefaultSettings())

	var buf bytes.Buffer
	if err := WritePlanCSV(&buf, state); err != nil {
		t.Fatalf("WritePlanCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	wantHeader := []string{"day", "meal", "recipe_id", "recipe", "cost_per_person", "cost_family"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	if got := len(rows) - 1; got != planner.SlotsPerWeek {
		t.Errorf("expected %d data rows, got %d", planner.SlotsPerWeek, got)
	}
	if rows[1][0] != "monday" || rows[1][1] != "breakfast" {
		t.Errorf("first row should be monday breakfast, got %s %s", rows[1][0], rows[1][1])
	}
	if rows[len(rows)-1][0] != "sunday" || rows[len(rows)-1][1] != "dinner" {
		t.Error("last row should be sunday dinner")
	}
}

func TestWriteGroceriesCSV(t *testing.T) {
	state := planner.NewEngine(rand.NewSource(1)).RegenerateWeek(planner.DefaultSettings())
	list := grocery.Aggregate(state)

	var buf bytes.Buffer
	if err := WriteGroceriesCSV(&buf, list); err != nil {
		t.Fatalf("WriteGroceriesCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if got := strings.Join(rows[0], ","); got != "category,ingredient,quantity,unit,price" {
		t.Errorf("unexpected header %q", got)
	}

	var subtotals int
	for _, row := range rows[1:] {
		if row[1] == "subtotal" {
			subtotals++
		}
	}
	if subtotals != len(list.Groups) {
		t.Errorf("expected %d subtotal rows, got %d", len(list.Groups), subtotals)
	}

	last := rows[len(rows)-1]
	if last[1] != "total" {
		t.Errorf("expected final total row, got %v", last)
	}
}

func TestWriteGroceriesCSVEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGroceriesCSV(&buf, grocery.List{}); err != nil {
		t.Fatalf("WriteGroceriesCSV failed on empty list: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	// Header plus the total row only.
	if len(rows) != 2 {
		t.Errorf("expected 2 rows for an empty list, got %d", len(rows))
	}
}
