package invoices

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadCSV loads invoice records from a header-keyed CSV file. Measure
// columns go through SafeFloat so a malformed number becomes 0 instead of
// aborting the ingest.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}

	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var records []Record

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		id, err := strconv.ParseInt(strings.TrimSpace(field("ID")), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ID on csv line %d: %w", line, err)
		}

		records = append(records, Record{
			ID:                  id,
			FiscalWeekBeginDate: field("FiscalWeekBeginDate"),
			InvoiceDate:         field("Invoice Date"),
			Region:              field("Region"),
			FacilityName:        field("Facility Name"),
			BranchID:            field("Branch Id"),
			Channel:             field("Channel"),
			SoldToName:          field("soldto_name"),
			ShipToName:          field("shipto_name"),
			ProductType:         field("Product Type"),
			MajorCode:           field("Major Code"),
			MajorDesc:           field("Major Desc"),
			MidCode:             field("Mid Code"),
			MidDesc:             field("Mid Desc"),
			MinorCode:           field("Minor Code"),
			MinorDesc:           field("Minor Desc"),
			Item:                field("Item"),
			ItemDesc:            field("Item Desc"),
			Sales:               SafeFloat(field("Sales")),
			GrossProfit:         SafeFloat(field("Gross Profit")),
			GMPercent:           SafeFloat(field("GM Percent")),
			TLE:                 SafeFloat(field("TLE")),
		})
	}

	return records, nil
}
