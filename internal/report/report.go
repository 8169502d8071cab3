// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report exports the final interaction table as an XLSX workbook.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-elevate-uploader/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the table.
const SheetName = "Interactions"

var ErrEmptyPath = errors.New("report path is empty")

// Export writes records to a new workbook at path, replacing any existing
// file. The first row holds the column headers.
func Export(path string, records models.JobRecords) (err error) {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("xlsx close: %w", closeErr)
		}
	}()

	// A new workbook starts with "Sheet1"; rename it instead of adding a second sheet.
	if err = f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, models.TableHeaders)
	rows = append(rows, records.Rows()...)

	for i, row := range rows {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+1)
		if cellErr != nil {
			return fmt.Errorf("xlsx cell: %w", cellErr)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err = f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+1, err)
		}
	}

	for _, col := range []struct {
		name  string
		width float64
	}{
		{name: "A", width: 48}, // filename
		{name: "B", width: 40}, // identifier
		{name: "C", width: 24}, // status
	} {
		if err = f.SetColWidth(SheetName, col.name, col.name, col.width); err != nil {
			return fmt.Errorf("xlsx column %s width: %w", col.name, err)
		}
	}

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write %q: %w", path, err)
	}
	return nil
}
