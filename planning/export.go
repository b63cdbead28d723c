/*
export.go - Plan workbook export

PURPOSE:
  Writes the dense plan grid to an xlsx workbook whose header mirrors the
  grid contract: a merged month row over a merged week row over the four
  leaf columns. Cells are written pre-formatted with the same rules the
  grid uses, so a spreadsheet reader sees exactly what the grid shows.
*/
package planning

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Plan"

// ExportGrid renders rows and the calendar-derived column schema into a
// workbook. The caller owns the returned file (write it out, then Close).
func ExportGrid(rows []PlanRow, weeks []CalendarWeek) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	// Identity columns span all three header rows.
	if err := setCell(f, 1, 1, "Store"); err != nil {
		return nil, err
	}
	if err := setCell(f, 2, 1, "SKU"); err != nil {
		return nil, err
	}
	if err := mergeRange(f, 1, 1, 1, 3); err != nil {
		return nil, err
	}
	if err := mergeRange(f, 2, 1, 2, 3); err != nil {
		return nil, err
	}

	// Month row over week row over leaf headers.
	col := 3
	for _, month := range Columns(weeks) {
		monthStart := col
		for _, week := range month.Weeks {
			weekStart := col
			for _, leaf := range week.Columns {
				if err := setCell(f, col, 3, leaf.Header); err != nil {
					return nil, err
				}
				col++
			}
			if err := setCell(f, weekStart, 2, week.Label); err != nil {
				return nil, err
			}
			if err := mergeRange(f, weekStart, 2, col-1, 2); err != nil {
				return nil, err
			}
		}
		if err := setCell(f, monthStart, 1, month.Label); err != nil {
			return nil, err
		}
		if err := mergeRange(f, monthStart, 1, col-1, 1); err != nil {
			return nil, err
		}
	}

	// Data rows, pre-formatted with the grid's display rules.
	for i, row := range rows {
		r := i + 4
		if err := setCell(f, 1, r, row.StoreName); err != nil {
			return nil, err
		}
		if err := setCell(f, 2, r, row.SKULabel); err != nil {
			return nil, err
		}
		col = 3
		for _, week := range weeks {
			cells := []string{
				fmt.Sprintf("%.2f", float64(row.SalesUnits(week.Week))),
				FormatValue(FormatCurrency, row.SalesDollars(week.Week)),
				FormatValue(FormatCurrency, row.GMDollars(week.Week)),
				FormatValue(FormatPercent, row.GMPercent(week.Week)),
			}
			for _, value := range cells {
				if err := setCell(f, col, r, value); err != nil {
					return nil, err
				}
				col++
			}
		}
	}

	return f, nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(exportSheet, cell, value)
}

func mergeRange(f *excelize.File, startCol, startRow, endCol, endRow int) error {
	start, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return err
	}
	if start == end {
		return nil
	}
	return f.MergeCell(exportSheet, start, end)
}
