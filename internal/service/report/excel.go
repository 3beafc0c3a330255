// Package report renders downloadable files: the attendance sheet, an
// employee's history sheet and the employee badge.
package report

import (
	"io"

	"attendance/console/internal/entity"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const attendanceSheet = "Attendance"

var attendanceHeaders = []string{"Employee ID", "Employee Name", "Date", "Status"}

// AttendanceXLSX writes records as a single-sheet workbook.
func AttendanceXLSX(w io.Writer, records []entity.AttendanceRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return errors.Wrap(err, "naming sheet")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}

	for i, header := range attendanceHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.Wrap(err, "naming header cell")
		}
		if err := f.SetCellValue(attendanceSheet, cell, header); err != nil {
			return errors.Wrap(err, "writing header")
		}
	}
	if err := f.SetCellStyle(attendanceSheet, "A1", "D1", bold); err != nil {
		return errors.Wrap(err, "styling header")
	}
	if err := f.SetColWidth(attendanceSheet, "A", "D", 20); err != nil {
		return errors.Wrap(err, "sizing columns")
	}

	for i, record := range records {
		row := []interface{}{record.EmployeeCode, record.EmployeeName, record.Date.String(), string(record.Status)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "naming row cell")
		}
		if err := f.SetSheetRow(attendanceSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "writing row %d", i+2)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}
