package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"APPLICATION ID", "WORKER ID", "WORKER NAME", "STATUS",
	"PROPOSED RATE", "AVAILABLE FROM", "COVER NOTE", "APPLIED AT",
}

// ExportApplications renders a job's applications as xlsx (default) or csv
func (uc *applicationUsecase) ExportApplications(ctx context.Context, jobID int64, format string) (*domain.ExportFile, error) {
	apps, err := uc.GetApplicationsForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, applicationRow(a))
	}

	stamp := time.Now().Format("20060102_150405")
	switch format {
	case "csv":
		data, err := exportCSV(rows)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("job_%d_applications_%s.csv", jobID, stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case "xlsx", "":
		data, err := exportExcel(rows)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("job_%d_applications_%s.xlsx", jobID, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, apperror.BadRequest(fmt.Sprintf("Unsupported export format: %s", format))
	}
}

func applicationRow(a domain.Application) []string {
	row := []string{
		strconv.FormatInt(a.ID, 10),
		strconv.FormatInt(a.WorkerID, 10),
		a.WorkerName,
		a.Status,
		"", "", "",
		a.AppliedAt.Format(time.RFC3339),
	}
	if a.ProposedRate != nil {
		row[4] = strconv.FormatFloat(*a.ProposedRate, 'f', 2, 64)
	}
	if a.AvailableFrom != nil {
		row[5] = *a.AvailableFrom
	}
	if a.CoverNote != nil {
		row[6] = *a.CoverNote
	}
	return row
}

func exportExcel(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applications"
	f.SetSheetName("Sheet1", sheetName)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1F7A4D"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
