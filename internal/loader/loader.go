// Package loader reads a bookings spreadsheet into a cleaned, date-ordered
// list of models.Booking.
//
// The sheet has exactly five positional columns (Date, Studio, Type, Rate,
// WFH) under a header row. Header names are ignored.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/knieriem/odf/ods"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jgoulah/freelancestats/internal/config"
	"github.com/jgoulah/freelancestats/pkg/models"
)

// ColumnCount is the number of columns a bookings sheet must have
const ColumnCount = 5

// minFields is the fewest non-empty cells a row needs to be kept
const minFields = ColumnCount - 1

const (
	colDate = iota
	colStudio
	colType
	colRate
	colWFH
)

// Options controls how a file is read
type Options struct {
	Sheet       int      // 1-based sheet index for workbooks (default 1)
	DateLayouts []string // layouts for text dates (default config.DefaultDateLayouts)
	Logger      *slog.Logger
}

// Stats describes what happened to the source rows
type Stats struct {
	Rows       int // data rows below the header
	Incomplete int // dropped for missing more than one field
	Invalid    int // dropped because a value could not be parsed
}

// Kept returns the number of rows that became bookings
func (s Stats) Kept() int {
	return s.Rows - s.Incomplete - s.Invalid
}

// Result holds the cleaned bookings and row accounting
type Result struct {
	Bookings []models.Booking
	Stats    Stats
}

// Load reads path and returns its bookings sorted by date
func Load(path string, opts Options) ([]models.Booking, error) {
	res, err := Read(path, opts)
	if err != nil {
		return nil, err
	}
	return res.Bookings, nil
}

// Read is Load with row statistics
func Read(path string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("path", path)

	rows, err := readRows(path, opts.Sheet)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, le
		}
		return nil, newError(FileUnreadable, path, "", err)
	}
	logger.Debug("Read spreadsheet rows", "rows", len(rows))

	if len(rows) == 0 {
		return nil, newError(EmptyAfterCleaning, path, "no rows", nil)
	}

	if width := tableWidth(rows); width != ColumnCount {
		return nil, newError(WrongColumnCount, path, fmt.Sprintf("found %d columns, want %d", width, ColumnCount), nil)
	}

	layouts := opts.DateLayouts
	if len(layouts) == 0 {
		layouts = config.DefaultDateLayouts
	}

	res := &Result{}
	for i, row := range rows[1:] {
		res.Stats.Rows++
		line := i + 2 // 1-based, after the header

		cells := normalize(row)
		if filled(cells) < minFields {
			res.Stats.Incomplete++
			continue
		}

		booking, err := parseRow(cells, layouts)
		if err != nil {
			res.Stats.Invalid++
			logger.Warn("Dropping row", "row", line, "error", err)
			continue
		}
		if booking.WFH.Valid && !booking.WorkedFromHome() && !booking.OnSite() {
			logger.Warn("WFH flag is neither 0 nor 1, row counts as neither home nor on-site",
				"row", line, "wfh", booking.WFH.Decimal.String())
		}
		res.Bookings = append(res.Bookings, booking)
	}

	if len(res.Bookings) == 0 {
		return nil, newError(EmptyAfterCleaning, path, fmt.Sprintf("%d rows, none usable", res.Stats.Rows), nil)
	}

	sort.SliceStable(res.Bookings, func(i, j int) bool {
		return res.Bookings[i].Date.Before(res.Bookings[j].Date)
	})

	logger.Info("Loaded bookings",
		"bookings", len(res.Bookings),
		"incomplete", res.Stats.Incomplete,
		"invalid", res.Stats.Invalid)

	return res, nil
}

func readRows(path string, sheet int) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(path, sheet)
	case ".ods":
		return readODS(path, sheet)
	case ".csv":
		return readCSV(path)
	default:
		return nil, newError(FileUnreadable, path, "unsupported file type, use .ods, .xlsx or .csv", nil)
	}
}

func readWorkbook(path string, sheet int) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet <= 0 {
		sheet = 1
	}
	sheets := f.GetSheetList()
	if sheet > len(sheets) {
		return nil, newError(FileUnreadable, path, fmt.Sprintf("sheet %d requested, workbook has %d", sheet, len(sheets)), nil)
	}

	// Raw values keep date cells as serial numbers instead of locale formatted text
	rows, err := f.GetRows(sheets[sheet-1], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[sheet-1], err)
	}
	return rows, nil
}

// readODS returns the displayed text of each cell, so dates arrive in the
// sheet's display format and are matched against the date layouts.
func readODS(path string, sheet int) ([][]string, error) {
	f, err := ods.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer f.Close()

	var doc ods.Doc
	if err := f.ParseContent(&doc); err != nil {
		return nil, fmt.Errorf("parsing spreadsheet content: %w", err)
	}

	if sheet <= 0 {
		sheet = 1
	}
	if sheet > len(doc.Table) {
		return nil, newError(FileUnreadable, path, fmt.Sprintf("sheet %d requested, spreadsheet has %d", sheet, len(doc.Table)), nil)
	}
	return doc.Table[sheet-1].Strings(), nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// tableWidth is the widest row once trailing empty cells are ignored
func tableWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		n := len(row)
		for n > 0 && strings.TrimSpace(row[n-1]) == "" {
			n--
		}
		if n > width {
			width = n
		}
	}
	return width
}

func normalize(row []string) []string {
	cells := make([]string, ColumnCount)
	for i := 0; i < ColumnCount && i < len(row); i++ {
		cells[i] = strings.TrimSpace(row[i])
	}
	return cells
}

func filled(cells []string) int {
	n := 0
	for _, c := range cells {
		if c != "" {
			n++
		}
	}
	return n
}

func parseRow(cells []string, layouts []string) (models.Booking, error) {
	var b models.Booking

	date, err := parseDate(cells[colDate], layouts)
	if err != nil {
		return b, err
	}
	b.Date = date

	b.Studio = cells[colStudio]
	if b.Studio == "" {
		return b, fmt.Errorf("missing studio")
	}
	b.Type = cells[colType]

	if cells[colRate] != "" {
		b.Rate, err = parseAmount(cells[colRate])
		if err != nil {
			return b, fmt.Errorf("parsing rate %q: %w", cells[colRate], err)
		}
	}

	if cells[colWFH] != "" {
		wfh, err := decimal.NewFromString(cells[colWFH])
		if err != nil {
			return b, fmt.Errorf("parsing WFH flag %q: %w", cells[colWFH], err)
		}
		b.WFH = decimal.NewNullDecimal(wfh)
	}

	return b, nil
}

// parseDate accepts a spreadsheet serial number or any of the given layouts
func parseDate(s string, layouts []string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("converting date serial %q: %w", s, err)
		}
		return truncateDay(t), nil
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date format: %s", s)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var amountReplacer = strings.NewReplacer("£", "", "$", "", "€", "", ",", "", " ", "")

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(amountReplacer.Replace(s))
}
