// Package sheet reads the line items of a contract from the CSV export of a
// published spreadsheet.
//
// The sheet has one row per budgeted item with the columns modulo, item,
// actividad, unidad, fecha_inicio, fecha_fin, cantidad_original,
// cantidad_vigente, precio_unitario and one p<k>_cant column per
// certification period.
package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/planilla"
	"github.com/etnz/planilla/date"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrHTML is returned when the sheet URL answers with a web page instead of
// CSV, which is what an unpublished sheet does.
var ErrHTML = errors.New("got an HTML page instead of CSV: is the sheet published to the web?")

var periodColumn = regexp.MustCompile(`^p(\d+)_cant$`)

// column names
const (
	colModule      = "modulo"
	colItem        = "item"
	colActivity    = "actividad"
	colUnit        = "unidad"
	colStart       = "fecha_inicio"
	colEnd         = "fecha_fin"
	colOriginalQty = "cantidad_original"
	colCurrentQty  = "cantidad_vigente"
	colUnitPrice   = "precio_unitario"
)

// Parse reads the line items of the CSV in r. Prices are in currency.
//
// Headers are trimmed and lower-cased. Period columns are ranked by their
// number: p1_cant, p2_cant, p4_cant become periods 1, 2 and 3. Rows with
// neither item nor actividad are skipped, and a sheet with neither column has
// no item. Unreadable numbers are 0 and unreadable dates are left empty.
func Parse(r io.Reader, currency string) ([]planilla.LineItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if isHTML(data) {
		return nil, ErrHTML
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	records = slices.DeleteFunc(records, blank)
	if len(records) < 2 {
		return nil, nil
	}
	header := normalizeHeader(records[0])
	if !slices.Contains(header, colItem) && !slices.Contains(header, colActivity) {
		return nil, nil
	}
	records[0] = header
	for i := 1; i < len(records); i++ {
		records[i] = fit(records[i], len(header))
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("loading sheet: %w", df.Err)
	}
	return items(df, currency), nil
}

// items converts the rows of df.
func items(df dataframe.DataFrame, currency string) []planilla.LineItem {
	cols := make(map[string][]string)
	for _, name := range df.Names() {
		cols[name] = df.Col(name).Records()
	}
	cell := func(name string, row int) string {
		if col, ok := cols[name]; ok {
			return strings.TrimSpace(col[row])
		}
		return ""
	}
	periods := periodColumns(df.Names())

	var items []planilla.LineItem
	for row := 0; row < df.Nrow(); row++ {
		it := planilla.LineItem{
			Module:      cell(colModule, row),
			Code:        cell(colItem, row),
			Description: cell(colActivity, row),
			Unit:        cell(colUnit, row),
			Start:       parseDate(cell(colStart, row)),
			End:         parseDate(cell(colEnd, row)),
			OriginalQty: planilla.Q(ParseNumber(cell(colOriginalQty, row))),
			CurrentQty:  planilla.Q(ParseNumber(cell(colCurrentQty, row))),
			UnitPrice:   planilla.M(ParseNumber(cell(colUnitPrice, row)), currency),
			Executed:    make(map[int]planilla.Quantity, len(periods)),
		}
		if it.Code == "" && it.Description == "" {
			continue
		}
		for i, name := range periods {
			it.Executed[i+1] = planilla.Q(ParseNumber(cell(name, row)))
		}
		items = append(items, it)
	}
	return items
}

// periodColumns returns the period columns of names ordered by period number.
func periodColumns(names []string) []string {
	type column struct {
		name string
		k    int
	}
	var cols []column
	for _, name := range names {
		m := periodColumn.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		k, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		cols = append(cols, column{name, k})
	}
	slices.SortStableFunc(cols, func(a, b column) int { return a.k - b.k })
	names = names[:0:0]
	for _, c := range cols {
		names = append(names, c.name)
	}
	return names
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

// fit pads or truncates row to n fields.
func fit(row []string, n int) []string {
	if len(row) >= n {
		return row[:n]
	}
	return append(row, make([]string, n-len(row))...)
}

func blank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func isHTML(data []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(data))
	return bytes.HasPrefix(head, []byte("<!doctype")) || bytes.Contains(head, []byte("<html"))
}

func parseDate(s string) date.Date {
	if s == "" {
		return date.Date{}
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}
	}
	return d
}
