package analytics

import (
	"airline-warehouse/internal/shared/errors"
	"airline-warehouse/internal/warehouse"
)

const (
	MinTableRows     = 10
	MaxTableRows     = 100
	DefaultTableRows = 50
)

type TableSummary struct {
	Name    string   `json:"name"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
}

type TablePage struct {
	Name      string     `json:"name"`
	TotalRows int        `json:"total_rows"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
}

// Tables lists every warehouse table in load order.
func (s *Service) Tables() ([]TableSummary, error) {
	_, tables, err := s.current()
	if err != nil {
		return nil, err
	}

	out := make([]TableSummary, 0, len(tables))
	for _, t := range tables {
		out = append(out, TableSummary{Name: t.Name, Rows: len(t.Rows), Columns: t.ColumnNames()})
	}
	return out, nil
}

// Table returns the first limit rows of a table rendered as CSV text.
func (s *Service) Table(name string, limit int) (*TablePage, error) {
	if limit < MinTableRows || limit > MaxTableRows {
		return nil, errors.Validationf("limit must be between %d and %d, got %d", MinTableRows, MaxTableRows, limit)
	}
	_, tables, err := s.current()
	if err != nil {
		return nil, err
	}

	for _, t := range tables {
		if t.Name != name {
			continue
		}
		return tablePage(t, limit), nil
	}
	return nil, errors.NotFoundf("table not found: %s", name)
}

func tablePage(t warehouse.Table, limit int) *TablePage {
	n := min(limit, len(t.Rows))
	page := &TablePage{
		Name:      t.Name,
		TotalRows: len(t.Rows),
		Columns:   t.ColumnNames(),
		Rows:      make([][]string, 0, n),
	}
	for _, row := range t.Rows[:n] {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = warehouse.FormatValue(t.Columns[i], v)
		}
		page.Rows = append(page.Rows, cells)
	}
	return page
}
