// Package history keeps the panel's recently used colors in fixed-size rows.
package history

import (
	"fmt"
	"slices"

	cberr "github.com/amterp/colorbox/internal/errors"
	"github.com/amterp/colorbox/internal/model"
)

// Manager owns a bounded, row-organized list of colors ordered by recency.
//
// Entries are laid out left-to-right, top-to-bottom, colorsPerRow per row, in at
// most rowLimit rows. A Manager with rowLimit 0 is inert. It is not safe for
// concurrent use.
type Manager struct {
	rows         [][]model.ColorEntry
	colorsPerRow int
	rowLimit     int

	setSize   int
	positions []model.Position
}

// NewManager creates an empty history.
func NewManager(colorsPerRow, rowLimit int) (*Manager, error) {
	if colorsPerRow <= 0 {
		return nil, cberr.InvalidField("colors per row", fmt.Sprintf("must be at least 1, got %d", colorsPerRow))
	}
	if rowLimit < 0 {
		return nil, cberr.InvalidField("row limit", fmt.Sprintf("must not be negative, got %d", rowLimit))
	}
	m := &Manager{colorsPerRow: colorsPerRow, rowLimit: rowLimit}
	m.Reset()
	return m, nil
}

// Enabled reports whether the history holds any rows at all.
func (m *Manager) Enabled() bool {
	return m.rowLimit > 0
}

// Capacity returns colorsPerRow * rowLimit.
func (m *Manager) Capacity() int {
	return m.colorsPerRow * m.rowLimit
}

// ColorsPerRow returns the row width.
func (m *Manager) ColorsPerRow() int {
	return m.colorsPerRow
}

// RowLimit returns the maximum number of rows.
func (m *Manager) RowLimit() int {
	return m.rowLimit
}

// Reset empties the history, leaving the first row in place.
func (m *Manager) Reset() {
	m.rows = nil
	if m.Enabled() {
		m.rows = [][]model.ColorEntry{{}}
	}
	m.setSize = 0
	m.positions = nil
}

// Seed replaces the history with ranked entries, capped to Capacity.
// Does nothing when the history is disabled or ranked is empty.
func (m *Manager) Seed(ranked []model.ColorEntry) {
	if !m.Enabled() || len(ranked) == 0 {
		return
	}
	if len(ranked) > m.Capacity() {
		ranked = ranked[:m.Capacity()]
	}

	m.rows = nil
	for i, entry := range ranked {
		if i%m.colorsPerRow == 0 {
			m.rows = append(m.rows, make([]model.ColorEntry, 0, m.colorsPerRow))
		}
		last := len(m.rows) - 1
		m.rows[last] = append(m.rows[last], entry)
	}

	m.setSize = len(ranked)
	m.reindex()
}

// ChooseColor records that code was picked.
//
// A color already in the history is promoted to the front of the first row;
// a new one is inserted there. Overflow then cascades forward through the rows
// and the last entry of the last allowed row is evicted.
func (m *Manager) ChooseColor(code model.ColorCode, label string) {
	if !m.Enabled() {
		return
	}

	count := m.TotalEntries()
	if row, col, ok := m.find(code); ok {
		entry := m.rows[row][col]
		m.rows[row] = slices.Delete(m.rows[row], col, col+1)
		m.prepend(entry)
	} else {
		if count < m.Capacity() {
			count++
		}
		m.prepend(model.ColorEntry{Code: code, Label: label})
	}

	m.rearrange()
	m.setSize = count
	m.reindex()
}

func (m *Manager) prepend(entry model.ColorEntry) {
	m.rows[0] = slices.Insert(m.rows[0], 0, entry)
}

// rearrange restores the per-row limit after a single insertion at the front.
func (m *Manager) rearrange() {
	for i := 0; i < m.rowLimit && i < len(m.rows); i++ {
		row := m.rows[i]
		if len(row) <= m.colorsPerRow {
			return
		}

		overflow := row[len(row)-1]
		m.rows[i] = row[:len(row)-1]

		switch {
		case i+1 < len(m.rows):
			m.rows[i+1] = slices.Insert(m.rows[i+1], 0, overflow)
		case i < m.rowLimit-1:
			m.rows = append(m.rows, []model.ColorEntry{overflow})
		default:
			// Last allowed row: the overflow entry is evicted.
		}
	}
}

func (m *Manager) find(code model.ColorCode) (row, col int, ok bool) {
	for r, entries := range m.rows {
		for c, e := range entries {
			if e.Code == code {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (m *Manager) reindex() {
	m.positions = m.positions[:0]
	index := 1
	for _, row := range m.rows {
		for _, e := range row {
			m.positions = append(m.positions, model.Position{Code: e.Code, Index: index, SetSize: m.setSize})
			index++
		}
	}
}

// TotalEntries returns the number of colors across all rows.
func (m *Manager) TotalEntries() int {
	n := 0
	for _, row := range m.rows {
		n += len(row)
	}
	return n
}

// Rows returns a copy of the non-empty rows.
func (m *Manager) Rows() [][]model.ColorEntry {
	var rows [][]model.ColorEntry
	for _, row := range m.rows {
		if len(row) == 0 {
			continue
		}
		rows = append(rows, slices.Clone(row))
	}
	return rows
}

// Entries returns all colors in display order.
func (m *Manager) Entries() []model.ColorEntry {
	entries := make([]model.ColorEntry, 0, m.TotalEntries())
	for _, row := range m.rows {
		entries = append(entries, row...)
	}
	return entries
}

// Positions returns the accessible position of every entry, in display order.
func (m *Manager) Positions() []model.Position {
	return slices.Clone(m.positions)
}

// SetSize returns the set size reported with every position.
func (m *Manager) SetSize() int {
	return m.setSize
}

// Contains reports whether code is in the history.
func (m *Manager) Contains(code model.ColorCode) bool {
	_, _, ok := m.find(code)
	return ok
}

// IndexOf returns the 1-based display position of code, or 0.
func (m *Manager) IndexOf(code model.ColorCode) int {
	for _, p := range m.positions {
		if p.Code == code {
			return p.Index
		}
	}
	return 0
}
