// Package ui provides shared UI constants and utilities.
package ui

const (
	// ScrollMargin is the number of rows kept visible above and below the
	// selected row.
	ScrollMargin = 2

	// DefaultMargin is the horizontal space left on each side of the table.
	DefaultMargin = 1

	// HeaderLines is the number of lines above the first table row.
	HeaderLines = 1

	// ColumnGap is the blank space kept at the right of every cell.
	ColumnGap = 1

	// MinTermWidth is the narrowest terminal the UI renders in.
	MinTermWidth = 20
)
