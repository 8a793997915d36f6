// Package charts holds the ChartRenderer implementations that draw the
// average topic distribution of a run.
//
// Subpackages:
//   - echarts: standalone HTML page with an interactive bar chart
//   - terminal: horizontal bars for the CLI and TUI
package charts
