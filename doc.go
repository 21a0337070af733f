// Package planilla computes the progress and financial ledger of a fixed-price
// construction contract paid in monthly certificates ("planillas").
//
// The engine is a pure transformation of four inputs:
//   - the budgeted line items, each with its activity window and the quantity
//     executed in every certification period,
//   - the master contract data (amounts, duration, advance payment),
//   - the contractual modifications (change orders, amendments, time
//     extensions), of which only the active ones count,
//   - the penalties registered against periods.
//
// Compute turns them into a Report: the derived contract configuration, the
// period axis, one LedgerEntry per period (planned value, earned value,
// amortization, penalty, liquid payable, financial accumulation, progress
// percentages and SPI/CPI), the per-item history and the per-module statistics.
//
// Nothing is ever patched: every change to an input produces a new Report from
// period 1. Session wraps that policy for interactive surfaces and Cache
// memoises Compute on the full input tuple.
//
// The package does no I/O. Acquisition of the spreadsheet lives in package
// sheet, presentation in packages renderer and export.
package planilla
