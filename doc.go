// Package cryptax calculates United Kingdom tax liabilities arising from
// cryptocurrency transactions. It is designed to be local-first: all inputs
// are plain CSV files kept by the user, and every figure in a report can be
// traced back to those records.
//
// The core functionalities include:
//   - Transaction Histories: Recording gain (acquisition/disposal) and income
//     transactions in chronological, date-keyed histories.
//   - Price Resolution: Valuing any asset in the reporting currency on any
//     date, following chains of quoted prices (for example an asset quoted in
//     bitcoin which is itself quoted in pound sterling).
//   - Capital Gains: Matching disposals against acquisitions under the HMRC
//     rules, in order: same-day acquisitions, acquisitions within the
//     following 30 days, and finally the Section 104 holding with its
//     averaged cost.
//   - Income: Valuing income and expenditure transactions at their
//     transaction date and netting revenue against expenditure.
//
// This package serves as the foundational logic for the `cryptax`
// command-line tool.
package cryptax
