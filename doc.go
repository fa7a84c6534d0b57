// Package networth aggregates the records of an investment portfolio into a
// dashboard. It is designed to be stateless and lenient: the backend records
// are decoded as they come, and every view is recomputed from them.
//
// The core functionalities include:
//   - Decoding: reading portfolios, transactions, positions, performance and
//     calendar events from backend responses, whatever the number encoding.
//   - Holdings: replaying transactions into per asset quantities and costs.
//   - Allocation: the share of each asset in the portfolio value, with colors.
//   - Performance: normalizing a ready or pending performance snapshot.
//   - Income: dividends, coupons and the yield on the invested amount.
//   - Formatting: compact currency amounts such as "Tz12.35K".
//
// The Dashboard type ties them together: given the selection State and the
// latest Inputs, it builds the ViewModel that the renderer package displays.
//
// This package serves as the foundational logic for the `nw` command-line
// tool.
package networth
