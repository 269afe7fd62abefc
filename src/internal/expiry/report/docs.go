// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report renders sorted certificate expiry results.
//
// The text layout is the aligned two column table printed by the CLI:
//
//	===========================
//	| a.example  | 01.01.2025 |
//	| b.example  |   Error    |
//	===========================
//
// The domain column width is computed once per batch so every row lines up.
// Markdown (via [tablewriter]) and JSON renderings are provided for tooling.
//
// [tablewriter]: https://github.com/olekukonko/tablewriter
package report
