// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package date parses the textual expiry dates produced by the certificate
// checker into comparable calendar values.
//
// Two layouts are recognized and the separator alone selects between them:
//   - dd.mm.yyyy (dot separated, day first)
//   - mm/dd/yyyy (slash separated, month first)
//
// Range checks are numeric only. A day of 31 is accepted for every month,
// so 31.02.2025 parses and normalizes forward when converted with [Date.Time].
package date
