// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package result classifies per-domain certificate check outcomes and
// orders them for presentation.
//
// Every outcome falls into one of three tiers:
//   - [KindExpiry]: the outcome parsed as an expiry date
//   - [KindUnparseable]: the outcome looked like a date but did not parse
//   - [KindError]: the outcome contains the marker "Error"
//
// [Sort] keeps the tiers in that order regardless of direction. Only the
// order of expiry dates is reversed by [Descending]; the other two tiers keep
// their input order.
package result
