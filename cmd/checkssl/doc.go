// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// checkssl reports when the SSL/TLS certificates of a set of domains expire,
// sorted by expiry date.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/floriancrusius/checkssl/cmd/checkssl@latest
//
// # Usage
//
//	checkssl [DOMAIN...] [FLAGS]
//	checkssl sort [FILE] [FLAGS]
//	checkssl mcp [--verbose]
//
// # Flags
//
//	-f, --file          Domain list, one per line, # comments allowed (- for stdin)
//	-c, --cert          Local certificate file to check (repeatable)
//	-d, --desc          List the latest expiry first
//	-w, --width         Minimum width of the domain column
//	-o, --output        text, markdown or json
//	-p, --port          Port for domains without one (default 443)
//	-t, --timeout       Dial and handshake timeout in seconds
//	    --concurrency   Checks in flight
//	    --rate          Maximum handshakes per second
//	    --date-layout   dmy (dd.mm.yyyy) or mdy (mm/dd/yyyy)
//	    --config        JSON or YAML config file (default $CHECKSSL_CONFIG_FILE)
//
// # Examples
//
// Check two domains:
//
//	checkssl example.com mail.example.com:993
//
// Check a list, latest expiry first, as markdown:
//
//	checkssl -f domains.txt --desc -o markdown
//
// Re-sort results collected elsewhere:
//
//	checkssl sort results.json
//
// Output:
//
//	=============================
//	| example.com  | 14.01.2026 |
//	| example.org  | 02.03.2026 |
//	| broken.local |   Error    |
//	=============================
//
// Rows whose result is not a date come after all dates, and rows that could
// not be checked come last.
package main
