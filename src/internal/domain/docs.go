// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package domain validates the host names handed to the certificate checker
// and loads them from domain list files.
//
// A domain list holds one entry per line. Blank lines and lines starting
// with "#" are ignored, and duplicates are dropped keeping the first
// occurrence. Entries may carry a scheme, a path or a ":port" suffix:
//
//	# production
//	example.com
//	https://shop.example.com/cart
//	mail.example.com:993
package domain
