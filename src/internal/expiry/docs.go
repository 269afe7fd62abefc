// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package expiry ties the checker, the sorter and the report renderers into
// the pipeline shared by the command line and the MCP tools:
//
//	raw batch -> result.FromRaw -> result.Sort -> report.Write
//
// [Settings] resolves the user facing strings of a config file or tool
// request (order, output, date layout) once, so every entry point applies
// them the same way.
package expiry
