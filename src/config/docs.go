// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads checkssl settings from a JSON or YAML file.
//
// Configuration Priority:
//  1. Built-in defaults ([Default])
//  2. The file named by the --config flag, or by the CHECKSSL_CONFIG_FILE
//     environment variable when the flag is empty
//  3. Command line flags, applied by the caller
//
// Every file is validated against an embedded [JSON Schema] before it is
// applied, so typos such as an unknown key or an unsupported output format
// are reported instead of silently ignored.
//
// Example YAML file:
//
//	defaults:
//	  port: 443
//	  timeoutSeconds: 5
//	  concurrency: 16
//	  order: desc
//	  output: markdown
//	domains:
//	  - example.com
//	  - mail.example.com:993
//
// [JSON Schema]: https://json-schema.org
package config
