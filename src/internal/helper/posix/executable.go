// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// fallbackName is used when the process was started without argv[0].
const fallbackName = "checkssl"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It is used in the CLI usage and example strings so they show the name the
// binary was actually invoked as.
//
//   - Linux/macOS: "checkssl" from "/usr/local/bin/checkssl"
//   - Windows: "checkssl" from "C:\bin\checkssl.exe"
//   - Fallback: "checkssl" if os.Args[0] is unavailable
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName() string {
	return executableName(os.Args)
}

// executableName extracts the base name of args[0]. Both '/' and '\' are
// treated as separators on every platform, so a Windows path is handled on
// Unix too.
func executableName(args []string) string {
	if len(args) == 0 {
		return fallbackName
	}

	name := args[0]
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".exe")

	if name == "" {
		return fallbackName
	}
	return name
}
