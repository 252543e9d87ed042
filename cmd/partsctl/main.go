// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command partsctl runs catalog lookups from the shell.
//
// It reads either a JSON export of the products collection (--file) or the
// backend configured through the same environment as the API server, and
// prints results as JSON.
//
// Usage:
//
//	partsctl part 90915-YZZD1 --limit 20
//	partsctl category toyota --file products.json
//	partsctl seed --file products.json   # CATALOG_BACKEND=postgres
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "partsctl:", err)
		os.Exit(1)
	}
}
