// Copyright
// SPDX-License-Identifier: MIT
// propedit: terminal property editor driven by reflection over document types
package main

import (
	"os"

	"propedit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
