// +build tools

// Package tools pins build-time tool dependencies so `go mod tidy`
// does not drop them. It is never compiled into the module proper.
package tools

import (
	_ "golang.org/x/tools/cmd/stringer"
)
