// Package main provides the kwgen CLI, which generates named-argument
// packages from slot schemas.
package main

import "github.com/mesh-intelligence/kwargs/internal/cli"

func main() {
	cli.Execute()
}
