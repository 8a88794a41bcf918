//go:build mage

// Package main provides build targets for the kwargs project using Mage.
//
// Usage:
//
//	mage build          Compile kwgen binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the examples
//	mage generate       Regenerate every schema under examples/
//	mage check          Fail if any generated file is stale
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install kwgen to GOPATH/bin
//	mage stats          Print Go LOC
package main

// Binary names.
const (
	binGo   = "go"
	binLint = "golangci-lint"
)

const (
	binaryName  = "kwgen"
	binaryDir   = "bin"
	cmdDir      = "./cmd/kwgen"
	examplesDir = "examples"
)
