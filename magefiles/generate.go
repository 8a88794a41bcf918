//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// schemaFiles returns every schema under examples/ paired with the generated
// file that sits next to it.
func schemaFiles() (map[string]string, error) {
	pairs := make(map[string]string)
	err := filepath.Walk(examplesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}
		base := strings.TrimSuffix(filepath.Base(path), ".yaml")
		pairs[path] = filepath.Join(filepath.Dir(path), base+"_kw.go")
		return nil
	})
	return pairs, err
}

// Generate regenerates the Go package for every schema under examples/.
func Generate() error {
	mg.Deps(Build)
	pairs, err := schemaFiles()
	if err != nil {
		return err
	}
	kwgen := filepath.Join(binaryDir, binaryName)
	for schema, out := range pairs {
		if err := sh.RunV(kwgen, "generate", schema, "-o", out); err != nil {
			return fmt.Errorf("generate %s: %w", schema, err)
		}
	}
	return nil
}

// Check fails if any generated file under examples/ no longer matches its
// schema.
func Check() error {
	mg.Deps(Build)
	pairs, err := schemaFiles()
	if err != nil {
		return err
	}
	kwgen := filepath.Join(binaryDir, binaryName)
	for schema, out := range pairs {
		if err := sh.RunV(kwgen, "check", schema, out); err != nil {
			return err
		}
	}
	return nil
}
