// Package codegen renders the Go package for a slot schema: slot constants,
// the cell and lookup types, the binder, and one constructor per slot.
package codegen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"

	"github.com/mesh-intelligence/kwargs/pkg/schema"
)

// DefaultKwargsImport is the import path of the core package that generated
// code builds on.
const DefaultKwargsImport = "github.com/mesh-intelligence/kwargs/pkg/kwargs"

// DefaultSuffix is appended to the package name to form the output file name.
const DefaultSuffix = "_kw.go"

// schemaIDMarker prefixes the header line recording the schema ID.
const schemaIDMarker = "// kwgen:schema-id "

// Generation errors.
var (
	ErrNoSchemaID = errors.New("no kwgen schema ID header")
)

// Generator produces Go source for slot schemas.
type Generator struct {
	// kwargsImport is the import path of pkg/kwargs used in generated code.
	kwargsImport string
}

// NewGenerator creates a generator whose output imports the core package
// from kwargsImport. An empty path selects DefaultKwargsImport.
func NewGenerator(kwargsImport string) *Generator {
	if kwargsImport == "" {
		kwargsImport = DefaultKwargsImport
	}
	return &Generator{kwargsImport: kwargsImport}
}

// fileContext is the data handed to the template.
type fileContext struct {
	Source       string
	SchemaID     string
	Package      string
	KwargsImport string
	Imports      []string
	Slots        []slotContext
}

type slotContext struct {
	Name  string
	Type  string
	Field    string
	Doc      string
	Sentence string
}

// Generate renders the package for s. source names the schema file in the
// generated header and may be empty. The output is gofmt'ed with imports
// fixed up.
func (g *Generator) Generate(s *schema.Schema, source string) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	ctx := fileContext{
		SchemaID:     s.ID(),
		Package:      s.Package,
		KwargsImport: g.kwargsImport,
		Imports:      s.Imports,
	}
	if source != "" {
		ctx.Source = filepath.Base(source)
	}
	for _, slot := range s.Slots {
		ctx.Slots = append(ctx.Slots, slotContext{
			Name:     slot.Name,
			Type:     strings.TrimSpace(slot.Type),
			Field:    FieldName(slot.Name),
			Doc:      comment(slot.Doc),
			Sentence: sentence(slot.Doc),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("render %s: %w", s.Package, err)
	}

	out, err := imports.Process(s.Package+DefaultSuffix, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", s.Package, err)
	}
	return out, nil
}

// FileName returns the output file name for s using suffix, or DefaultSuffix
// when suffix is empty.
func FileName(s *schema.Schema, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return s.Package + suffix
}

// FieldName returns the unexported cell field that stores slot name.
func FieldName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:] + "Value"
}

// ReadSchemaID returns the schema ID recorded in the header of generated
// source. Only the lines before the package clause are searched.
func ReadSchemaID(src []byte) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if id, ok := strings.CutPrefix(line, schemaIDMarker); ok {
			return strings.TrimSpace(id), nil
		}
		if strings.HasPrefix(line, "package ") {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", ErrNoSchemaID
}

// comment flattens a doc string onto one line.
func comment(doc string) string {
	return strings.Join(strings.Fields(doc), " ")
}

// sentence flattens doc and formats it as a sentence: first letter upper
// case, terminal punctuation added when missing.
func sentence(doc string) string {
	doc = comment(doc)
	if doc == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(doc)
	doc = string(unicode.ToUpper(r)) + doc[size:]
	if !strings.ContainsAny(doc[len(doc)-1:], ".!?") {
		doc += "."
	}
	return doc
}
