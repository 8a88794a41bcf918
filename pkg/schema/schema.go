// Package schema declares a closed slot set for named arguments. A schema is
// the single source from which the generated cell type, lookup type and
// per-slot constructors are derived.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Slot declares one named argument.
type Slot struct {
	Name string `yaml:"name" json:"name"` // Exported Go identifier, unique within the schema.
	Type string `yaml:"type" json:"type"` // Go type expression of the stored value.
	Doc  string `yaml:"doc,omitempty" json:"doc,omitempty"`
}

// Schema is a parsed slot-set declaration.
type Schema struct {
	Package string   `yaml:"package" json:"package"`
	Imports []string `yaml:"imports,omitempty" json:"imports,omitempty"`
	Slots   []Slot   `yaml:"slots" json:"slots"`
}

// Validation errors.
var (
	ErrPackageEmpty   = errors.New("package must not be empty")
	ErrPackageInvalid = errors.New("package is not a valid Go package name")
	ErrNoSlots        = errors.New("schema declares no slots")
	ErrSlotName       = errors.New("slot name must be an exported Go identifier")
	ErrSlotType       = errors.New("slot type is not a valid Go type expression")
	ErrDuplicateSlot  = errors.New("duplicate slot name")
	ErrReservedName   = errors.New("slot name is reserved by generated code")
	ErrImportInvalid  = errors.New("invalid import path")
)

// SlotConstPrefix prefixes the generated constant naming each slot.
const SlotConstPrefix = "Slot"

// reservedNames are declared by every generated package.
var reservedNames = map[string]bool{
	"Arg":       true,
	"Cell":      true,
	"Lookup":    true,
	"Pack":      true,
	"Resolve":   true,
	"Empty":     true,
	"SchemaID":  true,
	"SlotNames": true,
}

// idNamespace scopes schema IDs so they cannot collide with other UUID v5
// names.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/mesh-intelligence/kwargs/schema"))

// Parse decodes and validates a YAML schema. Unknown fields are rejected.
func Parse(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that the schema can be turned into a Go package. It returns
// an error wrapping one of this package's sentinels.
func (s *Schema) Validate() error {
	if s.Package == "" {
		return ErrPackageEmpty
	}
	if !token.IsIdentifier(s.Package) || s.Package == "_" {
		return fmt.Errorf("%w: %q", ErrPackageInvalid, s.Package)
	}
	for _, imp := range s.Imports {
		if imp == "" || strings.ContainsAny(imp, " \t\"`\\") {
			return fmt.Errorf("%w: %q", ErrImportInvalid, imp)
		}
	}
	if len(s.Slots) == 0 {
		return ErrNoSlots
	}

	// declared maps every package-level name the generated file declares to
	// the slot that introduces it: the constructor Name and the constant
	// SlotName.
	declared := make(map[string]string, 2*len(s.Slots))
	for i, slot := range s.Slots {
		if !token.IsIdentifier(slot.Name) || !token.IsExported(slot.Name) {
			return fmt.Errorf("slot %d: %w: %q", i, ErrSlotName, slot.Name)
		}
		for _, name := range []string{slot.Name, SlotConstPrefix + slot.Name} {
			if reservedNames[name] {
				return fmt.Errorf("slot %d: %w: %q declares %s", i, ErrReservedName, slot.Name, name)
			}
			if prev, ok := declared[name]; ok {
				return fmt.Errorf("slot %d: %w: %q declares %s, already declared by %q",
					i, ErrDuplicateSlot, slot.Name, name, prev)
			}
			declared[name] = slot.Name
		}

		if err := checkType(slot.Type); err != nil {
			return fmt.Errorf("slot %s: %w: %q", slot.Name, ErrSlotType, slot.Type)
		}
	}
	return nil
}

// checkType reports whether typ parses as a Go type in a declaration.
// Value expressions such as 1+2 and trailing declarations are rejected.
func checkType(typ string) error {
	if strings.TrimSpace(typ) == "" {
		return errors.New("empty")
	}
	f, err := parser.ParseFile(token.NewFileSet(), "", "package p\nvar _ "+typ+"\n", 0)
	if err != nil {
		return err
	}
	if len(f.Decls) != 1 {
		return errors.New("not a single type")
	}
	gd, ok := f.Decls[0].(*ast.GenDecl)
	if !ok || len(gd.Specs) != 1 {
		return errors.New("not a single type")
	}
	vs, ok := gd.Specs[0].(*ast.ValueSpec)
	if !ok || vs.Type == nil || len(vs.Values) != 0 {
		return errors.New("not a type")
	}
	return nil
}

// Index returns the slot number of name, or false if the schema does not
// declare it.
func (s *Schema) Index(name string) (int, bool) {
	for i, slot := range s.Slots {
		if slot.Name == name {
			return i, true
		}
	}
	return 0, false
}

// ID returns a deterministic UUID v5 identifying the slot layout: the package
// name, the sorted imports, and each slot's name and type in order. Docs do
// not contribute, so rewording a slot's doc keeps generated code current.
func (s *Schema) ID() string {
	return uuid.NewSHA1(idNamespace, s.canonical()).String()
}

func (s *Schema) canonical() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "package %s\n", s.Package)

	imports := append([]string(nil), s.Imports...)
	sort.Strings(imports)
	for _, imp := range imports {
		fmt.Fprintf(&b, "import %s\n", imp)
	}
	for _, slot := range s.Slots {
		fmt.Fprintf(&b, "slot %s %s\n", slot.Name, strings.TrimSpace(slot.Type))
	}
	return b.Bytes()
}
