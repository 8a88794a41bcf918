package codegen

import "text/template"

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by kwgen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.
` + schemaIDMarker + `{{.SchemaID}}

package {{.Package}}

import (
	"{{.KwargsImport}}"
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// Slots declared by this package, in declaration order.
const (
{{- range $i, $s := .Slots}}
	Slot{{$s.Name}}{{if eq $i 0}} kwargs.Slot = iota{{end}}
{{- end}}
)

// SchemaID identifies the schema this file was generated from.
const SchemaID = "{{.SchemaID}}"

// SlotNames maps each slot to its declared name.
var SlotNames = [...]string{
{{- range .Slots}}
	"{{.Name}}",
{{- end}}
}

// Cell stores the value of one slot. Only the field named by the owning
// carrier's slot is meaningful; it is read through Lookup.
type Cell struct {
{{- range .Slots}}
	{{.Field}} {{.Type}}
{{- end}}
}

// Arg carries one named argument.
type Arg = kwargs.Arg[Cell]

// Lookup holds one pointer per slot into the carriers it was resolved from.
// A nil field means the slot was not supplied.
type Lookup struct {
{{- range .Slots}}
	{{.Name}} *{{.Type}}{{if .Doc}} // {{.Doc}}{{end}}
{{- end}}
}

func bind(l *Lookup, slot kwargs.Slot, c *Cell) {
	switch slot {
{{- range .Slots}}
	case Slot{{.Name}}:
		l.{{.Name}} = &c.{{.Field}}
{{- end}}
	}
}

// Empty returns a carrier holding no argument.
func Empty() *Arg {
	return kwargs.Empty[Cell]()
}

// Pack links args, in order, behind an empty carrier and returns the head.
func Pack(args ...*Arg) *Arg {
	return kwargs.Pack(args...)
}

// Resolve walks the chain from head once and returns its lookup. A slot
// supplied more than once resolves to the last occurrence.
func Resolve(head *Arg) Lookup {
	return kwargs.Resolve(head, bind)
}
{{range .Slots}}
// {{.Name}} supplies the {{.Name}} argument.{{if .Sentence}} {{.Sentence}}{{end}}
func {{.Name}}(v {{.Type}}) *Arg {
	return kwargs.New(Slot{{.Name}}, func(c *Cell) { c.{{.Field}} = v })
}
{{end}}`))
