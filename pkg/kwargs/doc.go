// Package kwargs passes an unordered subset of named optional arguments into a
// function call without the callee enumerating every argument in its
// signature.
//
// A call site builds one carrier (Arg) per supplied argument, links the
// carriers into a chain, and hands the chain head to the callee. The callee
// resolves the chain once into a lookup holding a pointer per declared slot,
// then queries it with Get or Optional:
//
//	func Draw(title string, args ...*border.Arg) {
//		kw := border.Resolve(border.Pack(args...))
//		size := kwargs.Get(kw.BorderSize, 1)
//		...
//	}
//
//	Draw("box", border.Range(100, 200), border.AddBorder(true))
//	Draw("box", border.Text("hi").Append(border.BorderSize(3)))
//
// The slot set is closed and fixed at build time. The cell type V stored in
// each carrier and the lookup type produced by Resolve are declared together
// by a generated package (see cmd/kwgen), so both sides always agree on the
// slot numbering.
//
// A lookup points into the carriers it was resolved from. It is meant to be
// read only while the call that received the chain is running.
package kwargs
