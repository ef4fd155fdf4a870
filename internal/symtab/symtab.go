// Package symtab implements the symbol table: defined labels mapped to
// byte addresses, and undefined (forward) references mapped to patch
// sites in the output buffer. Grounded on the teacher's label-table shape
// in v0/kasm/codegen_labels.go (a map-backed table with an ordered
// resolution pass), adapted to the append_table/resolve_labels algorithm
// in original_source/src/labels.c: patch sites are byte offsets into a
// flat output buffer rather than section-scoped, and resolution reports
// every unresolved name instead of stopping at the first.
package symtab

import "fmt"

// notFound is the sentinel label_address() returns for an unresolved name.
const notFound = -1

// defined is one entry of the defined-label list.
type defined struct {
	name    string
	address int32
}

// undefined is one entry of the forward-reference list: a name used
// before (or without) a later definition, and the byte offset in the
// output buffer that must be patched with its resolved address.
type undefined struct {
	name       string
	patchOffset int
	line, col   int
}

// Table is the symbol table for one assemble pass. The zero value is
// ready to use.
type Table struct {
	defined   []defined
	undefined []undefined
}

// SaveLabel records name as defined at address. Byte-for-byte a direct
// analogue of original_source's save_label: no duplicate check is
// performed here; a later identical definition is never seen by
// LabelAddress's linear scan (the earliest match found
// during a forward scan from index 0 wins, exactly as in the C source's
// forward-only search).
func (t *Table) SaveLabel(name string, address int32) {
	t.defined = append(t.defined, defined{name: name, address: address})
}

// SaveUndefLabel records a forward reference to name whose resolved
// address must be patched into the output buffer at patchOffset once
// name is defined. line/col are kept for the unresolved-label diagnostic
// issued at Resolve time.
func (t *Table) SaveUndefLabel(name string, patchOffset, line, col int) {
	t.undefined = append(t.undefined, undefined{name: name, patchOffset: patchOffset, line: line, col: col})
}

// LabelAddress returns the address of name if already defined, and
// notFound (-1) otherwise — mirroring original_source's label_address,
// which callers use to decide whether to also record an undefined entry.
func (t *Table) LabelAddress(name string) int32 {
	for _, d := range t.defined {
		if d.name == name {
			return d.address
		}
	}
	return notFound
}

// UnresolvedRef describes one undefined label still outstanding after a
// Resolve pass fails to find it.
type UnresolvedRef struct {
	Name      string
	Line, Col int
}

// Patch is a single 4-byte little-endian address write at Offset.
type Patch struct {
	Offset  int
	Address int32
}

// Resolve walks every undefined entry and looks it up against the
// defined list. It returns the full set of patches to apply for entries
// that resolved, and the full set of names that never did — matching
// original_source/src/labels.c's resolve_labels, which reports every
// unresolved name in one pass rather than aborting at the first (this is
// spec.md §9's "open question", resolved in favor of the original's
// exhaustive-report behavior).
func (t *Table) Resolve() (patches []Patch, unresolved []UnresolvedRef) {
	for _, u := range t.undefined {
		addr := t.LabelAddress(u.name)
		if addr == notFound {
			unresolved = append(unresolved, UnresolvedRef{Name: u.name, Line: u.line, Col: u.col})
			continue
		}
		patches = append(patches, Patch{Offset: u.patchOffset, Address: addr})
	}
	return patches, unresolved
}

// String renders an unresolved reference for diagnostic messages.
func (r UnresolvedRef) String() string {
	return fmt.Sprintf("unresolved label %q at %d:%d", r.Name, r.Line, r.Col)
}
