package peptide

// Terminus marks whether a category describes an interior residue or a
// residue in a distinguished terminal position.
type Terminus uint8

const (
	// TermNone marks an interior (internal) residue category.
	TermNone Terminus = iota
	// TermN marks an N-terminal residue category.
	TermN
	// TermC marks a C-terminal residue category.
	TermC
)

// String returns the label prefix used for the terminus ("" for interior).
func (t Terminus) String() string {
	switch t {
	case TermN:
		return "nterm"
	case TermC:
		return "cterm"
	default:
		return ""
	}
}

// Category identifies one retention contribution source: a residue type,
// optionally tagged with the terminus it occupies. Categories are comparable
// and suitable as map keys.
//
// The zero Terminus means an interior residue, so Category{Residue: "A"}
// and Internal("A") are the same category.
type Category struct {
	// Residue is the residue label, e.g. "A" or "pS".
	Residue string
	// Terminus distinguishes N-/C-terminal occurrences from interior ones.
	Terminus Terminus
}

// Internal returns the interior category for the given residue label.
func Internal(residue string) Category {
	return Category{Residue: residue}
}

// NTerm returns the N-terminal category for the given residue label.
func NTerm(residue string) Category {
	return Category{Residue: residue, Terminus: TermN}
}

// CTerm returns the C-terminal category for the given residue label.
func CTerm(residue string) Category {
	return Category{Residue: residue, Terminus: TermC}
}

// IsTerminal reports whether the category is terminus-tagged.
func (c Category) IsTerminal() bool {
	return c.Terminus != TermNone
}

// WithTerminus returns the same residue category tagged with t.
func (c Category) WithTerminus(t Terminus) Category {
	return Category{Residue: c.Residue, Terminus: t}
}

// Interior returns the untagged counterpart of the category.
func (c Category) Interior() Category {
	return Category{Residue: c.Residue}
}

// String renders the category as a flat label, e.g. "A", "ntermA", "ctermK".
func (c Category) String() string {
	return c.Terminus.String() + c.Residue
}
