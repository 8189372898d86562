package span

// ChangeKind identifies what a change did to the span set.
type ChangeKind uint8

const (
	ChangeAdd ChangeKind = iota
	ChangeRemove
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdd:
		return "add"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	SourceLocal ChangeSource = iota
	// SourceHistory marks changes replayed by Undo or Redo.
	SourceHistory
)

// Change is a normalized, versioned mutation payload.
type Change struct {
	Kind          ChangeKind
	Source        ChangeSource
	Annotation    Annotation
	// Parent is the key of the span directly enclosing Annotation: after the
	// change for adds, before it for removes. Empty at top level.
	Parent        string
	VersionBefore uint64
	VersionAfter  uint64
}

// LastChange returns the most recent effective change.
func (d *Document) LastChange() (Change, bool) {
	if !d.hasLastChange {
		return Change{}, false
	}
	return d.lastChange, true
}

func (d *Document) commitChange(kind ChangeKind, source ChangeSource, a Annotation, parent string) {
	d.lastChange = Change{
		Kind:          kind,
		Source:        source,
		Annotation:    a,
		Parent:        parent,
		VersionBefore: d.version - 1,
		VersionAfter:  d.version,
	}
	d.hasLastChange = true
	if d.opt.OnChange != nil {
		d.opt.OnChange(d.lastChange)
	}
}
