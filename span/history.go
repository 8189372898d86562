package span

type historyOp struct {
	kind ChangeKind
	ann  Annotation

	// parent is the enclosing span key of a removed annotation. restore
	// re-adds the annotation directly below it instead of innermost.
	parent  string
	restore bool
}

type historyState struct {
	undo []historyOp
	redo []historyOp
}

func (d *Document) recordUndo(op historyOp) {
	limit := d.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	d.hist.undo = append(d.hist.undo, op)
	if len(d.hist.undo) > limit {
		d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
	}
	d.hist.redo = nil
}

func (d *Document) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Document) CanRedo() bool { return len(d.hist.redo) > 0 }

// Undo reverts the most recent Add or Remove. It reports false when there is
// nothing to undo.
func (d *Document) Undo() bool {
	if len(d.hist.undo) == 0 {
		return false
	}
	i := len(d.hist.undo) - 1
	op := d.hist.undo[i]
	if !d.replay(invert(op)) {
		return false
	}
	d.hist.undo = d.hist.undo[:i]
	d.hist.redo = append(d.hist.redo, op)
	return true
}

// Redo reapplies the most recently undone operation.
func (d *Document) Redo() bool {
	if len(d.hist.redo) == 0 {
		return false
	}
	i := len(d.hist.redo) - 1
	op := d.hist.redo[i]
	if !d.replay(op) {
		return false
	}
	d.hist.redo = d.hist.redo[:i]

	limit := d.opt.HistoryLimit
	if limit > 0 {
		d.hist.undo = append(d.hist.undo, op)
		if len(d.hist.undo) > limit {
			d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
		}
	}
	return true
}

func (d *Document) replay(op historyOp) bool {
	var parent string
	switch op.kind {
	case ChangeAdd:
		var at *node
		if op.restore {
			at = d.root
			if op.parent != "" {
				at = d.byKey[op.parent]
			}
		}
		n, err := d.add(op.ann, at)
		if err != nil {
			return false
		}
		parent = parentKey(n)
	case ChangeRemove:
		_, p, err := d.remove(op.ann.Key())
		if err != nil {
			return false
		}
		parent = p
	default:
		return false
	}
	d.commitChange(op.kind, SourceHistory, op.ann, parent)
	return true
}

// invert returns the operation that undoes op. Undoing a remove puts the
// span back at the level it was removed from.
func invert(op historyOp) historyOp {
	if op.kind == ChangeAdd {
		return historyOp{kind: ChangeRemove, ann: op.ann}
	}
	return historyOp{kind: ChangeAdd, ann: op.ann, parent: op.parent, restore: true}
}
