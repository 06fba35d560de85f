package qsgen

// AddGroup appends items as one parenthesized clause.
//
// nil and blank items are dropped. Each survivor is rendered with
// m.ElementModifier(), so members of a conjunct group are each required
// and members of a disjunct group are optional:
//
//	["a", "", nil, "b"], Required conjunct  =>  +(+a +b)
//
// A group left with nothing to render adds nothing.
func (q *Query) AddGroup(items []any, m Modifier) *Query {
	args := filterArgs(items)
	if len(args) == 0 {
		return q
	}
	q.writeGroup(args, m)
	return q
}

func filterArgs(items []any) []argument {
	args := make([]argument, 0, len(items))
	for _, item := range items {
		a, ok := classify(item)
		if !ok || a.empty() {
			continue
		}
		args = append(args, a)
	}
	return args
}

func (q *Query) writeGroup(args []argument, m Modifier) {
	start := q.mark()
	q.write(m.term.Prefix() + "(")
	open := q.mark()

	em := m.ElementModifier()
	for _, a := range args {
		sep := q.mark()
		if sep > open {
			q.write(" ")
		}
		at := q.mark()
		q.writeElement(a, em)
		if q.mark() == at {
			q.truncate(sep)
		}
	}

	// every member came out empty (eg nested empty queries): retract
	if q.mark() == open {
		q.truncate(start)
		return
	}
	q.write(")")
}

func (q *Query) writeElement(a argument, m Modifier) {
	switch a.kind {
	case argText:
		body, compound := valueBody(a.text, m)
		if compound {
			q.write(m.term.Prefix() + "(" + body + ")")
		} else {
			q.write(m.term.Prefix() + body)
		}
	case argSeq:
		if args := filterArgs(a.items); len(args) > 0 {
			q.writeGroup(args, m)
		}
	case argSub:
		q.write(m.term.Prefix() + "(" + a.text + ")")
	}
}
