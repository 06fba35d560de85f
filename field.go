package qsgen

// StartField opens a field scope, name:( . A blank name opens nothing.
// Every StartField must be matched by an EndField.
func (q *Query) StartField(name string, m Modifier) *Query {
	if isBlank(name) {
		return q
	}
	q.write(m.term.Prefix() + name + ":(")
	return q
}

// EndField closes the innermost field scope. An empty scope gets an empty
// phrase so the parentheses never enclose nothing.
func (q *Query) EndField() *Query {
	if q.lastByte() == '(' {
		q.write(`""`)
	}
	q.write(") ")
	return q
}

// AddField appends key:(value). The value may be anything AddArgument
// takes and is rendered without a term modifier of its own; m's term
// modifier goes in front of the field. Nothing is added when key is blank
// or value renders nothing, eg a group of blanks.
func (q *Query) AddField(key string, value any, m Modifier) *Query {
	if isBlank(key) {
		return q
	}
	a, ok := classify(value)
	if !ok || a.empty() {
		return q
	}
	start := q.mark()
	q.StartField(key, m)
	open := q.mark()
	q.AddArgument(value, m.NestedArgumentModifier())
	if q.mark() == open {
		q.truncate(start)
		return q
	}
	return q.EndField()
}
