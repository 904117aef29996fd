package marquee

// Template is the pristine snapshot of a wrap's content, captured once
// before any duplication. Every build clones from it.
type Template struct {
	id   string
	text string
}

func NewTemplate(id, text string) *Template {
	return &Template{id: id, text: text}
}

func (t *Template) ID() string { return t.id }
func (t *Template) Text() string { return t.text }

// clone returns a block copied from the snapshot.
func (t *Template) clone() Block {
	return Block{Text: t.text}
}

// place returns the live block: the original content moved into the strip.
func (t *Template) place() Block {
	return Block{Text: t.text, Live: true}
}
