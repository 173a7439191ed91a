package gedcom

// Place locates an event (tag PLAC). Form lists the jurisdictional
// titles of the comma-separated parts of the value.
type Place struct {
	Value string `json:"value,omitempty"`
	Form  string `json:"form,omitempty"`
	Note  *Note  `json:"note,omitempty"`
}

func newPlace(t *Tokenizer, level uint8, warns *[]Warning) (*Place, error) {
	place := &Place{}
	if err := place.parse(t, level, warns); err != nil {
		return nil, err
	}
	return place, nil
}

func (p *Place) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeLineValue()
	if err != nil {
		return err
	}
	p.Value = value

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "FORM":
			p.Form, err = t.takeLineValue()
		case "NOTE":
			p.Note, err = newNote(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}
