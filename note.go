package gedcom

// Note is free text attached to a record or substructure (tag NOTE).
// The text may be spread over CONT and CONC lines; the parser
// reassembles it into a single string.
type Note struct {
	Value        string         `json:"value,omitempty"`
	Mime         string         `json:"mime,omitempty"`
	Language     string         `json:"language,omitempty"`
	Translations []*Translation `json:"translations,omitempty"`
	Citations    []*Citation    `json:"citations,omitempty"`
}

// Translation is an alternate rendering of a note's text (tag TRANS).
type Translation struct {
	Value    string `json:"value,omitempty"`
	Mime     string `json:"mime,omitempty"`
	Language string `json:"language,omitempty"`
}

func newNote(t *Tokenizer, level uint8, warns *[]Warning) (*Note, error) {
	note := &Note{}
	if err := note.parse(t, level, warns); err != nil {
		return nil, err
	}
	return note, nil
}

func (n *Note) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeContinuedText(level)
	if err != nil {
		return err
	}
	n.Value = value

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "MIME":
			n.Mime, err = t.takeLineValue()
		case "LANG":
			n.Language, err = t.takeLineValue()
		case "TRANS":
			var tran *Translation
			tran, err = newTranslation(t, level+1, warns)
			if err == nil {
				n.Translations = append(n.Translations, tran)
			}
		case "SOUR":
			var cite *Citation
			cite, err = newCitation(t, level+1, warns)
			if err == nil {
				n.Citations = append(n.Citations, cite)
			}
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

func newTranslation(t *Tokenizer, level uint8, warns *[]Warning) (*Translation, error) {
	tran := &Translation{}
	if err := tran.parse(t, level, warns); err != nil {
		return nil, err
	}
	return tran, nil
}

func (tr *Translation) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeContinuedText(level)
	if err != nil {
		return err
	}
	tr.Value = value

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "MIME":
			tr.Mime, err = t.takeLineValue()
		case "LANG":
			tr.Language, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}
