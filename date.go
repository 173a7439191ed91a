package gedcom

// Date is a date value in any of the GEDCOM forms: exact, approximated,
// period, range or phrase. The parser stores the strings untouched;
// calendar escape recognition and calendar arithmetic belong to a
// separate subsystem that works on the extracted strings.
type Date struct {
	Value string `json:"value,omitempty"`
	// Time is the payload of a TIME substructure, if present.
	Time string `json:"time,omitempty"`
	// Phrase is a free-text rendering of the date (GEDCOM 7.0 PHRASE).
	Phrase string `json:"phrase,omitempty"`
}

func newDate(t *Tokenizer, level uint8, warns *[]Warning) (*Date, error) {
	date := &Date{}
	if err := date.parse(t, level, warns); err != nil {
		return nil, err
	}
	return date, nil
}

func (d *Date) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeLineValue()
	if err != nil {
		return err
	}
	d.Value = value

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "TIME":
			d.Time, err = t.takeLineValue()
		case "PHRASE":
			d.Phrase, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// Datetime joins the date and time payloads into a single string, or
// returns the bare date value when no time is present.
func (d *Date) Datetime() string {
	if d.Time == "" {
		return d.Value
	}
	return d.Value + " " + d.Time
}

// ChangeDate records when the enclosing record last changed (tag CHAN).
type ChangeDate struct {
	Date *Date `json:"date,omitempty"`
	Note *Note `json:"note,omitempty"`
}

func newChangeDate(t *Tokenizer, level uint8, warns *[]Warning) (*ChangeDate, error) {
	change := &ChangeDate{}
	if err := change.parse(t, level, warns); err != nil {
		return nil, err
	}
	return change, nil
}

func (c *ChangeDate) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the CHAN tag
	if err := t.Next(); err != nil {
		return err
	}

	_, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "DATE":
			c.Date, err = newDate(t, level+1, warns)
		case "NOTE":
			c.Note, err = newNote(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}
