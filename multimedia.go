package gedcom

// Multimedia is a media object record (tag OBJE at the top level):
// one or more file references plus descriptive metadata.
type Multimedia struct {
	Xref  Xref              `json:"xref,omitempty"`
	Files []*MultimediaFile `json:"files,omitempty"`
	// Form is the record-level format, used by older files that place
	// FORM directly under the record.
	Form  *MultimediaFormat `json:"form,omitempty"`
	Title string            `json:"title,omitempty"`
	// RefNumber is a user-defined reference number (tag REFN).
	RefNumber string            `json:"ref_number,omitempty"`
	RIN       string            `json:"rin,omitempty"`
	Note      *Note             `json:"note,omitempty"`
	Change    *ChangeDate       `json:"change,omitempty"`
	Custom    []*UserDefinedTag `json:"custom,omitempty"`
}

func newMultimedia(t *Tokenizer, level uint8, xref Xref, warns *[]Warning) (*Multimedia, error) {
	media := &Multimedia{Xref: xref}
	if err := media.parse(t, level, warns); err != nil {
		return nil, err
	}
	return media, nil
}

func (m *Multimedia) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the OBJE tag
	if err := t.Next(); err != nil {
		return err
	}

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "FILE":
			var file *MultimediaFile
			file, err = newMultimediaFile(t, level+1, warns)
			if err == nil {
				m.Files = append(m.Files, file)
			}
		case "FORM":
			m.Form, err = newMultimediaFormat(t, level+1, warns)
		case "TITL":
			m.Title, err = t.takeLineValue()
		case "REFN":
			m.RefNumber, err = t.takeLineValue()
		case "RIN":
			m.RIN, err = t.takeLineValue()
		case "NOTE":
			m.Note, err = newNote(t, level+1, warns)
		case "CHAN":
			m.Change, err = newChangeDate(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	m.Custom = custom
	return err
}

// MultimediaFile is a local or remote file reference inside a media
// record (tag FILE).
type MultimediaFile struct {
	Value string            `json:"value,omitempty"`
	Title string            `json:"title,omitempty"`
	Form  *MultimediaFormat `json:"form,omitempty"`
}

func newMultimediaFile(t *Tokenizer, level uint8, warns *[]Warning) (*MultimediaFile, error) {
	file := &MultimediaFile{}
	if err := file.parse(t, level, warns); err != nil {
		return nil, err
	}
	return file, nil
}

func (f *MultimediaFile) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeLineValue()
	if err != nil {
		return err
	}
	f.Value = value

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "TITL":
			f.Title, err = t.takeLineValue()
		case "FORM":
			f.Form, err = newMultimediaFormat(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// MultimediaFormat names the media file format (tag FORM) and,
// optionally, the kind of source material it captures (tag MEDI or
// TYPE).
type MultimediaFormat struct {
	Value       string `json:"value,omitempty"`
	SourceMedia string `json:"source_media,omitempty"`
}

func newMultimediaFormat(t *Tokenizer, level uint8, warns *[]Warning) (*MultimediaFormat, error) {
	form := &MultimediaFormat{}
	if err := form.parse(t, level, warns); err != nil {
		return nil, err
	}
	return form, nil
}

func (f *MultimediaFormat) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeLineValue()
	if err != nil {
		return err
	}
	f.Value = value

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "MEDI", "TYPE":
			f.SourceMedia, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// MultimediaLink is an OBJE substructure inside another record: either
// a pointer to a media record or an inline file reference.
type MultimediaLink struct {
	Xref  Xref              `json:"xref,omitempty"`
	File  *MultimediaFile   `json:"file,omitempty"`
	Form  *MultimediaFormat `json:"form,omitempty"`
	Title string            `json:"title,omitempty"`
}

func newMultimediaLink(t *Tokenizer, level uint8, warns *[]Warning) (*MultimediaLink, error) {
	link := &MultimediaLink{}
	if err := link.parse(t, level, warns); err != nil {
		return nil, err
	}
	return link, nil
}

func (l *MultimediaLink) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	xref, err := t.takeLineValue()
	if err != nil {
		return err
	}
	l.Xref = xref

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "FILE":
			l.File, err = newMultimediaFile(t, level+1, warns)
		case "FORM":
			l.Form, err = newMultimediaFormat(t, level+1, warns)
		case "TITL":
			l.Title, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}
