package gedcom

// Source is a source record (tag SOUR): a book, census, certificate or
// other artifact that documents the facts in the file.
type Source struct {
	Xref Xref `json:"xref,omitempty"`
	// Data describes the events the source covers.
	Data         *SourceData       `json:"data,omitempty"`
	Abbreviation string            `json:"abbreviation,omitempty"`
	Title        string            `json:"title,omitempty"`
	Author       string            `json:"author,omitempty"`
	Publication  string            `json:"publication,omitempty"`
	Text         string            `json:"text,omitempty"`
	Repository   *RepoCitation     `json:"repository,omitempty"`
	Multimedia   []*MultimediaLink `json:"multimedia,omitempty"`
	Note         *Note             `json:"note,omitempty"`
	Change       *ChangeDate       `json:"change,omitempty"`
	Custom       []*UserDefinedTag `json:"custom,omitempty"`
}

func newSource(t *Tokenizer, level uint8, xref Xref, warns *[]Warning) (*Source, error) {
	source := &Source{Xref: xref}
	if err := source.parse(t, level, warns); err != nil {
		return nil, err
	}
	return source, nil
}

func (s *Source) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the SOUR tag
	if err := t.Next(); err != nil {
		return err
	}

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "DATA":
			s.Data, err = newSourceData(t, level+1, warns)
		case "ABBR":
			s.Abbreviation, err = t.takeContinuedText(level + 1)
		case "TITL":
			s.Title, err = t.takeContinuedText(level + 1)
		case "AUTH":
			s.Author, err = t.takeContinuedText(level + 1)
		case "PUBL":
			s.Publication, err = t.takeContinuedText(level + 1)
		case "TEXT":
			s.Text, err = t.takeContinuedText(level + 1)
		case "REPO":
			s.Repository, err = newRepoCitation(t, level+1, warns)
		case "OBJE":
			var media *MultimediaLink
			media, err = newMultimediaLink(t, level+1, warns)
			if err == nil {
				s.Multimedia = append(s.Multimedia, media)
			}
		case "NOTE":
			s.Note, err = newNote(t, level+1, warns)
		case "CHAN":
			s.Change, err = newChangeDate(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	s.Custom = custom
	return err
}

// SourceData (tag DATA under a source record) lists the events the
// source recorded and the agency responsible for it.
type SourceData struct {
	Events []*EventDetail `json:"events,omitempty"`
	Agency string         `json:"agency,omitempty"`
	Note   *Note          `json:"note,omitempty"`
}

func newSourceData(t *Tokenizer, level uint8, warns *[]Warning) (*SourceData, error) {
	data := &SourceData{}
	if err := data.parse(t, level, warns); err != nil {
		return nil, err
	}
	return data, nil
}

func (d *SourceData) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the DATA tag
	if err := t.Next(); err != nil {
		return err
	}

	_, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "EVEN":
			var event *EventDetail
			event, err = newEventDetail(t, level+1, EventGeneric, warns)
			if err == nil {
				d.Events = append(d.Events, event)
			}
		case "AGNC":
			d.Agency, err = t.takeLineValue()
		case "NOTE":
			d.Note, err = newNote(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// RepoCitation (tag REPO under a source record) points at the
// repository holding the source, with the call number used there.
type RepoCitation struct {
	Xref       Xref   `json:"xref,omitempty"`
	CallNumber string `json:"call_number,omitempty"`
	// MediaType is the MEDI substructure of the call number.
	MediaType string `json:"media_type,omitempty"`
}

func newRepoCitation(t *Tokenizer, level uint8, warns *[]Warning) (*RepoCitation, error) {
	repo := &RepoCitation{}
	if err := repo.parse(t, level, warns); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *RepoCitation) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	xref, err := t.takeLineValue()
	if err != nil {
		return err
	}
	r.Xref = xref

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "CALN":
			r.CallNumber, err = t.takeLineValue()
			if err != nil {
				return err
			}
			_, err = parseSubset(t, level+1, warns, func(tag string) error {
				var err error
				switch tag {
				case "MEDI":
					r.MediaType, err = t.takeLineValue()
				default:
					return errUnknownTag
				}
				return err
			})
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// CertaintyAssessment is the submitter's evaluation of the credibility
// of a cited piece of evidence (tag QUAY), from 0 (unreliable) to 3
// (direct and primary).
type CertaintyAssessment int

const (
	CertaintyNone CertaintyAssessment = iota
	CertaintyUnreliable
	CertaintyQuestionable
	CertaintySecondary
	CertaintyDirect
)

// Int returns the GEDCOM numeric value and whether one is set.
func (c CertaintyAssessment) Int() (uint8, bool) {
	if c == CertaintyNone {
		return 0, false
	}
	return uint8(c - CertaintyUnreliable), true
}

// String returns the assessment name.
func (c CertaintyAssessment) String() string {
	switch c {
	case CertaintyUnreliable:
		return "Unreliable"
	case CertaintyQuestionable:
		return "Questionable"
	case CertaintySecondary:
		return "Secondary"
	case CertaintyDirect:
		return "Direct"
	}
	return "None"
}

func newCertaintyAssessment(t *Tokenizer, warns *[]Warning) (CertaintyAssessment, error) {
	// step past the QUAY tag
	if err := t.Next(); err != nil {
		return CertaintyNone, err
	}
	if t.Current.Kind != TokenLineValue {
		return CertaintyNone, invalidValueFormat(t.Line, "QUAY", t.Current.String())
	}

	quay := CertaintyNone
	switch t.Current.Text {
	case "0":
		quay = CertaintyUnreliable
	case "1":
		quay = CertaintyQuestionable
	case "2":
		quay = CertaintySecondary
	case "3":
		quay = CertaintyDirect
	default:
		if warns == nil {
			return CertaintyNone, invalidValueFormat(t.Line, "QUAY", t.Current.Text)
		}
		*warns = append(*warns, newWarning(t.Line, WarningInvalidFormat, "QUAY "+t.Current.Text))
	}
	if err := t.Next(); err != nil {
		return CertaintyNone, err
	}
	return quay, nil
}

// Citation (tag SOUR inside another structure) cites a source record
// in support of the enclosing data.
type Citation struct {
	Xref Xref   `json:"xref,omitempty"`
	Page string `json:"page,omitempty"`
	// Data holds the date and text extracted from the source.
	Data      *CitationData       `json:"data,omitempty"`
	Certainty CertaintyAssessment `json:"certainty,omitempty"`
	// RFN is a submitter registered reference, seen in some exports.
	RFN        string            `json:"rfn,omitempty"`
	Multimedia []*MultimediaLink `json:"multimedia,omitempty"`
	Note       *Note             `json:"note,omitempty"`
	Custom     []*UserDefinedTag `json:"custom,omitempty"`
}

func newCitation(t *Tokenizer, level uint8, warns *[]Warning) (*Citation, error) {
	cite := &Citation{}
	if err := cite.parse(t, level, warns); err != nil {
		return nil, err
	}
	return cite, nil
}

func (c *Citation) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	xref, err := t.takeLineValue()
	if err != nil {
		return err
	}
	c.Xref = xref

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "PAGE":
			c.Page, err = t.takeContinuedText(level + 1)
		case "DATA":
			c.Data, err = newCitationData(t, level+1, warns)
		case "QUAY":
			c.Certainty, err = newCertaintyAssessment(t, warns)
		case "RFN":
			c.RFN, err = t.takeLineValue()
		case "OBJE":
			var media *MultimediaLink
			media, err = newMultimediaLink(t, level+1, warns)
			if err == nil {
				c.Multimedia = append(c.Multimedia, media)
			}
		case "NOTE":
			c.Note, err = newNote(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	c.Custom = custom
	return err
}

// CitationData (tag DATA under a citation) carries the entry date and
// the verbatim text extracted from the source.
type CitationData struct {
	Date *Date  `json:"date,omitempty"`
	Text string `json:"text,omitempty"`
}

func newCitationData(t *Tokenizer, level uint8, warns *[]Warning) (*CitationData, error) {
	data := &CitationData{}
	if err := data.parse(t, level, warns); err != nil {
		return nil, err
	}
	return data, nil
}

func (d *CitationData) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the DATA tag
	if err := t.Next(); err != nil {
		return err
	}

	_, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "DATE":
			d.Date, err = newDate(t, level+1, warns)
		case "TEXT":
			d.Text, err = t.takeContinuedText(level + 1)
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}
