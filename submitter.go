package gedcom

// Submitter identifies the individual or organization that contributed
// information in the transmission (tag SUBM). Every record is assumed
// to come from the submitter named in the header unless it points at a
// different one.
type Submitter struct {
	Xref       Xref              `json:"xref,omitempty"`
	Name       string            `json:"name,omitempty"`
	Address    *Address          `json:"address,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Multimedia []*MultimediaLink `json:"multimedia,omitempty"`
	Language   string            `json:"language,omitempty"`
	// RFN is the registered number of a submitter of Ancestral File
	// data, used for identification in later submissions.
	RFN string `json:"rfn,omitempty"`
	// RIN is the record identification number assigned by the source
	// system.
	RIN    string            `json:"rin,omitempty"`
	Note   *Note             `json:"note,omitempty"`
	Change *ChangeDate       `json:"change,omitempty"`
	Custom []*UserDefinedTag `json:"custom,omitempty"`
}

func newSubmitter(t *Tokenizer, level uint8, xref Xref, warns *[]Warning) (*Submitter, error) {
	subm := &Submitter{Xref: xref}
	if err := subm.parse(t, level, warns); err != nil {
		return nil, err
	}
	return subm, nil
}

func (s *Submitter) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the SUBM tag
	if err := t.Next(); err != nil {
		return err
	}

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "NAME":
			s.Name, err = t.takeLineValue()
		case "ADDR":
			s.Address, err = newAddress(t, level+1, warns)
		case "PHON":
			s.Phone, err = t.takeLineValue()
		case "OBJE":
			var media *MultimediaLink
			media, err = newMultimediaLink(t, level+1, warns)
			if err == nil {
				s.Multimedia = append(s.Multimedia, media)
			}
		case "LANG":
			s.Language, err = t.takeLineValue()
		case "RFN":
			s.RFN, err = t.takeLineValue()
		case "RIN":
			s.RIN, err = t.takeLineValue()
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
