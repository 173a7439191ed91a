package gedcom

// Submission describes the purpose of the transmission (tag SUBN),
// used when sending data to Ancestral File or TempleReady.
type Submission struct {
	Xref      Xref `json:"xref,omitempty"`
	Submitter Xref `json:"submitter,omitempty"`
	// FamilyFile names the family file the data came from.
	FamilyFile string `json:"family_file,omitempty"`
	TempleCode string `json:"temple_code,omitempty"`
	// AncestorGenerations is the number of generations of ancestors
	// requested (tag ANCE).
	AncestorGenerations string `json:"ancestor_generations,omitempty"`
	// DescendantGenerations is the number of generations of descendants
	// requested (tag DESC).
	DescendantGenerations string `json:"descendant_generations,omitempty"`
	// OrdinanceFlag reports whether temple ordinance processing is
	// wanted (tag ORDI).
	OrdinanceFlag string            `json:"ordinance_flag,omitempty"`
	RIN           string            `json:"rin,omitempty"`
	Note          *Note             `json:"note,omitempty"`
	Change        *ChangeDate       `json:"change,omitempty"`
	Custom        []*UserDefinedTag `json:"custom,omitempty"`
}

func newSubmission(t *Tokenizer, level uint8, xref Xref, warns *[]Warning) (*Submission, error) {
	subn := &Submission{Xref: xref}
	if err := subn.parse(t, level, warns); err != nil {
		return nil, err
	}
	return subn, nil
}

func (s *Submission) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the SUBN tag
	if err := t.Next(); err != nil {
		return err
	}

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "SUBM":
			s.Submitter, err = t.takeLineValue()
		case "FAMF":
			s.FamilyFile, err = t.takeLineValue()
		case "TEMP":
			s.TempleCode, err = t.takeLineValue()
		case "ANCE":
			s.AncestorGenerations, err = t.takeLineValue()
		case "DESC":
			s.DescendantGenerations, err = t.takeLineValue()
		case "ORDI":
			s.OrdinanceFlag, err = t.takeLineValue()
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
