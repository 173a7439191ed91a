package gedcom

// Repository is an archive record (tag REPO): the institution holding
// the sources cited elsewhere in the file.
type Repository struct {
	Xref    Xref              `json:"xref,omitempty"`
	Name    string            `json:"name,omitempty"`
	Address *Address          `json:"address,omitempty"`
	Phone   string            `json:"phone,omitempty"`
	Email   string            `json:"email,omitempty"`
	Website string            `json:"website,omitempty"`
	RIN     string            `json:"rin,omitempty"`
	Note    *Note             `json:"note,omitempty"`
	Change  *ChangeDate       `json:"change,omitempty"`
	Custom  []*UserDefinedTag `json:"custom,omitempty"`
}

func newRepository(t *Tokenizer, level uint8, xref Xref, warns *[]Warning) (*Repository, error) {
	repo := &Repository{Xref: xref}
	if err := repo.parse(t, level, warns); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *Repository) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the REPO tag
	if err := t.Next(); err != nil {
		return err
	}

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "NAME":
			r.Name, err = t.takeLineValue()
		case "ADDR":
			r.Address, err = newAddress(t, level+1, warns)
		case "PHON":
			r.Phone, err = t.takeLineValue()
		case "EMAIL":
			r.Email, err = t.takeLineValue()
		case "WWW":
			r.Website, err = t.takeLineValue()
		case "RIN":
			r.RIN, err = t.takeLineValue()
		case "NOTE":
			r.Note, err = newNote(t, level+1, warns)
		case "CHAN":
			r.Change, err = newChangeDate(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	r.Custom = custom
	return err
}
