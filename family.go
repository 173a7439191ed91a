package gedcom

// Family is a relationship record (tag FAM): the two spouses, their
// children, and the events of the relationship.
type Family struct {
	Xref          Xref              `json:"xref,omitempty"`
	Husband       Xref              `json:"husband,omitempty"`
	Wife          Xref              `json:"wife,omitempty"`
	Children      []Xref            `json:"children,omitempty"`
	ChildrenCount string            `json:"children_count,omitempty"`
	Events        []*EventDetail    `json:"events,omitempty"`
	Citations     []*Citation       `json:"citations,omitempty"`
	Multimedia    []*MultimediaLink `json:"multimedia,omitempty"`
	Note          *Note             `json:"note,omitempty"`
	Change        *ChangeDate       `json:"change,omitempty"`
	Custom        []*UserDefinedTag `json:"custom,omitempty"`
}

func newFamily(t *Tokenizer, level uint8, xref Xref, warns *[]Warning) (*Family, error) {
	family := &Family{Xref: xref}
	if err := family.parse(t, level, warns); err != nil {
		return nil, err
	}
	return family, nil
}

func (f *Family) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the FAM tag
	if err := t.Next(); err != nil {
		return err
	}

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		if typ, ok := eventTypeFromTag(tag); ok {
			var event *EventDetail
			event, err = newEventDetail(t, level+1, typ, warns)
			if err == nil {
				f.Events = append(f.Events, event)
			}
			return err
		}
		switch tag {
		case "HUSB":
			f.Husband, err = t.takeLineValue()
		case "WIFE":
			f.Wife, err = t.takeLineValue()
		case "CHIL":
			var child string
			child, err = t.takeLineValue()
			if err == nil {
				f.Children = append(f.Children, child)
			}
		case "NCHI":
			f.ChildrenCount, err = t.takeLineValue()
		case "SOUR":
			var cite *Citation
			cite, err = newCitation(t, level+1, warns)
			if err == nil {
				f.Citations = append(f.Citations, cite)
			}
		case "OBJE":
			var media *MultimediaLink
			media, err = newMultimediaLink(t, level+1, warns)
			if err == nil {
				f.Multimedia = append(f.Multimedia, media)
			}
		case "NOTE":
			f.Note, err = newNote(t, level+1, warns)
		case "CHAN":
			f.Change, err = newChangeDate(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	f.Custom = custom
	return err
}
