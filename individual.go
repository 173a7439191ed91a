package gedcom

import "strings"

// Individual is a person record (tag INDI): names, sex, life events,
// attributes and links to the families the person belongs to.
type Individual struct {
	Xref       Xref               `json:"xref,omitempty"`
	Name       *Name              `json:"name,omitempty"`
	Gender     *Gender            `json:"gender,omitempty"`
	Events     []*EventDetail     `json:"events,omitempty"`
	Attributes []*AttributeDetail `json:"attributes,omitempty"`
	Families   []*FamilyLink      `json:"families,omitempty"`
	Citations  []*Citation        `json:"citations,omitempty"`
	Multimedia []*MultimediaLink  `json:"multimedia,omitempty"`
	Note       *Note              `json:"note,omitempty"`
	Change     *ChangeDate        `json:"change,omitempty"`
	Custom     []*UserDefinedTag  `json:"custom,omitempty"`
}

func newIndividual(t *Tokenizer, level uint8, xref Xref, warns *[]Warning) (*Individual, error) {
	indi := &Individual{Xref: xref}
	if err := indi.parse(t, level, warns); err != nil {
		return nil, err
	}
	return indi, nil
}

func (i *Individual) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the INDI tag
	if err := t.Next(); err != nil {
		return err
	}

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		if typ, ok := eventTypeFromTag(tag); ok {
			var event *EventDetail
			event, err = newEventDetail(t, level+1, typ, warns)
			if err == nil {
				i.Events = append(i.Events, event)
			}
			return err
		}
		if ok := isAttributeTag(tag); ok {
			var attr *AttributeDetail
			attr, err = newAttributeDetail(t, level+1, tag, warns)
			if err == nil {
				i.Attributes = append(i.Attributes, attr)
			}
			return err
		}
		switch tag {
		case "NAME":
			i.Name, err = newName(t, level+1, warns)
		case "SEX":
			i.Gender, err = newGender(t, level+1, warns)
		case "FAMC", "FAMS":
			var link *FamilyLink
			link, err = newFamilyLink(t, level+1, tag, warns)
			if err == nil {
				i.Families = append(i.Families, link)
			}
		case "SOUR":
			var cite *Citation
			cite, err = newCitation(t, level+1, warns)
			if err == nil {
				i.Citations = append(i.Citations, cite)
			}
		case "OBJE":
			var media *MultimediaLink
			media, err = newMultimediaLink(t, level+1, warns)
			if err == nil {
				i.Multimedia = append(i.Multimedia, media)
			}
		case "NOTE":
			i.Note, err = newNote(t, level+1, warns)
		case "CHAN":
			i.Change, err = newChangeDate(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	i.Custom = custom
	return err
}

// String renders the individual for display: xref then name.
func (i *Individual) String() string {
	var b strings.Builder
	if i.Xref != "" {
		b.WriteString(i.Xref)
	}
	if i.Name != nil {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(i.Name.String())
	}
	return b.String()
}

// Name is a personal name (tag NAME). The value keeps the GEDCOM form
// with the surname between slashes; the pieces refine it.
type Name struct {
	Value         string            `json:"value,omitempty"`
	Given         string            `json:"given,omitempty"`
	Surname       string            `json:"surname,omitempty"`
	Prefix        string            `json:"prefix,omitempty"`
	Suffix        string            `json:"suffix,omitempty"`
	SurnamePrefix string            `json:"surname_prefix,omitempty"`
	Nickname      string            `json:"nickname,omitempty"`
	Citations     []*Citation       `json:"citations,omitempty"`
	Note          *Note             `json:"note,omitempty"`
	Custom        []*UserDefinedTag `json:"custom,omitempty"`
}

func newName(t *Tokenizer, level uint8, warns *[]Warning) (*Name, error) {
	name := &Name{}
	if err := name.parse(t, level, warns); err != nil {
		return nil, err
	}
	return name, nil
}

func (n *Name) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeContinuedText(level)
	if err != nil {
		return err
	}
	n.Value = value

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "GIVN":
			n.Given, err = t.takeLineValue()
		case "SURN":
			n.Surname, err = t.takeLineValue()
		case "NPFX":
			n.Prefix, err = t.takeLineValue()
		case "NSFX":
			n.Suffix, err = t.takeLineValue()
		case "SPFX":
			n.SurnamePrefix, err = t.takeLineValue()
		case "NICK":
			n.Nickname, err = t.takeLineValue()
		case "SOUR":
			var cite *Citation
			cite, err = newCitation(t, level+1, warns)
			if err == nil {
				n.Citations = append(n.Citations, cite)
			}
		case "NOTE":
			n.Note, err = newNote(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	n.Custom = custom
	return err
}

// String renders the name for display, dropping the surname slashes.
func (n *Name) String() string {
	return strings.TrimSpace(strings.ReplaceAll(n.Value, "/", " "))
}

// GivenName returns the given-name piece, falling back to the part of
// the value before the first slash.
func (n *Name) GivenName() string {
	if n.Given != "" {
		return n.Given
	}
	before, _, _ := strings.Cut(n.Value, "/")
	return strings.TrimSpace(before)
}

// SurnameName returns the surname piece, falling back to the part of
// the value between the slashes.
func (n *Name) SurnameName() string {
	if n.Surname != "" {
		return n.Surname
	}
	_, after, found := strings.Cut(n.Value, "/")
	if !found {
		return ""
	}
	surname, _, _ := strings.Cut(after, "/")
	return strings.TrimSpace(surname)
}

// GenderKind is the sex of an individual at birth.
type GenderKind string

const (
	GenderMale   GenderKind = "Male"
	GenderFemale GenderKind = "Female"
	// GenderNonbinary (tag value X) does not fit the typical definition
	// of only male or only female.
	GenderNonbinary GenderKind = "Nonbinary"
	// GenderUnknown (tag value U) cannot be determined from available
	// sources.
	GenderUnknown GenderKind = "Unknown"
)

// Gender is the sex record (tag SEX). A value outside M, F, X and U is
// fatal in strict mode; in lenient mode it is recorded as a warning and
// the kind stays Unknown.
type Gender struct {
	Kind      GenderKind        `json:"kind"`
	Fact      string            `json:"fact,omitempty"`
	Citations []*Citation       `json:"citations,omitempty"`
	Custom    []*UserDefinedTag `json:"custom,omitempty"`
}

func newGender(t *Tokenizer, level uint8, warns *[]Warning) (*Gender, error) {
	gender := &Gender{Kind: GenderUnknown}
	if err := gender.parse(t, level, warns); err != nil {
		return nil, err
	}
	return gender, nil
}

func (g *Gender) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the SEX tag
	if err := t.Next(); err != nil {
		return err
	}

	if t.Current.Kind == TokenLineValue {
		switch t.Current.Text {
		case "M":
			g.Kind = GenderMale
		case "F":
			g.Kind = GenderFemale
		case "X":
			g.Kind = GenderNonbinary
		case "U":
			g.Kind = GenderUnknown
		default:
			if warns == nil {
				return invalidValueFormat(t.Line, "SEX", t.Current.Text)
			}
			*warns = append(*warns, newWarning(t.Line, WarningInvalidFormat, "SEX "+t.Current.Text))
		}
		if err := t.Next(); err != nil {
			return err
		}
	}

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "FACT":
			g.Fact, err = t.takeContinuedText(level + 1)
		case "SOUR":
			var cite *Citation
			cite, err = newCitation(t, level+1, warns)
			if err == nil {
				g.Citations = append(g.Citations, cite)
			}
		default:
			return errUnknownTag
		}
		return err
	})
	g.Custom = custom
	return err
}

// isAttributeTag reports whether the tag names an individual attribute.
func isAttributeTag(tag string) bool {
	switch tag {
	case "CAST", "DSCR", "EDUC", "IDNO", "NATI", "NCHI", "NMR",
		"OCCU", "PROP", "RELI", "SSN", "TITL", "FACT":
		return true
	}
	return false
}

// AttributeDetail is an individual attribute such as occupation or
// title. Attributes share the event body shape: a value plus the usual
// date, place, source and note substructures.
type AttributeDetail struct {
	Tag       string            `json:"tag"`
	Value     string            `json:"value,omitempty"`
	Kind      string            `json:"kind,omitempty"`
	Date      *Date             `json:"date,omitempty"`
	Place     *Place            `json:"place,omitempty"`
	Citations []*Citation       `json:"citations,omitempty"`
	Note      *Note             `json:"note,omitempty"`
	Custom    []*UserDefinedTag `json:"custom,omitempty"`
}

func newAttributeDetail(t *Tokenizer, level uint8, tag string, warns *[]Warning) (*AttributeDetail, error) {
	attr := &AttributeDetail{Tag: tag}
	if err := attr.parse(t, level, warns); err != nil {
		return nil, err
	}
	return attr, nil
}

func (a *AttributeDetail) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeLineValue()
	if err != nil {
		return err
	}
	a.Value = value

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "TYPE":
			a.Kind, err = t.takeLineValue()
		case "DATE":
			a.Date, err = newDate(t, level+1, warns)
		case "PLAC":
			a.Place, err = newPlace(t, level+1, warns)
		case "SOUR":
			var cite *Citation
			cite, err = newCitation(t, level+1, warns)
			if err == nil {
				a.Citations = append(a.Citations, cite)
			}
		case "NOTE":
			a.Note, err = newNote(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	a.Custom = custom
	return err
}

// FamilyLink connects an individual to a family, as child (tag FAMC)
// or as spouse (tag FAMS).
type FamilyLink struct {
	Xref Xref `json:"xref,omitempty"`
	// Tag is FAMC or FAMS.
	Tag string `json:"tag"`
	// Pedigree is the child-to-family linkage type (tag PEDI).
	Pedigree string `json:"pedigree,omitempty"`
	// AdoptedBy names which parent adopted the child: HUSB, WIFE or
	// BOTH (tag ADOP).
	AdoptedBy string `json:"adopted_by,omitempty"`
	Note      *Note  `json:"note,omitempty"`
}

func newFamilyLink(t *Tokenizer, level uint8, tag string, warns *[]Warning) (*FamilyLink, error) {
	link := &FamilyLink{Tag: tag}
	if err := link.parse(t, level, warns); err != nil {
		return nil, err
	}
	return link, nil
}

func (f *FamilyLink) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	xref, err := t.takeLineValue()
	if err != nil {
		return err
	}
	f.Xref = xref

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "PEDI":
			f.Pedigree, err = t.takeLineValue()
		case "ADOP":
			f.AdoptedBy, err = t.takeLineValue()
		case "NOTE":
			f.Note, err = newNote(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}
