package gedcom

import "strings"

// Header is the file metadata record (tag HEAD): the producing system,
// the format version and character set of the transmission, and links
// to the submitter and submission records.
type Header struct {
	Gedcom      *HeadMeta         `json:"gedcom,omitempty"`
	Encoding    *Encoding         `json:"encoding,omitempty"`
	Source      *HeadSource       `json:"source,omitempty"`
	Destination string            `json:"destination,omitempty"`
	Date        *Date             `json:"date,omitempty"`
	Submitter   Xref              `json:"submitter,omitempty"`
	Submission  Xref              `json:"submission,omitempty"`
	File        string            `json:"file,omitempty"`
	Copyright   string            `json:"copyright,omitempty"`
	Language    string            `json:"language,omitempty"`
	Place       *HeadPlace        `json:"place,omitempty"`
	Note        *Note             `json:"note,omitempty"`
	Custom      []*UserDefinedTag `json:"custom,omitempty"`
}

func newHeader(t *Tokenizer, level uint8, warns *[]Warning) (*Header, error) {
	header := &Header{}
	if err := header.parse(t, level, warns); err != nil {
		return nil, err
	}
	return header, nil
}

func (h *Header) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the HEAD tag
	if err := t.Next(); err != nil {
		return err
	}

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "GEDC":
			h.Gedcom, err = newHeadMeta(t, level+1, warns)
		case "CHAR":
			h.Encoding, err = newEncoding(t, level+1, warns)
		case "SOUR":
			h.Source, err = newHeadSource(t, level+1, warns)
		case "DEST":
			h.Destination, err = t.takeLineValue()
		case "DATE":
			h.Date, err = newDate(t, level+1, warns)
		case "SUBM":
			h.Submitter, err = t.takeLineValue()
		case "SUBN":
			h.Submission, err = t.takeLineValue()
		case "FILE":
			h.File, err = t.takeLineValue()
		case "COPR":
			h.Copyright, err = t.takeLineValue()
		case "LANG":
			h.Language, err = t.takeLineValue()
		case "PLAC":
			h.Place, err = newHeadPlace(t, level+1, warns)
		case "NOTE":
			h.Note, err = newNote(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	h.Custom = custom
	return err
}

// HeadMeta (tag GEDC) carries the version and form of the transmission
// itself.
type HeadMeta struct {
	Version string `json:"version,omitempty"`
	Form    string `json:"form,omitempty"`
}

func newHeadMeta(t *Tokenizer, level uint8, warns *[]Warning) (*HeadMeta, error) {
	meta := &HeadMeta{}
	if err := meta.parse(t, level, warns); err != nil {
		return nil, err
	}
	return meta, nil
}

func (m *HeadMeta) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	// step past the GEDC tag
	if err := t.Next(); err != nil {
		return err
	}

	_, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		var value string
		switch tag {
		case "VERS":
			value, err = t.takeLineValue()
			m.Version = strings.TrimSpace(value)
		case "FORM":
			value, err = t.takeLineValue()
			m.Form = strings.TrimSpace(value)
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// Encoding (tag CHAR) names the character set of the transmission. The
// value is required.
type Encoding struct {
	Value   string `json:"value,omitempty"`
	Version string `json:"version,omitempty"`
}

func newEncoding(t *Tokenizer, level uint8, warns *[]Warning) (*Encoding, error) {
	enc := &Encoding{}
	if err := enc.parse(t, level, warns); err != nil {
		return nil, err
	}
	return enc, nil
}

func (e *Encoding) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := expectValue(t, warns, "CHAR")
	if err != nil {
		return err
	}
	e.Value = strings.TrimSpace(value)

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "VERS":
			e.Version, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// HeadSource (tag SOUR under HEAD) identifies the system that produced
// the transmission.
type HeadSource struct {
	Value       string          `json:"value,omitempty"`
	Version     string          `json:"version,omitempty"`
	Name        string          `json:"name,omitempty"`
	Corporation *Corporation    `json:"corporation,omitempty"`
	Data        *HeadSourceData `json:"data,omitempty"`
}

func newHeadSource(t *Tokenizer, level uint8, warns *[]Warning) (*HeadSource, error) {
	source := &HeadSource{}
	if err := source.parse(t, level, warns); err != nil {
		return nil, err
	}
	return source, nil
}

func (s *HeadSource) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeLineValue()
	if err != nil {
		return err
	}
	s.Value = value

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "VERS":
			s.Version, err = t.takeLineValue()
		case "NAME":
			s.Name, err = t.takeLineValue()
		case "CORP":
			s.Corporation, err = newCorporation(t, level+1, warns)
		case "DATA":
			s.Data, err = newHeadSourceData(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// Corporation (tag CORP) is the business producing the source system.
type Corporation struct {
	Value   string   `json:"value,omitempty"`
	Address *Address `json:"address,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Fax     string   `json:"fax,omitempty"`
	Website string   `json:"website,omitempty"`
}

func newCorporation(t *Tokenizer, level uint8, warns *[]Warning) (*Corporation, error) {
	corp := &Corporation{}
	if err := corp.parse(t, level, warns); err != nil {
		return nil, err
	}
	return corp, nil
}

func (c *Corporation) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeLineValue()
	if err != nil {
		return err
	}
	c.Value = value

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "ADDR":
			c.Address, err = newAddress(t, level+1, warns)
		case "PHON":
			c.Phone, err = t.takeLineValue()
		case "EMAIL":
			c.Email, err = t.takeLineValue()
		case "FAX":
			c.Fax, err = t.takeLineValue()
		case "WWW":
			c.Website, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// HeadSourceData (tag DATA under HEAD.SOUR) names the electronic data
// the producing system drew on.
type HeadSourceData struct {
	Value     string `json:"value,omitempty"`
	Date      *Date  `json:"date,omitempty"`
	Copyright string `json:"copyright,omitempty"`
}

func newHeadSourceData(t *Tokenizer, level uint8, warns *[]Warning) (*HeadSourceData, error) {
	data := &HeadSourceData{}
	if err := data.parse(t, level, warns); err != nil {
		return nil, err
	}
	return data, nil
}

func (d *HeadSourceData) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeLineValue()
	if err != nil {
		return err
	}
	d.Value = value

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "DATE":
			d.Date, err = newDate(t, level+1, warns)
		case "COPR":
			d.Copyright, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}

// HeadPlace (tag PLAC under HEAD) sets the default place hierarchy for
// the whole file.
type HeadPlace struct {
	Form string `json:"form,omitempty"`
}

func newHeadPlace(t *Tokenizer, level uint8, warns *[]Warning) (*HeadPlace, error) {
	place := &HeadPlace{}
	if err := place.parse(t, level, warns); err != nil {
		return nil, err
	}
	return place, nil
}

func (p *HeadPlace) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	if _, err := t.takeLineValue(); err != nil {
		return err
	}

	_, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "FORM":
			p.Form, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	return err
}
