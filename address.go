package gedcom

import "strings"

// Address is a mailing address (tag ADDR). The value itself may span
// several CONT lines; the structured fields refine it.
type Address struct {
	Value      string `json:"value,omitempty"`
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	Line3      string `json:"line3,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

func newAddress(t *Tokenizer, level uint8, warns *[]Warning) (*Address, error) {
	addr := &Address{}
	if err := addr.parse(t, level, warns); err != nil {
		return nil, err
	}
	return addr, nil
}

func (a *Address) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	first, err := t.takeLineValue()
	if err != nil {
		return err
	}

	// Continuations are handled as ordinary subtags so that structured
	// fields may follow them.
	var value strings.Builder
	value.WriteString(first)

	_, err = parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "CONT":
			var part string
			part, err = t.takeLineValue()
			if err == nil {
				value.WriteByte('\n')
				value.WriteString(part)
			}
		case "CONC":
			var part string
			part, err = t.takeLineValue()
			if err == nil {
				value.WriteString(part)
			}
		case "ADR1":
			a.Line1, err = t.takeLineValue()
		case "ADR2":
			a.Line2, err = t.takeLineValue()
		case "ADR3":
			a.Line3, err = t.takeLineValue()
		case "CITY":
			a.City, err = t.takeLineValue()
		case "STAE":
			a.State, err = t.takeLineValue()
		case "POST":
			a.PostalCode, err = t.takeLineValue()
		case "CTRY":
			a.Country, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	a.Value = value.String()
	return err
}
