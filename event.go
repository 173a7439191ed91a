package gedcom

// EventType names a life or family event. The zero value is not
// meaningful; unrecognized tags never produce an EventType because the
// dispatching handler rejects them first.
type EventType string

const (
	EventAdoption           EventType = "Adoption"
	EventAdultChristening   EventType = "AdultChristening"
	EventAnnulment          EventType = "Annulment"
	EventBaptism            EventType = "Baptism"
	EventBarMitzvah         EventType = "BarMitzvah"
	EventBasMitzvah         EventType = "BasMitzvah"
	EventBirth              EventType = "Birth"
	EventBlessing           EventType = "Blessing"
	EventBurial             EventType = "Burial"
	EventCensus             EventType = "Census"
	EventChristening        EventType = "Christening"
	EventConfirmation       EventType = "Confirmation"
	EventCremation          EventType = "Cremation"
	EventDeath              EventType = "Death"
	EventDivorce            EventType = "Divorce"
	EventDivorceFiled       EventType = "DivorceFiled"
	EventEmigration         EventType = "Emigration"
	EventEngagement         EventType = "Engagement"
	EventGeneric            EventType = "Event"
	EventFirstCommunion     EventType = "FirstCommunion"
	EventGraduation         EventType = "Graduation"
	EventImmigration        EventType = "Immigration"
	EventMarriage           EventType = "Marriage"
	EventMarriageBann       EventType = "MarriageBann"
	EventMarriageContract   EventType = "MarriageContract"
	EventMarriageLicense    EventType = "MarriageLicense"
	EventMarriageSettlement EventType = "MarriageSettlement"
	EventNaturalization     EventType = "Naturalization"
	EventOrdination         EventType = "Ordination"
	EventProbate            EventType = "Probate"
	EventResidence          EventType = "Residence"
	EventRetired            EventType = "Retired"
	EventWill               EventType = "Will"
	EventOther              EventType = "Other"
)

// eventTypeFromTag maps a GEDCOM event tag to its type. The boolean
// reports whether the tag names an event at all.
func eventTypeFromTag(tag string) (EventType, bool) {
	switch tag {
	case "ADOP":
		return EventAdoption, true
	case "CHRA":
		return EventAdultChristening, true
	case "ANUL":
		return EventAnnulment, true
	case "BAPM":
		return EventBaptism, true
	case "BARM":
		return EventBarMitzvah, true
	case "BASM":
		return EventBasMitzvah, true
	case "BIRT":
		return EventBirth, true
	case "BLES":
		return EventBlessing, true
	case "BURI":
		return EventBurial, true
	case "CENS":
		return EventCensus, true
	case "CHR":
		return EventChristening, true
	case "CONF":
		return EventConfirmation, true
	case "CREM":
		return EventCremation, true
	case "DEAT":
		return EventDeath, true
	case "DIV":
		return EventDivorce, true
	case "DIVF":
		return EventDivorceFiled, true
	case "EMIG":
		return EventEmigration, true
	case "ENGA":
		return EventEngagement, true
	case "EVEN":
		return EventGeneric, true
	case "FCOM":
		return EventFirstCommunion, true
	case "GRAD":
		return EventGraduation, true
	case "IMMI":
		return EventImmigration, true
	case "MARR":
		return EventMarriage, true
	case "MARB":
		return EventMarriageBann, true
	case "MARC":
		return EventMarriageContract, true
	case "MARL":
		return EventMarriageLicense, true
	case "MARS":
		return EventMarriageSettlement, true
	case "NATU":
		return EventNaturalization, true
	case "ORDN":
		return EventOrdination, true
	case "PROB":
		return EventProbate, true
	case "RESI":
		return EventResidence, true
	case "RETI":
		return EventRetired, true
	case "WILL":
		return EventWill, true
	default:
		return "", false
	}
}

// EventDetail is the shared body of an individual or family event: the
// date and place it happened, plus supporting sources, media and notes.
// Family events may additionally carry the ages of both spouses.
type EventDetail struct {
	Type  EventType `json:"type"`
	Value string    `json:"value,omitempty"`
	// Kind is the payload of a TYPE substructure, a free-text
	// classification of a generic EVEN or FACT.
	Kind       string            `json:"kind,omitempty"`
	Date       *Date             `json:"date,omitempty"`
	Place      *Place            `json:"place,omitempty"`
	Address    *Address          `json:"address,omitempty"`
	Agency     string            `json:"agency,omitempty"`
	Cause      string            `json:"cause,omitempty"`
	Age        string            `json:"age,omitempty"`
	HusbandAge string            `json:"husband_age,omitempty"`
	WifeAge    string            `json:"wife_age,omitempty"`
	FamilyLink Xref              `json:"family_link,omitempty"`
	Citations  []*Citation       `json:"citations,omitempty"`
	Multimedia []*MultimediaLink `json:"multimedia,omitempty"`
	Note       *Note             `json:"note,omitempty"`
	Custom     []*UserDefinedTag `json:"custom,omitempty"`
}

func newEventDetail(t *Tokenizer, level uint8, typ EventType, warns *[]Warning) (*EventDetail, error) {
	event := &EventDetail{Type: typ}
	if err := event.parse(t, level, warns); err != nil {
		return nil, err
	}
	return event, nil
}

func (e *EventDetail) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	value, err := t.takeLineValue()
	if err != nil {
		return err
	}
	e.Value = value

	custom, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "TYPE":
			e.Kind, err = t.takeLineValue()
		case "DATE":
			e.Date, err = newDate(t, level+1, warns)
		case "PLAC":
			e.Place, err = newPlace(t, level+1, warns)
		case "ADDR":
			e.Address, err = newAddress(t, level+1, warns)
		case "AGNC":
			e.Agency, err = t.takeLineValue()
		case "CAUS":
			e.Cause, err = t.takeLineValue()
		case "AGE":
			e.Age, err = t.takeLineValue()
		case "HUSB":
			e.HusbandAge, err = e.parseSpouseAge(t, level+1, warns)
		case "WIFE":
			e.WifeAge, err = e.parseSpouseAge(t, level+1, warns)
		case "FAMC":
			e.FamilyLink, err = t.takeLineValue()
		case "SOUR":
			var cite *Citation
			cite, err = newCitation(t, level+1, warns)
			if err == nil {
				e.Citations = append(e.Citations, cite)
			}
		case "OBJE":
			var media *MultimediaLink
			media, err = newMultimediaLink(t, level+1, warns)
			if err == nil {
				e.Multimedia = append(e.Multimedia, media)
			}
		case "NOTE":
			e.Note, err = newNote(t, level+1, warns)
		default:
			return errUnknownTag
		}
		return err
	})
	e.Custom = custom
	return err
}

// parseSpouseAge reads the AGE substructure of a HUSB or WIFE tag
// inside a family event.
func (e *EventDetail) parseSpouseAge(t *Tokenizer, level uint8, warns *[]Warning) (string, error) {
	if _, err := t.takeLineValue(); err != nil {
		return "", err
	}

	var age string
	_, err := parseSubset(t, level, warns, func(tag string) error {
		var err error
		switch tag {
		case "AGE":
			age, err = t.takeLineValue()
		default:
			return errUnknownTag
		}
		return err
	})
	return age, err
}
