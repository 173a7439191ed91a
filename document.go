package gedcom

// Xref is a cross-reference identifier, delimited by `@...@` in the
// source file. It either declares a record's identity or points at
// another record; the parser threads the strings through without
// resolving them.
type Xref = string

// Document is the root of a parsed GEDCOM file: one collection per
// top-level record kind, plus any custom records.
type Document struct {
	// Header holds the file metadata.
	Header *Header `json:"header,omitempty"`
	// Submitters contributed the information in the transmission.
	Submitters []*Submitter `json:"submitters,omitempty"`
	// Submissions describe the purpose of the transmission.
	Submissions []*Submission `json:"submissions,omitempty"`
	// Individuals are the persons of the family tree.
	Individuals []*Individual `json:"individuals,omitempty"`
	// Families are the relationship units between individuals.
	Families []*Family `json:"families,omitempty"`
	// Repositories hold the archives where sources live.
	Repositories []*Repository `json:"repositories,omitempty"`
	// Sources document the facts: books, censuses, certificates.
	Sources []*Source `json:"sources,omitempty"`
	// Multimedia are linked media objects.
	Multimedia []*Multimedia `json:"multimedia,omitempty"`
	// Custom collects top-level application-defined records.
	Custom []*UserDefinedTag `json:"custom,omitempty"`
}

// parse runs the top-level record dispatcher. Each iteration expects a
// level token, an optional pointer declaring the record's identity,
// and a tag naming the record kind. The trailer tag is the sole
// successful exit.
func (d *Document) parse(t *Tokenizer, level uint8, warns *[]Warning) error {
	for {
		if t.Current.Kind != TokenLevel {
			return unexpectedLevel(t.Line, level+1, t.Current.String())
		}
		recordLevel := t.Current.Level
		if err := t.Next(); err != nil {
			return err
		}

		var xref Xref
		if t.Current.Kind == TokenPointer {
			xref = t.Current.Text
			if err := t.Next(); err != nil {
				return err
			}
		}

		switch t.Current.Kind {
		case TokenTag:
			tag := t.Current.Text
			line := t.Line
			switch tag {
			case "HEAD":
				header, err := newHeader(t, recordLevel, warns)
				if err != nil {
					return err
				}
				d.Header = header
			case "SUBM":
				submitter, err := newSubmitter(t, recordLevel, xref, warns)
				if err != nil {
					return err
				}
				d.Submitters = append(d.Submitters, submitter)
			case "SUBN":
				submission, err := newSubmission(t, recordLevel, xref, warns)
				if err != nil {
					return err
				}
				d.Submissions = append(d.Submissions, submission)
			case "INDI":
				individual, err := newIndividual(t, recordLevel, xref, warns)
				if err != nil {
					return err
				}
				d.Individuals = append(d.Individuals, individual)
			case "FAM":
				family, err := newFamily(t, recordLevel, xref, warns)
				if err != nil {
					return err
				}
				d.Families = append(d.Families, family)
			case "REPO":
				repo, err := newRepository(t, recordLevel, xref, warns)
				if err != nil {
					return err
				}
				d.Repositories = append(d.Repositories, repo)
			case "SOUR":
				source, err := newSource(t, recordLevel, xref, warns)
				if err != nil {
					return err
				}
				d.Sources = append(d.Sources, source)
			case "OBJE":
				media, err := newMultimedia(t, recordLevel, xref, warns)
				if err != nil {
					return err
				}
				d.Multimedia = append(d.Multimedia, media)
			case "TRLR":
				return nil
			default:
				if warns == nil {
					return invalidToken(line, t.Current.String())
				}
				*warns = append(*warns, newWarning(line, WarningUnrecognizedTag, tag))
				if err := skipSubtree(t, recordLevel); err != nil {
					return err
				}
			}
		case TokenCustomTag:
			node, err := newUserDefinedTag(t, recordLevel, t.Current.Text)
			if err != nil {
				return err
			}
			d.Custom = append(d.Custom, node)
			if err := skipSubtree(t, recordLevel); err != nil {
				return err
			}
		default:
			return invalidToken(t.Line, t.Current.String())
		}
	}
}
