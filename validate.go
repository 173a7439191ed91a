package gedcom

import "fmt"

// ValidationError describes a consistency problem found in a parsed
// document, attributed to the record it was found in.
type ValidationError struct {
	Xref    Xref   `json:"xref,omitempty"`
	Message string `json:"message"`
}

// String renders the error for reporting.
func (v ValidationError) String() string {
	if v.Xref == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Xref, v.Message)
}

// Validate checks cross-record consistency: every pointer between
// records must resolve, and the header must declare a format version.
// Parsing never resolves pointers, so a file can parse cleanly and
// still fail validation.
func (d *Document) Validate() []ValidationError {
	var errs []ValidationError

	individuals := make(map[Xref]bool, len(d.Individuals))
	for _, indi := range d.Individuals {
		individuals[indi.Xref] = true
	}
	families := make(map[Xref]bool, len(d.Families))
	for _, fam := range d.Families {
		families[fam.Xref] = true
	}
	sources := make(map[Xref]bool, len(d.Sources))
	for _, src := range d.Sources {
		sources[src.Xref] = true
	}
	repositories := make(map[Xref]bool, len(d.Repositories))
	for _, repo := range d.Repositories {
		repositories[repo.Xref] = true
	}
	submitters := make(map[Xref]bool, len(d.Submitters))
	for _, subm := range d.Submitters {
		submitters[subm.Xref] = true
	}
	submissions := make(map[Xref]bool, len(d.Submissions))
	for _, subn := range d.Submissions {
		submissions[subn.Xref] = true
	}

	if d.Header == nil {
		errs = append(errs, ValidationError{Message: "Missing header record"})
	} else {
		if d.Header.Gedcom == nil || d.Header.Gedcom.Version == "" {
			errs = append(errs, ValidationError{Message: "Header missing GEDC version"})
		}
		if d.Header.Submitter != "" && !submitters[d.Header.Submitter] {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("Header references non-existent submitter: %s", d.Header.Submitter),
			})
		}
		if d.Header.Submission != "" && !submissions[d.Header.Submission] {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("Header references non-existent submission: %s", d.Header.Submission),
			})
		}
	}

	for _, fam := range d.Families {
		check := func(xref Xref) {
			if xref != "" && !individuals[xref] {
				errs = append(errs, ValidationError{
					Xref:    fam.Xref,
					Message: fmt.Sprintf("Family references non-existent individual: %s", xref),
				})
			}
		}
		check(fam.Husband)
		check(fam.Wife)
		for _, child := range fam.Children {
			check(child)
		}
	}

	for _, indi := range d.Individuals {
		for _, link := range indi.Families {
			if link.Xref != "" && !families[link.Xref] {
				errs = append(errs, ValidationError{
					Xref:    indi.Xref,
					Message: fmt.Sprintf("Individual references non-existent family: %s", link.Xref),
				})
			}
		}
		for _, cite := range indi.Citations {
			if cite.Xref != "" && !sources[cite.Xref] {
				errs = append(errs, ValidationError{
					Xref:    indi.Xref,
					Message: fmt.Sprintf("Individual references non-existent source: %s", cite.Xref),
				})
			}
		}
	}

	for _, src := range d.Sources {
		if src.Repository != nil && src.Repository.Xref != "" && !repositories[src.Repository.Xref] {
			errs = append(errs, ValidationError{
				Xref:    src.Xref,
				Message: fmt.Sprintf("Source references non-existent repository: %s", src.Repository.Xref),
			})
		}
	}

	return errs
}
