package gedcom

import (
	"strings"
	"testing"
)

func TestValidate_CleanDocument(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n2 VERS 5.5\n" +
		"0 @I1@ INDI\n1 NAME John /Doe/\n1 FAMS @F1@\n" +
		"0 @I2@ INDI\n1 NAME Jane /Doe/\n1 FAMS @F1@\n" +
		"0 @F1@ FAM\n1 HUSB @I1@\n1 WIFE @I2@\n" +
		"0 TRLR"

	doc := parseAll(t, input).Document
	errs := doc.Validate()
	if len(errs) != 0 {
		t.Fatalf("Expected no validation errors, got %v", errs)
	}
}

func TestValidate_DanglingFamilyMember(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n2 VERS 5.5\n" +
		"0 @I1@ INDI\n1 NAME John /Doe/\n" +
		"0 @F1@ FAM\n1 HUSB @I1@\n1 WIFE @I2@\n" +
		"0 TRLR"

	doc := parseAll(t, input).Document
	errs := doc.Validate()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), errs)
	}
	if errs[0].Xref != "@F1@" {
		t.Errorf("Expected the error on @F1@, got %s", errs[0].Xref)
	}
	want := "Family references non-existent individual: @I2@"
	if errs[0].Message != want {
		t.Errorf("Expected %q, got %q", want, errs[0].Message)
	}
}

func TestValidate_DanglingChild(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n2 VERS 5.5\n" +
		"0 @F1@ FAM\n1 CHIL @I9@\n" +
		"0 TRLR"

	doc := parseAll(t, input).Document
	errs := doc.Validate()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Message, "@I9@") {
		t.Errorf("Expected the child xref in the message, got %q", errs[0].Message)
	}
}

func TestValidate_DanglingFamilyLink(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n2 VERS 5.5\n" +
		"0 @I1@ INDI\n1 FAMS @F9@\n" +
		"0 TRLR"

	doc := parseAll(t, input).Document
	errs := doc.Validate()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), errs)
	}
	want := "Individual references non-existent family: @F9@"
	if errs[0].Message != want {
		t.Errorf("Expected %q, got %q", want, errs[0].Message)
	}
}

func TestValidate_DanglingCitation(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n2 VERS 5.5\n" +
		"0 @I1@ INDI\n1 SOUR @S9@\n" +
		"0 TRLR"

	doc := parseAll(t, input).Document
	errs := doc.Validate()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), errs)
	}
	want := "Individual references non-existent source: @S9@"
	if errs[0].Message != want {
		t.Errorf("Expected %q, got %q", want, errs[0].Message)
	}
}

func TestValidate_MissingVersion(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n0 TRLR"

	doc := parseAll(t, input).Document
	errs := doc.Validate()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), errs)
	}
	if errs[0].Message != "Header missing GEDC version" {
		t.Errorf("Unexpected message: %q", errs[0].Message)
	}
}

func TestValidateReferencesOption(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n2 VERS 5.5\n" +
		"0 @F1@ FAM\n1 HUSB @I1@\n" +
		"0 TRLR"

	result, err := NewParser().ValidateReferences(true).ParseString(input)
	if err != nil {
		t.Fatalf("ParseString() failed: %v", err)
	}

	if len(result.ValidationErrors) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(result.ValidationErrors), result.ValidationErrors)
	}
	want := "Family references non-existent individual: @I1@"
	if result.ValidationErrors[0].Message != want {
		t.Errorf("Expected %q, got %q", want, result.ValidationErrors[0].Message)
	}

	// without the option the result carries no validation errors
	result, err = NewParser().ParseString(input)
	if err != nil {
		t.Fatalf("ParseString() failed: %v", err)
	}
	if len(result.ValidationErrors) != 0 {
		t.Errorf("Expected no validation errors by default, got %v", result.ValidationErrors)
	}
}

func TestValidate_HeaderSubmitter(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n2 VERS 5.5\n1 SUBM @U1@\n0 TRLR"

	doc := parseAll(t, input).Document
	errs := doc.Validate()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), errs)
	}
	want := "Header references non-existent submitter: @U1@"
	if errs[0].Message != want {
		t.Errorf("Expected %q, got %q", want, errs[0].Message)
	}
}
