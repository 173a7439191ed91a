package gedcom

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestParseSampleFile(t *testing.T) {
	path := filepath.Join("testdata", "sample.ged")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}

	result, err := ParseString(string(content))
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	doc := result.Document

	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", result.Warnings)
	}
	if len(doc.Individuals) != 3 {
		t.Errorf("Expected 3 individuals, got %d", len(doc.Individuals))
	}
	if len(doc.Families) != 1 {
		t.Errorf("Expected 1 family, got %d", len(doc.Families))
	}
	if len(doc.Sources) != 1 {
		t.Errorf("Expected 1 source, got %d", len(doc.Sources))
	}
	if len(doc.Repositories) != 1 {
		t.Errorf("Expected 1 repository, got %d", len(doc.Repositories))
	}
	if len(doc.Submitters) != 1 {
		t.Errorf("Expected 1 submitter, got %d", len(doc.Submitters))
	}

	john := doc.Individuals[0]
	if len(john.Custom) != 1 || john.Custom[0].Tag != "_CATS" {
		t.Error("Expected the _CATS custom subtree to be preserved")
	}

	if errs := doc.Validate(); len(errs) != 0 {
		t.Errorf("Expected the sample file to validate cleanly, got %v", errs)
	}
}

func TestParseResultJSON(t *testing.T) {
	input := "0 HEAD\n1 GEDC\n2 VERS 5.5\n" +
		"0 @I1@ INDI\n1 NAME John /Doe/\n" +
		"0 TRLR"

	result := parseAll(t, input)

	out, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded ParseResult
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if decoded.Document.Header.Gedcom.Version != "5.5" {
		t.Errorf("Expected version '5.5' after round trip, got '%s'", decoded.Document.Header.Gedcom.Version)
	}
	if decoded.Document.Individuals[0].Name.Value != "John /Doe/" {
		t.Error("Expected the individual name to survive the round trip")
	}
}
