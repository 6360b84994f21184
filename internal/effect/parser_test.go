package effect

import (
	"os"
	"testing"
)

// TestParse_Celebration tests parsing the shipped celebration pack
func TestParse_Celebration(t *testing.T) {
	data, err := os.ReadFile("../../data/effects/celebration.xml")
	if err != nil {
		t.Fatalf("Failed to read celebration.xml: %v", err)
	}

	pack, err := Parse(data)
	if err != nil {
		t.Fatalf("Failed to parse celebration.xml: %v", err)
	}

	// The shipped pack defines the Paper and Streamer emitters
	expectedEmitters := 2
	if len(pack.Emitters) != expectedEmitters {
		t.Errorf("Expected %d emitters, got %d", expectedEmitters, len(pack.Emitters))
	}

	paper := pack.FindEmitter("Paper")
	if paper == nil {
		t.Fatal("Expected emitter 'Paper' in celebration pack")
	}
	if paper.Weight != "3" {
		t.Errorf("Expected Paper weight '3', got '%s'", paper.Weight)
	}
	if len(paper.Fields) != 2 {
		t.Errorf("Expected 2 fields on Paper, got %d", len(paper.Fields))
	} else {
		field := paper.Fields[0]
		if field.FieldType != "Acceleration" {
			t.Errorf("Expected FieldType 'Acceleration', got '%s'", field.FieldType)
		}
		if field.Y != "260" {
			t.Errorf("Expected Y '260', got '%s'", field.Y)
		}
	}
}

// TestParse_MultipleTopLevelEmitters tests the rootless document format
func TestParse_MultipleTopLevelEmitters(t *testing.T) {
	doc := `<Emitter><Name>A</Name></Emitter><Emitter><Name>B</Name></Emitter>`

	pack, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(pack.Emitters) != 2 {
		t.Fatalf("Expected 2 emitters, got %d", len(pack.Emitters))
	}
	if pack.Emitters[0].Name != "A" || pack.Emitters[1].Name != "B" {
		t.Errorf("Unexpected emitter names: %q, %q", pack.Emitters[0].Name, pack.Emitters[1].Name)
	}
}

// TestParse_Empty tests error handling for documents with no emitters
func TestParse_Empty(t *testing.T) {
	if _, err := Parse([]byte("")); err == nil {
		t.Error("Expected error for empty document, got nil")
	}
}

// TestParse_Malformed tests error handling for invalid XML
func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("<Emitter><Name>broken")); err == nil {
		t.Error("Expected error for malformed XML, got nil")
	}
}

// TestFindEmitter_Missing tests lookup of an absent emitter
func TestFindEmitter_Missing(t *testing.T) {
	pack := &Pack{Emitters: []EmitterConfig{{Name: "Paper"}}}
	if got := pack.FindEmitter("Glitter"); got != nil {
		t.Errorf("FindEmitter(missing) = %v, want nil", got)
	}
}
