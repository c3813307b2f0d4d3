package constant

import "testing"

func TestDocumentStatusCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from DocumentStatus
		to   DocumentStatus
		want bool
	}{
		{"draft to generated", DocumentStatusDraft, DocumentStatusGenerated, true},
		{"generated to signed", DocumentStatusGenerated, DocumentStatusSigned, true},
		{"generated to archived", DocumentStatusGenerated, DocumentStatusArchived, true},
		{"signed to archived", DocumentStatusSigned, DocumentStatusArchived, true},

		{"draft cannot skip to signed", DocumentStatusDraft, DocumentStatusSigned, false},
		{"draft cannot skip to archived", DocumentStatusDraft, DocumentStatusArchived, false},
		{"generated cannot go back to draft", DocumentStatusGenerated, DocumentStatusDraft, false},
		{"signed cannot go back to draft", DocumentStatusSigned, DocumentStatusDraft, false},
		{"signed cannot go back to generated", DocumentStatusSigned, DocumentStatusGenerated, false},
		{"archived is terminal for draft", DocumentStatusArchived, DocumentStatusDraft, false},
		{"archived is terminal for generated", DocumentStatusArchived, DocumentStatusGenerated, false},
		{"archived is terminal for signed", DocumentStatusArchived, DocumentStatusSigned, false},

		{"draft to itself", DocumentStatusDraft, DocumentStatusDraft, true},
		{"generated to itself", DocumentStatusGenerated, DocumentStatusGenerated, true},
		{"signed to itself", DocumentStatusSigned, DocumentStatusSigned, true},
		{"archived to itself", DocumentStatusArchived, DocumentStatusArchived, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.want {
				t.Errorf("%s.CanTransition(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDocumentStatusValid(t *testing.T) {
	for _, s := range []DocumentStatus{DocumentStatusDraft, DocumentStatusGenerated, DocumentStatusSigned, DocumentStatusArchived} {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false, want true", s)
		}
	}
	if DocumentStatus("published").Valid() {
		t.Errorf(`DocumentStatus("published").Valid() = true, want false`)
	}
}
