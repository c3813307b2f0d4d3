package controller

import (
	"reflect"
	"testing"

	"github.com/azhuravlev/diplomdocs/internal/constant"
)

func TestExtractPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "ordered by first appearance",
			content: "Приказ о {{topic}} студента {{student_name}} ({{topic}})",
			want:    []string{"topic", "student_name"},
		},
		{
			name:    "no placeholders",
			content: "Обычный текст без полей",
			want:    []string{},
		},
		{
			name:    "system fields",
			content: "{{object_name}} от {{current_date}}, автор {{user}}",
			want:    []string{"object_name", "current_date", "user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractPlaceholders(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractPlaceholders(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestStatusHistoryAction(t *testing.T) {
	tests := []struct {
		to   constant.DocumentStatus
		want constant.HistoryAction
	}{
		{constant.DocumentStatusGenerated, constant.HistoryActionApprove},
		{constant.DocumentStatusSigned, constant.HistoryActionSign},
		{constant.DocumentStatusArchived, constant.HistoryActionEdit},
	}

	for _, tt := range tests {
		if got := statusHistoryAction(tt.to); got != tt.want {
			t.Errorf("statusHistoryAction(%s) = %s, want %s", tt.to, got, tt.want)
		}
	}
}
