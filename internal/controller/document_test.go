package controller

import (
	"reflect"
	"testing"

	"github.com/azhuravlev/diplomdocs/pkg/orderdoc"
	"gorm.io/datatypes"
)

func TestBuildDocumentData(t *testing.T) {
	tests := []struct {
		name            string
		availableFields string
		posted          []fieldInput
		want            []orderdoc.Field
	}{
		{
			name:            "posted values fill declared fields in declared order",
			availableFields: `["topic", "student_name", "deadline"]`,
			posted: []fieldInput{
				{Key: "deadline", Value: "15.06.2026"},
				{Key: "topic", Value: "Разработка веб-приложения"},
				{Key: "student_name", Value: "Иванов И.И."},
			},
			want: []orderdoc.Field{
				{Key: "topic", Value: "Разработка веб-приложения"},
				{Key: "student_name", Value: "Иванов И.И."},
				{Key: "deadline", Value: "15.06.2026"},
			},
		},
		{
			name:            "declared field without a posted value becomes empty",
			availableFields: `["topic", "student_name"]`,
			posted: []fieldInput{
				{Key: "topic", Value: "Тема"},
			},
			want: []orderdoc.Field{
				{Key: "topic", Value: "Тема"},
				{Key: "student_name", Value: ""},
			},
		},
		{
			name:            "undeclared posted keys are dropped",
			availableFields: `["topic"]`,
			posted: []fieldInput{
				{Key: "topic", Value: "Тема"},
				{Key: "object_name", Value: "spoofed"},
				{Key: "unrelated", Value: "x"},
			},
			want: []orderdoc.Field{
				{Key: "topic", Value: "Тема"},
			},
		},
		{
			name:            "template without declared fields yields no data",
			availableFields: "",
			posted: []fieldInput{
				{Key: "topic", Value: "Тема"},
			},
			want: []orderdoc.Field{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := buildDocumentData(datatypes.JSON(tt.availableFields), tt.posted)
			if err != nil {
				t.Fatalf("buildDocumentData() error: %v", err)
			}
			if got := data.Fields(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildDocumentData() fields = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildDocumentDataBadJSON(t *testing.T) {
	if _, err := buildDocumentData(datatypes.JSON(`{"not":"a list"}`), nil); err == nil {
		t.Errorf("expected error for non-list field declaration")
	}
}
