package orderdoc

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fields   []Field
		expected string
	}{
		{
			name:     "single field",
			content:  "Приказ о студенте {{student_name}}",
			fields:   []Field{{"student_name", "Иванов Иван"}},
			expected: "Приказ о студенте Иванов Иван",
		},
		{
			name:     "no fields returns content unchanged",
			content:  "Приказ № {{number}}",
			fields:   nil,
			expected: "Приказ № {{number}}",
		},
		{
			name:     "unknown placeholder stays verbatim",
			content:  "{{known}} and {{unknown}}",
			fields:   []Field{{"known", "value"}},
			expected: "value and {{unknown}}",
		},
		{
			name:     "later field substitutes into earlier value",
			content:  "{{a}}",
			fields:   []Field{{"a", "prefix {{b}}"}, {"b", "suffix"}},
			expected: "prefix suffix",
		},
		{
			name:     "earlier field does not substitute into later value",
			content:  "{{b}}",
			fields:   []Field{{"a", "x"}, {"b", "value {{a}}"}},
			expected: "value {{a}}",
		},
		{
			name:     "repeated placeholder replaced everywhere",
			content:  "{{x}}, again {{x}}",
			fields:   []Field{{"x", "y"}},
			expected: "y, again y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := NewData()
			for _, f := range tt.fields {
				data.Set(f.Key, f.Value)
			}
			got := Substitute(tt.content, data)
			if got != tt.expected {
				t.Errorf("Substitute() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSubstituteLeavesNoKnownPlaceholders(t *testing.T) {
	data := NewData().Set("topic", "Разработка веб-приложения").Set("student", "Петров")
	content := "Тема: {{topic}}. Студент: {{student}}. Тема еще раз: {{topic}}."

	got := Substitute(content, data)

	for _, f := range data.Fields() {
		placeholder := "{{" + f.Key + "}}"
		if strings.Contains(got, placeholder) {
			t.Errorf("result still contains %q: %q", placeholder, got)
		}
	}
}

func TestDataSetReplacesInPlace(t *testing.T) {
	data := NewData().Set("a", "1").Set("b", "2").Set("a", "3")

	expected := []Field{{"a", "3"}, {"b", "2"}}
	if !reflect.DeepEqual(data.Fields(), expected) {
		t.Errorf("Fields() = %v, expected %v", data.Fields(), expected)
	}
}

func TestAppendSystemFields(t *testing.T) {
	now := time.Date(2026, time.March, 5, 10, 30, 0, 0, time.UTC)
	data := NewData().Set("topic", "Тема")
	data.AppendSystemFields(SystemFieldsInput{
		ObjectType: "student",
		ObjectID:   "42",
		ObjectName: "Иванов Иван Иванович",
		Now:        now,
		UserName:   "Система",
	})

	expected := []Field{
		{"topic", "Тема"},
		{"object_type", "student"},
		{"object_id", "42"},
		{"object_name", "Иванов Иван Иванович"},
		{"current_date", "05.03.2026"},
		{"user", "Система"},
	}
	if !reflect.DeepEqual(data.Fields(), expected) {
		t.Errorf("Fields() = %v, expected %v", data.Fields(), expected)
	}
}

func TestDataToMap(t *testing.T) {
	data := NewData().Set("a", "1").Set("b", "2")

	expected := map[string]interface{}{"a": "1", "b": "2"}
	if !reflect.DeepEqual(data.ToMap(), expected) {
		t.Errorf("ToMap() = %v, expected %v", data.ToMap(), expected)
	}
}
