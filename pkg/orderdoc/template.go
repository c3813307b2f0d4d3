package orderdoc

import (
	"fmt"
	"strings"
	"time"
)

// Field is one placeholder value. Fields are applied in the order they were
// added, so a later value may itself substitute into an earlier one.
type Field struct {
	Key   string
	Value string
}

// Data is an insertion-ordered field set for placeholder substitution.
type Data struct {
	fields []Field
}

func NewData() *Data {
	return &Data{}
}

// Set appends the field, or replaces the value in place when the key is
// already present, keeping its original position.
func (d *Data) Set(key, value string) *Data {
	for i := range d.fields {
		if d.fields[i].Key == key {
			d.fields[i].Value = value
			return d
		}
	}
	d.fields = append(d.fields, Field{Key: key, Value: value})
	return d
}

func (d *Data) Get(key string) (string, bool) {
	for _, f := range d.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

func (d *Data) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

func (d *Data) Len() int {
	return len(d.fields)
}

// ToMap flattens the fields for persistence. Ordering is lost, which is fine
// for stored document_data since substitution has already happened.
func (d *Data) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, len(d.fields))
	for _, f := range d.fields {
		m[f.Key] = f.Value
	}
	return m
}

// SystemFieldsInput carries the request context appended after template fields.
type SystemFieldsInput struct {
	ObjectType string
	ObjectID   string
	ObjectName string
	Now        time.Time
	// Display name of the acting user, "Система" when anonymous
	UserName string
}

// AppendSystemFields adds object_type, object_id, object_name, current_date
// and user after whatever template fields are already present.
func (d *Data) AppendSystemFields(in SystemFieldsInput) *Data {
	d.Set("object_type", in.ObjectType)
	d.Set("object_id", in.ObjectID)
	d.Set("object_name", in.ObjectName)
	d.Set("current_date", in.Now.Format("02.01.2006"))
	d.Set("user", in.UserName)
	return d
}

// Substitute replaces every {{key}} occurrence with its value, one pass per
// field, first to last. Placeholders without a field stay verbatim.
func Substitute(content string, data *Data) string {
	if data == nil {
		return content
	}
	for _, f := range data.fields {
		placeholder := fmt.Sprintf("{{%s}}", f.Key)
		content = strings.ReplaceAll(content, placeholder, f.Value)
	}
	return content
}
