package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"gorm.io/datatypes"
)

// Status lifecycle tag for a content record. There is no enforced
// transition graph: any value may follow any other via update.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusScheduled || s == StatusPublished
}

// Params holds the typed generation parameters of a record, keyed by
// field name as declared in the owning ContentType.
type Params = datatypes.JSONMap

// ContentRecord is the shared shape behind every content type. Each
// type gets its own table (see ContentType.Table); the typed
// parameters live in the params JSON column so a single model serves
// all of them.
type ContentRecord struct {
	ID          uint64            `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      uint64            `gorm:"column:user_id;index;not null"`
	Params      datatypes.JSONMap `gorm:"column:params;type:json"`
	AIOutput    string            `gorm:"column:ai_output;type:mediumtext"`
	Status      Status            `gorm:"column:status;type:varchar(20);default:'draft'"`
	ScheduledAt *time.Time        `gorm:"column:scheduled_at"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// MarshalJSON flattens params to the top level so API payloads carry
// the typed fields directly (topic, platform, ...) next to the fixed
// columns, matching what the form layer submits.
func (r ContentRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Params)+7)
	for k, v := range r.Params {
		out[k] = v
	}
	out["id"] = r.ID
	out["userId"] = r.UserID
	out["aiOutput"] = r.AIOutput
	out["status"] = r.Status
	out["scheduledAt"] = r.ScheduledAt
	out["createdAt"] = r.CreatedAt
	out["updatedAt"] = r.UpdatedAt
	return json.Marshal(out)
}

// FieldKind discriminates the form-field descriptor union.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
	FieldNumber   FieldKind = "number"
	FieldCheckbox FieldKind = "checkbox"
)

// Field describes one typed parameter of a content type. The frontend
// renders its forms from these descriptors; the backend uses them to
// whitelist incoming params.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// ContentType is one registry entry: everything that distinguishes a
// content type from the others. The CRUD and generate machinery is
// generic and driven entirely by this table.
type ContentType struct {
	Slug   string  `json:"slug"`
	Name   string  `json:"name"`
	Table  string  `json:"-"`
	Fields []Field `json:"fields"`
	// Prompt builds the upstream prompt from the record params.
	// Missing params interpolate as empty strings.
	Prompt func(p Params) string `json:"-"`
}

// HasField reports whether name is a declared param of this type.
func (ct *ContentType) HasField(name string) bool {
	for _, f := range ct.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// FilterParams drops any key that is not a declared field.
func (ct *ContentType) FilterParams(in map[string]interface{}) Params {
	out := make(Params, len(in))
	for k, v := range in {
		if ct.HasField(k) {
			out[k] = v
		}
	}
	return out
}

// str returns the param as a string. Numbers decoded from JSON arrive
// as float64 and are rendered without a trailing ".0" when integral.
func str(p Params, key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case bool:
		if t {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprintf("%v", t)
	}
}
