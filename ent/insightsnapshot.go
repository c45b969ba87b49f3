// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/insightsnapshot"
)

// InsightSnapshot is the model entity for the InsightSnapshot schema.
type InsightSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the assessment session
	SessionID string `json:"session_id,omitempty"`
	// Kind of insight cached, e.g. leadership_insights
	InsightType string `json:"insight_type,omitempty"`
	// Sanitized insight JSON as served to the user
	Payload map[string]interface{} `json:"payload,omitempty"`
	// When the insight was first generated
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InsightSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insightsnapshot.FieldPayload:
			values[i] = new([]byte)
		case insightsnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case insightsnapshot.FieldSessionID, insightsnapshot.FieldInsightType:
			values[i] = new(sql.NullString)
		case insightsnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InsightSnapshot fields.
func (_m *InsightSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insightsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case insightsnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case insightsnapshot.FieldInsightType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field insight_type", values[i])
			} else if value.Valid {
				_m.InsightType = value.String
			}
		case insightsnapshot.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case insightsnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InsightSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *InsightSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InsightSnapshot.
// Note that you need to call InsightSnapshot.Unwrap() before calling this method if this InsightSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InsightSnapshot) Update() *InsightSnapshotUpdateOne {
	return NewInsightSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InsightSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InsightSnapshot) Unwrap() *InsightSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InsightSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InsightSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("InsightSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("insight_type=")
	builder.WriteString(_m.InsightType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InsightSnapshots is a parsable slice of InsightSnapshot.
type InsightSnapshots []*InsightSnapshot
