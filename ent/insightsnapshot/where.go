// Code generated by ent, DO NOT EDIT.

package insightsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// InsightType applies equality check predicate on the "insight_type" field. It's identical to InsightTypeEQ.
func InsightType(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEQ(FieldInsightType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldContainsFold(FieldSessionID, v))
}

// InsightTypeEQ applies the EQ predicate on the "insight_type" field.
func InsightTypeEQ(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEQ(FieldInsightType, v))
}

// InsightTypeNEQ applies the NEQ predicate on the "insight_type" field.
func InsightTypeNEQ(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldNEQ(FieldInsightType, v))
}

// InsightTypeIn applies the In predicate on the "insight_type" field.
func InsightTypeIn(vs ...string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldIn(FieldInsightType, vs...))
}

// InsightTypeNotIn applies the NotIn predicate on the "insight_type" field.
func InsightTypeNotIn(vs ...string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldNotIn(FieldInsightType, vs...))
}

// InsightTypeGT applies the GT predicate on the "insight_type" field.
func InsightTypeGT(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldGT(FieldInsightType, v))
}

// InsightTypeGTE applies the GTE predicate on the "insight_type" field.
func InsightTypeGTE(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldGTE(FieldInsightType, v))
}

// InsightTypeLT applies the LT predicate on the "insight_type" field.
func InsightTypeLT(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldLT(FieldInsightType, v))
}

// InsightTypeLTE applies the LTE predicate on the "insight_type" field.
func InsightTypeLTE(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldLTE(FieldInsightType, v))
}

// InsightTypeContains applies the Contains predicate on the "insight_type" field.
func InsightTypeContains(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldContains(FieldInsightType, v))
}

// InsightTypeHasPrefix applies the HasPrefix predicate on the "insight_type" field.
func InsightTypeHasPrefix(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldHasPrefix(FieldInsightType, v))
}

// InsightTypeHasSuffix applies the HasSuffix predicate on the "insight_type" field.
func InsightTypeHasSuffix(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldHasSuffix(FieldInsightType, v))
}

// InsightTypeEqualFold applies the EqualFold predicate on the "insight_type" field.
func InsightTypeEqualFold(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEqualFold(FieldInsightType, v))
}

// InsightTypeContainsFold applies the ContainsFold predicate on the "insight_type" field.
func InsightTypeContainsFold(v string) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldContainsFold(FieldInsightType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InsightSnapshot) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InsightSnapshot) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InsightSnapshot) predicate.InsightSnapshot {
	return predicate.InsightSnapshot(sql.NotPredicates(p))
}
