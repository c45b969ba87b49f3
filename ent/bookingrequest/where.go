// Code generated by ent, DO NOT EDIT.

package bookingrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldSessionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldEmail, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldCompany, v))
}

// PreferredSlot applies equality check predicate on the "preferred_slot" field. It's identical to PreferredSlotEQ.
func PreferredSlot(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldPreferredSlot, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContainsFold(FieldSessionID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContainsFold(FieldEmail, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContainsFold(FieldCompany, v))
}

// PreferredSlotEQ applies the EQ predicate on the "preferred_slot" field.
func PreferredSlotEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldPreferredSlot, v))
}

// PreferredSlotNEQ applies the NEQ predicate on the "preferred_slot" field.
func PreferredSlotNEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNEQ(FieldPreferredSlot, v))
}

// PreferredSlotIn applies the In predicate on the "preferred_slot" field.
func PreferredSlotIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldIn(FieldPreferredSlot, vs...))
}

// PreferredSlotNotIn applies the NotIn predicate on the "preferred_slot" field.
func PreferredSlotNotIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNotIn(FieldPreferredSlot, vs...))
}

// PreferredSlotGT applies the GT predicate on the "preferred_slot" field.
func PreferredSlotGT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGT(FieldPreferredSlot, v))
}

// PreferredSlotGTE applies the GTE predicate on the "preferred_slot" field.
func PreferredSlotGTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGTE(FieldPreferredSlot, v))
}

// PreferredSlotLT applies the LT predicate on the "preferred_slot" field.
func PreferredSlotLT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLT(FieldPreferredSlot, v))
}

// PreferredSlotLTE applies the LTE predicate on the "preferred_slot" field.
func PreferredSlotLTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLTE(FieldPreferredSlot, v))
}

// PreferredSlotContains applies the Contains predicate on the "preferred_slot" field.
func PreferredSlotContains(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContains(FieldPreferredSlot, v))
}

// PreferredSlotHasPrefix applies the HasPrefix predicate on the "preferred_slot" field.
func PreferredSlotHasPrefix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasPrefix(FieldPreferredSlot, v))
}

// PreferredSlotHasSuffix applies the HasSuffix predicate on the "preferred_slot" field.
func PreferredSlotHasSuffix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasSuffix(FieldPreferredSlot, v))
}

// PreferredSlotEqualFold applies the EqualFold predicate on the "preferred_slot" field.
func PreferredSlotEqualFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEqualFold(FieldPreferredSlot, v))
}

// PreferredSlotContainsFold applies the ContainsFold predicate on the "preferred_slot" field.
func PreferredSlotContainsFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContainsFold(FieldPreferredSlot, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BookingRequest {
	return predicate.BookingRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BookingRequest) predicate.BookingRequest {
	return predicate.BookingRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BookingRequest) predicate.BookingRequest {
	return predicate.BookingRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BookingRequest) predicate.BookingRequest {
	return predicate.BookingRequest(sql.NotPredicates(p))
}
