// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/bookingrequest"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/predicate"
)

// BookingRequestUpdate is the builder for updating BookingRequest entities.
type BookingRequestUpdate struct {
	config
	hooks    []Hook
	mutation *BookingRequestMutation
}

// Where appends a list predicates to the BookingRequestUpdate builder.
func (_u *BookingRequestUpdate) Where(ps ...predicate.BookingRequest) *BookingRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *BookingRequestUpdate) SetSessionID(v string) *BookingRequestUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BookingRequestUpdate) SetNillableSessionID(v *string) *BookingRequestUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BookingRequestUpdate) SetName(v string) *BookingRequestUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BookingRequestUpdate) SetNillableName(v *string) *BookingRequestUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BookingRequestUpdate) SetEmail(v string) *BookingRequestUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BookingRequestUpdate) SetNillableEmail(v *string) *BookingRequestUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *BookingRequestUpdate) SetCompany(v string) *BookingRequestUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *BookingRequestUpdate) SetNillableCompany(v *string) *BookingRequestUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetPreferredSlot sets the "preferred_slot" field.
func (_u *BookingRequestUpdate) SetPreferredSlot(v string) *BookingRequestUpdate {
	_u.mutation.SetPreferredSlot(v)
	return _u
}

// SetNillablePreferredSlot sets the "preferred_slot" field if the given value is not nil.
func (_u *BookingRequestUpdate) SetNillablePreferredSlot(v *string) *BookingRequestUpdate {
	if v != nil {
		_u.SetPreferredSlot(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingRequestUpdate) SetNotes(v string) *BookingRequestUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingRequestUpdate) SetNillableNotes(v *string) *BookingRequestUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// Mutation returns the BookingRequestMutation object of the builder.
func (_u *BookingRequestUpdate) Mutation() *BookingRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BookingRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BookingRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingRequestUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := bookingrequest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BookingRequest.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := bookingrequest.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "BookingRequest.email": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookingrequest.Table, bookingrequest.Columns, sqlgraph.NewFieldSpec(bookingrequest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(bookingrequest.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(bookingrequest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(bookingrequest.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(bookingrequest.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredSlot(); ok {
		_spec.SetField(bookingrequest.FieldPreferredSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(bookingrequest.FieldNotes, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookingrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BookingRequestUpdateOne is the builder for updating a single BookingRequest entity.
type BookingRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BookingRequestMutation
}

// SetSessionID sets the "session_id" field.
func (_u *BookingRequestUpdateOne) SetSessionID(v string) *BookingRequestUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BookingRequestUpdateOne) SetNillableSessionID(v *string) *BookingRequestUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BookingRequestUpdateOne) SetName(v string) *BookingRequestUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BookingRequestUpdateOne) SetNillableName(v *string) *BookingRequestUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *BookingRequestUpdateOne) SetEmail(v string) *BookingRequestUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BookingRequestUpdateOne) SetNillableEmail(v *string) *BookingRequestUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *BookingRequestUpdateOne) SetCompany(v string) *BookingRequestUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *BookingRequestUpdateOne) SetNillableCompany(v *string) *BookingRequestUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetPreferredSlot sets the "preferred_slot" field.
func (_u *BookingRequestUpdateOne) SetPreferredSlot(v string) *BookingRequestUpdateOne {
	_u.mutation.SetPreferredSlot(v)
	return _u
}

// SetNillablePreferredSlot sets the "preferred_slot" field if the given value is not nil.
func (_u *BookingRequestUpdateOne) SetNillablePreferredSlot(v *string) *BookingRequestUpdateOne {
	if v != nil {
		_u.SetPreferredSlot(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BookingRequestUpdateOne) SetNotes(v string) *BookingRequestUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BookingRequestUpdateOne) SetNillableNotes(v *string) *BookingRequestUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// Mutation returns the BookingRequestMutation object of the builder.
func (_u *BookingRequestUpdateOne) Mutation() *BookingRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the BookingRequestUpdate builder.
func (_u *BookingRequestUpdateOne) Where(ps ...predicate.BookingRequest) *BookingRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BookingRequestUpdateOne) Select(field string, fields ...string) *BookingRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BookingRequest entity.
func (_u *BookingRequestUpdateOne) Save(ctx context.Context) (*BookingRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BookingRequestUpdateOne) SaveX(ctx context.Context) *BookingRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BookingRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BookingRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BookingRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := bookingrequest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BookingRequest.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := bookingrequest.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "BookingRequest.email": %w`, err)}
		}
	}
	return nil
}

func (_u *BookingRequestUpdateOne) sqlSave(ctx context.Context) (_node *BookingRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bookingrequest.Table, bookingrequest.Columns, sqlgraph.NewFieldSpec(bookingrequest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BookingRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bookingrequest.FieldID)
		for _, f := range fields {
			if !bookingrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bookingrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(bookingrequest.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(bookingrequest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(bookingrequest.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(bookingrequest.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredSlot(); ok {
		_spec.SetField(bookingrequest.FieldPreferredSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(bookingrequest.FieldNotes, field.TypeString, value)
	}
	_node = &BookingRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bookingrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
