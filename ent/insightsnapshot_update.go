// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/insightsnapshot"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/predicate"
)

// InsightSnapshotUpdate is the builder for updating InsightSnapshot entities.
type InsightSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *InsightSnapshotMutation
}

// Where appends a list predicates to the InsightSnapshotUpdate builder.
func (_u *InsightSnapshotUpdate) Where(ps ...predicate.InsightSnapshot) *InsightSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InsightSnapshotUpdate) SetSessionID(v string) *InsightSnapshotUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InsightSnapshotUpdate) SetNillableSessionID(v *string) *InsightSnapshotUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInsightType sets the "insight_type" field.
func (_u *InsightSnapshotUpdate) SetInsightType(v string) *InsightSnapshotUpdate {
	_u.mutation.SetInsightType(v)
	return _u
}

// SetNillableInsightType sets the "insight_type" field if the given value is not nil.
func (_u *InsightSnapshotUpdate) SetNillableInsightType(v *string) *InsightSnapshotUpdate {
	if v != nil {
		_u.SetInsightType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InsightSnapshotUpdate) SetPayload(v map[string]interface{}) *InsightSnapshotUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the InsightSnapshotMutation object of the builder.
func (_u *InsightSnapshotUpdate) Mutation() *InsightSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightSnapshotUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := insightsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InsightSnapshot.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsightType(); ok {
		if err := insightsnapshot.InsightTypeValidator(v); err != nil {
			return &ValidationError{Name: "insight_type", err: fmt.Errorf(`ent: validator failed for field "InsightSnapshot.insight_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightsnapshot.Table, insightsnapshot.Columns, sqlgraph.NewFieldSpec(insightsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(insightsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsightType(); ok {
		_spec.SetField(insightsnapshot.FieldInsightType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(insightsnapshot.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightSnapshotUpdateOne is the builder for updating a single InsightSnapshot entity.
type InsightSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightSnapshotMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InsightSnapshotUpdateOne) SetSessionID(v string) *InsightSnapshotUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InsightSnapshotUpdateOne) SetNillableSessionID(v *string) *InsightSnapshotUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInsightType sets the "insight_type" field.
func (_u *InsightSnapshotUpdateOne) SetInsightType(v string) *InsightSnapshotUpdateOne {
	_u.mutation.SetInsightType(v)
	return _u
}

// SetNillableInsightType sets the "insight_type" field if the given value is not nil.
func (_u *InsightSnapshotUpdateOne) SetNillableInsightType(v *string) *InsightSnapshotUpdateOne {
	if v != nil {
		_u.SetInsightType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InsightSnapshotUpdateOne) SetPayload(v map[string]interface{}) *InsightSnapshotUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the InsightSnapshotMutation object of the builder.
func (_u *InsightSnapshotUpdateOne) Mutation() *InsightSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightSnapshotUpdate builder.
func (_u *InsightSnapshotUpdateOne) Where(ps ...predicate.InsightSnapshot) *InsightSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightSnapshotUpdateOne) Select(field string, fields ...string) *InsightSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InsightSnapshot entity.
func (_u *InsightSnapshotUpdateOne) Save(ctx context.Context) (*InsightSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightSnapshotUpdateOne) SaveX(ctx context.Context) *InsightSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := insightsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InsightSnapshot.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsightType(); ok {
		if err := insightsnapshot.InsightTypeValidator(v); err != nil {
			return &ValidationError{Name: "insight_type", err: fmt.Errorf(`ent: validator failed for field "InsightSnapshot.insight_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *InsightSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightsnapshot.Table, insightsnapshot.Columns, sqlgraph.NewFieldSpec(insightsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InsightSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insightsnapshot.FieldID)
		for _, f := range fields {
			if !insightsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insightsnapshot.FieldID {
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
		_spec.SetField(insightsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsightType(); ok {
		_spec.SetField(insightsnapshot.FieldInsightType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(insightsnapshot.FieldPayload, field.TypeJSON, value)
	}
	_node = &InsightSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
