// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/insightsnapshot"
)

// InsightSnapshotCreate is the builder for creating a InsightSnapshot entity.
type InsightSnapshotCreate struct {
	config
	mutation *InsightSnapshotMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *InsightSnapshotCreate) SetSessionID(v string) *InsightSnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetInsightType sets the "insight_type" field.
func (_c *InsightSnapshotCreate) SetInsightType(v string) *InsightSnapshotCreate {
	_c.mutation.SetInsightType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *InsightSnapshotCreate) SetPayload(v map[string]interface{}) *InsightSnapshotCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightSnapshotCreate) SetCreatedAt(v time.Time) *InsightSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightSnapshotCreate) SetNillableCreatedAt(v *time.Time) *InsightSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the InsightSnapshotMutation object of the builder.
func (_c *InsightSnapshotCreate) Mutation() *InsightSnapshotMutation {
	return _c.mutation
}

// Save creates the InsightSnapshot in the database.
func (_c *InsightSnapshotCreate) Save(ctx context.Context) (*InsightSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightSnapshotCreate) SaveX(ctx context.Context) *InsightSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insightsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightSnapshotCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InsightSnapshot.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := insightsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InsightSnapshot.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InsightType(); !ok {
		return &ValidationError{Name: "insight_type", err: errors.New(`ent: missing required field "InsightSnapshot.insight_type"`)}
	}
	if v, ok := _c.mutation.InsightType(); ok {
		if err := insightsnapshot.InsightTypeValidator(v); err != nil {
			return &ValidationError{Name: "insight_type", err: fmt.Errorf(`ent: validator failed for field "InsightSnapshot.insight_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "InsightSnapshot.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InsightSnapshot.created_at"`)}
	}
	return nil
}

func (_c *InsightSnapshotCreate) sqlSave(ctx context.Context) (*InsightSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightSnapshotCreate) createSpec() (*InsightSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &InsightSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insightsnapshot.Table, sqlgraph.NewFieldSpec(insightsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(insightsnapshot.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.InsightType(); ok {
		_spec.SetField(insightsnapshot.FieldInsightType, field.TypeString, value)
		_node.InsightType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(insightsnapshot.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insightsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// InsightSnapshotCreateBulk is the builder for creating many InsightSnapshot entities in bulk.
type InsightSnapshotCreateBulk struct {
	config
	err      error
	builders []*InsightSnapshotCreate
}

// Save creates the InsightSnapshot entities in the database.
func (_c *InsightSnapshotCreateBulk) Save(ctx context.Context) ([]*InsightSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InsightSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InsightSnapshotCreateBulk) SaveX(ctx context.Context) []*InsightSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
