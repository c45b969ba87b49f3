// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/ent/bookingrequest"
)

// BookingRequestCreate is the builder for creating a BookingRequest entity.
type BookingRequestCreate struct {
	config
	mutation *BookingRequestMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *BookingRequestCreate) SetSessionID(v string) *BookingRequestCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *BookingRequestCreate) SetNillableSessionID(v *string) *BookingRequestCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *BookingRequestCreate) SetName(v string) *BookingRequestCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *BookingRequestCreate) SetEmail(v string) *BookingRequestCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetCompany sets the "company" field.
func (_c *BookingRequestCreate) SetCompany(v string) *BookingRequestCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *BookingRequestCreate) SetNillableCompany(v *string) *BookingRequestCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetPreferredSlot sets the "preferred_slot" field.
func (_c *BookingRequestCreate) SetPreferredSlot(v string) *BookingRequestCreate {
	_c.mutation.SetPreferredSlot(v)
	return _c
}

// SetNillablePreferredSlot sets the "preferred_slot" field if the given value is not nil.
func (_c *BookingRequestCreate) SetNillablePreferredSlot(v *string) *BookingRequestCreate {
	if v != nil {
		_c.SetPreferredSlot(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BookingRequestCreate) SetNotes(v string) *BookingRequestCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BookingRequestCreate) SetNillableNotes(v *string) *BookingRequestCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BookingRequestCreate) SetCreatedAt(v time.Time) *BookingRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BookingRequestCreate) SetNillableCreatedAt(v *time.Time) *BookingRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BookingRequestMutation object of the builder.
func (_c *BookingRequestCreate) Mutation() *BookingRequestMutation {
	return _c.mutation
}

// Save creates the BookingRequest in the database.
func (_c *BookingRequestCreate) Save(ctx context.Context) (*BookingRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BookingRequestCreate) SaveX(ctx context.Context) *BookingRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BookingRequestCreate) defaults() {
	if _, ok := _c.mutation.SessionID(); !ok {
		v := bookingrequest.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.Company(); !ok {
		v := bookingrequest.DefaultCompany
		_c.mutation.SetCompany(v)
	}
	if _, ok := _c.mutation.PreferredSlot(); !ok {
		v := bookingrequest.DefaultPreferredSlot
		_c.mutation.SetPreferredSlot(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := bookingrequest.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bookingrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BookingRequestCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "BookingRequest.session_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "BookingRequest.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := bookingrequest.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BookingRequest.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "BookingRequest.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := bookingrequest.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "BookingRequest.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Company(); !ok {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required field "BookingRequest.company"`)}
	}
	if _, ok := _c.mutation.PreferredSlot(); !ok {
		return &ValidationError{Name: "preferred_slot", err: errors.New(`ent: missing required field "BookingRequest.preferred_slot"`)}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "BookingRequest.notes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BookingRequest.created_at"`)}
	}
	return nil
}

func (_c *BookingRequestCreate) sqlSave(ctx context.Context) (*BookingRequest, error) {
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

func (_c *BookingRequestCreate) createSpec() (*BookingRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &BookingRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bookingrequest.Table, sqlgraph.NewFieldSpec(bookingrequest.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(bookingrequest.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(bookingrequest.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(bookingrequest.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(bookingrequest.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.PreferredSlot(); ok {
		_spec.SetField(bookingrequest.FieldPreferredSlot, field.TypeString, value)
		_node.PreferredSlot = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(bookingrequest.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bookingrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BookingRequestCreateBulk is the builder for creating many BookingRequest entities in bulk.
type BookingRequestCreateBulk struct {
	config
	err      error
	builders []*BookingRequestCreate
}

// Save creates the BookingRequest entities in the database.
func (_c *BookingRequestCreateBulk) Save(ctx context.Context) ([]*BookingRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BookingRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookingRequestMutation)
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
func (_c *BookingRequestCreateBulk) SaveX(ctx context.Context) []*BookingRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BookingRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BookingRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
