// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/linku/linku/ent/sessionrecord"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *SessionRecordCreate) SetKey(v string) *SessionRecordCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetData sets the "data" field.
func (_c *SessionRecordCreate) SetData(v json.RawMessage) *SessionRecordCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionRecordCreate) SetUpdatedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableUpdatedAt(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_c *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return _c.mutation
}

// Save creates the SessionRecord in the database.
func (_c *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRecordCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRecordCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "SessionRecord.key"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "SessionRecord.data"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionRecord.updated_at"`)}
	}
	return nil
}

func (_c *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
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

func (_c *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(sessionrecord.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(sessionrecord.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
}

// Save creates the SessionRecord entities in the database.
func (_c *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
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
func (_c *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
