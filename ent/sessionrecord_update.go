// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/linku/linku/ent/predicate"
	"github.com/linku/linku/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *SessionRecordUpdate) SetKey(v string) *SessionRecordUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableKey(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *SessionRecordUpdate) SetData(v json.RawMessage) *SessionRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *SessionRecordUpdate) AppendData(v json.RawMessage) *SessionRecordUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRecordUpdate) SetUpdatedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(sessionrecord.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(sessionrecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldData, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetKey sets the "key" field.
func (_u *SessionRecordUpdateOne) SetKey(v string) *SessionRecordUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableKey(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *SessionRecordUpdateOne) SetData(v json.RawMessage) *SessionRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *SessionRecordUpdateOne) AppendData(v json.RawMessage) *SessionRecordUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRecordUpdateOne) SetUpdatedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(sessionrecord.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(sessionrecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldData, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
