// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdeck/ent/feedbackevent"
	"github.com/abhisek/quizdeck/ent/predicate"
)

// FeedbackEventUpdate is the builder for updating FeedbackEvent entities.
type FeedbackEventUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdate) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FeedbackEventUpdate) SetSessionID(v string) *FeedbackEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableSessionID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackEventUpdate) SetRating(v int) *FeedbackEventUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableRating(v *int) *FeedbackEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FeedbackEventUpdate) AddRating(v int) *FeedbackEventUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackEventUpdate) SetComment(v string) *FeedbackEventUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableComment(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *FeedbackEventUpdate) ClearComment() *FeedbackEventUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *FeedbackEventUpdate) SetDelivered(v bool) *FeedbackEventUpdate {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableDelivered(v *bool) *FeedbackEventUpdate {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdate) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := feedbackevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedbackevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Comment(); ok {
		if err := feedbackevent.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.comment": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(feedbackevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedbackevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(feedbackevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedbackevent.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(feedbackevent.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(feedbackevent.FieldDelivered, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackEventUpdateOne is the builder for updating a single FeedbackEvent entity.
type FeedbackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *FeedbackEventUpdateOne) SetSessionID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableSessionID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *FeedbackEventUpdateOne) SetRating(v int) *FeedbackEventUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableRating(v *int) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *FeedbackEventUpdateOne) AddRating(v int) *FeedbackEventUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackEventUpdateOne) SetComment(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableComment(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *FeedbackEventUpdateOne) ClearComment() *FeedbackEventUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *FeedbackEventUpdateOne) SetDelivered(v bool) *FeedbackEventUpdateOne {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableDelivered(v *bool) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdateOne) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdateOne) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackEventUpdateOne) Select(field string, fields ...string) *FeedbackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackEvent entity.
func (_u *FeedbackEventUpdateOne) Save(ctx context.Context) (*FeedbackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) SaveX(ctx context.Context) *FeedbackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := feedbackevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := feedbackevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Comment(); ok {
		if err := feedbackevent.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.comment": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackevent.FieldID)
		for _, f := range fields {
			if !feedbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackevent.FieldID {
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
		_spec.SetField(feedbackevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(feedbackevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(feedbackevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedbackevent.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(feedbackevent.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(feedbackevent.FieldDelivered, field.TypeBool, value)
	}
	_node = &FeedbackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
