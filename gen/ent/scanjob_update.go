// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cookify/receipt-ocr-service/gen/ent/predicate"
	"github.com/cookify/receipt-ocr-service/gen/ent/scanjob"
)

// ScanJobUpdate is the builder for updating ScanJob entities.
type ScanJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScanJobMutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdate) Where(ps ...predicate.ScanJob) *ScanJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentHashPrefix sets the "content_hash_prefix" field.
func (_u *ScanJobUpdate) SetContentHashPrefix(v string) *ScanJobUpdate {
	_u.mutation.SetContentHashPrefix(v)
	return _u
}

// SetNillableContentHashPrefix sets the "content_hash_prefix" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableContentHashPrefix(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetContentHashPrefix(*v)
	}
	return _u
}

// SetByteSize sets the "byte_size" field.
func (_u *ScanJobUpdate) SetByteSize(v int) *ScanJobUpdate {
	_u.mutation.ResetByteSize()
	_u.mutation.SetByteSize(v)
	return _u
}

// SetNillableByteSize sets the "byte_size" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableByteSize(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetByteSize(*v)
	}
	return _u
}

// AddByteSize adds value to the "byte_size" field.
func (_u *ScanJobUpdate) AddByteSize(v int) *ScanJobUpdate {
	_u.mutation.AddByteSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdate) SetStatus(v string) *ScanJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStatus(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ScanJobUpdate) SetRawText(v string) *ScanJobUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableRawText(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ScanJobUpdate) ClearRawText() *ScanJobUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ScanJobUpdate) SetConfidence(v float32) *ScanJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableConfidence(v *float32) *ScanJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ScanJobUpdate) AddConfidence(v float32) *ScanJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ScanJobUpdate) ClearConfidence() *ScanJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetItemsDetected sets the "items_detected" field.
func (_u *ScanJobUpdate) SetItemsDetected(v int) *ScanJobUpdate {
	_u.mutation.ResetItemsDetected()
	_u.mutation.SetItemsDetected(v)
	return _u
}

// SetNillableItemsDetected sets the "items_detected" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableItemsDetected(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetItemsDetected(*v)
	}
	return _u
}

// AddItemsDetected adds value to the "items_detected" field.
func (_u *ScanJobUpdate) AddItemsDetected(v int) *ScanJobUpdate {
	_u.mutation.AddItemsDetected(v)
	return _u
}

// ClearItemsDetected clears the value of the "items_detected" field.
func (_u *ScanJobUpdate) ClearItemsDetected() *ScanJobUpdate {
	_u.mutation.ClearItemsDetected()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ScanJobUpdate) SetDurationMs(v int64) *ScanJobUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableDurationMs(v *int64) *ScanJobUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ScanJobUpdate) AddDurationMs(v int64) *ScanJobUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ScanJobUpdate) ClearDurationMs() *ScanJobUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdate) SetErrorMessage(v string) *ScanJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableErrorMessage(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdate) ClearErrorMessage() *ScanJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdate) SetFinishedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFinishedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdate) ClearFinishedAt() *ScanJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdate) Mutation() *ScanJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdate) check() error {
	if v, ok := _u.mutation.ContentHashPrefix(); ok {
		if err := scanjob.ContentHashPrefixValidator(v); err != nil {
			return &ValidationError{Name: "content_hash_prefix", err: fmt.Errorf(`ent: validator failed for field "ScanJob.content_hash_prefix": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ByteSize(); ok {
		if err := scanjob.ByteSizeValidator(v); err != nil {
			return &ValidationError{Name: "byte_size", err: fmt.Errorf(`ent: validator failed for field "ScanJob.byte_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentHashPrefix(); ok {
		_spec.SetField(scanjob.FieldContentHashPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.ByteSize(); ok {
		_spec.SetField(scanjob.FieldByteSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedByteSize(); ok {
		_spec.AddField(scanjob.FieldByteSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(scanjob.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(scanjob.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(scanjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(scanjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(scanjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ItemsDetected(); ok {
		_spec.SetField(scanjob.FieldItemsDetected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsDetected(); ok {
		_spec.AddField(scanjob.FieldItemsDetected, field.TypeInt, value)
	}
	if _u.mutation.ItemsDetectedCleared() {
		_spec.ClearField(scanjob.FieldItemsDetected, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(scanjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(scanjob.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(scanjob.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanJobUpdateOne is the builder for updating a single ScanJob entity.
type ScanJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanJobMutation
}

// SetContentHashPrefix sets the "content_hash_prefix" field.
func (_u *ScanJobUpdateOne) SetContentHashPrefix(v string) *ScanJobUpdateOne {
	_u.mutation.SetContentHashPrefix(v)
	return _u
}

// SetNillableContentHashPrefix sets the "content_hash_prefix" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableContentHashPrefix(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetContentHashPrefix(*v)
	}
	return _u
}

// SetByteSize sets the "byte_size" field.
func (_u *ScanJobUpdateOne) SetByteSize(v int) *ScanJobUpdateOne {
	_u.mutation.ResetByteSize()
	_u.mutation.SetByteSize(v)
	return _u
}

// SetNillableByteSize sets the "byte_size" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableByteSize(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetByteSize(*v)
	}
	return _u
}

// AddByteSize adds value to the "byte_size" field.
func (_u *ScanJobUpdateOne) AddByteSize(v int) *ScanJobUpdateOne {
	_u.mutation.AddByteSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdateOne) SetStatus(v string) *ScanJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStatus(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ScanJobUpdateOne) SetRawText(v string) *ScanJobUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableRawText(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ScanJobUpdateOne) ClearRawText() *ScanJobUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ScanJobUpdateOne) SetConfidence(v float32) *ScanJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableConfidence(v *float32) *ScanJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ScanJobUpdateOne) AddConfidence(v float32) *ScanJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ScanJobUpdateOne) ClearConfidence() *ScanJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetItemsDetected sets the "items_detected" field.
func (_u *ScanJobUpdateOne) SetItemsDetected(v int) *ScanJobUpdateOne {
	_u.mutation.ResetItemsDetected()
	_u.mutation.SetItemsDetected(v)
	return _u
}

// SetNillableItemsDetected sets the "items_detected" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableItemsDetected(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetItemsDetected(*v)
	}
	return _u
}

// AddItemsDetected adds value to the "items_detected" field.
func (_u *ScanJobUpdateOne) AddItemsDetected(v int) *ScanJobUpdateOne {
	_u.mutation.AddItemsDetected(v)
	return _u
}

// ClearItemsDetected clears the value of the "items_detected" field.
func (_u *ScanJobUpdateOne) ClearItemsDetected() *ScanJobUpdateOne {
	_u.mutation.ClearItemsDetected()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ScanJobUpdateOne) SetDurationMs(v int64) *ScanJobUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableDurationMs(v *int64) *ScanJobUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ScanJobUpdateOne) AddDurationMs(v int64) *ScanJobUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ScanJobUpdateOne) ClearDurationMs() *ScanJobUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdateOne) SetErrorMessage(v string) *ScanJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableErrorMessage(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdateOne) ClearErrorMessage() *ScanJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdateOne) SetFinishedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdateOne) ClearFinishedAt() *ScanJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdateOne) Mutation() *ScanJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdateOne) Where(ps ...predicate.ScanJob) *ScanJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanJobUpdateOne) Select(field string, fields ...string) *ScanJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanJob entity.
func (_u *ScanJobUpdateOne) Save(ctx context.Context) (*ScanJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdateOne) SaveX(ctx context.Context) *ScanJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdateOne) check() error {
	if v, ok := _u.mutation.ContentHashPrefix(); ok {
		if err := scanjob.ContentHashPrefixValidator(v); err != nil {
			return &ValidationError{Name: "content_hash_prefix", err: fmt.Errorf(`ent: validator failed for field "ScanJob.content_hash_prefix": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ByteSize(); ok {
		if err := scanjob.ByteSizeValidator(v); err != nil {
			return &ValidationError{Name: "byte_size", err: fmt.Errorf(`ent: validator failed for field "ScanJob.byte_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanJobUpdateOne) sqlSave(ctx context.Context) (_node *ScanJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanjob.FieldID)
		for _, f := range fields {
			if !scanjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanjob.FieldID {
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
	if value, ok := _u.mutation.ContentHashPrefix(); ok {
		_spec.SetField(scanjob.FieldContentHashPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.ByteSize(); ok {
		_spec.SetField(scanjob.FieldByteSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedByteSize(); ok {
		_spec.AddField(scanjob.FieldByteSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(scanjob.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(scanjob.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(scanjob.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(scanjob.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(scanjob.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ItemsDetected(); ok {
		_spec.SetField(scanjob.FieldItemsDetected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsDetected(); ok {
		_spec.AddField(scanjob.FieldItemsDetected, field.TypeInt, value)
	}
	if _u.mutation.ItemsDetectedCleared() {
		_spec.ClearField(scanjob.FieldItemsDetected, field.TypeInt)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(scanjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(scanjob.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(scanjob.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	_node = &ScanJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
