// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cookify/receipt-ocr-service/gen/ent/scanjob"
	"github.com/google/uuid"
)

// ScanJobCreate is the builder for creating a ScanJob entity.
type ScanJobCreate struct {
	config
	mutation *ScanJobMutation
	hooks    []Hook
}

// SetContentHashPrefix sets the "content_hash_prefix" field.
func (_c *ScanJobCreate) SetContentHashPrefix(v string) *ScanJobCreate {
	_c.mutation.SetContentHashPrefix(v)
	return _c
}

// SetByteSize sets the "byte_size" field.
func (_c *ScanJobCreate) SetByteSize(v int) *ScanJobCreate {
	_c.mutation.SetByteSize(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScanJobCreate) SetStatus(v string) *ScanJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ScanJobCreate) SetRawText(v string) *ScanJobCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableRawText(v *string) *ScanJobCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ScanJobCreate) SetConfidence(v float32) *ScanJobCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableConfidence(v *float32) *ScanJobCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetItemsDetected sets the "items_detected" field.
func (_c *ScanJobCreate) SetItemsDetected(v int) *ScanJobCreate {
	_c.mutation.SetItemsDetected(v)
	return _c
}

// SetNillableItemsDetected sets the "items_detected" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableItemsDetected(v *int) *ScanJobCreate {
	if v != nil {
		_c.SetItemsDetected(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ScanJobCreate) SetDurationMs(v int64) *ScanJobCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableDurationMs(v *int64) *ScanJobCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScanJobCreate) SetErrorMessage(v string) *ScanJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableErrorMessage(v *string) *ScanJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ScanJobCreate) SetStartedAt(v time.Time) *ScanJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableStartedAt(v *time.Time) *ScanJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ScanJobCreate) SetFinishedAt(v time.Time) *ScanJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableFinishedAt(v *time.Time) *ScanJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScanJobCreate) SetID(v uuid.UUID) *ScanJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScanJobCreate) SetNillableID(v *uuid.UUID) *ScanJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ScanJobMutation object of the builder.
func (_c *ScanJobCreate) Mutation() *ScanJobMutation {
	return _c.mutation
}

// Save creates the ScanJob in the database.
func (_c *ScanJobCreate) Save(ctx context.Context) (*ScanJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScanJobCreate) SaveX(ctx context.Context) *ScanJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScanJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := scanjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scanjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScanJobCreate) check() error {
	if _, ok := _c.mutation.ContentHashPrefix(); !ok {
		return &ValidationError{Name: "content_hash_prefix", err: errors.New(`ent: missing required field "ScanJob.content_hash_prefix"`)}
	}
	if v, ok := _c.mutation.ContentHashPrefix(); ok {
		if err := scanjob.ContentHashPrefixValidator(v); err != nil {
			return &ValidationError{Name: "content_hash_prefix", err: fmt.Errorf(`ent: validator failed for field "ScanJob.content_hash_prefix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ByteSize(); !ok {
		return &ValidationError{Name: "byte_size", err: errors.New(`ent: missing required field "ScanJob.byte_size"`)}
	}
	if v, ok := _c.mutation.ByteSize(); ok {
		if err := scanjob.ByteSizeValidator(v); err != nil {
			return &ValidationError{Name: "byte_size", err: fmt.Errorf(`ent: validator failed for field "ScanJob.byte_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScanJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ScanJob.started_at"`)}
	}
	return nil
}

func (_c *ScanJobCreate) sqlSave(ctx context.Context) (*ScanJob, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScanJobCreate) createSpec() (*ScanJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScanJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scanjob.Table, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContentHashPrefix(); ok {
		_spec.SetField(scanjob.FieldContentHashPrefix, field.TypeString, value)
		_node.ContentHashPrefix = value
	}
	if value, ok := _c.mutation.ByteSize(); ok {
		_spec.SetField(scanjob.FieldByteSize, field.TypeInt, value)
		_node.ByteSize = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(scanjob.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(scanjob.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ItemsDetected(); ok {
		_spec.SetField(scanjob.FieldItemsDetected, field.TypeInt, value)
		_node.ItemsDetected = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(scanjob.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// ScanJobCreateBulk is the builder for creating many ScanJob entities in bulk.
type ScanJobCreateBulk struct {
	config
	err      error
	builders []*ScanJobCreate
}

// Save creates the ScanJob entities in the database.
func (_c *ScanJobCreateBulk) Save(ctx context.Context) ([]*ScanJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScanJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScanJobMutation)
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
func (_c *ScanJobCreateBulk) SaveX(ctx context.Context) []*ScanJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScanJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScanJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
