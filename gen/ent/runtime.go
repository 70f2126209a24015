// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cookify/receipt-ocr-service/db/ent/schema"
	"github.com/cookify/receipt-ocr-service/gen/ent/ingredient"
	"github.com/cookify/receipt-ocr-service/gen/ent/scanjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	ingredientFields := schema.Ingredient{}.Fields()
	_ = ingredientFields
	// ingredientDescName is the schema descriptor for name field.
	ingredientDescName := ingredientFields[1].Descriptor()
	// ingredient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	ingredient.NameValidator = ingredientDescName.Validators[0].(func(string) error)
	// ingredientDescCreatedAt is the schema descriptor for created_at field.
	ingredientDescCreatedAt := ingredientFields[3].Descriptor()
	// ingredient.DefaultCreatedAt holds the default value on creation for the created_at field.
	ingredient.DefaultCreatedAt = ingredientDescCreatedAt.Default.(func() time.Time)
	// ingredientDescUpdatedAt is the schema descriptor for updated_at field.
	ingredientDescUpdatedAt := ingredientFields[4].Descriptor()
	// ingredient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ingredient.DefaultUpdatedAt = ingredientDescUpdatedAt.Default.(func() time.Time)
	// ingredient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ingredient.UpdateDefaultUpdatedAt = ingredientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ingredientDescID is the schema descriptor for id field.
	ingredientDescID := ingredientFields[0].Descriptor()
	// ingredient.DefaultID holds the default value on creation for the id field.
	ingredient.DefaultID = ingredientDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescContentHashPrefix is the schema descriptor for content_hash_prefix field.
	scanjobDescContentHashPrefix := scanjobFields[1].Descriptor()
	// scanjob.ContentHashPrefixValidator is a validator for the "content_hash_prefix" field. It is called by the builders before save.
	scanjob.ContentHashPrefixValidator = scanjobDescContentHashPrefix.Validators[0].(func(string) error)
	// scanjobDescByteSize is the schema descriptor for byte_size field.
	scanjobDescByteSize := scanjobFields[2].Descriptor()
	// scanjob.ByteSizeValidator is a validator for the "byte_size" field. It is called by the builders before save.
	scanjob.ByteSizeValidator = scanjobDescByteSize.Validators[0].(func(int) error)
	// scanjobDescStatus is the schema descriptor for status field.
	scanjobDescStatus := scanjobFields[3].Descriptor()
	// scanjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scanjob.StatusValidator = scanjobDescStatus.Validators[0].(func(string) error)
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[9].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
}
