// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/tinysteps/session-service/internal/repo/sessionoffering"
	"github.com/tinysteps/session-service/internal/repo/sessiontype"
	"github.com/tinysteps/session-service/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionofferingMixin := schema.SessionOffering{}.Mixin()
	sessionofferingMixinFields0 := sessionofferingMixin[0].Fields()
	_ = sessionofferingMixinFields0
	sessionofferingMixinFields1 := sessionofferingMixin[1].Fields()
	_ = sessionofferingMixinFields1
	sessionofferingFields := schema.SessionOffering{}.Fields()
	_ = sessionofferingFields
	// sessionofferingDescCreatedAt is the schema descriptor for created_at field.
	sessionofferingDescCreatedAt := sessionofferingMixinFields1[0].Descriptor()
	// sessionoffering.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionoffering.DefaultCreatedAt = sessionofferingDescCreatedAt.Default.(func() time.Time)
	// sessionofferingDescUpdatedAt is the schema descriptor for updated_at field.
	sessionofferingDescUpdatedAt := sessionofferingMixinFields1[1].Descriptor()
	// sessionoffering.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionoffering.DefaultUpdatedAt = sessionofferingDescUpdatedAt.Default.(func() time.Time)
	// sessionoffering.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionoffering.UpdateDefaultUpdatedAt = sessionofferingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionofferingDescSessionTypeName is the schema descriptor for session_type_name field.
	sessionofferingDescSessionTypeName := sessionofferingFields[3].Descriptor()
	// sessionoffering.SessionTypeNameValidator is a validator for the "session_type_name" field. It is called by the builders before save.
	sessionoffering.SessionTypeNameValidator = sessionofferingDescSessionTypeName.Validators[0].(func(string) error)
	// sessionofferingDescPrice is the schema descriptor for price field.
	sessionofferingDescPrice := sessionofferingFields[4].Descriptor()
	// sessionoffering.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	sessionoffering.PriceValidator = sessionofferingDescPrice.Validators[0].(func(int64) error)
	// sessionofferingDescIsActive is the schema descriptor for is_active field.
	sessionofferingDescIsActive := sessionofferingFields[5].Descriptor()
	// sessionoffering.DefaultIsActive holds the default value on creation for the is_active field.
	sessionoffering.DefaultIsActive = sessionofferingDescIsActive.Default.(bool)
	// sessionofferingDescID is the schema descriptor for id field.
	sessionofferingDescID := sessionofferingMixinFields0[0].Descriptor()
	// sessionoffering.DefaultID holds the default value on creation for the id field.
	sessionoffering.DefaultID = sessionofferingDescID.Default.(func() uuid.UUID)
	sessiontypeMixin := schema.SessionType{}.Mixin()
	sessiontypeMixinFields0 := sessiontypeMixin[0].Fields()
	_ = sessiontypeMixinFields0
	sessiontypeMixinFields1 := sessiontypeMixin[1].Fields()
	_ = sessiontypeMixinFields1
	sessiontypeFields := schema.SessionType{}.Fields()
	_ = sessiontypeFields
	// sessiontypeDescCreatedAt is the schema descriptor for created_at field.
	sessiontypeDescCreatedAt := sessiontypeMixinFields1[0].Descriptor()
	// sessiontype.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessiontype.DefaultCreatedAt = sessiontypeDescCreatedAt.Default.(func() time.Time)
	// sessiontypeDescUpdatedAt is the schema descriptor for updated_at field.
	sessiontypeDescUpdatedAt := sessiontypeMixinFields1[1].Descriptor()
	// sessiontype.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessiontype.DefaultUpdatedAt = sessiontypeDescUpdatedAt.Default.(func() time.Time)
	// sessiontype.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessiontype.UpdateDefaultUpdatedAt = sessiontypeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessiontypeDescName is the schema descriptor for name field.
	sessiontypeDescName := sessiontypeFields[0].Descriptor()
	// sessiontype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	sessiontype.NameValidator = sessiontypeDescName.Validators[0].(func(string) error)
	// sessiontypeDescIsTelemedicineAvailable is the schema descriptor for is_telemedicine_available field.
	sessiontypeDescIsTelemedicineAvailable := sessiontypeFields[3].Descriptor()
	// sessiontype.DefaultIsTelemedicineAvailable holds the default value on creation for the is_telemedicine_available field.
	sessiontype.DefaultIsTelemedicineAvailable = sessiontypeDescIsTelemedicineAvailable.Default.(bool)
	// sessiontypeDescID is the schema descriptor for id field.
	sessiontypeDescID := sessiontypeMixinFields0[0].Descriptor()
	// sessiontype.DefaultID holds the default value on creation for the id field.
	sessiontype.DefaultID = sessiontypeDescID.Default.(func() uuid.UUID)
}
