// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tinysteps/session-service/internal/repo/predicate"
	"github.com/tinysteps/session-service/internal/repo/sessionoffering"
	"github.com/tinysteps/session-service/internal/repo/sessiontype"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSessionOffering = "SessionOffering"
	TypeSessionType     = "SessionType"
)

// SessionOfferingMutation represents an operation that mutates the SessionOffering nodes in the graph.
type SessionOfferingMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	doctor_id         *uuid.UUID
	branch_id         *uuid.UUID
	session_type_id   *uuid.UUID
	session_type_name *string
	price             *int64
	addprice          *int64
	is_active         *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SessionOffering, error)
	predicates        []predicate.SessionOffering
}

var _ ent.Mutation = (*SessionOfferingMutation)(nil)

// sessionofferingOption allows management of the mutation configuration using functional options.
type sessionofferingOption func(*SessionOfferingMutation)

// newSessionOfferingMutation creates new mutation for the SessionOffering entity.
func newSessionOfferingMutation(c config, op Op, opts ...sessionofferingOption) *SessionOfferingMutation {
	m := &SessionOfferingMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionOffering,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionOfferingID sets the ID field of the mutation.
func withSessionOfferingID(id uuid.UUID) sessionofferingOption {
	return func(m *SessionOfferingMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionOffering
		)
		m.oldValue = func(ctx context.Context) (*SessionOffering, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionOffering.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionOffering sets the old SessionOffering of the mutation.
func withSessionOffering(node *SessionOffering) sessionofferingOption {
	return func(m *SessionOfferingMutation) {
		m.oldValue = func(context.Context) (*SessionOffering, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionOfferingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionOfferingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionOffering entities.
func (m *SessionOfferingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionOfferingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionOfferingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionOffering.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionOfferingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionOfferingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionOffering entity.
// If the SessionOffering object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOfferingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionOfferingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionOfferingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionOfferingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionOffering entity.
// If the SessionOffering object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOfferingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionOfferingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *SessionOfferingMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *SessionOfferingMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the SessionOffering entity.
// If the SessionOffering object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOfferingMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *SessionOfferingMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetBranchID sets the "branch_id" field.
func (m *SessionOfferingMutation) SetBranchID(u uuid.UUID) {
	m.branch_id = &u
}

// BranchID returns the value of the "branch_id" field in the mutation.
func (m *SessionOfferingMutation) BranchID() (r uuid.UUID, exists bool) {
	v := m.branch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchID returns the old "branch_id" field's value of the SessionOffering entity.
// If the SessionOffering object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOfferingMutation) OldBranchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchID: %w", err)
	}
	return oldValue.BranchID, nil
}

// ResetBranchID resets all changes to the "branch_id" field.
func (m *SessionOfferingMutation) ResetBranchID() {
	m.branch_id = nil
}

// SetSessionTypeID sets the "session_type_id" field.
func (m *SessionOfferingMutation) SetSessionTypeID(u uuid.UUID) {
	m.session_type_id = &u
}

// SessionTypeID returns the value of the "session_type_id" field in the mutation.
func (m *SessionOfferingMutation) SessionTypeID() (r uuid.UUID, exists bool) {
	v := m.session_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionTypeID returns the old "session_type_id" field's value of the SessionOffering entity.
// If the SessionOffering object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOfferingMutation) OldSessionTypeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionTypeID: %w", err)
	}
	return oldValue.SessionTypeID, nil
}

// ResetSessionTypeID resets all changes to the "session_type_id" field.
func (m *SessionOfferingMutation) ResetSessionTypeID() {
	m.session_type_id = nil
}

// SetSessionTypeName sets the "session_type_name" field.
func (m *SessionOfferingMutation) SetSessionTypeName(s string) {
	m.session_type_name = &s
}

// SessionTypeName returns the value of the "session_type_name" field in the mutation.
func (m *SessionOfferingMutation) SessionTypeName() (r string, exists bool) {
	v := m.session_type_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionTypeName returns the old "session_type_name" field's value of the SessionOffering entity.
// If the SessionOffering object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOfferingMutation) OldSessionTypeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionTypeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionTypeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionTypeName: %w", err)
	}
	return oldValue.SessionTypeName, nil
}

// ResetSessionTypeName resets all changes to the "session_type_name" field.
func (m *SessionOfferingMutation) ResetSessionTypeName() {
	m.session_type_name = nil
}

// SetPrice sets the "price" field.
func (m *SessionOfferingMutation) SetPrice(i int64) {
	m.price = &i
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *SessionOfferingMutation) Price() (r int64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the SessionOffering entity.
// If the SessionOffering object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOfferingMutation) OldPrice(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds i to the "price" field.
func (m *SessionOfferingMutation) AddPrice(i int64) {
	if m.addprice != nil {
		*m.addprice += i
	} else {
		m.addprice = &i
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *SessionOfferingMutation) AddedPrice() (r int64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *SessionOfferingMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetIsActive sets the "is_active" field.
func (m *SessionOfferingMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *SessionOfferingMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the SessionOffering entity.
// If the SessionOffering object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionOfferingMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *SessionOfferingMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the SessionOfferingMutation builder.
func (m *SessionOfferingMutation) Where(ps ...predicate.SessionOffering) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionOfferingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionOfferingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionOffering, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionOfferingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionOfferingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionOffering).
func (m *SessionOfferingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionOfferingMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, sessionoffering.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionoffering.FieldUpdatedAt)
	}
	if m.doctor_id != nil {
		fields = append(fields, sessionoffering.FieldDoctorID)
	}
	if m.branch_id != nil {
		fields = append(fields, sessionoffering.FieldBranchID)
	}
	if m.session_type_id != nil {
		fields = append(fields, sessionoffering.FieldSessionTypeID)
	}
	if m.session_type_name != nil {
		fields = append(fields, sessionoffering.FieldSessionTypeName)
	}
	if m.price != nil {
		fields = append(fields, sessionoffering.FieldPrice)
	}
	if m.is_active != nil {
		fields = append(fields, sessionoffering.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionOfferingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionoffering.FieldCreatedAt:
		return m.CreatedAt()
	case sessionoffering.FieldUpdatedAt:
		return m.UpdatedAt()
	case sessionoffering.FieldDoctorID:
		return m.DoctorID()
	case sessionoffering.FieldBranchID:
		return m.BranchID()
	case sessionoffering.FieldSessionTypeID:
		return m.SessionTypeID()
	case sessionoffering.FieldSessionTypeName:
		return m.SessionTypeName()
	case sessionoffering.FieldPrice:
		return m.Price()
	case sessionoffering.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionOfferingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionoffering.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessionoffering.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case sessionoffering.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case sessionoffering.FieldBranchID:
		return m.OldBranchID(ctx)
	case sessionoffering.FieldSessionTypeID:
		return m.OldSessionTypeID(ctx)
	case sessionoffering.FieldSessionTypeName:
		return m.OldSessionTypeName(ctx)
	case sessionoffering.FieldPrice:
		return m.OldPrice(ctx)
	case sessionoffering.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown SessionOffering field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionOfferingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionoffering.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessionoffering.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case sessionoffering.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case sessionoffering.FieldBranchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchID(v)
		return nil
	case sessionoffering.FieldSessionTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionTypeID(v)
		return nil
	case sessionoffering.FieldSessionTypeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionTypeName(v)
		return nil
	case sessionoffering.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case sessionoffering.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown SessionOffering field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionOfferingMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, sessionoffering.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionOfferingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionoffering.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionOfferingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionoffering.FieldPrice:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown SessionOffering numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionOfferingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionOfferingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionOfferingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionOffering nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionOfferingMutation) ResetField(name string) error {
	switch name {
	case sessionoffering.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessionoffering.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case sessionoffering.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case sessionoffering.FieldBranchID:
		m.ResetBranchID()
		return nil
	case sessionoffering.FieldSessionTypeID:
		m.ResetSessionTypeID()
		return nil
	case sessionoffering.FieldSessionTypeName:
		m.ResetSessionTypeName()
		return nil
	case sessionoffering.FieldPrice:
		m.ResetPrice()
		return nil
	case sessionoffering.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown SessionOffering field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionOfferingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionOfferingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionOfferingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionOfferingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionOfferingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionOfferingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionOfferingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionOffering unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionOfferingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionOffering edge %s", name)
}

// SessionTypeMutation represents an operation that mutates the SessionType nodes in the graph.
type SessionTypeMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	updated_at                  *time.Time
	name                        *string
	description                 *string
	default_duration_minutes    *int
	adddefault_duration_minutes *int
	is_telemedicine_available   *bool
	status                      *sessiontype.Status
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*SessionType, error)
	predicates                  []predicate.SessionType
}

var _ ent.Mutation = (*SessionTypeMutation)(nil)

// sessiontypeOption allows management of the mutation configuration using functional options.
type sessiontypeOption func(*SessionTypeMutation)

// newSessionTypeMutation creates new mutation for the SessionType entity.
func newSessionTypeMutation(c config, op Op, opts ...sessiontypeOption) *SessionTypeMutation {
	m := &SessionTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionTypeID sets the ID field of the mutation.
func withSessionTypeID(id uuid.UUID) sessiontypeOption {
	return func(m *SessionTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionType
		)
		m.oldValue = func(ctx context.Context) (*SessionType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionType sets the old SessionType of the mutation.
func withSessionType(node *SessionType) sessiontypeOption {
	return func(m *SessionTypeMutation) {
		m.oldValue = func(context.Context) (*SessionType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionType entities.
func (m *SessionTypeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionTypeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionTypeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionTypeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionTypeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionType entity.
// If the SessionType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionTypeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionTypeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionTypeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionTypeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionType entity.
// If the SessionType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionTypeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionTypeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *SessionTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SessionTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SessionType entity.
// If the SessionType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionTypeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SessionTypeMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SessionTypeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SessionTypeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SessionType entity.
// If the SessionType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionTypeMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SessionTypeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[sessiontype.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SessionTypeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[sessiontype.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SessionTypeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, sessiontype.FieldDescription)
}

// SetDefaultDurationMinutes sets the "default_duration_minutes" field.
func (m *SessionTypeMutation) SetDefaultDurationMinutes(i int) {
	m.default_duration_minutes = &i
	m.adddefault_duration_minutes = nil
}

// DefaultDurationMinutes returns the value of the "default_duration_minutes" field in the mutation.
func (m *SessionTypeMutation) DefaultDurationMinutes() (r int, exists bool) {
	v := m.default_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultDurationMinutes returns the old "default_duration_minutes" field's value of the SessionType entity.
// If the SessionType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionTypeMutation) OldDefaultDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultDurationMinutes: %w", err)
	}
	return oldValue.DefaultDurationMinutes, nil
}

// AddDefaultDurationMinutes adds i to the "default_duration_minutes" field.
func (m *SessionTypeMutation) AddDefaultDurationMinutes(i int) {
	if m.adddefault_duration_minutes != nil {
		*m.adddefault_duration_minutes += i
	} else {
		m.adddefault_duration_minutes = &i
	}
}

// AddedDefaultDurationMinutes returns the value that was added to the "default_duration_minutes" field in this mutation.
func (m *SessionTypeMutation) AddedDefaultDurationMinutes() (r int, exists bool) {
	v := m.adddefault_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultDurationMinutes resets all changes to the "default_duration_minutes" field.
func (m *SessionTypeMutation) ResetDefaultDurationMinutes() {
	m.default_duration_minutes = nil
	m.adddefault_duration_minutes = nil
}

// SetIsTelemedicineAvailable sets the "is_telemedicine_available" field.
func (m *SessionTypeMutation) SetIsTelemedicineAvailable(b bool) {
	m.is_telemedicine_available = &b
}

// IsTelemedicineAvailable returns the value of the "is_telemedicine_available" field in the mutation.
func (m *SessionTypeMutation) IsTelemedicineAvailable() (r bool, exists bool) {
	v := m.is_telemedicine_available
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTelemedicineAvailable returns the old "is_telemedicine_available" field's value of the SessionType entity.
// If the SessionType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionTypeMutation) OldIsTelemedicineAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTelemedicineAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTelemedicineAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTelemedicineAvailable: %w", err)
	}
	return oldValue.IsTelemedicineAvailable, nil
}

// ResetIsTelemedicineAvailable resets all changes to the "is_telemedicine_available" field.
func (m *SessionTypeMutation) ResetIsTelemedicineAvailable() {
	m.is_telemedicine_available = nil
}

// SetStatus sets the "status" field.
func (m *SessionTypeMutation) SetStatus(s sessiontype.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionTypeMutation) Status() (r sessiontype.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SessionType entity.
// If the SessionType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionTypeMutation) OldStatus(ctx context.Context) (v sessiontype.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionTypeMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the SessionTypeMutation builder.
func (m *SessionTypeMutation) Where(ps ...predicate.SessionType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionType).
func (m *SessionTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionTypeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, sessiontype.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sessiontype.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, sessiontype.FieldName)
	}
	if m.description != nil {
		fields = append(fields, sessiontype.FieldDescription)
	}
	if m.default_duration_minutes != nil {
		fields = append(fields, sessiontype.FieldDefaultDurationMinutes)
	}
	if m.is_telemedicine_available != nil {
		fields = append(fields, sessiontype.FieldIsTelemedicineAvailable)
	}
	if m.status != nil {
		fields = append(fields, sessiontype.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessiontype.FieldCreatedAt:
		return m.CreatedAt()
	case sessiontype.FieldUpdatedAt:
		return m.UpdatedAt()
	case sessiontype.FieldName:
		return m.Name()
	case sessiontype.FieldDescription:
		return m.Description()
	case sessiontype.FieldDefaultDurationMinutes:
		return m.DefaultDurationMinutes()
	case sessiontype.FieldIsTelemedicineAvailable:
		return m.IsTelemedicineAvailable()
	case sessiontype.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessiontype.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessiontype.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case sessiontype.FieldName:
		return m.OldName(ctx)
	case sessiontype.FieldDescription:
		return m.OldDescription(ctx)
	case sessiontype.FieldDefaultDurationMinutes:
		return m.OldDefaultDurationMinutes(ctx)
	case sessiontype.FieldIsTelemedicineAvailable:
		return m.OldIsTelemedicineAvailable(ctx)
	case sessiontype.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown SessionType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessiontype.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessiontype.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case sessiontype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case sessiontype.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case sessiontype.FieldDefaultDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultDurationMinutes(v)
		return nil
	case sessiontype.FieldIsTelemedicineAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTelemedicineAvailable(v)
		return nil
	case sessiontype.FieldStatus:
		v, ok := value.(sessiontype.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown SessionType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionTypeMutation) AddedFields() []string {
	var fields []string
	if m.adddefault_duration_minutes != nil {
		fields = append(fields, sessiontype.FieldDefaultDurationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionTypeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessiontype.FieldDefaultDurationMinutes:
		return m.AddedDefaultDurationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessiontype.FieldDefaultDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown SessionType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionTypeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessiontype.FieldDescription) {
		fields = append(fields, sessiontype.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionTypeMutation) ClearField(name string) error {
	switch name {
	case sessiontype.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown SessionType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionTypeMutation) ResetField(name string) error {
	switch name {
	case sessiontype.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessiontype.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case sessiontype.FieldName:
		m.ResetName()
		return nil
	case sessiontype.FieldDescription:
		m.ResetDescription()
		return nil
	case sessiontype.FieldDefaultDurationMinutes:
		m.ResetDefaultDurationMinutes()
		return nil
	case sessiontype.FieldIsTelemedicineAvailable:
		m.ResetIsTelemedicineAvailable()
		return nil
	case sessiontype.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown SessionType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionTypeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionTypeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionTypeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionTypeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionTypeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionType edge %s", name)
}
