package domain

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is the single record type managed by the service.
//
// The identifier is held in its native ObjectID form and only ever leaves the
// process as a hex string; see MarshalJSON.
type Customer struct {
	ID      primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Email   string             `json:"email" bson:"email"`
	Phone   string             `json:"phone" bson:"phone"`
	Address string             `json:"address" bson:"address"`
}

// ParseID converts the external hex form into an ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// IsValidID reports whether s parses as an identifier.
func IsValidID(s string) bool {
	_, err := ParseID(s)
	return err == nil
}

// HasID reports whether the record has been persisted.
func (c Customer) HasID() bool {
	return !c.ID.IsZero()
}

// StringID returns the hex identifier, or "" when unset.
func (c Customer) StringID() string {
	if c.ID.IsZero() {
		return ""
	}
	return c.ID.Hex()
}

// SetStringID sets the identifier from its hex form. Invalid input is ignored
// and leaves the current identifier in place; use ParseID to observe the error.
func (c *Customer) SetStringID(s string) {
	id, err := ParseID(s)
	if err != nil {
		return
	}
	c.ID = id
}

// ClearID drops the identifier so the store assigns a fresh one on insert.
func (c *Customer) ClearID() {
	c.ID = primitive.NilObjectID
}

// CopyFields overwrites the mutable fields with the ones from src.
func (c *Customer) CopyFields(src Customer) {
	c.Name = src.Name
	c.Email = src.Email
	c.Phone = src.Phone
	c.Address = src.Address
}

type customerJSON struct {
	ID      *string `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
}

// MarshalJSON writes id as a hex string, or null for unsaved records.
func (c Customer) MarshalJSON() ([]byte, error) {
	out := customerJSON{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
	if c.HasID() {
		id := c.ID.Hex()
		out.ID = &id
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the id through SetStringID, so a malformed id is dropped.
func (c *Customer) UnmarshalJSON(data []byte) error {
	var in customerJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*c = Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if in.ID != nil {
		c.SetStringID(*in.ID)
	}
	return nil
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer{id=%s, name=%q, email=%q, phone=%q, address=%q}", c.StringID(), c.Name, c.Email, c.Phone, c.Address)
}
