package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultTicketType string = "General"

type Booking struct {
	Id         primitive.ObjectID `json:"id" bson:"_id"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Event      string             `json:"event" bson:"event"`
	TicketType string             `json:"ticketType" bson:"ticketType"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// NewBooking stamps a fresh identifier and creation time on b and fills in
// the ticket type when the caller left it empty.
func NewBooking(b Booking, now time.Time) Booking {
	b.Id = primitive.NewObjectID()
	b.CreatedAt = now.UTC()
	b.UpdatedAt = nil
	if b.TicketType == "" {
		b.TicketType = DefaultTicketType
	}
	return b
}

// MissingFields lists the required fields that are absent or empty.
func (b Booking) MissingFields() []string {
	missing := []string{}
	if b.Name == "" {
		missing = append(missing, "name")
	}
	if b.Email == "" {
		missing = append(missing, "email")
	}
	if b.Event == "" {
		missing = append(missing, "event")
	}
	return missing
}

// BookingPatch carries a partial update. Nil and empty strings both mean
// "leave the stored value alone".
type BookingPatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Event      *string `json:"event"`
	TicketType *string `json:"ticketType"`
}

func Present(value *string) bool {
	return value != nil && *value != ""
}

// Changes maps the stored field names of every present field to its new value.
func (p BookingPatch) Changes() map[string]string {
	changes := map[string]string{}
	if Present(p.Name) {
		changes["name"] = *p.Name
	}
	if Present(p.Email) {
		changes["email"] = *p.Email
	}
	if Present(p.Event) {
		changes["event"] = *p.Event
	}
	if Present(p.TicketType) {
		changes["ticketType"] = *p.TicketType
	}
	return changes
}

func (p BookingPatch) ApplyTo(b *Booking, now time.Time) {
	if Present(p.Name) {
		b.Name = *p.Name
	}
	if Present(p.Email) {
		b.Email = *p.Email
	}
	if Present(p.Event) {
		b.Event = *p.Event
	}
	if Present(p.TicketType) {
		b.TicketType = *p.TicketType
	}
	updatedAt := now.UTC()
	b.UpdatedAt = &updatedAt
}

// Field returns the value of a stored field by name.
func (b Booking) Field(name string) (string, bool) {
	switch name {
	case "name":
		return b.Name, true
	case "email":
		return b.Email, true
	case "event":
		return b.Event, true
	case "ticketType":
		return b.TicketType, true
	}
	return "", false
}
