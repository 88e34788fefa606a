package testmodels

import "github.com/go-openapi/strfmt"

// UserProfile is a document model used by tests that exercise typed values
// through the map-based store contract.
type UserProfile struct {

	// Unique identifier for the profile.
	// Required: true
	ID string `json:"Id" bson:"id"`

	// Email address of the user.
	// Required: true
	Email string `json:"Email" bson:"email"`

	// Display name of the user.
	// Required: true
	Name string `json:"Name" bson:"name"`

	// bio
	Bio string `json:"Bio,omitempty" bson:"bio,omitempty"`

	// Timestamp when the profile was created.
	// Required: true
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"CreatedAt" bson:"createdAt"`

	// Timestamp when the profile was last updated.
	// Required: true
	// Format: date-time
	UpdatedAt strfmt.DateTime `json:"UpdatedAt" bson:"updatedAt"`
}
