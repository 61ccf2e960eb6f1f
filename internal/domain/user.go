package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleTrainer  Role = "trainer"
	RoleCustomer Role = "customer"
)

// User represents a user in the system (either a Trainer or a Customer).
// The two variants share one collection and are discriminated by Role;
// callers must narrow by role before touching role-specific fields.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DisplayName  string             `bson:"displayName" json:"displayName"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	Mobile       string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	PasswordHash string             `bson:"passwordHash,omitempty" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// --- Trainer-specific ---
	Specialization string `bson:"specialization,omitempty" json:"specialization,omitempty"`

	// --- Customer-specific ---
	Goal          string     `bson:"goal,omitempty" json:"goal,omitempty"`
	Height        int        `bson:"height,omitempty" json:"height,omitempty"`
	Weight        int        `bson:"weight,omitempty" json:"weight,omitempty"`
	PreferredSlot string     `bson:"preferredSlot,omitempty" json:"preferredSlot,omitempty"`
	FreeTrial     bool       `bson:"freetrial,omitempty" json:"freetrial,omitempty"`
	FreeTrialDate *time.Time `bson:"freetrialDate,omitempty" json:"freetrialDate,omitempty"`

	// Trainer currently looking after this customer, if any.
	TrainerID *primitive.ObjectID `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}
