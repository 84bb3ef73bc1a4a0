// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultProfileImage is used when a user has not uploaded a profile picture.
const DefaultProfileImage = "https://via.placeholder.com/150"

// User represents admins, mentors, and mentees.
//
// The same email may exist once per role: uniqueness is enforced on the
// (email, role) pair, not on email alone. A mentee account carries its
// mentor reference two ways:
//   - MentorID: the mentor's user _id (canonical, preferred for lookups)
//   - Mentor: legacy display string that older records populated with the
//     mentor's name or email, depending on the call site. Reads keep a
//     compatibility match on this field until records are migrated.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role"` // admin | mentor | mentee
	Password string             `bson:"password" json:"-"` // bcrypt hash

	// Profile information
	EmployeeID   string `bson:"employeeId,omitempty" json:"employeeId,omitempty"`
	RollNumber   string `bson:"rollNumber,omitempty" json:"rollNumber,omitempty"` // mentees
	Department   string `bson:"department,omitempty" json:"department,omitempty"`
	Class        string `bson:"class,omitempty" json:"class,omitempty"`         // mentees
	BloodGroup   string `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"` // mentees
	Age          *int   `bson:"age,omitempty" json:"age,omitempty"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
	ContactNo    string `bson:"contactNo,omitempty" json:"contactNo,omitempty"`
	ProfileImage string `bson:"profileImage,omitempty" json:"profileImage,omitempty"`

	// Professional details (mentors)
	JobTitle            string          `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	AlmaMatter          string          `bson:"almaMatter,omitempty" json:"almaMatter,omitempty"`
	AreasOfExpertise    []string        `bson:"areasOfExpertise,omitempty" json:"areasOfExpertise,omitempty"`
	MentoringExperience string          `bson:"mentoringExperience,omitempty" json:"mentoringExperience,omitempty"`
	AvailableTimings    string          `bson:"availableTimings,omitempty" json:"availableTimings,omitempty"`
	LinkedinProfile     string          `bson:"linkedinProfile,omitempty" json:"linkedinProfile,omitempty"`
	ResearchPapers      []ResearchPaper `bson:"researchPapers,omitempty" json:"researchPapers,omitempty"`
	ClubsMemberOf       []string        `bson:"clubsMemberOf,omitempty" json:"clubsMemberOf,omitempty"`
	AboutMe             string          `bson:"aboutMe,omitempty" json:"aboutMe,omitempty"`

	// Mentee-specific mentor reference (see type comment)
	Mentor   string              `bson:"mentor,omitempty" json:"mentor,omitempty"`
	MentorID *primitive.ObjectID `bson:"mentorId,omitempty" json:"mentorId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ResearchPaper is a published paper listed on a mentor's profile.
type ResearchPaper struct {
	Title string `bson:"title,omitempty" json:"title,omitempty"`
	URL   string `bson:"url,omitempty" json:"url,omitempty"`
}

// PublicUser is the summary returned to clients after a successful login.
type PublicUser struct {
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
	ID    primitive.ObjectID `json:"id"`
}

// Public returns the login summary for a user.
func (u *User) Public() PublicUser {
	return PublicUser{Name: u.Name, Email: u.Email, Role: u.Role, ID: u.ID}
}
