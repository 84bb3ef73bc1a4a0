// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when a user already exists for the same
	// (email, role) pair.
	ErrDuplicate = errors.New("user already exists with this role")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByEmailRole loads the user registered under the (email, role) pair.
func (s *Store) GetByEmailRole(ctx context.Context, email, role string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": email, "role": role}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail loads the first user matching the email, regardless of role.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The password must already be hashed by the
// caller. Returns ErrDuplicate if the (email, role) pair is taken; the
// unique index on (email, role) backstops the explicit check.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	err := s.c.FindOne(ctx, bson.M{"email": u.Email, "role": u.Role}).Err()
	if err == nil {
		return models.User{}, ErrDuplicate
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	u.ID = primitive.NewObjectID()
	if u.ProfileImage == "" {
		u.ProfileImage = models.DefaultProfileImage
	}
	u.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, err
	}
	return u, nil
}

// SetPassword replaces the stored password hash for the (email, role) pair.
func (s *Store) SetPassword(ctx context.Context, email, role, hash string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": email, "role": role},
		bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ProfileUpdate holds the fields a profile PUT may change. Nil pointers are
// left untouched, so callers get partial-update semantics over an explicit
// allow-list instead of an open payload merge. Identity and credential
// fields (email, role, password) are deliberately absent.
type ProfileUpdate struct {
	Name                *string                `json:"name,omitempty"`
	EmployeeID          *string                `json:"employeeId,omitempty"`
	RollNumber          *string                `json:"rollNumber,omitempty"`
	Department          *string                `json:"department,omitempty"`
	Class               *string                `json:"class,omitempty"`
	BloodGroup          *string                `json:"bloodGroup,omitempty"`
	Age                 *int                   `json:"age,omitempty"`
	Address             *string                `json:"address,omitempty"`
	ContactNo           *string                `json:"contactNo,omitempty"`
	ProfileImage        *string                `json:"profileImage,omitempty"`
	JobTitle            *string                `json:"jobTitle,omitempty"`
	AlmaMatter          *string                `json:"almaMatter,omitempty"`
	AreasOfExpertise    *[]string              `json:"areasOfExpertise,omitempty"`
	MentoringExperience *string                `json:"mentoringExperience,omitempty"`
	AvailableTimings    *string                `json:"availableTimings,omitempty"`
	LinkedinProfile     *string                `json:"linkedinProfile,omitempty"`
	ResearchPapers      *[]models.ResearchPaper `json:"researchPapers,omitempty"`
	ClubsMemberOf       *[]string              `json:"clubsMemberOf,omitempty"`
	AboutMe             *string                `json:"aboutMe,omitempty"`
	Mentor              *string                `json:"mentor,omitempty"`
	MentorID            *primitive.ObjectID    `json:"mentorId,omitempty"`
}

// set builds the $set document from the provided fields.
func (p ProfileUpdate) set() bson.M {
	set := bson.M{}
	put := func(key string, v any) { set[key] = v }

	if p.Name != nil {
		put("name", *p.Name)
	}
	if p.EmployeeID != nil {
		put("employeeId", *p.EmployeeID)
	}
	if p.RollNumber != nil {
		put("rollNumber", *p.RollNumber)
	}
	if p.Department != nil {
		put("department", *p.Department)
	}
	if p.Class != nil {
		put("class", *p.Class)
	}
	if p.BloodGroup != nil {
		put("bloodGroup", *p.BloodGroup)
	}
	if p.Age != nil {
		put("age", *p.Age)
	}
	if p.Address != nil {
		put("address", *p.Address)
	}
	if p.ContactNo != nil {
		put("contactNo", *p.ContactNo)
	}
	if p.ProfileImage != nil {
		put("profileImage", *p.ProfileImage)
	}
	if p.JobTitle != nil {
		put("jobTitle", *p.JobTitle)
	}
	if p.AlmaMatter != nil {
		put("almaMatter", *p.AlmaMatter)
	}
	if p.AreasOfExpertise != nil {
		put("areasOfExpertise", *p.AreasOfExpertise)
	}
	if p.MentoringExperience != nil {
		put("mentoringExperience", *p.MentoringExperience)
	}
	if p.AvailableTimings != nil {
		put("availableTimings", *p.AvailableTimings)
	}
	if p.LinkedinProfile != nil {
		put("linkedinProfile", *p.LinkedinProfile)
	}
	if p.ResearchPapers != nil {
		put("researchPapers", *p.ResearchPapers)
	}
	if p.ClubsMemberOf != nil {
		put("clubsMemberOf", *p.ClubsMemberOf)
	}
	if p.AboutMe != nil {
		put("aboutMe", *p.AboutMe)
	}
	if p.Mentor != nil {
		put("mentor", *p.Mentor)
	}
	if p.MentorID != nil {
		put("mentorId", *p.MentorID)
	}
	return set
}

// UpdateProfile merges the provided fields into the user matching the email
// and returns the updated document. Returns ErrNotFound if no user matches.
func (s *Store) UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) (*models.User, error) {
	set := upd.set()
	if len(set) == 0 {
		// Nothing to change; behave like a read.
		return s.GetByEmail(ctx, email)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
		opts).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// MenteesOf returns mentee users associated with the given mentor. It
// matches the canonical mentorId reference first, and keeps a legacy match
// on the mentor display string, which older records populated with either
// the mentor's name or email.
func (s *Store) MenteesOf(ctx context.Context, mentorEmail string) ([]models.User, error) {
	refs := []bson.M{{"mentor": mentorEmail}}

	mentor, err := s.GetByEmailRole(ctx, mentorEmail, "mentor")
	if err == nil {
		refs = append(refs, bson.M{"mentorId": mentor.ID})
		if mentor.Name != "" {
			refs = append(refs, bson.M{"mentor": mentor.Name})
		}
	} else if err != ErrNotFound {
		return nil, err
	}

	cur, err := s.c.Find(ctx, bson.M{"role": "mentee", "$or": refs})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	mentees := []models.User{}
	if err := cur.All(ctx, &mentees); err != nil {
		return nil, err
	}
	return mentees, nil
}

// MentorOf returns the mentor assigned to the given mentee. The canonical
// mentorId reference wins; the legacy fallback treats the mentor display
// string as an email only. Returns ErrNotFound when the mentee has no
// mentor reference or the referenced user does not exist.
func (s *Store) MentorOf(ctx context.Context, menteeEmail string) (*models.User, error) {
	mentee, err := s.GetByEmail(ctx, menteeEmail)
	if err != nil {
		return nil, err
	}

	if mentee.MentorID != nil {
		return s.GetByID(ctx, *mentee.MentorID)
	}
	if mentee.Mentor == "" {
		return nil, ErrNotFound
	}
	return s.GetByEmail(ctx, mentee.Mentor)
}
