package model

import (
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student represents a document of the students collection
type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Gender     string             `bson:"gender" json:"gender"`
	ProfilePic string             `bson:"profilePic,omitempty" json:"profilePic"`
}

// MarshalJSON writes profilePic as null when no picture is attached.
func (s Student) MarshalJSON() ([]byte, error) {
	type plain Student
	var pic *string
	if s.ProfilePic != "" {
		pic = &s.ProfilePic
	}
	return json.Marshal(struct {
		plain
		ProfilePic *string `json:"profilePic"`
	}{plain: plain(s), ProfilePic: pic})
}

// StudentFilter for listing students
type StudentFilter struct {
	Search string
}

// StudentPatch holds the fields of a partial update; nil means untouched.
type StudentPatch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Gender     *string
	ProfilePic *string
}

// CreateStudentRequest for student creation
type CreateStudentRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Gender    string `json:"gender" validate:"required,oneof=male female other"`
}

func (r *CreateStudentRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Gender = strings.TrimSpace(r.Gender)
}

func (r *CreateStudentRequest) IsEmpty() bool {
	return r.FirstName == "" && r.LastName == "" && r.Email == "" && r.Phone == "" && r.Gender == ""
}

func (r *CreateStudentRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"firstName.required": "First name is required",
		"lastName.required":  "Last name is required",
		"email.required":     "Email is required",
		"email.email":        "Invalid email address",
		"phone.required":     "Phone number is required",
		"phone.phone":        "Phone number must be 10 to 15 digits",
		"gender.required":    "Gender is required",
		"gender.oneof":       "Gender must be one of male, female, other",
	}
}

// UpdateStudentRequest for partial student update. Blank values count as absent.
type UpdateStudentRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,phone"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=male female other"`
}

func (r *UpdateStudentRequest) Normalize() {
	r.FirstName = trimOptional(r.FirstName, false)
	r.LastName = trimOptional(r.LastName, false)
	r.Email = trimOptional(r.Email, true)
	r.Phone = trimOptional(r.Phone, false)
	r.Gender = trimOptional(r.Gender, false)
}

func (r *UpdateStudentRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Email == nil && r.Phone == nil && r.Gender == nil
}

func (r *UpdateStudentRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email.email":  "Invalid email address",
		"phone.phone":  "Phone number must be 10 to 15 digits",
		"gender.oneof": "Gender must be one of male, female, other",
	}
}

// Patch converts the request into a store patch, binding profilePic when a new file was uploaded.
func (r *UpdateStudentRequest) Patch(profilePic string) *StudentPatch {
	patch := &StudentPatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Gender:    r.Gender,
	}
	if profilePic != "" {
		patch.ProfilePic = &profilePic
	}
	return patch
}

type StudentListResponse struct {
	Docs        []Student `json:"docs"`
	TotalDocs   int64     `json:"totalDocs"`
	Limit       int       `json:"limit"`
	Page        int       `json:"page"`
	TotalPages  int       `json:"totalPages"`
	HasPrevPage bool      `json:"hasPrevPage"`
	HasNextPage bool      `json:"hasNextPage"`
	PrevPage    *int      `json:"prevPage"`
	NextPage    *int      `json:"nextPage"`
}

func trimOptional(v *string, lower bool) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	if lower {
		s = strings.ToLower(s)
	}
	return &s
}
