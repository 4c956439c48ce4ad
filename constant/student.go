package constant

const (
	// StudentPageSize is the fixed page size of the student listing.
	StudentPageSize = 5

	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Routing keys for domain events.
const (
	EventStudentCreated = "student.created"
	EventStudentUpdated = "student.updated"
	EventStudentDeleted = "student.deleted"
	EventUserRegistered = "user.registered"
	EventUserVerified   = "user.verified"
)
