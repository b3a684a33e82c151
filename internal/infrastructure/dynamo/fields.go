package dynamo

// DynamoDB attribute names used in key and update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldEmail        = "email"
	fieldCollegeID    = "college_id"
	fieldNameLower    = "name_lower"
	fieldReviews      = "reviews"
	fieldStudentEmail = "student_email"
	fieldReviewed     = "reviewed"
	fieldUpdatedAt    = "updated_at"
	fieldGraduateID   = "graduate_id"
	fieldResearchID   = "research_id"
)
