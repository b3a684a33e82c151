package domain

import "time"

type College struct {
	CollegeID      string    `json:"_id" dynamodbav:"college_id"`
	Name           string    `json:"name" dynamodbav:"name"`
	NameLower      string    `json:"-" dynamodbav:"name_lower"`
	Image          string    `json:"image,omitempty" dynamodbav:"image,omitempty"`
	Location       string    `json:"location,omitempty" dynamodbav:"location,omitempty"`
	Description    string    `json:"description,omitempty" dynamodbav:"description,omitempty"`
	AdmissionStart string    `json:"admission_start,omitempty" dynamodbav:"admission_start,omitempty"`
	AdmissionEnd   string    `json:"admission_end,omitempty" dynamodbav:"admission_end,omitempty"`
	Events         []string  `json:"events" dynamodbav:"events"`
	Sports         []string  `json:"sports" dynamodbav:"sports"`
	ResearchWorks  int       `json:"research_works" dynamodbav:"research_works"`
	Reviews        []Review  `json:"reviews" dynamodbav:"reviews"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}

// Review is embedded in College.Reviews. Reviews are only ever appended.
type Review struct {
	ReviewerName  string    `json:"reviewer_name" dynamodbav:"reviewer_name" validate:"required"`
	ReviewerEmail string    `json:"reviewer_email" dynamodbav:"reviewer_email" validate:"required,email"`
	Rating        float64   `json:"rating" dynamodbav:"rating" validate:"gte=0,lte=5"`
	Text          string    `json:"review" dynamodbav:"text"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
}

// RatedCollege is a College annotated with its derived average rating.
type RatedCollege struct {
	College
	AverageRating float64 `json:"average_rating"`
}

// FlatReview is a Review tagged with the college it was written for.
type FlatReview struct {
	CollegeID   string `json:"college_id"`
	CollegeName string `json:"college_name"`
	Review
}

// ReviewResult reports both phases of a review submission.
type ReviewResult struct {
	College          *RatedCollege `json:"college"`
	AdmissionUpdated bool          `json:"admission_updated"`
}
