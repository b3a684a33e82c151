package domain

import "time"

type Admission struct {
	StudentEmail  string    `json:"student_email" dynamodbav:"student_email"`
	CollegeID     string    `json:"college_id" dynamodbav:"college_id"`
	CollegeName   string    `json:"college_name" dynamodbav:"college_name"`
	CandidateName string    `json:"candidate_name" dynamodbav:"candidate_name"`
	Subject       string    `json:"subject" dynamodbav:"subject"`
	Phone         string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Address       string    `json:"address,omitempty" dynamodbav:"address,omitempty"`
	DateOfBirth   string    `json:"date_of_birth,omitempty" dynamodbav:"date_of_birth,omitempty"`
	Image         string    `json:"image,omitempty" dynamodbav:"image,omitempty"`
	Reviewed      bool      `json:"reviewed" dynamodbav:"reviewed"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateAdmissionRequest struct {
	StudentEmail  string `json:"student_email" validate:"required,email"`
	CollegeID     string `json:"college_id" validate:"required"`
	CandidateName string `json:"candidate_name" validate:"required"`
	Subject       string `json:"subject" validate:"required"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"date_of_birth"` // expected format: YYYY-MM-DD
	Image         string `json:"image"`
}
