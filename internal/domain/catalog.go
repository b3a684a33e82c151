package domain

type Graduate struct {
	GraduateID     string `json:"_id" dynamodbav:"graduate_id"`
	Name           string `json:"name" dynamodbav:"name"`
	Image          string `json:"image,omitempty" dynamodbav:"image,omitempty"`
	CollegeID      string `json:"college_id" dynamodbav:"college_id"`
	CollegeName    string `json:"college_name" dynamodbav:"college_name"`
	Subject        string `json:"subject" dynamodbav:"subject"`
	GraduationYear int    `json:"graduation_year" dynamodbav:"graduation_year"`
}

type Research struct {
	ResearchID  string `json:"_id" dynamodbav:"research_id"`
	Title       string `json:"title" dynamodbav:"title"`
	Author      string `json:"author" dynamodbav:"author"`
	CollegeID   string `json:"college_id" dynamodbav:"college_id"`
	CollegeName string `json:"college_name" dynamodbav:"college_name"`
	Link        string `json:"link,omitempty" dynamodbav:"link,omitempty"`
	Summary     string `json:"summary,omitempty" dynamodbav:"summary,omitempty"`
	PublishedAt string `json:"published_at,omitempty" dynamodbav:"published_at,omitempty"`
}
