package dto

import (
	"time"

	"github.com/gestionski/skistation/internal/app/models"
	"github.com/gestionski/skistation/internal/pkg/helpers"
)

// InstructorRequest represents the payload to add an instructor
type InstructorRequest struct {
	NumInstructor *int64  `json:"numInstructor,omitempty" binding:"omitempty,gt=0" example:"1"`           // Existing instructor id, if any
	FirstName     string  `json:"firstName" binding:"required,personname" example:"John"`           // Instructor's first name
	LastName      string  `json:"lastName" binding:"required,personname" example:"Doe"`             // Instructor's last name
	DateOfHire    *string `json:"dateOfHire,omitempty" binding:"omitempty,hiredate" example:"2019-12-01"` // YYYY-MM-DD
}

// UpdateInstructorRequest represents the payload to update an instructor
type UpdateInstructorRequest struct {
	NumInstructor int64   `json:"numInstructor" binding:"required,gt=0" example:"1"`
	FirstName     string  `json:"firstName" binding:"required,personname" example:"John"`
	LastName      string  `json:"lastName" binding:"required,personname" example:"Doe"`
	DateOfHire    *string `json:"dateOfHire,omitempty" binding:"omitempty,hiredate" example:"2019-12-01"`
}

// CourseResponse represents a course attached to an instructor
type CourseResponse struct {
	NumCourse  int64   `json:"numCourse" example:"1"`
	Level      int     `json:"level" example:"2"`
	TypeCourse string  `json:"typeCourse" example:"COLLECTIVE_ADULT"`
	Support    string  `json:"support" example:"SKI"`
	Price      float64 `json:"price" example:"120.5"`
	TimeSlot   int     `json:"timeSlot" example:"3"`
}

// InstructorResponse represents the response for an instructor
type InstructorResponse struct {
	NumInstructor  int64            `json:"numInstructor" example:"1"`
	FirstName      string           `json:"firstName" example:"John"`
	LastName       string           `json:"lastName" example:"Doe"`
	DateOfHire     *string          `json:"dateOfHire" example:"2019-12-01"`
	YearsOfService int              `json:"yearsOfService" example:"5"` // Computed when the response is built
	Courses        []CourseResponse `json:"courses,omitempty"`
}

// ToModel converts the request into an instructor entity
func (r *InstructorRequest) ToModel() (*models.Instructor, error) {
	instructor := &models.Instructor{
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
	if r.NumInstructor != nil {
		instructor.ID = *r.NumInstructor
	}
	hired, err := parseOptionalDate(r.DateOfHire)
	if err != nil {
		return nil, err
	}
	instructor.DateOfHire = hired
	return instructor, nil
}

// ToModel converts the request into an instructor entity
func (r *UpdateInstructorRequest) ToModel() (*models.Instructor, error) {
	hired, err := parseOptionalDate(r.DateOfHire)
	if err != nil {
		return nil, err
	}
	return &models.Instructor{
		ID:         r.NumInstructor,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		DateOfHire: hired,
	}, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := helpers.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// NewInstructorResponse builds the response shape, computing years of service at now
func NewInstructorResponse(instructor *models.Instructor, now time.Time) *InstructorResponse {
	if instructor == nil {
		return nil
	}

	resp := &InstructorResponse{
		NumInstructor:  instructor.ID,
		FirstName:      instructor.FirstName,
		LastName:       instructor.LastName,
		DateOfHire:     helpers.FormatDate(instructor.DateOfHire),
		YearsOfService: instructor.YearsOfService(now),
	}

	for _, c := range instructor.Courses {
		resp.Courses = append(resp.Courses, CourseResponse{
			NumCourse:  c.ID,
			Level:      c.Level,
			TypeCourse: string(c.Type),
			Support:    string(c.Support),
			Price:      c.Price,
			TimeSlot:   c.TimeSlot,
		})
	}

	return resp
}

// NewInstructorResponses converts a list, preserving order
func NewInstructorResponses(instructors []*models.Instructor, now time.Time) []*InstructorResponse {
	out := make([]*InstructorResponse, 0, len(instructors))
	for _, i := range instructors {
		out = append(out, NewInstructorResponse(i, now))
	}
	return out
}
