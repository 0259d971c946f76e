package models

import (
	"time"

	"github.com/gestionski/skistation/internal/pkg/helpers"
)

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID         int64      `json:"numInstructor" db:"id" example:"1"`                           // Assigned by the store on creation
	FirstName  string     `json:"firstName" db:"first_name" example:"John"`                    // Instructor's first name
	LastName   string     `json:"lastName" db:"last_name" example:"Doe"`                       // Instructor's last name
	DateOfHire *time.Time `json:"dateOfHire,omitempty" db:"date_of_hire" example:"2019-12-01"` // Calendar date, nil when unknown

	// Courses is the instructor's course set, stored in 'instructor_courses'.
	// nil means "not loaded" and leaves the stored set untouched on write.
	Courses []Course `json:"courses,omitempty"`
}

// YearsOfService returns the whole calendar years between the date of hire and now.
// An unset date of hire yields 0.
func (i *Instructor) YearsOfService(now time.Time) int {
	if i == nil || i.DateOfHire == nil {
		return 0
	}
	return helpers.WholeYearsBetween(*i.DateOfHire, now)
}

// CourseIDs returns the ids of the loaded course set
func (i *Instructor) CourseIDs() []int64 {
	ids := make([]int64, 0, len(i.Courses))
	for _, c := range i.Courses {
		ids = append(ids, c.ID)
	}
	return ids
}

// Clone returns a deep copy, so callers never share course slices or dates with a store
func (i *Instructor) Clone() *Instructor {
	if i == nil {
		return nil
	}
	c := *i
	if i.DateOfHire != nil {
		d := *i.DateOfHire
		c.DateOfHire = &d
	}
	if i.Courses != nil {
		c.Courses = make([]Course, len(i.Courses))
		copy(c.Courses, i.Courses)
	}
	return &c
}
