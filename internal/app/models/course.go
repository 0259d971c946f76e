package models

// Course represents a ski course offered by the station.
// Courses are managed elsewhere; instructors only reference them.
type Course struct {
	ID       int64      `json:"numCourse" db:"id" example:"1"`
	Level    int        `json:"level" db:"level" example:"2"`
	Type     CourseType `json:"typeCourse" db:"type_course" example:"COLLECTIVE_ADULT"`
	Support  Support    `json:"support" db:"support" example:"SKI"`
	Price    float64    `json:"price" db:"price" example:"120.5"`
	TimeSlot int        `json:"timeSlot" db:"time_slot" example:"3"`
}
