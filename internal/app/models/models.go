package models

// CourseType defines the kind of ski course
type CourseType string

const (
	CourseTypeCollectiveChildren CourseType = "COLLECTIVE_CHILDREN"
	CourseTypeCollectiveAdult    CourseType = "COLLECTIVE_ADULT"
	CourseTypeIndividual         CourseType = "INDIVIDUAL"
)

// Support defines the equipment a course is taught on
type Support string

const (
	SupportSki       Support = "SKI"
	SupportSnowboard Support = "SNOWBOARD"
)
