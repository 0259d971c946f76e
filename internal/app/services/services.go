// Package services holds the business rules of the station.
//
// Services defined in this package:
//   - InstructorService: instructor lifecycle, course assignment and seniority
package services
