package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/gestionski/skistation/internal/app/models"
	appRepos "github.com/gestionski/skistation/internal/app/repositories"
	"github.com/gestionski/skistation/internal/pkg/apperrors"
)

// DefaultCourses is the catalogue a fresh station starts with
func DefaultCourses() []appModels.Course {
	return []appModels.Course{
		{Level: 1, Type: appModels.CourseTypeCollectiveChildren, Support: appModels.SupportSki, Price: 90, TimeSlot: 1},
		{Level: 2, Type: appModels.CourseTypeCollectiveChildren, Support: appModels.SupportSnowboard, Price: 95, TimeSlot: 2},
		{Level: 1, Type: appModels.CourseTypeCollectiveAdult, Support: appModels.SupportSki, Price: 110, TimeSlot: 1},
		{Level: 3, Type: appModels.CourseTypeCollectiveAdult, Support: appModels.SupportSnowboard, Price: 120, TimeSlot: 3},
		{Level: 2, Type: appModels.CourseTypeIndividual, Support: appModels.SupportSki, Price: 180, TimeSlot: 2},
		{Level: 4, Type: appModels.CourseTypeIndividual, Support: appModels.SupportSnowboard, Price: 200, TimeSlot: 4},
	}
}

// CreateDefaultData fills an empty course catalogue with DefaultCourses.
// A catalogue that already holds courses is left alone, and courses created
// concurrently by another instance are not reported as failures.
func CreateDefaultData(ctx context.Context, catalog appRepos.CourseCatalog, lgr zerolog.Logger) error {
	count, err := catalog.CountCourses(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting existing courses")
		return err
	}
	if count > 0 {
		lgr.Info().Int64("courses", count).Msg("Course catalogue already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Creating default courses...")
	var finalErr error // collect errors without stopping the process
	created := 0
	for _, course := range DefaultCourses() {
		c := course
		_, err := catalog.CreateCourse(ctx, &c)
		if errors.Is(err, apperrors.ErrConflict) {
			lgr.Debug().Str("type", string(c.Type)).Int("level", c.Level).Msg("Default course already present")
			continue
		}
		if err != nil {
			lgr.Error().Err(err).Str("type", string(c.Type)).Int("level", c.Level).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("created", created).Msg("Default courses created")
	return finalErr
}
