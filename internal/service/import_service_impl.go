package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/semestra/internal/db"
	"github.com/alexanderramin/semestra/internal/importer"
	"github.com/alexanderramin/semestra/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportTimetable(ctx context.Context, userID, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadFile(filePath)
	if err != nil {
		return nil, err
	}
	return s.ImportTimetableFromSchema(ctx, userID, schema)
}

// ImportTimetableFromSchema validates, converts, and persists a timetable
// in one transaction. On any validation error nothing is written.
func (s *importService) ImportTimetableFromSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid import file:\n  %s", strings.Join(msgs, "\n  "))
	}

	tt, err := importer.Convert(schema, userID)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		courses := repository.NewSQLiteCourseRepo(tx)
		slots := repository.NewSQLiteBusySlotRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)

		for _, c := range tt.Courses {
			if err := courses.Create(ctx, c); err != nil {
				return fmt.Errorf("importing course %q: %w", c.Name, err)
			}
		}
		for _, sl := range tt.BusySlots {
			if err := slots.Create(ctx, sl); err != nil {
				return fmt.Errorf("importing busy slot %q: %w", sl.Title, err)
			}
		}
		for _, t := range tt.Tasks {
			if err := tasks.Create(ctx, t); err != nil {
				return fmt.Errorf("importing task %q: %w", t.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		CourseCount: len(tt.Courses),
		SlotCount:   len(tt.BusySlots),
		TaskCount:   len(tt.Tasks),
	}, nil
}
