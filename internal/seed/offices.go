// Package seed loads the initial office directory.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"logitrack/internal/core/application/usecases/commands"
	"logitrack/internal/core/domain/model/office"
	"logitrack/internal/pkg/errs"
)

// Office is one entry of the seed file.
type Office struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
	Code string `json:"code"`
}

// OfficeCreator creates one office. commands.CreateOfficeCommandHandler implements it.
type OfficeCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOfficeCommand) (*office.Office, error)
}

// LoadOffices reads a JSON array of offices from path.
func LoadOffices(path string) ([]Office, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read office seeds: %w", err)
	}

	var offices []Office
	if err := json.Unmarshal(data, &offices); err != nil {
		return nil, fmt.Errorf("decode office seeds %s: %w", path, err)
	}
	return offices, nil
}

// Offices creates every seed office that does not exist yet and returns how
// many were created. Seeding twice is harmless.
func Offices(ctx context.Context, creator OfficeCreator, offices []Office) (int, error) {
	created := 0
	for _, o := range offices {
		cmd, err := commands.NewCreateOfficeCommand(o.ID, o.Name, o.City, o.Code)
		if err != nil {
			return created, fmt.Errorf("office seed %q: %w", o.ID, err)
		}

		if _, err = creator.Handle(ctx, cmd); err != nil {
			if errors.Is(err, errs.ErrObjectAlreadyExist) {
				continue
			}
			return created, fmt.Errorf("office seed %q: %w", o.ID, err)
		}
		created++
	}
	return created, nil
}
