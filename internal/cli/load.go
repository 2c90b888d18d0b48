package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ngimenez/opoplan/internal/domain"
	"github.com/ngimenez/opoplan/internal/importer"
)

// loadInputs resolves planning inputs from a file path, or from the
// interactive form when no path is given and a terminal is attached.
func loadInputs(app *App, path string) (domain.FormInputs, error) {
	if path == "" {
		if app.IsInteractive == nil || !app.IsInteractive() {
			return domain.FormInputs{}, errors.New("--inputs is required when not running interactively")
		}
		return runInputsForm()
	}

	file, err := importer.LoadInputs(path)
	if err != nil {
		return domain.FormInputs{}, err
	}
	if errs := importer.ValidateInputs(file); len(errs) > 0 {
		return domain.FormInputs{}, fmt.Errorf("invalid inputs file:\n%s", joinErrors(errs))
	}
	return file.ToDomain(), nil
}

// loadEvents reads and validates a feedback events file.
func loadEvents(path string) ([]domain.FeedbackEvent, error) {
	file, err := importer.LoadEvents(path)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidateEvents(file); len(errs) > 0 {
		return nil, fmt.Errorf("invalid events file:\n%s", joinErrors(errs))
	}
	return file.ToDomain(), nil
}

func joinErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = "  - " + err.Error()
	}
	return strings.Join(lines, "\n")
}

// todayFlag converts the optional --today value into the service contract's
// pointer form.
func todayFlag(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
