package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func getenv() error {
	bindAddr = os.Getenv("BIND_ADDR")
	templatePath = os.Getenv("TEMPLATE_PATH")

	var errs []error
	if bindAddr == "" {
		errs = append(errs, errors.New("BIND_ADDR is not set"))
	}

	// An unset TEMPLATE_PATH means the embedded templates are always used
	if templatePath != "" {
		var err error
		templatePath, err = filepath.Abs(templatePath)
		if err != nil {
			errs = append(errs, fmt.Errorf("unable to get absolute path to templates: %w", err))
		}
	}

	return errors.Join(errs...)
}
