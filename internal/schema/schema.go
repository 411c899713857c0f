// Package schema validates a submission document against the bundled
// submission XML schema.
package schema

import (
	"embed"
	"fmt"
	"os"

	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/xsd"

	"github.com/w0lphi/SE2Einzelprojekt/internal/outcome"
)

//go:embed submission.xsd
var schemaFS embed.FS

const schemaResource = "submission.xsd"

// ValidateXML checks that the file at documentPath is well formed XML and
// conforms to the bundled submission schema. The caller is responsible for
// having confirmed that the file exists.
func ValidateXML(documentPath string) error {
	schemaRaw, err := schemaFS.ReadFile(schemaResource)
	if err != nil {
		return outcome.Fail(outcome.SchemaNotFound, fmt.Errorf("failed to read bundled schema resource %s, reason: %v", schemaResource, err))
	}

	schema, err := xsd.Parse(schemaRaw)
	if err != nil {
		return outcome.Fail(outcome.SchemaNotFound, fmt.Errorf("failed to parse bundled schema resource %s, reason: %v", schemaResource, err))
	}
	defer schema.Free()

	documentRaw, err := os.ReadFile(documentPath)
	if err != nil {
		return fmt.Errorf("failed to read input file %s, reason: %v", documentPath, err)
	}

	document, err := libxml2.Parse(documentRaw)
	if err != nil {
		return outcome.Fail(outcome.SchemaValidationError, fmt.Errorf("input file is not well formed XML, reason: %v", err))
	}
	defer document.Free()

	if err := schema.Validate(document); err != nil {
		if validationErr, ok := err.(xsd.SchemaValidationError); ok {
			return outcome.Fail(outcome.SchemaValidationError, fmt.Errorf("input file does not conform to the submission schema, reason: %v", validationErr.Errors()))
		}

		return outcome.Fail(outcome.SchemaValidationError, fmt.Errorf("input file does not conform to the submission schema, reason: %v", err))
	}

	return nil
}
