// Package submission holds the parsed representation of a submission
// document.
package submission

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Record is the parsed submission document. All six fields are required by
// the submission schema, a schema valid document always populates every one.
type Record struct {
	XMLName        xml.Name `xml:"submission"`
	Name           string   `xml:"name"`
	StudentID      string   `xml:"studentid"`
	CommitHash     string   `xml:"lastcommithash"`
	AccountName    string   `xml:"accountname"`
	RepositoryName string   `xml:"repositoryname"`
	RepositoryURL  string   `xml:"repositoryurl"`
}

// Parse deserializes the file at documentPath into a Record. The file is
// assumed to have passed schema validation already, failures here are not a
// named outcome and surface as plain errors.
func Parse(documentPath string) (*Record, error) {
	raw, err := os.ReadFile(documentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s, reason: %v", documentPath, err)
	}

	record := new(Record)
	if err := xml.Unmarshal(raw, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal input file %s, reason: %v", documentPath, err)
	}

	return record, nil
}
