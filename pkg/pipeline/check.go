package pipeline

import (
	"github.com/aretw0/todi/pkg/domain"
	"github.com/aretw0/todi/pkg/notation"
)

// CheckReport lists the OCR transcriptions that do not match the reference grammar.
type CheckReport struct {
	Checked    int
	WellFormed int
	Malformed  []domain.Record
}

// Check inspects todi_ocr of every record that has one.
func Check(records []domain.Record) CheckReport {
	var rep CheckReport
	for _, r := range records {
		if r.TodiOCR == "" {
			continue
		}
		rep.Checked++
		if notation.WellFormed(r.TodiOCR) {
			rep.WellFormed++
		} else {
			rep.Malformed = append(rep.Malformed, r)
		}
	}
	return rep
}
