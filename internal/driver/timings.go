package driver

import (
	"encoding/json"
	"fmt"

	"sfzkit/internal/diag"
	"sfzkit/internal/observ"
	"sfzkit/internal/source"
)

// timingPayload is the JSON carried in the note of an OBS6001 diagnostic.
type timingPayload struct {
	Path    string               `json:"path,omitempty"`
	Files   int                  `json:"files"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

func (p timingPayload) message() string {
	msg := fmt.Sprintf("timings: %.2f ms", p.TotalMS)
	if p.Files > 1 {
		msg += fmt.Sprintf(" over %d files", p.Files)
	}
	if p.Path != "" {
		msg += ": " + p.Path
	}
	return msg
}

// appendTimingDiagnostic adds the timing table as an info diagnostic. The
// bag limit does not apply to it: --timings output must not depend on how
// many warnings came first.
func appendTimingDiagnostic(bag *diag.Bag, payload timingPayload) {
	if bag == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	entry := diag.NewInfo(diag.ObsTimings, source.Span{}, payload.message()).
		WithNote(source.Span{}, string(data))
	if !bag.Add(entry) {
		overflow := diag.NewBag(0)
		overflow.Add(entry)
		bag.Merge(overflow)
	}
}
