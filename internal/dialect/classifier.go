package dialect

import "sfzkit/internal/doc"

// Classification is the result of scoring evidence for a document.
type Classification struct {
	// Kind is the smallest revision that covers every hint.
	Kind Kind
	// Dominant is the revision most of the evidence belongs to.
	Dominant        Kind
	Score           int
	TotalScore      int
	Confidence      float64 // Score / TotalScore of Dominant
	Counts          [kindCount]int
	ObservedSignals int
}

// Count returns how many hints of kind k were observed.
func (c Classification) Count(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return c.Counts[k]
}

// Classifier scores evidence.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Kind: Unknown}
	}

	var scores [kindCount]int
	var c Classification
	for _, h := range e.hints {
		c.ObservedSignals++
		if h.Dialect <= Unknown || h.Dialect >= kindCount {
			continue
		}
		c.Counts[h.Dialect]++
		if h.Score <= 0 {
			continue
		}
		scores[h.Dialect] += h.Score
		c.TotalScore += h.Score
	}

	for k := V1; k < kindCount; k++ {
		if scores[k] > c.Score {
			c.Dominant, c.Score = k, scores[k]
		}
	}
	if c.TotalScore > 0 {
		c.Confidence = float64(c.Score) / float64(c.TotalScore)
	}

	switch {
	case c.Counts[ARIA] > 0 && c.Counts[Cakewalk] > 0:
		c.Kind = Mixed
	case c.Counts[ARIA] > 0:
		c.Kind = ARIA
	case c.Counts[Cakewalk] > 0:
		c.Kind = Cakewalk
	case c.Counts[V2] > 0:
		c.Kind = V2
	case c.Counts[V1] > 0:
		c.Kind = V1
	default:
		c.Kind = Unknown
	}
	return c
}

// Detect observes and classifies d in one step.
func Detect(d *doc.Document) Classification {
	return Classifier{}.Classify(Observe(d))
}
