package cindex

// Quality is a categorical judgment of spectral coherence.
type Quality int

const (
	QualityPoor Quality = iota
	QualityFair
	QualityGood
	QualityExcellent
)

// String returns the human-readable quality label.
func (q Quality) String() string {
	switch q {
	case QualityExcellent:
		return "Excellent"
	case QualityGood:
		return "Good"
	case QualityFair:
		return "Fair"
	default:
		return "Poor"
	}
}

// Classify maps a mean C-Index and its coefficient of variation to a quality
// label via first-matching ordered rules:
//
//	mean > 0.85 and cv < 0.05  =>  Excellent
//	mean > 0.80 and cv < 0.10  =>  Good
//	mean > 0.70 and cv < 0.15  =>  Fair
//	otherwise                  =>  Poor
//
// Total over all real inputs: NaN comparisons are false in Go, so NaN mean
// or cv falls through to QualityPoor.
func Classify(mean, cv float64) Quality {
	switch {
	case mean > 0.85 && cv < 0.05:
		return QualityExcellent
	case mean > 0.80 && cv < 0.10:
		return QualityGood
	case mean > 0.70 && cv < 0.15:
		return QualityFair
	default:
		return QualityPoor
	}
}
