package weather

// Thresholds for Classify.
const (
	HotAboveC       = 35.0
	DryBelowPercent = 20.0
)

type Advisory struct {
	Code string `json:"code"` // too_hot|low_humidity|optimal
	Text string `json:"text"`
}

var (
	TooHot      = Advisory{Code: "too_hot", Text: "Too hot for crops. Ensure irrigation."}
	LowHumidity = Advisory{Code: "low_humidity", Text: "Low humidity. Consider watering."}
	Optimal     = Advisory{Code: "optimal", Text: "Weather conditions are optimal."}
)

// Classify maps a reading to an advisory. Heat is checked before humidity;
// anything matching neither rule, NaN included, is optimal.
func Classify(temperature, humidity float64) Advisory {
	switch {
	case temperature > HotAboveC:
		return TooHot
	case humidity < DryBelowPercent:
		return LowHumidity
	default:
		return Optimal
	}
}

// The alert sent when a reading classifies as TooHot.
const (
	HotAlertSubject = "High Temperature Alert"
	HotAlertMessage = "The temperature is too high for optimal crop growth. Consider irrigation."
)
