package metrics

// Filter narrows metric computation to a municipality, an age band, or a
// recency window. Zero values mean "no filter"; DaysBack defaults to 30.
type Filter struct {
	MunicipalityCode string
	AgeMin           *int
	AgeMax           *int
	DaysBack         int
}

// Summary holds aggregate epidemiological metrics over validated hemograms.
// The prevalence thresholds mirror the alert rule set.
type Summary struct {
	TotalExams                     int      `json:"total_exams"`
	AvgHemoglobin                  *float64 `json:"avg_hemoglobin,omitempty"`
	AvgPlatelets                   *float64 `json:"avg_platelets,omitempty"`
	AvgLeukocytes                  *float64 `json:"avg_leukocytes,omitempty"`
	AnemiaSeverePercent            float64  `json:"anemia_severe_percent"`
	AnemiaModeratePercent          float64  `json:"anemia_moderate_percent"`
	ThrombocytopeniaSeverePercent  float64  `json:"thrombocytopenia_severe_percent"`
	ThrombocytopeniaModeratePercent float64 `json:"thrombocytopenia_moderate_percent"`
	LeukopeniaPercent              float64  `json:"leukopenia_percent"`
	DaysBack                       int      `json:"days_back"`
}

// MunicipalityBucket is one heatmap cell: exam volume and condition rates
// for a single municipality.
type MunicipalityBucket struct {
	MunicipalityCode     string  `json:"municipality_code"`
	ExamCount            int     `json:"exam_count"`
	AnemiaRate           float64 `json:"anemia_rate"`
	ThrombocytopeniaRate float64 `json:"thrombocytopenia_rate"`
}
