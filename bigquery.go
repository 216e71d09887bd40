package uasfix

import(
	"fmt"
	"time"
)

// SightingForBigQuery is a flattened representation of one analysed report, designed for
// import into BigQuery. Fields that could not be determined are flagged rather than zeroed; the
// publisher turns them into NULLs.
type SightingForBigQuery struct {
	ReportKey      string    // hash of the narrative; repeated publishes dedupe on this
	AnalysedUTC    time.Time
	Summary        string

	Facility       string    // the facility hint, "Nashville TN"
	OriginCode     string
	OriginName     string
	Bearing        string    // "10 SE"

	Located        bool
	Lat,Long       float64
	HasAltitude    bool
	AltitudeFt     float64

	Airspaces    []string   // names of containing airspaces
	NearestName    string
	NearestKM      float64

	Misses       []string
}

func (sbq SightingForBigQuery)String() string {
	if !sbq.Located {
		return fmt.Sprintf("%s %s: unlocated %v", sbq.ReportKey, sbq.Facility, sbq.Misses)
	}
	return fmt.Sprintf("%s %s: (%.4f,%.4f) %v nearest:%s", sbq.ReportKey, sbq.Facility,
		sbq.Lat, sbq.Long, sbq.Airspaces, sbq.NearestName)
}
