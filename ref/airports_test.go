package ref

import(
	"testing"

	"github.com/skypies/geo"
	"github.com/skypies/uasfix"
)

func testTable() *AirportTable {
	return NewAirportTable([]uasfix.AirportRecord{
		{Code:"1TN5", Name:"NASHVILLE MEDICAL CTR", State:"TN", Type:"HELIPORT",
			Latlong:geo.Latlong{Lat:36.1420, Long:-86.8020}},
		{Code:"JWN", Name:"JOHN C TUNE", State:"TN", Type:"AIRPORT",
			Latlong:geo.Latlong{Lat:36.1824, Long:-86.8867}},
		{Code:"BNA", Name:"NASHVILLE INTL", State:"TN", Type:"AIRPORT",
			Latlong:geo.Latlong{Lat:36.1245, Long:-86.6782}},
		{Code:"ZZZ", Name:"NASHVILLE MUNI", State:"TN", Type:"Airport",
			Latlong:geo.Latlong{Lat:36.0, Long:-86.0}},
		{Code:"ORD", Name:"CHICAGO O'HARE INTL", State:"IL", Type:"AIRPORT",
			Latlong:geo.Latlong{Lat:41.9786, Long:-87.9048}},
	})
}

func TestResolve(t *testing.T) {
	at := testTable()

	tests := []struct{
		Descrip  string
		Hint     *uasfix.FacilityHint
		Code     string
		Found    bool
	}{
		{"exact city",         &uasfix.FacilityHint{"Nashville", "TN"},   "BNA", true},
		{"state case",         &uasfix.FacilityHint{"Chicago", "il"},     "ORD", true},
		{"low confidence",     &uasfix.FacilityHint{"Springfield", "IL"}, "ORD", true},
		{"no airports in state", &uasfix.FacilityHint{"Denver", "CO"},    "",    false},
		{"nil hint",           nil,                                        "",    false},
	}

	for _,test := range tests {
		t.Run(test.Descrip, func(t *testing.T) {
			m,found := at.Resolve(test.Hint)
			if found != test.Found {
				t.Fatalf("expected found=%v, got %v (%s)", test.Found, found, m.AirportRecord)
			}
			if m.Code != test.Code {
				t.Errorf("expected %s, got %s", test.Code, m.AirportRecord)
			}
		})
	}
}

func TestResolveIgnoresNonAirports(t *testing.T) {
	m,found := testTable().Resolve(&uasfix.FacilityHint{"Nashville Medical", "TN"})
	if !found {
		t.Fatal("expected a match")
	}
	if m.Code == "1TN5" {
		t.Errorf("heliport should have been filtered out")
	}
	if m.NCandidates != 3 {
		t.Errorf("expected 3 TN airports, got %d", m.NCandidates)
	}
}

func TestResolveTieBreak(t *testing.T) {
	// BNA and ZZZ both contain the whole city name; the first one in the table wins
	m,_ := testTable().Resolve(&uasfix.FacilityHint{"Nashville", "TN"})
	if m.Code != "BNA" || m.Score != 100 {
		t.Errorf("expected BNA@100, got %s@%d", m.Code, m.Score)
	}

	rev := NewAirportTable([]uasfix.AirportRecord{
		{Code:"ZZZ", Name:"NASHVILLE MUNI", State:"TN", Type:"AIRPORT"},
		{Code:"BNA", Name:"NASHVILLE INTL", State:"TN", Type:"AIRPORT"},
	})
	if m,_ := rev.Resolve(&uasfix.FacilityHint{"Nashville", "TN"}); m.Code != "ZZZ" {
		t.Errorf("expected ZZZ when it comes first, got %s", m.Code)
	}
}

func TestLookupCode(t *testing.T) {
	at := testTable()
	if ar,found := at.LookupCode(" bna "); !found || ar.Name != "NASHVILLE INTL" {
		t.Errorf("LookupCode(bna): %v %s", found, ar)
	}
	if _,found := at.LookupCode("XXX"); found {
		t.Errorf("LookupCode(XXX): unexpected match")
	}
	if at.Len() != 5 || len(at.Airports()) != 5 {
		t.Errorf("Len: %d", at.Len())
	}
}
