package extract

// go test -v github.com/skypies/uasfix/extract

import "testing"

const nashville = `PRELIM INFO FROM FAA OPS: NASHVILLE, TN/UAS INCIDENT/1205C/
NASHVILLE APCH ADVISED CESSNA C650, REPORTED A WHITE UAS FROM THE 10 O'CLOCK 
POSITION WHILE NE BOUND AT 4,000 FEET 10 SE NASHVILLE. NO EVASIVE ACTION 
REPORTED. NASHVILLE ARPT PD NOTIFIED. WOC 7-3333 DJ/ER`

// Eastern time stamps end in E, which is also a compass point
const newark = `PRELIM INFO FROM FAA OPS: NEWARK, NJ/UAS INCIDENT/1430E/
UNITED B738 REPORTED A UAS OFF THE RIGHT SIDE AT 2,000 FEET 5 SW EWR. NO EVASIVE ACTION
REPORTED.`

func TestCityState(t *testing.T) {
	tests := []struct{
		Text        string
		City,State  string
		Found       bool
	}{
		{nashville,                                      "Nashville",   "TN", true},
		{"prelim info from faa ops: chicago, il/uas",    "Chicago",     "IL", true},
		{"FROM FAA OPS:  NEW   YORK, NY/UAS",            "New York",    "NY", true},
		{"FROM FAA OPS: SALT LAKE CITY,  UT",            "Salt Lake City", "UT", true},
		{"FROM FAA OPS: 123, TX",                        "", "", false},
		{"NASHVILLE, TN/UAS INCIDENT",                   "", "", false},
		{"",                                             "", "", false},
	}

	for _,test := range tests {
		hint,found := CityState(test.Text)
		if found != test.Found {
			t.Errorf("%q - expected found=%v, got %v", test.Text, test.Found, found)
			continue
		}
		if hint.City != test.City || hint.State != test.State {
			t.Errorf("%q - expected %q/%q, got %q/%q", test.Text, test.City, test.State,
				hint.City, hint.State)
		}
	}

	if hint,_ := CityState(nashville); hint.String() != "Nashville TN" {
		t.Errorf("hint string: got %q", hint.String())
	}
}

func TestBearing(t *testing.T) {
	tests := []struct{
		Text     string
		Dist     float64
		Dir      string
		Found    bool
	}{
		{nashville,                        10.0, "SE",  true},
		{"uas 2.5 nnw of the field",        2.5, "NNW", true},
		{"3NE OHARE",                       0.0, "",    false}, // needs a space
		{newark,                            5.0, "SW",  true},  // not the 1430E time stamp
		{"RWY22/1430E/ 5 SW EWR",           5.0, "SW",  true},
		{"5 W THEN 7 E",                    5.0, "W",   true},  // first match wins
		{"12 ESE",                         12.0, "ESE", true},
		{"0 N",                             0.0, "N",   true},
		{"10 SEC AFTER",                    0.0, "",    false}, // not a compass point
		{"AT 4,000 FEET",                   0.0, "",    false},
		{"",                                0.0, "",    false},
	}

	for _,test := range tests {
		bt,found := Bearing(test.Text)
		if found != test.Found {
			t.Errorf("%q - expected found=%v, got %v (%v)", test.Text, test.Found, found, bt)
			continue
		}
		if bt.DistanceNM != test.Dist || bt.Direction != test.Dir {
			t.Errorf("%q - expected %v %s, got %v", test.Text, test.Dist, test.Dir, bt)
		}
	}
}

func TestAltitude(t *testing.T) {
	tests := []struct{
		Text   string
		Alt    int
		Found  bool
	}{
		{nashville,                     4000,  true},
		{"at 400 feet agl",              400,  true},
		{"AT 12,500 FEET THEN 300 FEET", 12500, true},
		{"AT , FEET",                      0,  false},
		{"AT 4000FT",                      0,  false},
		{"",                               0,  false},
	}

	for _,test := range tests {
		alt,found := Altitude(test.Text)
		if found != test.Found || alt != test.Alt {
			t.Errorf("%q - expected %d/%v, got %d/%v", test.Text, test.Alt, test.Found, alt, found)
		}
	}
}

func TestAllIsIndependent(t *testing.T) {
	// A malformed offset must not stop the other fields being found
	e := All("PRELIM INFO FROM FAA OPS: NASHVILLE, TN/UAS. SOMEWHERE NEARBY AT 1,200 FEET")
	if !e.HasHint || e.Hint.City != "Nashville" {
		t.Errorf("hint: %+v", e)
	}
	if e.HasBearing {
		t.Errorf("unexpected bearing: %+v", e.Bearing)
	}
	if !e.HasAltitude || e.AltitudeFt != 1200 {
		t.Errorf("altitude: %+v", e)
	}

	if e := All("nothing useful here"); e.HasHint || e.HasBearing || e.HasAltitude {
		t.Errorf("expected nothing, got %+v", e)
	}
}
