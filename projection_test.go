package uasfix

import(
	"math"
	"testing"
)

func TestProjectRoundTrip(t *testing.T) {
	origin := NewCoordinate(36.1245, -86.6782)

	for _,dir := range CompassPoints {
		bt := BearingToken{DistanceNM:10, Direction:dir}
		dest,ok := Project(&origin, &bt)
		if !ok { t.Fatalf("%s: projection failed", dir) }

		expectedBrg,_ := CompassBearing(dir)
		brg,distKM := Inverse(origin.Latlong, dest.Latlong)

		delta := math.Abs(brg - expectedBrg)
		if delta > 180 { delta = 360 - delta }
		if delta > 1.0 {
			t.Errorf("%s: bearing %.3f, expected %.3f", dir, brg, expectedBrg)
		}
		if math.Abs(distKM - 18.52) / 18.52 > 0.001 {
			t.Errorf("%s: distance %.4fKM, expected 18.52", dir, distKM)
		}
	}
}

func TestProjectNashville(t *testing.T) {
	origin := NewCoordinate(36.1245, -86.6782).WithAltitude(4000)
	bt := BearingToken{DistanceNM:10, Direction:"SE"}

	dest,ok := Project(&origin, &bt)
	if !ok { t.Fatalf("projection failed") }

	if math.Abs(dest.Lat - 36.00677213435311) > 1e-6 || math.Abs(dest.Long - -86.53277660332819) > 1e-6 {
		t.Errorf("got %s, expected (36.00677,-86.53278)", dest)
	}
	if !dest.HasAltitude || dest.AltitudeFt != 4000 {
		t.Errorf("altitude not carried over: %s", dest)
	}
}

func TestProjectZeroDistance(t *testing.T) {
	origin := NewCoordinate(36.1245, -86.6782)
	bt := BearingToken{DistanceNM:0, Direction:"N"}

	dest,ok := Project(&origin, &bt)
	if !ok || dest.Lat != origin.Lat || dest.Long != origin.Long {
		t.Errorf("zero distance moved the point: %s", dest)
	}
	if dest.HasAltitude {
		t.Errorf("unknown altitude became known")
	}
}

func TestProjectFailures(t *testing.T) {
	origin := NewCoordinate(36.1245, -86.6782)
	bad := NewCoordinate(math.NaN(), -86.6782)
	good := BearingToken{DistanceNM:10, Direction:"SE"}

	tests := []struct{
		name    string
		origin  *Coordinate
		bt      *BearingToken
	}{
		{"nil origin", nil, &good},
		{"nil bearing", &origin, nil},
		{"bad origin", &bad, &good},
		{"bad direction", &origin, &BearingToken{DistanceNM:10, Direction:"XX"}},
		{"lowercase direction", &origin, &BearingToken{DistanceNM:10, Direction:"se"}},
		{"negative distance", &origin, &BearingToken{DistanceNM:-1, Direction:"N"}},
		{"infinite distance", &origin, &BearingToken{DistanceNM:math.Inf(1), Direction:"N"}},
	}

	for _,test := range tests {
		if dest,ok := Project(test.origin, test.bt); ok {
			t.Errorf("%s: expected failure, got %s", test.name, dest)
		}
	}
}

func TestProjectAcrossAntimeridian(t *testing.T) {
	origin := NewCoordinate(0.0, 179.9)
	bt := BearingToken{DistanceNM:60, Direction:"E"}

	dest,ok := Project(&origin, &bt)
	if !ok { t.Fatalf("projection failed") }
	if !dest.IsValid() || dest.Long > -179.0 || dest.Long < -180.0 {
		t.Errorf("expected a wrapped longitude just past -180, got %s", dest)
	}
}

func TestCoordinateIsValid(t *testing.T) {
	tests := []struct{
		c      Coordinate
		valid  bool
	}{
		{NewCoordinate(36.1, -86.6), true},
		{NewCoordinate(90, 180), true},
		{NewCoordinate(90.1, 0), false},
		{NewCoordinate(0, -180.5), false},
		{NewCoordinate(math.NaN(), 0), false},
		{NewCoordinate(0, math.Inf(-1)), false},
		{NewCoordinate(0, 0).WithAltitude(math.NaN()), false},
		{NewCoordinate(0, 0).WithAltitude(400), true},
	}

	for i,test := range tests {
		if got := test.c.IsValid(); got != test.valid {
			t.Errorf("[%d] %s: expected %v, got %v", i, test.c, test.valid, got)
		}
	}
}

func TestCompassBearing(t *testing.T) {
	if len(CompassPoints) != 16 { t.Fatalf("expected 16 compass points") }
	for i,dir := range CompassPoints {
		brg,ok := CompassBearing(dir)
		if !ok || brg != float64(i)*22.5 {
			t.Errorf("%s: got %v,%v, expected %v", dir, brg, ok, float64(i)*22.5)
		}
	}
	if _,ok := CompassBearing("NNNE"); ok {
		t.Errorf("NNNE is not a compass point")
	}
}

func TestNewSightingFix(t *testing.T) {
	origin := AirportRecord{Code:"BNA", Name:"Nashville Intl", City:"Nashville", State:"TN",
		Type:"AIRPORT"}
	origin.Lat,origin.Long = 36.1245, -86.6782

	oc := origin.Coordinate()
	bt := BearingToken{DistanceNM:10, Direction:"SE"}
	dest,_ := Project(&oc, &bt)

	fix := NewSightingFix(dest, bt, FacilityHint{City:"Nashville", State:"TN"}, origin)
	if math.Abs(fix.OffsetKM - 18.52) > 0.1 {
		t.Errorf("offset %.3fKM, expected ~18.52", fix.OffsetKM)
	}
	if math.Abs(fix.OffsetBearing - 135) > 1.0 {
		t.Errorf("offset bearing %.2f, expected ~135", fix.OffsetBearing)
	}
}
