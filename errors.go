package uasfix

import "errors"

// ErrDataLoad is wrapped by every failure to load reference data (airport tables, airspace
// polygons). It is fatal for an analysis run; nothing is retried.
var ErrDataLoad = errors.New("reference data load failed")
