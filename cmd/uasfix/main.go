// uasfix works out where a reported drone was, and whether that was inside controlled airspace.
//
//   uasfix -airports all-airport-data.xlsx.zip -airspace airspaces.geojson "PRELIM INFO FROM ..."
//   uasfix -batch reports.csv -out csv > located.csv
//   uasfix -batch gs://bucket/reports.csv.gz -out geojson -j 8 > map.geojson
//
// Reference data defaults come from the environment (a .env file is read if present).
package main

import(
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/airspace"
	"github.com/skypies/uasfix/analysis"
	"github.com/skypies/uasfix/faadata"
	"github.com/skypies/uasfix/log"
	"github.com/skypies/uasfix/publish"
	"github.com/skypies/uasfix/ref"
	"github.com/skypies/uasfix/report"
	"github.com/skypies/uasfix/source"
)

var(
	ctx = context.Background()

	fAirports     string
	fAirspace     string
	fText         string
	fBatch        string
	fOut          string
	fParallel     int
	fStats        bool
	fLogLevel     string
	fLogDir       string
	fCredentials  string

	fPublish      bool
	fBQProject    string
	fBQDataset    string
	fBQTable      string
	fBQStaging    string
)

func init() {
	// Missing .env is fine
	_ = godotenv.Load()

	flag.StringVar(&fAirports, "airports", getenv("UASFIX_AIRPORTS", "all-airport-data.xlsx.zip"),
		"airport table (csv/xlsx, optionally .gz/.zst/.zip; local or gs://)")
	flag.StringVar(&fAirspace, "airspace", getenv("UASFIX_AIRSPACE", "airspaces.geojson"),
		"airspace polygons (geojson or .shp; file, dir, or gs:// prefix)")
	flag.StringVar(&fText, "text", "", "narrative to analyse (else args, else stdin)")
	flag.StringVar(&fBatch, "batch", "", "CSV of narratives, with a 'summary' column")
	flag.StringVar(&fOut, "out", "text", "output format: {text, csv, geojson}")
	flag.IntVar(&fParallel, "j", 4, "batch mode: narratives to analyse at once")
	flag.BoolVar(&fStats, "stats", false, "batch mode: print counters to stderr")
	flag.StringVar(&fLogLevel, "loglevel", getenv("UASFIX_LOGLEVEL", "warn"), "{debug, info, warn, error}")
	flag.StringVar(&fLogDir, "logdir", getenv("UASFIX_LOGDIR", ""), "if set, log JSON to rotating files here")
	flag.StringVar(&fCredentials, "creds", getenv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		"service account JSON for gs:// and bigquery")

	flag.BoolVar(&fPublish, "publish", false, "also publish results to bigquery")
	flag.StringVar(&fBQProject, "bqproject", getenv("UASFIX_BQ_PROJECT", ""), "bigquery project")
	flag.StringVar(&fBQDataset, "bqdataset", getenv("UASFIX_BQ_DATASET", "uas"), "bigquery dataset")
	flag.StringVar(&fBQTable, "bqtable", getenv("UASFIX_BQ_TABLE", "sightings"), "bigquery table")
	flag.StringVar(&fBQStaging, "bqstaging", getenv("UASFIX_BQ_STAGING", ""),
		"if set (gs://bucket/folder/), publish via a load job instead of streaming inserts")
	flag.Parse()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}

// {{{ clientOpts

func clientOpts() []option.ClientOption {
	if fCredentials == "" { return nil }
	return []option.ClientOption{option.WithCredentialsFile(fCredentials)}
}

// }}}
// {{{ loadAnalyzer

func loadAnalyzer(l *log.Logger) *analysis.Analyzer {
	tStart := time.Now()

	airports,str,err := ref.LoadAirports(ctx, fAirports, clientOpts()...)
	if err != nil {
		l.Fatalf("%v", err)
	}
	l.Debugf("airports:\n%s", str)

	idx,str,err := airspace.LoadIndex(ctx, fAirspace, clientOpts()...)
	if err != nil {
		l.Fatalf("%v", err)
	}
	l.Debugf("airspace:\n%s", str)

	a := analysis.NewAnalyzer(airports, idx, l)
	l.Infof("loaded %s in %s", a, time.Since(tStart))
	return a
}

// }}}
// {{{ readBatch

// readBatch pulls the summary column out of a CSV; rows without one are skipped.
func readBatch(uri string) ([]string, error) {
	src,err := source.Open(ctx, uri, clientOpts()...)
	if err != nil { return nil, err }
	defer src.Close()

	texts := []string{}
	rr := faadata.NewRowReader(src)
	for {
		row,err := rr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%s: %v", uri, err)
		}
		if s := strings.TrimSpace(row.Get("summary", "narrative", "text")); s != "" {
			texts = append(texts, s)
		}
	}
	return texts, nil
}

// }}}
// {{{ narratives

func narratives() []string {
	if fBatch != "" {
		texts,err := readBatch(fBatch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "batch: %v\n", err)
			os.Exit(1)
		}
		return texts
	}

	if fText != "" {
		return []string{fText}
	} else if len(flag.Args()) > 0 {
		return []string{strings.Join(flag.Args(), " ")}
	}

	b,err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stdin: %v\n", err)
		os.Exit(1)
	}
	return []string{string(b)}
}

// }}}
// {{{ output

func output(w io.Writer, r *report.Report, a *analysis.Analyzer) error {
	switch fOut {
	case "text":
		for i,res := range r.Results {
			if len(r.Results) > 1 { fmt.Fprintf(w, "---- [%d/%d]\n", i+1, len(r.Results)) }
			fmt.Fprint(w, report.Summary(res))
		}
	case "csv":
		return r.OutputAsCSV(w)
	case "geojson":
		b,err := json.MarshalIndent(report.GeoJSON(a.Airspace.Polygons(), r.Results), "", " ")
		if err != nil { return err }
		_,err = w.Write(append(b, '\n'))
		return err
	default:
		return fmt.Errorf("output format '%s' not known", fOut)
	}
	return nil
}

// }}}
// {{{ publishAll

func publishAll(l *log.Logger, r *report.Report) error {
	if fBQProject == "" {
		return fmt.Errorf("-publish needs a -bqproject (or $UASFIX_BQ_PROJECT)")
	}
	p := publish.Publisher{
		Project: fBQProject,
		Dataset: fBQDataset,
		Table: fBQTable,
		Staging: fBQStaging,
		Opts: clientOpts(),
		Logger: l,
	}

	now := time.Now()
	rows := []uasfix.SightingForBigQuery{}
	for _,res := range r.Results {
		rows = append(rows, res.ForBigQuery(publish.KeyFor(res.Text), now))
	}

	if p.Staging == "" {
		return p.Insert(ctx, rows)
	}
	filename := "sightings-" + strconv.FormatInt(now.Unix(), 10) + ".json"
	_,err := p.LoadViaGCS(ctx, filename, rows)
	return err
}

// }}}

func main() {
	l := log.New(fLogLevel, fLogDir)
	a := loadAnalyzer(l)

	texts := narratives()
	timed,err := a.AnalyzeAll(ctx, texts, fParallel)
	if err != nil {
		l.Fatalf("analysis: %v", err)
	}

	r := report.BlankReport(fBatch)
	nUnlocated := 0
	for _,t := range timed {
		r.Add(t.Result, t.Elapsed)
		if !t.Located() {
			nUnlocated++
			l.With("report", publish.KeyFor(t.Text)).Debug("unlocated",
				"misses", t.MissString())
		}
	}
	if nUnlocated > 0 {
		l.Warnf("%d of %d narratives could not be located", nUnlocated, len(timed))
	}

	if err := output(os.Stdout, &r, a); err != nil {
		l.Fatalf("output: %v", err)
	}
	if fStats {
		fmt.Fprint(os.Stderr, r.FinishSummary())
	}

	if fPublish {
		if err := publishAll(l, &r); err != nil {
			l.Fatalf("publish: %v", err)
		}
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
