// Package publish gets analysed sightings into BigQuery, either by streaming inserts or by staging
// newline-delimited JSON in Cloud Storage and submitting a load job.
package publish

import(
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/log"
	"github.com/skypies/uasfix/source"
)

// Publisher knows where the sightings table lives. Staging is only needed for LoadViaGCS; it is a
// gs://bucket/folder/ prefix.
type Publisher struct {
	Project  string
	Dataset  string
	Table    string
	Staging  string

	Opts   []option.ClientOption
	Logger  *log.Logger
}

func (p Publisher)String() string {
	return fmt.Sprintf("%s:%s.%s", p.Project, p.Dataset, p.Table)
}

// KeyFor derives a stable report key from the narrative, so that republishing the same report
// dedupes on insert ID.
func KeyFor(text string) string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(text)))
}

// {{{ Row

// Row adapts a sighting to bigquery.ValueSaver. Unknown values become NULLs.
type Row uasfix.SightingForBigQuery

func (r Row)Save() (map[string]bigquery.Value, string, error) {
	m := map[string]bigquery.Value{
		"report_key": r.ReportKey,
		"analysed_utc": r.AnalysedUTC,
		"summary": r.Summary,
		"located": r.Located,
		"airspaces": r.Airspaces,
		"misses": r.Misses,
	}

	nullable := func(k, v string) {
		if v == "" { m[k] = nil } else { m[k] = v }
	}
	nullable("facility", r.Facility)
	nullable("origin_code", r.OriginCode)
	nullable("origin_name", r.OriginName)
	nullable("bearing", r.Bearing)
	nullable("nearest_airspace", r.NearestName)

	m["latitude"],m["longitude"] = nil, nil
	if r.Located { m["latitude"],m["longitude"] = r.Lat, r.Long }

	m["altitude_ft"] = nil
	if r.Located && r.HasAltitude { m["altitude_ft"] = r.AltitudeFt }

	m["nearest_km"] = nil
	if r.NearestName != "" { m["nearest_km"] = r.NearestKM }

	return m, r.ReportKey, nil
}

// }}}
// {{{ Schema

// Schema is the table definition the rows are written against.
var Schema = bigquery.Schema{
	{Name:"report_key", Type:bigquery.StringFieldType, Required:true},
	{Name:"analysed_utc", Type:bigquery.TimestampFieldType, Required:true},
	{Name:"summary", Type:bigquery.StringFieldType},
	{Name:"facility", Type:bigquery.StringFieldType},
	{Name:"origin_code", Type:bigquery.StringFieldType},
	{Name:"origin_name", Type:bigquery.StringFieldType},
	{Name:"bearing", Type:bigquery.StringFieldType},
	{Name:"located", Type:bigquery.BooleanFieldType, Required:true},
	{Name:"latitude", Type:bigquery.FloatFieldType},
	{Name:"longitude", Type:bigquery.FloatFieldType},
	{Name:"altitude_ft", Type:bigquery.FloatFieldType},
	{Name:"airspaces", Type:bigquery.StringFieldType, Repeated:true},
	{Name:"nearest_airspace", Type:bigquery.StringFieldType},
	{Name:"nearest_km", Type:bigquery.FloatFieldType},
	{Name:"misses", Type:bigquery.StringFieldType, Repeated:true},
}

// }}}

// {{{ p.Insert

// Insert streams the rows into the table.
func (p Publisher)Insert(ctx context.Context, rows []uasfix.SightingForBigQuery) error {
	if len(rows) == 0 { return nil }

	client,err := bigquery.NewClient(ctx, p.Project, p.Opts...)
	if err != nil {
		return fmt.Errorf("Creating bigquery client: %v", err)
	}
	defer client.Close()

	savers := []*Row{}
	for i,_ := range rows {
		r := Row(rows[i])
		savers = append(savers, &r)
	}

	ins := client.Dataset(p.Dataset).Table(p.Table).Inserter()
	if err := ins.Put(ctx, savers); err != nil {
		if multi,ok := err.(bigquery.PutMultiError); ok {
			for _,rowErr := range multi {
				p.Logger.With("report", rows[rowErr.RowIndex].ReportKey).Errorf("insert: %v", rowErr.Errors)
			}
		}
		return fmt.Errorf("bigquery insert into %s: %v", p, err)
	}

	p.Logger.Infof("inserted %d rows into %s", len(rows), p)
	return nil
}

// }}}
// {{{ WriteNDJSON

// WriteNDJSON writes one JSON object per line, as bigquery load jobs want.
func WriteNDJSON(w io.Writer, rows []uasfix.SightingForBigQuery) (int, error) {
	encoder := json.NewEncoder(w)
	n := 0
	for _,sbq := range rows {
		m,_,_ := Row(sbq).Save()
		if err := encoder.Encode(m); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// }}}
// {{{ p.LoadViaGCS

// LoadViaGCS writes the rows into Staging+filename, then submits a load job for that file and
// waits for it. Better than Insert for large backfills.
func (p Publisher)LoadViaGCS(ctx context.Context, filename string, rows []uasfix.SightingForBigQuery) (int, error) {
	bucketName,prefix,ok := source.SplitGCS(p.Staging + filename)
	if !ok { return 0, fmt.Errorf("staging %q is not a gs:// path", p.Staging) }

	gcsClient,err := storage.NewClient(ctx, p.Opts...)
	if err != nil { return 0, fmt.Errorf("GCS client: %v", err) }
	defer gcsClient.Close()

	w := gcsClient.Bucket(bucketName).Object(prefix).NewWriter(ctx)
	w.ContentType = "application/json"
	n,err := WriteNDJSON(w, rows)
	if err != nil {
		w.Close()
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("GCS write gs://%s/%s: %v", bucketName, prefix, err)
	}
	p.Logger.Infof("GCS bigquery file gs://%s/%s written, %d rows", bucketName, prefix, n)

	client,err := bigquery.NewClient(ctx, p.Project, p.Opts...)
	if err != nil {
		return 0, fmt.Errorf("Creating bigquery client: %v", err)
	}
	defer client.Close()

	gcsSrc := bigquery.NewGCSReference(fmt.Sprintf("gs://%s/%s", bucketName, prefix))
	gcsSrc.SourceFormat = bigquery.JSON
	gcsSrc.Schema = Schema

	loader := client.Dataset(p.Dataset).Table(p.Table).LoaderFrom(gcsSrc)
	loader.CreateDisposition = bigquery.CreateIfNeeded
	loader.WriteDisposition = bigquery.WriteAppend

	tStart := time.Now()
	job,err := loader.Run(ctx)
	if err != nil {
		return 0, fmt.Errorf("Submission of load job: %v", err)
	}

	status,err := job.Wait(ctx)
	if err != nil {
		return 0, fmt.Errorf("Failure determining status: %v", err)
	} else if err := status.Err(); err != nil {
		detailedErrStr := ""
		for i,innerErr := range status.Errors {
			detailedErrStr += fmt.Sprintf(" [%2d] %v\n", i, innerErr)
		}
		return 0, fmt.Errorf("Job error: %v\n--\n%s", err, detailedErrStr)
	}

	p.Logger.Infof("bigquery load job into %s done, took %s", p, time.Since(tStart))
	return n, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
