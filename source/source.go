// Package source opens reference data files, wherever they live: local paths, or Google Cloud
// Storage objects (gs://bucket/object). Compressed files are unwrapped on the way in, based on
// their suffix (.gz, .zst, .zip).
package source

import(
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/klauspost/compress/zstd"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Source is an open, decompressed stream. Name is the name of the underlying data after any
// compression suffixes have been removed (for zip archives, the name of the member), so callers
// can pick a decoder by extension.
type Source struct {
	io.Reader
	Name      string
	URI       string

	closers []io.Closer
}

func (s *Source)Close() error {
	var first error
	for i:=len(s.closers)-1; i>=0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil { first = err }
	}
	s.closers = nil
	return first
}

// Ext is the lowercased extension of the (decompressed) name, e.g. ".csv".
func (s *Source)Ext() string { return strings.ToLower(path.Ext(s.Name)) }

type closerFunc func() error
func (f closerFunc)Close() error { return f() }

// {{{ SplitGCS

// SplitGCS parses gs://bucket/object; ok is false for anything else.
func SplitGCS(uri string) (bucket, object string, ok bool) {
	if !strings.HasPrefix(uri, "gs://") { return "","",false }
	rest := strings.TrimPrefix(uri, "gs://")
	if i := strings.Index(rest, "/"); i > 0 {
		return rest[:i], rest[i+1:], true
	}
	return rest, "", true
}

// }}}

// {{{ Open

// Open opens a local file or GCS object. A zip member can be selected with a fragment,
// e.g. "all-airport-data.xlsx.zip#all-airport-data.xlsx"; without one, the first regular file
// in the archive is used. The client options are only used for GCS.
func Open(ctx context.Context, uri string, opts ...option.ClientOption) (*Source, error) {
	loc,member := uri, ""
	if i := strings.LastIndex(uri, "#"); i > 0 {
		loc,member = uri[:i], uri[i+1:]
	}

	s := &Source{URI:uri, Name:path.Base(loc)}

	if bucketName,objectName,isGCS := SplitGCS(loc); isGCS {
		client,err := storage.NewClient(ctx, opts...)
		if err != nil { return nil, fmt.Errorf("GCS client: %v", err) }
		s.closers = append(s.closers, client)

		gcsReader,err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("GCS-Open %s|%s: %v", bucketName, objectName, err)
		}
		s.Reader = gcsReader
		s.closers = append(s.closers, gcsReader)

	} else {
		f,err := os.Open(loc)
		if err != nil { return nil, err }
		s.Reader = f
		s.closers = append(s.closers, f)
	}

	if err := s.unwrap(member); err != nil {
		s.Close()
		return nil, fmt.Errorf("%s: %v", uri, err)
	}

	return s, nil
}

// }}}
// {{{ s.unwrap

func (s *Source)unwrap(member string) error {
	for {
		switch strings.ToLower(path.Ext(s.Name)) {
		case ".gz":
			gzRdr,err := gzip.NewReader(s.Reader)
			if err != nil { return fmt.Errorf("gzip: %v", err) }
			s.Reader = gzRdr
			s.closers = append(s.closers, gzRdr)
			s.Name = strings.TrimSuffix(s.Name, path.Ext(s.Name))

		case ".zst":
			zr,err := zstd.NewReader(s.Reader, zstd.WithDecoderConcurrency(0))
			if err != nil { return fmt.Errorf("zstd: %v", err) }
			s.Reader = zr
			s.closers = append(s.closers, closerFunc(func() error { zr.Close(); return nil }))
			s.Name = strings.TrimSuffix(s.Name, path.Ext(s.Name))

		case ".zip":
			// zip needs random access, so pull the whole archive into memory.
			b,err := io.ReadAll(s.Reader)
			if err != nil { return fmt.Errorf("zip read: %v", err) }
			zr,err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
			if err != nil { return fmt.Errorf("zip: %v", err) }

			f := pickMember(zr.File, member)
			if f == nil { return fmt.Errorf("zip: member %q not found", member) }
			rc,err := f.Open()
			if err != nil { return fmt.Errorf("zip %s: %v", f.Name, err) }
			s.Reader = rc
			s.closers = append(s.closers, rc)
			s.Name = path.Base(f.Name)
			member = ""

		default:
			return nil
		}
	}
}

// }}}

func pickMember(files []*zip.File, member string) *zip.File {
	for _,f := range files {
		if f.FileInfo().IsDir() || strings.HasPrefix(f.Name, "__MACOSX/") { continue }
		if member == "" || f.Name == member || path.Base(f.Name) == member {
			return f
		}
	}
	return nil
}

// {{{ ReadAll

// ReadAll returns the full decompressed contents, and the decompressed name.
func ReadAll(ctx context.Context, uri string, opts ...option.ClientOption) ([]byte, string, error) {
	s,err := Open(ctx, uri, opts...)
	if err != nil { return nil, "", err }
	defer s.Close()

	b,err := io.ReadAll(s)
	if err != nil { return nil, s.Name, fmt.Errorf("%s: %v", uri, err) }
	return b, s.Name, nil
}

// }}}
// {{{ Expand

// Expand turns a directory (local, or a gs:// prefix ending in '/') into the sorted list of the
// files within it. Anything else comes back as itself.
func Expand(ctx context.Context, uri string, opts ...option.ClientOption) ([]string, error) {
	if bucketName,prefix,isGCS := SplitGCS(uri); isGCS {
		if prefix != "" && !strings.HasSuffix(prefix, "/") { return []string{uri}, nil }

		client,err := storage.NewClient(ctx, opts...)
		if err != nil { return nil, fmt.Errorf("GCS client: %v", err) }
		defer client.Close()

		uris := []string{}
		it := client.Bucket(bucketName).Objects(ctx, &storage.Query{Prefix: prefix})
		for {
			attrs,err := it.Next()
			if err == iterator.Done {
				break
			} else if err != nil {
				return nil, fmt.Errorf("GCS-List %s|%s: %v", bucketName, prefix, err)
			}
			if strings.HasSuffix(attrs.Name, "/") { continue }
			uris = append(uris, fmt.Sprintf("gs://%s/%s", bucketName, attrs.Name))
		}
		sort.Strings(uris)
		return uris, nil
	}

	loc := uri
	if i := strings.LastIndex(uri, "#"); i > 0 { loc = uri[:i] }
	fi,err := os.Stat(loc)
	if err != nil { return nil, err }
	if !fi.IsDir() { return []string{uri}, nil }

	entries,err := os.ReadDir(loc)
	if err != nil { return nil, err }
	uris := []string{}
	for _,e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") { continue }
		uris = append(uris, filepath.Join(loc, e.Name()))
	}
	sort.Strings(uris)
	return uris, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
