package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgconfig "github.com/goliatone/go-contactform/pkg/config"
)

// Loader implements pkgconfig.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgconfig.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgconfig.LoaderOptions) pkgconfig.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source, normalizes YAML payloads
// to JSON, and wraps the result in a Document.
func (l *Loader) Load(ctx context.Context, src pkgconfig.Source) (pkgconfig.Document, error) {
	if src == nil {
		return pkgconfig.Document{}, errors.New("config loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgconfig.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgconfig.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgconfig.SourceKindURL:
		if !l.allowHTTP {
			return pkgconfig.Document{}, errors.New("config loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("config loader: unsupported source kind")
	}
	if err != nil {
		return pkgconfig.Document{}, err
	}

	data, err = normalizeToJSON(src.Location(), data)
	if err != nil {
		return pkgconfig.Document{}, err
	}

	return pkgconfig.NewDocument(src, data)
}
