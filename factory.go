package fileio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SourceOpener opens the content behind a URL for Slurp. The returned reader
// is closed by the caller.
type SourceOpener func(ctx context.Context, o *IO, u *url.URL) (io.ReadCloser, error)

var (
	sourceOpeners = make(map[string]SourceOpener)
	sourceMutex   sync.RWMutex
)

func init() {
	RegisterSource("file", openFileURL)
	RegisterSource("http", openHTTP)
	RegisterSource("https", openHTTP)
	RegisterSource("resource", openResourceURL)
}

// RegisterSource registers an opener for a URL scheme. Registering a scheme
// again replaces the previous opener.
func RegisterSource(scheme string, opener SourceOpener) {
	sourceMutex.Lock()
	defer sourceMutex.Unlock()
	sourceOpeners[strings.ToLower(scheme)] = opener
}

// lookupSource returns the opener registered for scheme.
func lookupSource(scheme string) (SourceOpener, bool) {
	sourceMutex.RLock()
	defer sourceMutex.RUnlock()
	opener, ok := sourceOpeners[strings.ToLower(scheme)]
	return opener, ok
}

func openFileURL(_ context.Context, _ *IO, u *url.URL) (io.ReadCloser, error) {
	if u.Host != "" && u.Host != "localhost" {
		return nil, fmt.Errorf("%w: file URL host %q is not local", ErrInvalidArgument, u.Host)
	}
	path := filepath.FromSlash(u.Path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrIsDir
	}
	return os.Open(path)
}

func openHTTP(ctx context.Context, o *IO, u *url.URL) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrNotExist
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return resp.Body, nil
}

// openResourceURL handles both "resource:name" and "resource:///name".
func openResourceURL(_ context.Context, o *IO, u *url.URL) (io.ReadCloser, error) {
	name := u.Opaque
	if name == "" {
		name = u.Host + u.Path
	}
	return o.openResource(name)
}
