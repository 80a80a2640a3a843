package fileio

import (
	"context"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strings"
)

// streamPath names an anonymous reader in errors and logs.
const streamPath = "<stream>"

// Slurp returns the whole content behind source as UTF-8 text.
//
// source is first parsed as a URL. Schemes registered with RegisterSource
// (file, http, https and resource out of the box) are opened through their
// opener; anything else is read as a local path. Invalid UTF-8 sequences are
// replaced with U+FFFD.
func (o *IO) Slurp(ctx context.Context, source string) (string, error) {
	rc, err := o.openSource(ctx, source)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return decodeAll("slurp", source, rc)
}

// SlurpLines returns the lines behind source selected by w. source is
// resolved the same way as for Slurp.
func (o *IO) SlurpLines(ctx context.Context, source string, w Window) ([]string, error) {
	if err := w.Validate(); err != nil {
		return nil, &PathError{Op: "slurp", Path: source, Err: err}
	}

	rc, err := o.openSource(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	lines, err := collect(scanWindow(rc, w, o.maxLineSize))
	if err != nil {
		return nil, mapError("slurp", source, err)
	}
	return lines, nil
}

// SlurpFile returns the content of the local file at path.
func (o *IO) SlurpFile(path string) (string, error) {
	o.logger.Debug("slurping file", "op", "slurp", "path", path)

	if err := o.checkFile("slurp", path); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", mapError("slurp", path, err)
	}
	defer f.Close()

	return decodeAll("slurp", path, f)
}

// SlurpReader returns everything left in r. r is not closed.
func (o *IO) SlurpReader(r io.Reader) (string, error) {
	return decodeAll("slurp", streamPath, r)
}

// SlurpResource returns the content of a named resource from the instance's
// resource file system (Config.ResourceRoot unless replaced with WithResources).
func (o *IO) SlurpResource(name string) (string, error) {
	o.logger.Debug("slurping resource", "op", "slurp", "resource", name)

	rc, err := o.openResource(name)
	if err != nil {
		return "", mapError("slurp", name, err)
	}
	defer rc.Close()

	return decodeAll("slurp", name, rc)
}

// openSource resolves source to an open reader.
func (o *IO) openSource(ctx context.Context, source string) (io.ReadCloser, error) {
	o.logger.Debug("opening source", "op", "slurp", "source", source)

	if u, err := url.Parse(source); err == nil && u.Scheme != "" {
		if opener, ok := lookupSource(u.Scheme); ok {
			rc, err := opener(ctx, o, u)
			if err != nil {
				return nil, mapError("slurp", source, err)
			}
			return rc, nil
		}
	}

	if err := o.checkFile("slurp", source); err != nil {
		return nil, err
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, mapError("slurp", source, err)
	}
	return f, nil
}

// openResource opens name in the resource file system. Leading slashes are
// ignored so "/a.txt" and "a.txt" name the same resource.
func (o *IO) openResource(name string) (io.ReadCloser, error) {
	clean := strings.TrimLeft(name, "/")
	if !fs.ValidPath(clean) || clean == "." {
		return nil, invalidArgument("invalid resource name %q", name)
	}

	f, err := o.resources.Open(clean)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrIsDir
	}
	return f, nil
}

// decodeAll reads r to the end and decodes it as UTF-8.
func decodeAll(op, path string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", mapError(op, path, err)
	}
	return strings.ToValidUTF8(string(b), "\uFFFD"), nil
}
