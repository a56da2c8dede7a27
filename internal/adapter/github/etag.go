package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage.
type KVStore interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, data []byte) error
}

// ETagDoer wraps HTTPDoer with conditional requests backed by a kv store.
//
// Bodies and etags of successful GET responses are persisted per url; later
// runs send If-None-Match and a 304 reply is served from the stored body.
// Every page is still requested in order, so pagination determinism is
// preserved — only the transfer and quota cost of unchanged pages is saved
// (github does not count 304 replies against the rate limit).
type ETagDoer struct {
	doer  HTTPDoer
	store KVStore
	l     logrus.FieldLogger
}

// NewETagDoer creates new ETagDoer instance.
func NewETagDoer(doer HTTPDoer, store KVStore, l logrus.FieldLogger) *ETagDoer {
	return &ETagDoer{
		doer:  doer,
		store: store,
		l:     l,
	}
}

// etagEntry is the stored representation of one cached response.
type etagEntry struct {
	ETag string `json:"etag"`
	Link string `json:"link,omitempty"`
	Body []byte `json:"body"`
}

// Do executes http request, attaching If-None-Match when a cached entry
// exists and replaying the cached body on 304.
func (d *ETagDoer) Do(r *http.Request) (*http.Response, error) {
	if r.Method != http.MethodGet {
		return d.doer.Do(r)
	}

	key := []byte(r.URL.String())
	entry, err := d.readEntry(key)
	if err != nil {
		d.l.Warnf("reading page cache entry: %v", err)
	}
	if entry != nil {
		r.Header.Set("If-None-Match", entry.ETag)
	}

	resp, err := d.doer.Do(r)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotModified && entry != nil {
		d.l.Debugf("page cache hit for %s", r.URL)
		return d.cachedResponse(resp, entry), nil
	}

	if resp.StatusCode == http.StatusOK {
		if etag := resp.Header.Get("ETag"); etag != "" {
			resp = d.storeEntry(key, etag, resp)
		}
	}

	return resp, nil
}

func (d *ETagDoer) readEntry(key []byte) (*etagEntry, error) {
	data, err := d.store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("reading from store: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var entry etagEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshalling entry: %w", err)
	}

	return &entry, nil
}

// cachedResponse turns a 304 reply into a 200 response carrying the stored
// body. Rate limit headers of the live reply are kept; the Link header is
// restored from the entry so pagination keeps working.
func (d *ETagDoer) cachedResponse(resp *http.Response, entry *etagEntry) *http.Response {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	header := resp.Header.Clone()
	if entry.Link != "" {
		header.Set("Link", entry.Link)
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(entry.Body)),
		Request:    resp.Request,
	}
}

// storeEntry persists the response body and etag, handing the caller an
// equivalent response with a replayable body.
func (d *ETagDoer) storeEntry(key []byte, etag string, resp *http.Response) *http.Response {
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		d.l.Warnf("reading body for page cache: %v", err)
		resp.Body = io.NopCloser(bytes.NewReader(body))
		return resp
	}

	data, err := json.Marshal(etagEntry{
		ETag: etag,
		Link: resp.Header.Get("Link"),
		Body: body,
	})
	if err == nil {
		err = d.store.Put(key, data)
	}
	if err != nil {
		d.l.Warnf("writing page cache entry: %v", err)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp
}
