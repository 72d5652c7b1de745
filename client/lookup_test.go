package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const testMBID = "94ed318a-fd7d-4abc-8491-a35e39f51dca"

func TestLookupRejectsMalformedMBID(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	ctx := context.Background()

	bad := []string{
		"",
		"not-a-uuid",
		"94ed318a-fd7d-4abc-8491",
		"94ed318a-fd7d-4abc-8491-a35e39f51dcaXX",
		"zzzzzzzz-fd7d-4abc-8491-a35e39f51dca",
	}
	for _, id := range bad {
		if _, err := c.Lookup(ctx, KindRecording, id); err == nil {
			t.Errorf("Lookup accepted malformed mbid %q", id)
		}
		if _, err := c.LookupArtist(ctx, id); err == nil {
			t.Errorf("LookupArtist accepted malformed mbid %q", id)
		}
	}

	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Fatalf("validation must fail before any I/O; server saw %d requests", n)
	}
}

func TestLookupRejectsUnknownKind(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	if _, err := c.Lookup(context.Background(), EntityKind("band"), testMBID); err == nil {
		t.Fatal("expected error for unknown entity kind")
	}
	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Fatalf("server saw %d requests", n)
	}
}

func TestLookupRequestShape(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "` + testMBID + `"}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	ctx := context.Background()

	if _, err := c.Lookup(ctx, KindRecording, testMBID, "artists", "releases"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if gotPath != "/recording/"+testMBID {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "inc=artists+releases" {
		t.Errorf("query = %q", gotQuery)
	}

	// an empty include list still serializes inc=
	if _, err := c.Lookup(ctx, KindRecording, testMBID); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if gotQuery != "inc=" {
		t.Errorf("empty-include query = %q", gotQuery)
	}
}

func TestTypedLookupIncludeVocabulary(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "` + testMBID + `", "name": "Warp", "label-code": 2070}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	l, err := c.LookupLabel(context.Background(), testMBID, LabelIncReleases, LabelIncAliases)
	if err != nil {
		t.Fatalf("lookup label: %v", err)
	}
	if gotPath != "/label/"+testMBID {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "inc=releases+aliases" {
		t.Errorf("query = %q", gotQuery)
	}
	if l.Name != "Warp" || l.LabelCode != 2070 {
		t.Errorf("decoded label = %+v", l)
	}
}

func TestLookupRecordingDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "` + testMBID + `",
			"title": "Song 2",
			"length": 121000,
			"video": false,
			"first-release-date": "1997-04-07",
			"isrcs": ["GBAYE9700195"],
			"artist-credit": [{"name": "Blur", "artist": {"id": "ba853904-ae25-4ebb-89d6-c44cfbd71bd2", "name": "Blur", "sort-name": "Blur"}}]
		}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	rec, err := c.LookupRecording(context.Background(), testMBID, RecordingIncArtists, RecordingIncISRCs)
	if err != nil {
		t.Fatalf("lookup recording: %v", err)
	}
	if rec.Title != "Song 2" || rec.Length != 121000 {
		t.Errorf("decoded recording = %+v", rec)
	}
	if len(rec.ISRCs) != 1 || rec.ISRCs[0] != "GBAYE9700195" {
		t.Errorf("isrcs = %v", rec.ISRCs)
	}
	if len(rec.ArtistCredit) != 1 || rec.ArtistCredit[0].Artist.Name != "Blur" {
		t.Errorf("artist credit = %+v", rec.ArtistCredit)
	}
}

func TestLookupErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "Not Found"}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.LookupRecording(context.Background(), testMBID)
	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "Not Found" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestLookupReleaseDecodesNestedShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "` + testMBID + `",
			"title": "Blur",
			"status": "Official",
			"date": "1997-02-10",
			"country": "GB",
			"label-info": [{"catalog-number": "7243 8 55562 2 7", "label": {"id": "x", "name": "Food"}}],
			"media": [{"position": 1, "format": "CD", "track-count": 14, "tracks": [
				{"id": "t1", "position": 2, "number": "2", "title": "Song 2", "length": 121000}
			]}],
			"cover-art-archive": {"artwork": true, "front": true, "count": 3}
		}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	rel, err := c.LookupRelease(context.Background(), testMBID, ReleaseIncLabels, ReleaseIncRecordings)
	if err != nil {
		t.Fatalf("lookup release: %v", err)
	}
	if len(rel.LabelInfo) != 1 || rel.LabelInfo[0].Label.Name != "Food" {
		t.Errorf("label info = %+v", rel.LabelInfo)
	}
	if len(rel.Media) != 1 || rel.Media[0].TrackCount != 14 {
		t.Errorf("media = %+v", rel.Media)
	}
	if len(rel.Media[0].Tracks) != 1 || rel.Media[0].Tracks[0].Title != "Song 2" {
		t.Errorf("tracks = %+v", rel.Media[0].Tracks)
	}
	if rel.CoverArtArchive == nil || !rel.CoverArtArchive.Front {
		t.Errorf("cover art = %+v", rel.CoverArtArchive)
	}
}
