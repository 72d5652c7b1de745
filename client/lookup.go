package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Lookup fetches an entity by MBID and returns the raw JSON payload. The
// MBID is validated before any I/O; the include tokens are passed through
// verbatim, plus-joined into the inc parameter (an empty list still sends
// "inc="). Prefer the typed per-kind methods, which restrict the include
// vocabulary at compile time and shape the result.
func (c *Client) Lookup(ctx context.Context, kind EntityKind, mbid string, inc ...string) (json.RawMessage, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	if err := ValidateMBID(mbid); err != nil {
		return nil, err
	}
	return c.Get(ctx, fmt.Sprintf("%s/%s", kind, mbid), map[string]any{
		"inc": strings.Join(inc, "+"),
	})
}

// lookupInto runs Lookup and unmarshals the payload into out.
func (c *Client) lookupInto(ctx context.Context, kind EntityKind, mbid string, inc []string, out any) error {
	raw, err := c.Lookup(ctx, kind, mbid, inc...)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func incStrings[T ~string](inc []T) []string {
	out := make([]string, len(inc))
	for i, v := range inc {
		out[i] = string(v)
	}
	return out
}

// LookupArea fetches an area by MBID.
func (c *Client) LookupArea(ctx context.Context, mbid string, inc ...AreaInclude) (*Area, error) {
	var a Area
	if err := c.lookupInto(ctx, KindArea, mbid, incStrings(inc), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// LookupArtist fetches an artist by MBID.
func (c *Client) LookupArtist(ctx context.Context, mbid string, inc ...ArtistInclude) (*Artist, error) {
	var a Artist
	if err := c.lookupInto(ctx, KindArtist, mbid, incStrings(inc), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// LookupCollection fetches a collection by MBID.
func (c *Client) LookupCollection(ctx context.Context, mbid string, inc ...CollectionInclude) (*Collection, error) {
	var col Collection
	if err := c.lookupInto(ctx, KindCollection, mbid, incStrings(inc), &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// LookupEvent fetches an event by MBID.
func (c *Client) LookupEvent(ctx context.Context, mbid string, inc ...EventInclude) (*Event, error) {
	var e Event
	if err := c.lookupInto(ctx, KindEvent, mbid, incStrings(inc), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// LookupGenre fetches a genre by MBID. Genres carry no sub-resources, so
// there is no include vocabulary.
func (c *Client) LookupGenre(ctx context.Context, mbid string) (*Genre, error) {
	var g Genre
	if err := c.lookupInto(ctx, KindGenre, mbid, nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// LookupInstrument fetches an instrument by MBID.
func (c *Client) LookupInstrument(ctx context.Context, mbid string, inc ...InstrumentInclude) (*Instrument, error) {
	var ins Instrument
	if err := c.lookupInto(ctx, KindInstrument, mbid, incStrings(inc), &ins); err != nil {
		return nil, err
	}
	return &ins, nil
}

// LookupLabel fetches a label by MBID.
func (c *Client) LookupLabel(ctx context.Context, mbid string, inc ...LabelInclude) (*Label, error) {
	var l Label
	if err := c.lookupInto(ctx, KindLabel, mbid, incStrings(inc), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// LookupPlace fetches a place by MBID.
func (c *Client) LookupPlace(ctx context.Context, mbid string, inc ...PlaceInclude) (*Place, error) {
	var p Place
	if err := c.lookupInto(ctx, KindPlace, mbid, incStrings(inc), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// LookupRecording fetches a recording by MBID.
func (c *Client) LookupRecording(ctx context.Context, mbid string, inc ...RecordingInclude) (*Recording, error) {
	var r Recording
	if err := c.lookupInto(ctx, KindRecording, mbid, incStrings(inc), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// LookupRelease fetches a release by MBID.
func (c *Client) LookupRelease(ctx context.Context, mbid string, inc ...ReleaseInclude) (*Release, error) {
	var r Release
	if err := c.lookupInto(ctx, KindRelease, mbid, incStrings(inc), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// LookupReleaseGroup fetches a release group by MBID.
func (c *Client) LookupReleaseGroup(ctx context.Context, mbid string, inc ...ReleaseGroupInclude) (*ReleaseGroup, error) {
	var rg ReleaseGroup
	if err := c.lookupInto(ctx, KindReleaseGroup, mbid, incStrings(inc), &rg); err != nil {
		return nil, err
	}
	return &rg, nil
}

// LookupSeries fetches a series by MBID.
func (c *Client) LookupSeries(ctx context.Context, mbid string, inc ...SeriesInclude) (*Series, error) {
	var s Series
	if err := c.lookupInto(ctx, KindSeries, mbid, incStrings(inc), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LookupURL fetches a url entity by MBID.
func (c *Client) LookupURL(ctx context.Context, mbid string, inc ...URLInclude) (*URL, error) {
	var u URL
	if err := c.lookupInto(ctx, KindURL, mbid, incStrings(inc), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// LookupWork fetches a work by MBID.
func (c *Client) LookupWork(ctx context.Context, mbid string, inc ...WorkInclude) (*Work, error) {
	var w Work
	if err := c.lookupInto(ctx, KindWork, mbid, incStrings(inc), &w); err != nil {
		return nil, err
	}
	return &w, nil
}
