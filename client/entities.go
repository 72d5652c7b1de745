package client

// EntityKind names one of the resource types the web service exposes. The
// set is closed; Lookup rejects anything outside it before touching the
// network.
type EntityKind string

const (
	KindArea         EntityKind = "area"
	KindArtist       EntityKind = "artist"
	KindCollection   EntityKind = "collection"
	KindEvent        EntityKind = "event"
	KindGenre        EntityKind = "genre"
	KindInstrument   EntityKind = "instrument"
	KindLabel        EntityKind = "label"
	KindPlace        EntityKind = "place"
	KindRecording    EntityKind = "recording"
	KindRelease      EntityKind = "release"
	KindReleaseGroup EntityKind = "release-group"
	KindSeries       EntityKind = "series"
	KindURL          EntityKind = "url"
	KindWork         EntityKind = "work"
)

var entityKinds = map[EntityKind]struct{}{
	KindArea: {}, KindArtist: {}, KindCollection: {}, KindEvent: {},
	KindGenre: {}, KindInstrument: {}, KindLabel: {}, KindPlace: {},
	KindRecording: {}, KindRelease: {}, KindReleaseGroup: {}, KindSeries: {},
	KindURL: {}, KindWork: {},
}

// Valid reports whether k is a member of the closed entity-kind set.
func (k EntityKind) Valid() bool {
	_, ok := entityKinds[k]
	return ok
}

// Per-kind include vocabularies. Each typed lookup method accepts only its
// kind's include type, so requesting an include the service does not support
// for that kind is a compile error rather than a 400. The generic Lookup
// keeps accepting arbitrary strings.

// AreaInclude expands area lookups.
type AreaInclude string

const (
	AreaIncAliases    AreaInclude = "aliases"
	AreaIncAnnotation AreaInclude = "annotation"
	AreaIncTags       AreaInclude = "tags"
	AreaIncGenres     AreaInclude = "genres"
)

// ArtistInclude expands artist lookups.
type ArtistInclude string

const (
	ArtistIncRecordings    ArtistInclude = "recordings"
	ArtistIncReleases      ArtistInclude = "releases"
	ArtistIncReleaseGroups ArtistInclude = "release-groups"
	ArtistIncWorks         ArtistInclude = "works"
	ArtistIncAliases       ArtistInclude = "aliases"
	ArtistIncAnnotation    ArtistInclude = "annotation"
	ArtistIncTags          ArtistInclude = "tags"
	ArtistIncGenres        ArtistInclude = "genres"
	ArtistIncRatings       ArtistInclude = "ratings"
)

// CollectionInclude expands collection lookups.
type CollectionInclude string

const (
	CollectionIncReleases CollectionInclude = "releases"
)

// EventInclude expands event lookups.
type EventInclude string

const (
	EventIncAliases    EventInclude = "aliases"
	EventIncAnnotation EventInclude = "annotation"
	EventIncTags       EventInclude = "tags"
	EventIncGenres     EventInclude = "genres"
	EventIncRatings    EventInclude = "ratings"
)

// InstrumentInclude expands instrument lookups.
type InstrumentInclude string

const (
	InstrumentIncAliases    InstrumentInclude = "aliases"
	InstrumentIncAnnotation InstrumentInclude = "annotation"
	InstrumentIncTags       InstrumentInclude = "tags"
	InstrumentIncGenres     InstrumentInclude = "genres"
)

// LabelInclude expands label lookups.
type LabelInclude string

const (
	LabelIncReleases   LabelInclude = "releases"
	LabelIncAliases    LabelInclude = "aliases"
	LabelIncAnnotation LabelInclude = "annotation"
	LabelIncTags       LabelInclude = "tags"
	LabelIncGenres     LabelInclude = "genres"
	LabelIncRatings    LabelInclude = "ratings"
)

// PlaceInclude expands place lookups.
type PlaceInclude string

const (
	PlaceIncAliases    PlaceInclude = "aliases"
	PlaceIncAnnotation PlaceInclude = "annotation"
	PlaceIncTags       PlaceInclude = "tags"
	PlaceIncGenres     PlaceInclude = "genres"
)

// RecordingInclude expands recording lookups.
type RecordingInclude string

const (
	RecordingIncArtists       RecordingInclude = "artists"
	RecordingIncReleases      RecordingInclude = "releases"
	RecordingIncReleaseGroups RecordingInclude = "release-groups"
	RecordingIncISRCs         RecordingInclude = "isrcs"
	RecordingIncAliases       RecordingInclude = "aliases"
	RecordingIncAnnotation    RecordingInclude = "annotation"
	RecordingIncTags          RecordingInclude = "tags"
	RecordingIncGenres        RecordingInclude = "genres"
	RecordingIncRatings       RecordingInclude = "ratings"
)

// ReleaseInclude expands release lookups.
type ReleaseInclude string

const (
	ReleaseIncArtists       ReleaseInclude = "artists"
	ReleaseIncCollections   ReleaseInclude = "collections"
	ReleaseIncLabels        ReleaseInclude = "labels"
	ReleaseIncRecordings    ReleaseInclude = "recordings"
	ReleaseIncReleaseGroups ReleaseInclude = "release-groups"
	ReleaseIncArtistCredits ReleaseInclude = "artist-credits"
	ReleaseIncDiscIDs       ReleaseInclude = "discids"
	ReleaseIncMedia         ReleaseInclude = "media"
	ReleaseIncISRCs         ReleaseInclude = "isrcs"
	ReleaseIncAliases       ReleaseInclude = "aliases"
	ReleaseIncAnnotation    ReleaseInclude = "annotation"
	ReleaseIncTags          ReleaseInclude = "tags"
	ReleaseIncGenres        ReleaseInclude = "genres"
)

// ReleaseGroupInclude expands release-group lookups.
type ReleaseGroupInclude string

const (
	ReleaseGroupIncArtists    ReleaseGroupInclude = "artists"
	ReleaseGroupIncReleases   ReleaseGroupInclude = "releases"
	ReleaseGroupIncAliases    ReleaseGroupInclude = "aliases"
	ReleaseGroupIncAnnotation ReleaseGroupInclude = "annotation"
	ReleaseGroupIncTags       ReleaseGroupInclude = "tags"
	ReleaseGroupIncGenres     ReleaseGroupInclude = "genres"
	ReleaseGroupIncRatings    ReleaseGroupInclude = "ratings"
)

// SeriesInclude expands series lookups.
type SeriesInclude string

const (
	SeriesIncAliases    SeriesInclude = "aliases"
	SeriesIncAnnotation SeriesInclude = "annotation"
	SeriesIncTags       SeriesInclude = "tags"
)

// URLInclude expands url lookups; urls only carry relationships.
type URLInclude string

const (
	URLIncArtistRels  URLInclude = "artist-rels"
	URLIncReleaseRels URLInclude = "release-rels"
)

// WorkInclude expands work lookups.
type WorkInclude string

const (
	WorkIncAliases    WorkInclude = "aliases"
	WorkIncAnnotation WorkInclude = "annotation"
	WorkIncTags       WorkInclude = "tags"
	WorkIncGenres     WorkInclude = "genres"
	WorkIncRatings    WorkInclude = "ratings"
)
