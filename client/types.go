package client

// ------------------------------
// Shared sub-resource shapes
// ------------------------------

// Alias is an alternate name attached to most entity kinds.
type Alias struct {
	Name     string `json:"name"`
	SortName string `json:"sort-name"`
	Type     string `json:"type,omitempty"`
	TypeID   string `json:"type-id,omitempty"`
	Locale   string `json:"locale,omitempty"`
	Primary  bool   `json:"primary,omitempty"`
	Begin    string `json:"begin,omitempty"`
	End      string `json:"end,omitempty"`
	Ended    bool   `json:"ended,omitempty"`
}

// LifeSpan is the begin/end window of an artist, label, area, etc. Dates are
// partial ("1969", "1969-07", "1969-07-20") so they stay strings.
type LifeSpan struct {
	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`
	Ended bool   `json:"ended"`
}

// Tag is a folksonomy tag with its vote count.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GenreRef is a genre attached to another entity (as opposed to the Genre
// entity itself).
type GenreRef struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Disambiguation string `json:"disambiguation,omitempty"`
	Count          int    `json:"count,omitempty"`
}

// Rating aggregates community votes.
type Rating struct {
	Value      float64 `json:"value"`
	VotesCount int     `json:"votes-count"`
}

// ArtistCredit is one element of the credited-artist list on releases,
// recordings and release groups.
type ArtistCredit struct {
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase,omitempty"`
	Artist     Artist `json:"artist"`
}

// LabelInfo links a release to a label with its catalog number.
type LabelInfo struct {
	CatalogNumber string `json:"catalog-number,omitempty"`
	Label         Label  `json:"label"`
}

// ReleaseEvent records where and when a release happened.
type ReleaseEvent struct {
	Date string `json:"date,omitempty"`
	Area *Area  `json:"area,omitempty"`
}

// TextRepresentation describes the language and script of a release.
type TextRepresentation struct {
	Language string `json:"language,omitempty"`
	Script   string `json:"script,omitempty"`
}

// Medium is one physical or digital carrier inside a release.
type Medium struct {
	Position    int     `json:"position"`
	Title       string  `json:"title,omitempty"`
	Format      string  `json:"format,omitempty"`
	FormatID    string  `json:"format-id,omitempty"`
	TrackCount  int     `json:"track-count"`
	TrackOffset int     `json:"track-offset,omitempty"`
	Tracks      []Track `json:"tracks,omitempty"`
}

// Track is one entry on a medium's tracklist.
type Track struct {
	ID           string         `json:"id"`
	Position     int            `json:"position"`
	Number       string         `json:"number"`
	Title        string         `json:"title"`
	Length       int            `json:"length,omitempty"`
	ArtistCredit []ArtistCredit `json:"artist-credit,omitempty"`
	Recording    *Recording     `json:"recording,omitempty"`
}

// CoverArtArchive summarizes the artwork available for a release.
type CoverArtArchive struct {
	Artwork  bool `json:"artwork"`
	Front    bool `json:"front"`
	Back     bool `json:"back"`
	Darkened bool `json:"darkened"`
	Count    int  `json:"count"`
}

// Coordinates is a place's latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ------------------------------
// Entity shapes, one per kind
// ------------------------------

// Area is a geographic region (country, city, ...).
type Area struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	SortName      string     `json:"sort-name"`
	Type          string     `json:"type,omitempty"`
	TypeID        string     `json:"type-id,omitempty"`
	ISO31661Codes []string   `json:"iso-3166-1-codes,omitempty"`
	LifeSpan      *LifeSpan  `json:"life-span,omitempty"`
	Aliases       []Alias    `json:"aliases,omitempty"`
	Tags          []Tag      `json:"tags,omitempty"`
	Genres        []GenreRef `json:"genres,omitempty"`
}

// Artist is a person, group, orchestra, or other music-making unit.
type Artist struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	SortName       string         `json:"sort-name"`
	Disambiguation string         `json:"disambiguation,omitempty"`
	Type           string         `json:"type,omitempty"`
	Gender         string         `json:"gender,omitempty"`
	Country        string         `json:"country,omitempty"`
	Area           *Area          `json:"area,omitempty"`
	BeginArea      *Area          `json:"begin-area,omitempty"`
	LifeSpan       *LifeSpan      `json:"life-span,omitempty"`
	Aliases        []Alias        `json:"aliases,omitempty"`
	Tags           []Tag          `json:"tags,omitempty"`
	Genres         []GenreRef     `json:"genres,omitempty"`
	Rating         *Rating        `json:"rating,omitempty"`
	Recordings     []Recording    `json:"recordings,omitempty"`
	Releases       []Release      `json:"releases,omitempty"`
	ReleaseGroups  []ReleaseGroup `json:"release-groups,omitempty"`
	Works          []Work         `json:"works,omitempty"`
}

// Collection is a user-curated list of entities of one kind.
type Collection struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Editor       string    `json:"editor"`
	Type         string    `json:"type,omitempty"`
	TypeID       string    `json:"type-id,omitempty"`
	EntityType   string    `json:"entity-type"`
	ReleaseCount int       `json:"release-count,omitempty"`
	Releases     []Release `json:"releases,omitempty"`
}

// Event is a concert, festival, or similar happening.
type Event struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type,omitempty"`
	TypeID    string     `json:"type-id,omitempty"`
	Time      string     `json:"time,omitempty"`
	Setlist   string     `json:"setlist,omitempty"`
	Cancelled bool       `json:"cancelled,omitempty"`
	LifeSpan  *LifeSpan  `json:"life-span,omitempty"`
	Aliases   []Alias    `json:"aliases,omitempty"`
	Tags      []Tag      `json:"tags,omitempty"`
	Genres    []GenreRef `json:"genres,omitempty"`
	Rating    *Rating    `json:"rating,omitempty"`
}

// Genre is the genre entity itself.
type Genre struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Disambiguation string `json:"disambiguation,omitempty"`
}

// Instrument is a device or voice used to produce sound.
type Instrument struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Disambiguation string     `json:"disambiguation,omitempty"`
	Type           string     `json:"type,omitempty"`
	TypeID         string     `json:"type-id,omitempty"`
	Aliases        []Alias    `json:"aliases,omitempty"`
	Tags           []Tag      `json:"tags,omitempty"`
	Genres         []GenreRef `json:"genres,omitempty"`
}

// Label is an imprint that releases music.
type Label struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SortName       string     `json:"sort-name,omitempty"`
	Disambiguation string     `json:"disambiguation,omitempty"`
	Type           string     `json:"type,omitempty"`
	TypeID         string     `json:"type-id,omitempty"`
	LabelCode      int        `json:"label-code,omitempty"`
	Country        string     `json:"country,omitempty"`
	Area           *Area      `json:"area,omitempty"`
	LifeSpan       *LifeSpan  `json:"life-span,omitempty"`
	Aliases        []Alias    `json:"aliases,omitempty"`
	Tags           []Tag      `json:"tags,omitempty"`
	Genres         []GenreRef `json:"genres,omitempty"`
	Rating         *Rating    `json:"rating,omitempty"`
	Releases       []Release  `json:"releases,omitempty"`
}

// Place is a venue, studio, or other location tied to music production.
type Place struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Disambiguation string       `json:"disambiguation,omitempty"`
	Type           string       `json:"type,omitempty"`
	TypeID         string       `json:"type-id,omitempty"`
	Address        string       `json:"address,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Area           *Area        `json:"area,omitempty"`
	LifeSpan       *LifeSpan    `json:"life-span,omitempty"`
	Aliases        []Alias      `json:"aliases,omitempty"`
	Tags           []Tag        `json:"tags,omitempty"`
	Genres         []GenreRef   `json:"genres,omitempty"`
}

// Recording is a distinct audio take; tracks on releases point at one.
type Recording struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Disambiguation   string         `json:"disambiguation,omitempty"`
	Length           int            `json:"length,omitempty"`
	Video            bool           `json:"video,omitempty"`
	FirstReleaseDate string         `json:"first-release-date,omitempty"`
	ISRCs            []string       `json:"isrcs,omitempty"`
	ArtistCredit     []ArtistCredit `json:"artist-credit,omitempty"`
	Releases         []Release      `json:"releases,omitempty"`
	Aliases          []Alias        `json:"aliases,omitempty"`
	Tags             []Tag          `json:"tags,omitempty"`
	Genres           []GenreRef     `json:"genres,omitempty"`
	Rating           *Rating        `json:"rating,omitempty"`
}

// Release is one issuance of a release group (a specific CD pressing, a
// digital edition, ...).
type Release struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Disambiguation     string              `json:"disambiguation,omitempty"`
	Status             string              `json:"status,omitempty"`
	StatusID           string              `json:"status-id,omitempty"`
	Quality            string              `json:"quality,omitempty"`
	Date               string              `json:"date,omitempty"`
	Country            string              `json:"country,omitempty"`
	Barcode            string              `json:"barcode,omitempty"`
	ASIN               string              `json:"asin,omitempty"`
	Packaging          string              `json:"packaging,omitempty"`
	PackagingID        string              `json:"packaging-id,omitempty"`
	TextRepresentation *TextRepresentation `json:"text-representation,omitempty"`
	ArtistCredit       []ArtistCredit      `json:"artist-credit,omitempty"`
	ReleaseGroup       *ReleaseGroup       `json:"release-group,omitempty"`
	ReleaseEvents      []ReleaseEvent      `json:"release-events,omitempty"`
	LabelInfo          []LabelInfo         `json:"label-info,omitempty"`
	Media              []Medium            `json:"media,omitempty"`
	CoverArtArchive    *CoverArtArchive    `json:"cover-art-archive,omitempty"`
	Aliases            []Alias             `json:"aliases,omitempty"`
	Tags               []Tag               `json:"tags,omitempty"`
	Genres             []GenreRef          `json:"genres,omitempty"`
}

// ReleaseGroup bundles all releases of the same album/single/EP.
type ReleaseGroup struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Disambiguation   string         `json:"disambiguation,omitempty"`
	PrimaryType      string         `json:"primary-type,omitempty"`
	PrimaryTypeID    string         `json:"primary-type-id,omitempty"`
	SecondaryTypes   []string       `json:"secondary-types,omitempty"`
	FirstReleaseDate string         `json:"first-release-date,omitempty"`
	ArtistCredit     []ArtistCredit `json:"artist-credit,omitempty"`
	Releases         []Release      `json:"releases,omitempty"`
	Aliases          []Alias        `json:"aliases,omitempty"`
	Tags             []Tag          `json:"tags,omitempty"`
	Genres           []GenreRef     `json:"genres,omitempty"`
	Rating           *Rating        `json:"rating,omitempty"`
}

// Series is an ordered list of entities (award runs, recording sessions, ...).
type Series struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Disambiguation string  `json:"disambiguation,omitempty"`
	Type           string  `json:"type,omitempty"`
	TypeID         string  `json:"type-id,omitempty"`
	Aliases        []Alias `json:"aliases,omitempty"`
	Tags           []Tag   `json:"tags,omitempty"`
}

// URL is an external link known to the database.
type URL struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
}

// Work is an abstract composition realized by recordings.
type Work struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Disambiguation string     `json:"disambiguation,omitempty"`
	Type           string     `json:"type,omitempty"`
	TypeID         string     `json:"type-id,omitempty"`
	Language       string     `json:"language,omitempty"`
	Languages      []string   `json:"languages,omitempty"`
	ISWCs          []string   `json:"iswcs,omitempty"`
	Attributes     []any      `json:"attributes,omitempty"`
	Aliases        []Alias    `json:"aliases,omitempty"`
	Tags           []Tag      `json:"tags,omitempty"`
	Genres         []GenreRef `json:"genres,omitempty"`
	Rating         *Rating    `json:"rating,omitempty"`
}
