package client

import "testing"

func TestValidateMBID(t *testing.T) {
	valid := []string{
		"94ed318a-fd7d-4abc-8491-a35e39f51dca",
		"ba853904-ae25-4ebb-89d6-c44cfbd71bd2",
		"5B11F4CE-A62D-471E-81FC-A69A8278C7DA", // case-insensitive
	}
	for _, id := range valid {
		if err := ValidateMBID(id); err != nil {
			t.Errorf("ValidateMBID(%q) = %v, want nil", id, err)
		}
	}

	invalid := []string{
		"",
		"94ed318a",
		"94ed318a-fd7d-4abc-8491-a35e39f51dc",   // one short
		"94ed318a-fd7d-4abc-8491-a35e39f51dcaa", // one long
		"gged318a-fd7d-4abc-8491-a35e39f51dca",  // non-hex
		"94ed318a fd7d 4abc 8491 a35e39f51dca",
	}
	for _, id := range invalid {
		if err := ValidateMBID(id); err == nil {
			t.Errorf("ValidateMBID(%q) = nil, want error", id)
		}
	}
}

func TestEntityKindValid(t *testing.T) {
	for _, k := range []EntityKind{
		KindArea, KindArtist, KindCollection, KindEvent, KindGenre,
		KindInstrument, KindLabel, KindPlace, KindRecording, KindRelease,
		KindReleaseGroup, KindSeries, KindURL, KindWork,
	} {
		if !k.Valid() {
			t.Errorf("kind %q should be valid", k)
		}
	}
	for _, k := range []EntityKind{"", "band", "Artist", "releasegroup"} {
		if k.Valid() {
			t.Errorf("kind %q should be invalid", k)
		}
	}
}
