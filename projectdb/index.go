package projectdb

import (
	"cmp"
	"slices"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/google/uuid"
)

type localizedID struct {
	ID       uint32
	Language uint32
}

type localizedGUID struct {
	GUID     uuid.UUID
	Language uint32
}

type localizedName struct {
	Name     string
	Language uint32
}

// index finds references by GUID, id or name within a language. The first
// reference registered under a key wins.
type index[R any] struct {
	byID   map[localizedID]R
	byGUID map[localizedGUID]R
	byName map[localizedName]R
	keys   []indexKey
}

type indexKey struct {
	localizedID
	GUID uuid.UUID
	Name string
}

func newIndex[R any]() *index[R] {
	return &index[R]{
		byID:   make(map[localizedID]R),
		byGUID: make(map[localizedGUID]R),
		byName: make(map[localizedName]R),
	}
}

func (ix *index[R]) add(id uint32, guid uuid.UUID, name string, language cooked.Language, ref R) {
	key := localizedID{ID: id, Language: language.ID}
	if _, ok := ix.byID[key]; ok {
		return
	}
	ix.byID[key] = ref
	if guid != uuid.Nil {
		ix.byGUID[localizedGUID{GUID: guid, Language: language.ID}] = ref
	}
	if name != "" {
		nameKey := localizedName{Name: name, Language: language.ID}
		if _, ok := ix.byName[nameKey]; !ok {
			ix.byName[nameKey] = ref
		}
	}
	ix.keys = append(ix.keys, indexKey{localizedID: key, GUID: guid, Name: name})
}

func (ix *index[R]) exact(q Query, languageID uint32) (R, bool) {
	if q.GUID != uuid.Nil {
		if ref, ok := ix.byGUID[localizedGUID{GUID: q.GUID, Language: languageID}]; ok {
			return ref, true
		}
	}
	if q.ShortID != 0 {
		if ref, ok := ix.byID[localizedID{ID: q.ShortID, Language: languageID}]; ok {
			return ref, true
		}
	}
	if q.Name != "" {
		if ref, ok := ix.byName[localizedName{Name: q.Name, Language: languageID}]; ok {
			return ref, true
		}
	}
	var zero R
	return zero, false
}

// find looks the query up in language, falling back to SFX.
func (ix *index[R]) find(q Query, language cooked.Language) (R, bool) {
	if ref, ok := ix.exact(q, language.ID); ok {
		return ref, true
	}
	if language.IsSFX() {
		var zero R
		return zero, false
	}
	return ix.exact(q, cooked.SFX.ID)
}

// findAll returns one reference per language that resolves the query.
func (ix *index[R]) findAll(q Query, languages []cooked.Language) map[cooked.Language]R {
	result := make(map[cooked.Language]R, len(languages))
	for _, language := range languages {
		if ref, ok := ix.find(q, language); ok {
			result[language] = ref
		}
	}
	return result
}

// queries lists every indexed object once, ordered by id.
func (ix *index[R]) queries() []Query {
	seen := make(map[uint32]bool, len(ix.keys))
	var result []Query
	for _, key := range ix.keys {
		if seen[key.ID] {
			continue
		}
		seen[key.ID] = true
		result = append(result, Query{GUID: key.GUID, ShortID: key.ID, Name: key.Name})
	}
	slices.SortFunc(result, func(a, b Query) int {
		return cmp.Compare(a.ShortID, b.ShortID)
	})
	return result
}

func (ix *index[R]) len() int {
	return len(ix.byID)
}
