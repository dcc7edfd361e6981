package cooker

import (
	"fmt"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
)

// localizedKind describes how one kind of localized asset is looked up and
// resolved.
type localizedKind[R any, T cooked.Equivalenter[T]] struct {
	op       string
	find     func(pd *projectdb.PlatformData, q projectdb.Query, languages []cooked.Language) map[cooked.Language]R
	identity func(ref R) (id uint32, name, objectPath string)
	resolve  func(s *session, ref R) (T, error)
}

// resolveLocalized resolves info in every active language and folds the
// result into SFX when no language differs.
func resolveLocalized[R any, T cooked.Equivalenter[T]](c *Cooker, kind localizedKind[R, T], info AssetInfo) (cooked.Localized[T], error) {
	lock, pd, err := c.readLock()
	if err != nil {
		return cooked.Localized[T]{}, c.fail(kind.op, info, err)
	}
	defer lock.Unlock()

	refs := kind.find(pd, info.query(), c.activeLanguages(pd))
	if len(refs) == 0 {
		return cooked.Localized[T]{}, c.fail(kind.op, info, ErrNoRef)
	}

	s := c.newSession(pd)
	var result cooked.Localized[T]
	for i, language := range sortedLanguages(refs) {
		ref := refs[language]
		if i == 0 {
			id, name, objectPath := kind.identity(ref)
			result = cooked.NewLocalized[T](id, s.rule.Pick(name, objectPath))
		}
		data, err := kind.resolve(s, ref)
		if err != nil {
			return cooked.Localized[T]{}, c.fail(kind.op, info, fmt.Errorf("failed to resolve %s: %w", language.Name, err))
		}
		result.Add(language, data)
	}
	if cooked.FoldSFX(&result) {
		c.logger.Debug("Asset does not vary by language", assetAttrs(info, "op", kind.op)...)
	}
	return result, nil
}
