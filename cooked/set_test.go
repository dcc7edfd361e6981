package cooked_test

import (
	"testing"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/stretchr/testify/assert"
)

func TestSet_DedupAndDifference(t *testing.T) {
	m1 := cooked.Media{ID: 1, PathName: "1.wem"}
	m2 := cooked.Media{ID: 2, PathName: "2.wem"}

	all := cooked.NewSet(m1, m2, m1)
	mandatory := cooked.NewSet(m1)

	assert.Equal(t, 2, all.Len())
	assert.Equal(t, []cooked.Media{m2}, all.Difference(mandatory).Sorted(cooked.CompareMedia))

	all.Union(cooked.NewSet(m2))
	assert.Equal(t, []cooked.Media{m1, m2}, all.Sorted(cooked.CompareMedia))
}

func TestGroupValueSet_IdentityExcludesDebugName(t *testing.T) {
	set := cooked.NewGroupValueSet(
		cooked.GroupValue{Type: cooked.GroupState, GroupID: 1, ID: 2, DebugName: "Calm"},
		cooked.GroupValue{Type: cooked.GroupState, GroupID: 1, ID: 2, DebugName: "Other"},
		cooked.GroupValue{Type: cooked.GroupSwitch, GroupID: 1, ID: 2},
	)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(cooked.GroupValue{Type: cooked.GroupState, GroupID: 1, ID: 2}))
	sorted := set.Sorted()
	assert.Equal(t, cooked.GroupSwitch, sorted[0].Type)
	assert.Equal(t, "Calm", sorted[1].DebugName)
}

func TestParseDebugNameRule(t *testing.T) {
	tests := []struct {
		in   string
		want cooked.DebugNameRule
	}{
		{"", cooked.DebugNameObjectPath},
		{"ObjectPath", cooked.DebugNameObjectPath},
		{"name", cooked.DebugNameName},
		{"RELEASE", cooked.DebugNameRelease},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cooked.ParseDebugNameRule(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := cooked.ParseDebugNameRule("verbose")
	assert.ErrorContains(t, err, "unknown debug name rule")
}

func TestDebugNameRule_Pick(t *testing.T) {
	assert.Equal(t, `\Events\Play`, cooked.DebugNameObjectPath.Pick("Play", `\Events\Play`))
	assert.Equal(t, "Play", cooked.DebugNameName.Pick("Play", `\Events\Play`))
	assert.Empty(t, cooked.DebugNameRelease.Pick("Play", `\Events\Play`))
}
