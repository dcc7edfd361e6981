// Package testhelpers holds helpers shared by formatter tests.
package testhelpers

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Goldie returns a goldie instance reading testdata/<name>.gold.txt.
func Goldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.txt"))
}
