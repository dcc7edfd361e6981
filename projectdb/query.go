package projectdb

import (
	"fmt"

	"github.com/google/uuid"
)

// Query identifies an authored object. Lookups try the GUID first, then the
// short id, then the name; zero fields are skipped.
type Query struct {
	GUID    uuid.UUID
	ShortID uint32
	Name    string
}

// IsZero reports whether the query carries no identity at all.
func (q Query) IsZero() bool {
	return q.GUID == uuid.Nil && q.ShortID == 0 && q.Name == ""
}

func (q Query) String() string {
	return fmt.Sprintf("%s %d %s", q.GUID, q.ShortID, q.Name)
}

// GroupQuery identifies a switch or state value inside its group.
type GroupQuery struct {
	Query
	GroupShortID uint32
}
