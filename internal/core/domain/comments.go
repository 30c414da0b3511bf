package domain

import "time"

// CommentMerge is the result of merging an incoming comment list into the
// comments an application currently owns.
type CommentMerge struct {
	Comments []Comment // ordered as received
	Inserted []string
	Updated  []string
	Removed  []string
}

// MergeComments upserts incoming into current. A comment whose id is already
// owned is updated in place, any other comment is inserted. The incoming order
// becomes the new order and owned comments missing from incoming are reported
// as removed. Comments without id get one from newID, comments without
// timestamp keep their previous one or get now.
func MergeComments(current, incoming []Comment, newID func() string, now time.Time) CommentMerge {
	owned := make(map[string]Comment, len(current))
	for _, c := range current {
		owned[c.ID] = c
	}

	var result CommentMerge
	position := make(map[string]int, len(incoming))

	for _, c := range incoming {
		if c.ID == "" {
			c.ID = newID()
		}

		prev, exists := owned[c.ID]
		if c.CreatedAt.IsZero() {
			if exists {
				c.CreatedAt = prev.CreatedAt
			} else {
				c.CreatedAt = now
			}
		}

		// repeated ids keep their first position and the last content
		if idx, seen := position[c.ID]; seen {
			result.Comments[idx] = c
			continue
		}
		position[c.ID] = len(result.Comments)
		result.Comments = append(result.Comments, c)

		if exists {
			result.Updated = append(result.Updated, c.ID)
		} else {
			result.Inserted = append(result.Inserted, c.ID)
		}
	}

	for _, c := range current {
		if _, kept := position[c.ID]; !kept {
			result.Removed = append(result.Removed, c.ID)
		}
	}

	if result.Comments == nil {
		result.Comments = []Comment{}
	}
	return result
}
