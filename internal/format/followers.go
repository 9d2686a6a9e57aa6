package format

import "github.com/templui/lenscard/internal/model"

// MaxFollowers is how many follower avatars a card shows.
const MaxFollowers = 3

// FormatFollowers keeps the followers whose default profile has a picture, takes the first limit of them
// and flattens each to its handle and resolved picture URL.
func FormatFollowers(followers []model.Follower, limit int, gateway string) []model.ProfileHandle {
	if limit <= 0 || limit > MaxFollowers {
		limit = MaxFollowers
	}
	handles := make([]model.ProfileHandle, 0, limit)
	for _, f := range followers {
		if len(handles) == limit {
			break
		}
		p := f.DefaultProfile
		if p == nil || p.Picture == nil {
			continue
		}
		handles = append(handles, model.ProfileHandle{
			Handle:  p.Handle,
			Picture: IPFSPathOrURL(model.MediaURL(p.Picture), gateway),
		})
	}
	return handles
}

// FormatHandleList joins handles for the "Followed by" line: "a", "a and b", "a, b and c".
func FormatHandleList(handles []string) string {
	switch len(handles) {
	case 0:
		return ""
	case 1:
		return handles[0]
	}
	out := ""
	for i, h := range handles[:len(handles)-1] {
		if i > 0 {
			out += ", "
		}
		out += h
	}
	return out + " and " + handles[len(handles)-1]
}
