package model

// ProfileHandle is the flattened summary of a follower shown in the "Followed by" strip.
type ProfileHandle struct {
	Handle  string
	Picture string
}

// Follower is a raw follower entry: the wallet that follows and its default profile, if any.
type Follower struct {
	Address        string
	DefaultProfile *Profile
}
