package model

import (
	"time"
)

// Follow is a directed edge, unique per ordered (follower, following) pair.
// "unfollow" and "remove follower" both delete the same row, they only differ
// in which side of the pair the acting user occupies.
type Follow struct {
	FollowerId  string    `gorm:"column:follower_id;type:uuid;not null;primaryKey;uniqueIndex:follows_pair_key;" json:"followerId"`
	FollowingId string    `gorm:"column:following_id;type:uuid;not null;primaryKey;uniqueIndex:follows_pair_key;" json:"followingId"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}

//---------------------------------------
//---------------------------------------

type FollowDataRes struct {
	Followers      []Profile `json:"followers"`
	Following      []Profile `json:"following"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
}
