package model

import (
	"fmt"
)

// QueryKey is the logical identity of a cached query: resource kind plus
// parameters. Every cached result and its in-flight fill are tracked under
// this key, callers never build raw cache strings themselves.
type QueryKey struct {
	Resource string
	Params   string
}

func (k QueryKey) Id() string {
	return k.Resource + ":" + k.Params
}

//---------------------------------------
//---------------------------------------

func PopularMoviesKey(page int) QueryKey {
	return QueryKey{Resource: "catalog.popular", Params: fmt.Sprintf("page=%d", page)}
}

func SearchMoviesKey(query string, page int) QueryKey {
	return QueryKey{Resource: "catalog.search", Params: fmt.Sprintf("q=%s&page=%d", query, page)}
}

func MovieDetailKey(movieId int64) QueryKey {
	return QueryKey{Resource: "catalog.movie", Params: fmt.Sprintf("id=%d", movieId)}
}

func MovieCreditsKey(movieId int64) QueryKey {
	return QueryKey{Resource: "catalog.credits", Params: fmt.Sprintf("id=%d", movieId)}
}

func MovieVideosKey(movieId int64) QueryKey {
	return QueryKey{Resource: "catalog.videos", Params: fmt.Sprintf("id=%d", movieId)}
}

func TrendingKey(page int) QueryKey {
	return QueryKey{Resource: "catalog.trending", Params: fmt.Sprintf("page=%d", page)}
}

func PopularShowsKey(page int) QueryKey {
	return QueryKey{Resource: "catalog.shows", Params: fmt.Sprintf("page=%d", page)}
}

func FavoritesKey(userId string) QueryKey {
	return QueryKey{Resource: "favorites", Params: "user=" + userId}
}
