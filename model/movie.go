package model

// Catalog records are transient copies of the upstream catalog api, field
// names follow its wire format. Nothing here is ever persisted.

type Movie struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title,omitempty"`
	Name        string  `json:"name,omitempty"` // tv shows use name instead of title
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date,omitempty"`
	MediaType   string  `json:"media_type,omitempty"`
	Runtime     int     `json:"runtime,omitempty"`
	Budget      int64   `json:"budget,omitempty"`
	Genres      []Genre `json:"genres,omitempty"`
}

type Genre struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

//---------------------------------------
//---------------------------------------

type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	// HasNext drives the "next page" control, the upstream pagination
	// metadata beyond result emptiness is not consumed.
	HasNext bool `json:"hasNext"`
}

//---------------------------------------
//---------------------------------------

type Credits struct {
	Id   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
}

type CastMember struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

//---------------------------------------
//---------------------------------------

type VideoPage struct {
	Id      int64   `json:"id"`
	Results []Video `json:"results"`
}

type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Trailer returns the first video flagged as a trailer, or nil.
func (v *VideoPage) Trailer() *Video {
	for i := range v.Results {
		if v.Results[i].Type == "Trailer" {
			return &v.Results[i]
		}
	}
	return nil
}
