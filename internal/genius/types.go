package genius

// Hit is one ranked search match.
type Hit struct {
	Title  string
	Artist string
	URL    string
}

type searchResponse struct {
	Response struct {
		Hits []hitJSON `json:"hits"`
	} `json:"response"`
}

type hitJSON struct {
	Type   string   `json:"type"`
	Result songJSON `json:"result"`
}

type songJSON struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	PrimaryArtist struct {
		Name string `json:"name"`
	} `json:"primary_artist"`
}

func (s songJSON) toHit() Hit {
	return Hit{
		Title:  s.Title,
		Artist: s.PrimaryArtist.Name,
		URL:    s.URL,
	}
}
