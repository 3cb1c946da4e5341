package model

const (
	UnknownAuthor   = "Autor desconhecido"
	UnknownYear     = "0000"
	MaxSearchResult = 10
)

// Candidate is a catalog search hit that has not been saved.
type Candidate struct {
	GoogleAPIID     string  `json:"google_api_id"`
	Title           string  `json:"titulo"`
	Author          string  `json:"autor"`
	PublicationYear string  `json:"ano_publicacao"`
	CoverURL        *string `json:"url_capa"`
}
