package wordpress

import "html"

const taxonomyCategory = "category"

// Rendered wraps the HTML fragments the WordPress REST API returns for
// title, excerpt and content.
type Rendered struct {
	Rendered string `json:"rendered"`
}

type Term struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Taxonomy string `json:"taxonomy"`
}

// Embedded carries the taxonomy data requested with ?_embed. Terms come
// grouped per taxonomy, one inner slice per group.
type Embedded struct {
	Terms [][]Term `json:"wp:term"`
}

type Post struct {
	ID            int       `json:"id"`
	Date          string    `json:"date"`
	Slug          string    `json:"slug"`
	Title         Rendered  `json:"title"`
	Excerpt       Rendered  `json:"excerpt"`
	Content       Rendered  `json:"content"`
	FeaturedMedia string    `json:"jetpack_featured_media_url,omitempty"`
	Embedded      *Embedded `json:"_embedded,omitempty"`
}

// Categories returns the embedded terms of the category taxonomy with their
// names HTML-entity decoded. The API encodes names ("Mergers &amp; Acquisitions"),
// so decoding must happen before any comparison or display.
func (p *Post) Categories() []Term {
	if p.Embedded == nil {
		return nil
	}

	var result []Term
	for _, group := range p.Embedded.Terms {
		for _, term := range group {
			if term.Taxonomy != taxonomyCategory {
				continue
			}
			term.Name = html.UnescapeString(term.Name)
			result = append(result, term)
		}
	}

	return result
}

// CategoryNames returns the decoded category names.
func (p *Post) CategoryNames() []string {
	terms := p.Categories()
	if len(terms) == 0 {
		return nil
	}

	names := make([]string, len(terms))
	for i := range terms {
		names[i] = terms[i].Name
	}
	return names
}
