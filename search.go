package metricx

import "strings"

type SearchResult struct {
	Term        string
	Description string
	Category    string
}

// Search matches the query against category names and descriptions and
// unit ids and display names, case-insensitively.
func (cat *Catalog) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var results []SearchResult
	for _, c := range cat.categories {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Description), q) {
			results = append(results, SearchResult{Term: c.Name, Description: c.Description, Category: c.Name})
		}
		for _, u := range c.units {
			if strings.Contains(u.ID, q) || strings.Contains(strings.ToLower(u.DisplayName), q) {
				results = append(results, SearchResult{
					Term:        u.ID,
					Description: strings.ToUpper(c.Name[:1]) + c.Name[1:] + " conversion tool",
					Category:    c.Name,
				})
			}
		}
	}
	return results
}
