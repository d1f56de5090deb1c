package services

import (
	"organizer/internal/domain"
)

// searchServiceImpl implements the SearchService interface
type searchServiceImpl struct{}

// NewSearchService creates a new SearchService instance
func NewSearchService() SearchService {
	return &searchServiceImpl{}
}

// SearchTasks returns the tasks that match opts, in list display order
func (s *searchServiceImpl) SearchTasks(state domain.State, opts domain.SearchOptions) []SearchResult {
	results := make([]SearchResult, 0)
	for _, info := range domain.AllLists {
		if !opts.IncludesList(info.Name) {
			continue
		}
		for _, t := range state.Lists[info.Name] {
			if opts.Matches(t) {
				results = append(results, SearchResult{List: info, Task: t.Clone()})
			}
		}
	}
	return results
}
