package service

import (
	"strings"
	"sync"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
)

// MinQueryLength is the shortest query the palette search will run.
// Anything shorter returns empty groups without touching the store.
const MinQueryLength = 2

// GroupLimit caps each result group so the palette stays scannable
const GroupLimit = 3

// SearchResults holds the three palette groups. A group that failed to load
// comes back empty rather than failing the whole search.
type SearchResults struct {
	Cafes  []model.Cafe    `json:"cafes"`
	Jobs   []model.Job     `json:"jobs"`
	People []model.Profile `json:"people"`
}

func (r *SearchResults) Empty() bool {
	return len(r.Cafes) == 0 && len(r.Jobs) == 0 && len(r.People) == 0
}

type SearchService interface {
	GlobalSearch(query string) *SearchResults
}

type searchService struct {
	cafeRepo    repository.CafeRepository
	jobRepo     repository.JobRepository
	profileRepo repository.ProfileRepository
}

func NewSearchService(cafeRepo repository.CafeRepository, jobRepo repository.JobRepository, profileRepo repository.ProfileRepository) SearchService {
	return &searchService{
		cafeRepo:    cafeRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

// GlobalSearch fans out to the three sources concurrently. Each source is
// isolated: a failing query logs a warning and contributes an empty group.
func (s *searchService) GlobalSearch(query string) *SearchResults {
	results := &SearchResults{
		Cafes:  []model.Cafe{},
		Jobs:   []model.Job{},
		People: []model.Profile{},
	}

	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return results
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		cafes, err := s.cafeRepo.FindTopByName(query, GroupLimit)
		if err != nil {
			logger.Warn("Palette cafe lookup failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
			return
		}
		results.Cafes = cafes
	}()

	go func() {
		defer wg.Done()
		jobs, err := s.jobRepo.FindTopByTitle(query, GroupLimit)
		if err != nil {
			logger.Warn("Palette job lookup failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
			return
		}
		results.Jobs = jobs
	}()

	go func() {
		defer wg.Done()
		people, err := s.profileRepo.FindTopByFullName(query, GroupLimit)
		if err != nil {
			logger.Warn("Palette profile lookup failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
			return
		}
		results.People = people
	}()

	wg.Wait()
	return results
}
