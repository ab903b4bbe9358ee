// Package repotest provides in-memory repositories with the same observable behaviour as the
// GORM implementations, for service and HTTP tests.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/google/uuid"
)

type Store struct {
	mu      sync.Mutex
	clock   time.Time
	users   map[uuid.UUID]models.User
	ideas   map[uuid.UUID]models.Idea
	saves   map[[2]uuid.UUID]bool
	banners map[uuid.UUID]models.Banner
	reviews map[uuid.UUID]models.Review
	votes   map[[2]uuid.UUID]bool
}

func NewStore() *Store {
	return &Store{
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:   make(map[uuid.UUID]models.User),
		ideas:   make(map[uuid.UUID]models.Idea),
		saves:   make(map[[2]uuid.UUID]bool),
		banners: make(map[uuid.UUID]models.Banner),
		reviews: make(map[uuid.UUID]models.Review),
		votes:   make(map[[2]uuid.UUID]bool),
	}
}

// New returns a Repository whose stores share one in-memory Store.
func New() (*repository.Repository, *Store) {
	s := NewStore()
	return &repository.Repository{
		Users:   Users{s},
		Ideas:   Ideas{s},
		Banners: Banners{s},
		Reviews: Reviews{s},
	}, s
}

// UserCount reports how many accounts are stored.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// tick hands out strictly increasing timestamps so "newest first" is deterministic.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

type Users struct{ s *Store }

func (r Users) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicate
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := r.s.tick()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = *user
	return nil
}

func (r Users) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r Users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r Users) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, u := range r.s.users {
		if id != user.ID && strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicate
		}
	}
	stored, ok := r.s.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	user.UpdatedAt = r.s.tick()
	stored.Name, stored.Email, stored.Bio, stored.Location = user.Name, user.Email, user.Bio, user.Location
	stored.Avatar, stored.Phone, stored.Age, stored.Gender = user.Avatar, user.Phone, user.Age, user.Gender
	stored.Occupation, stored.Website, stored.UpdatedAt = user.Occupation, user.Website, user.UpdatedAt
	r.s.users[user.ID] = stored
	return nil
}

func (r Users) UpdateStats(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	user.UpdatedAt = r.s.tick()
	stored.Credits, stored.SavedIdeas = user.Credits, user.SavedIdeas
	stored.PurchasedIdeas, stored.CompletionPercentage = user.PurchasedIdeas, user.CompletionPercentage
	stored.UpdatedAt = user.UpdatedAt
	r.s.users[user.ID] = stored
	return nil
}

func (r Users) TouchLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.LastLogin = &at
	r.s.users[id] = u
	return nil
}

func (r Users) SetRole(_ context.Context, email, role string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			u.Role = role
			r.s.users[id] = u
			return nil
		}
	}
	return repository.ErrNotFound
}

type Ideas struct{ s *Store }

func (r Ideas) Create(_ context.Context, idea *models.Idea) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if idea.ID == uuid.Nil {
		idea.ID = uuid.New()
	}
	now := r.s.tick()
	idea.CreatedAt, idea.UpdatedAt = now, now
	r.s.ideas[idea.ID] = *idea
	return nil
}

func (r Ideas) GetByID(_ context.Context, id uuid.UUID) (*models.Idea, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idea, ok := r.s.ideas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &idea, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func matches(f repository.IdeaFilter, idea models.Idea) bool {
	switch {
	case f.Status != "" && idea.Status != f.Status:
		return false
	case f.Category != "" && idea.Category != f.Category:
		return false
	case f.Title != "" && idea.Title != f.Title:
		return false
	case f.UserID != nil && idea.UserID != *f.UserID:
		return false
	case f.AdminOnly && !idea.IsAdminIdea:
		return false
	case f.ExcludeAdmin && (idea.IsAdminIdea || idea.Origin == models.OriginAdmin):
		return false
	case f.Featured != nil && idea.IsFeatured != *f.Featured:
		return false
	}
	if f.Search != "" && !containsFold(idea.Title, f.Search) &&
		!containsFold(idea.Description, f.Search) && !containsFold(idea.Category, f.Search) {
		return false
	}
	if f.Tag != "" {
		found := false
		for _, t := range idea.Tags {
			if containsFold(t, f.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r Ideas) List(_ context.Context, f repository.IdeaFilter) ([]models.Idea, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]models.Idea, 0)
	for _, idea := range r.s.ideas {
		if matches(f, idea) {
			all = append(all, idea)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if f.Limit > 0 {
		if f.Offset >= len(all) {
			return []models.Idea{}, total, nil
		}
		end := f.Offset + f.Limit
		if end > len(all) {
			end = len(all)
		}
		all = all[f.Offset:end]
	}
	return all, total, nil
}

func (r Ideas) Update(_ context.Context, idea *models.Idea) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.ideas[idea.ID]
	if !ok {
		return repository.ErrNotFound
	}
	idea.UpdatedAt = r.s.tick()
	next := *idea
	next.UserID, next.UserEmail, next.UserName = stored.UserID, stored.UserEmail, stored.UserName
	next.Views, next.Likes, next.IsFeatured = stored.Views, stored.Likes, stored.IsFeatured
	next.IsAdminIdea, next.Origin, next.CreatedAt = stored.IsAdminIdea, stored.Origin, stored.CreatedAt
	r.s.ideas[idea.ID] = next
	return nil
}

func (r Ideas) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ideas[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.ideas, id)
	for k := range r.s.saves {
		if k[0] != id {
			continue
		}
		delete(r.s.saves, k)
		if u, ok := r.s.users[k[1]]; ok && u.SavedIdeas > 0 {
			u.SavedIdeas--
			r.s.users[k[1]] = u
		}
	}
	for rid, rv := range r.s.reviews {
		if rv.IdeaID != id {
			continue
		}
		delete(r.s.reviews, rid)
		for k := range r.s.votes {
			if k[0] == rid {
				delete(r.s.votes, k)
			}
		}
	}
	return nil
}

func (r Ideas) IncrementViews(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idea, ok := r.s.ideas[id]
	if !ok {
		return repository.ErrNotFound
	}
	idea.Views++
	r.s.ideas[id] = idea
	return nil
}

func (r Ideas) SetFeatured(_ context.Context, id uuid.UUID, featured bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idea, ok := r.s.ideas[id]
	if !ok {
		return repository.ErrNotFound
	}
	idea.IsFeatured = featured
	r.s.ideas[id] = idea
	return nil
}

func (r Ideas) ToggleSave(_ context.Context, ideaID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ideas[ideaID]; !ok {
		return false, repository.ErrNotFound
	}
	key := [2]uuid.UUID{ideaID, userID}
	saved := !r.s.saves[key]
	if saved {
		r.s.saves[key] = true
	} else {
		delete(r.s.saves, key)
	}
	if u, ok := r.s.users[userID]; ok {
		if saved {
			u.SavedIdeas++
		} else if u.SavedIdeas > 0 {
			u.SavedIdeas--
		}
		r.s.users[userID] = u
	}
	return saved, nil
}

type Banners struct{ s *Store }

func (r Banners) Create(_ context.Context, banner *models.Banner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if banner.ID == uuid.Nil {
		banner.ID = uuid.New()
	}
	now := r.s.tick()
	banner.CreatedAt, banner.UpdatedAt = now, now
	r.s.banners[banner.ID] = *banner
	return nil
}

func (r Banners) GetByID(_ context.Context, id uuid.UUID) (*models.Banner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.banners[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r Banners) List(_ context.Context, active *bool) ([]models.Banner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Banner, 0)
	for _, b := range r.s.banners {
		if active == nil || b.IsActive == *active {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r Banners) Update(_ context.Context, banner *models.Banner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.banners[banner.ID]
	if !ok {
		return repository.ErrNotFound
	}
	banner.UpdatedAt = r.s.tick()
	next := *banner
	next.Clicks, next.Views, next.CreatedAt = stored.Clicks, stored.Views, stored.CreatedAt
	r.s.banners[banner.ID] = next
	return nil
}

func (r Banners) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.banners[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.banners, id)
	return nil
}

func (r Banners) IncrementCounter(_ context.Context, id uuid.UUID, counter repository.BannerCounter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.banners[id]
	if !ok {
		return repository.ErrNotFound
	}
	switch counter {
	case repository.BannerClicks:
		b.Clicks++
	case repository.BannerViews:
		b.Views++
	default:
		return fmt.Errorf("unknown banner counter %q", counter)
	}
	r.s.banners[id] = b
	return nil
}

type Reviews struct{ s *Store }

func (r Reviews) Create(_ context.Context, review *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.reviews {
		if existing.IdeaID == review.IdeaID && existing.UserID == review.UserID {
			return repository.ErrDuplicate
		}
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	now := r.s.tick()
	review.CreatedAt, review.UpdatedAt = now, now
	r.s.reviews[review.ID] = *review
	return nil
}

func (r Reviews) GetByID(_ context.Context, id uuid.UUID) (*models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rv, nil
}

func (r Reviews) ListApprovedByIdea(_ context.Context, ideaID uuid.UUID) ([]models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Review, 0)
	for _, rv := range r.s.reviews {
		if rv.IdeaID == ideaID && rv.Status == models.ReviewStatusApproved {
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r Reviews) ExistsForIdeaAndUser(_ context.Context, ideaID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rv := range r.s.reviews {
		if rv.IdeaID == ideaID && rv.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r Reviews) Update(_ context.Context, review *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.reviews[review.ID]
	if !ok {
		return repository.ErrNotFound
	}
	review.UpdatedAt = r.s.tick()
	stored.Comment, stored.Rating, stored.Status, stored.UpdatedAt = review.Comment, review.Rating, review.Status, review.UpdatedAt
	r.s.reviews[review.ID] = stored
	return nil
}

func (r Reviews) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.reviews, id)
	for k := range r.s.votes {
		if k[0] == id {
			delete(r.s.votes, k)
		}
	}
	return nil
}

func (r Reviews) ToggleHelpful(_ context.Context, reviewID, userID uuid.UUID) (int, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rv, ok := r.s.reviews[reviewID]
	if !ok {
		return 0, false, repository.ErrNotFound
	}
	key := [2]uuid.UUID{reviewID, userID}
	voted := !r.s.votes[key]
	if voted {
		r.s.votes[key] = true
		rv.HelpfulCount++
	} else {
		delete(r.s.votes, key)
		if rv.HelpfulCount > 0 {
			rv.HelpfulCount--
		}
	}
	r.s.reviews[reviewID] = rv
	return rv.HelpfulCount, voted, nil
}
