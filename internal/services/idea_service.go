package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/google/uuid"
)

const (
	defaultPage          = 1
	defaultPageLimit     = 10
	maxPageLimit         = 100
	maxPage              = 100000
	defaultFeaturedLimit = 8

	placeholderText = "To be determined"
)

// IdeaListQuery carries the query-string options of the listing endpoints.
type IdeaListQuery struct {
	Page     int
	Limit    int
	Status   string
	Category string
	Search   string
	Tag      string
	UserID   *uuid.UUID
	Featured *bool
}

type IdeaPage struct {
	Ideas      []models.Idea
	Pagination dto.Pagination
}

type IdeaService struct {
	ideas repository.IdeaRepository
}

func NewIdeaService(ideas repository.IdeaRepository) *IdeaService {
	return &IdeaService{ideas: ideas}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	// keeps (page-1)*limit far from overflowing into a negative offset
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func (s *IdeaService) page(ctx context.Context, q IdeaListQuery, f repository.IdeaFilter) (*IdeaPage, error) {
	page, limit := normalizePage(q.Page, q.Limit)
	if f.Status == "" && q.Status != "" {
		if !models.IdeaStatuses[q.Status] {
			return nil, invalid("status", "status must be one of: "+strings.Join(sortedKeys(models.IdeaStatuses), ", "))
		}
		f.Status = q.Status
	}
	f.Category = strings.TrimSpace(q.Category)
	f.Search = strings.TrimSpace(q.Search)
	f.Tag = strings.TrimSpace(q.Tag)
	f.UserID = q.UserID
	f.Featured = q.Featured
	f.Offset = (page - 1) * limit
	f.Limit = limit

	ideas, total, err := s.ideas.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return &IdeaPage{Ideas: ideas, Pagination: dto.NewPagination(page, limit, total)}, nil
}

// List is the general listing; status is whatever the caller asks for.
func (s *IdeaService) List(ctx context.Context, q IdeaListQuery) (*IdeaPage, error) {
	return s.page(ctx, q, repository.IdeaFilter{})
}

func (s *IdeaService) ListAll(ctx context.Context, q IdeaListQuery) (*IdeaPage, error) {
	return s.page(ctx, q, repository.IdeaFilter{Status: models.IdeaStatusPublished})
}

func (s *IdeaService) ListCommunity(ctx context.Context, q IdeaListQuery) (*IdeaPage, error) {
	return s.page(ctx, q, repository.IdeaFilter{Status: models.IdeaStatusPublished, ExcludeAdmin: true})
}

func (s *IdeaService) ListStatic(ctx context.Context, q IdeaListQuery) (*IdeaPage, error) {
	return s.page(ctx, q, repository.IdeaFilter{AdminOnly: true})
}

// ListFeatured returns a uniform random sample of at most limit published ideas.
func (s *IdeaService) ListFeatured(ctx context.Context, limit int) ([]models.Idea, error) {
	if limit < 1 {
		limit = defaultFeaturedLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	ideas, _, err := s.ideas.List(ctx, repository.IdeaFilter{Status: models.IdeaStatusPublished})
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	rand.Shuffle(len(ideas), func(i, j int) { ideas[i], ideas[j] = ideas[j], ideas[i] })
	if len(ideas) > limit {
		ideas = ideas[:limit]
	}
	return ideas, nil
}

// Get returns the idea after counting the view.
func (s *IdeaService) Get(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	if err := s.ideas.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to count view: %w", err)
	}
	return s.find(ctx, id)
}

func (s *IdeaService) find(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	idea, err := s.ideas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to load idea: %w", err)
	}
	return idea, nil
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, strings.TrimSpace(it))
	}
	return out
}

func normalizeFields(f *dto.IdeaFields) {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.TargetAudience = strings.TrimSpace(f.TargetAudience)
	f.CompetitiveAdvantage = strings.TrimSpace(f.CompetitiveAdvantage)
	f.Challenges = strings.TrimSpace(f.Challenges)
	f.ContactInfo.Email = normalizeEmail(f.ContactInfo.Email)
	f.ContactInfo.Phone = strings.TrimSpace(f.ContactInfo.Phone)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	if f.KeyFeatures != nil {
		f.KeyFeatures = trimAll(f.KeyFeatures)
	}
	if f.RevenueStreams != nil {
		f.RevenueStreams = trimAll(f.RevenueStreams)
	}
	if f.RequiredSkills != nil {
		f.RequiredSkills = trimAll(f.RequiredSkills)
	}
	if f.Tags != nil {
		f.Tags = trimAll(f.Tags)
	}
}

// fillAdminDefaults gives every business field except title, description and category a
// placeholder so admin-curated ideas pass the same validation as community ones.
func fillAdminDefaults(f *dto.IdeaFields) {
	def := func(s *string, v string) {
		if *s == "" {
			*s = v
		}
	}
	def(&f.InvestmentRange, "under-10k")
	def(&f.TimeToStart, "1-3-months")
	def(&f.TargetAudience, "General audience")
	def(&f.BusinessModel, "other")
	def(&f.CompetitiveAdvantage, placeholderText)
	def(&f.Challenges, placeholderText)
	def(&f.MarketSize, "local")
	def(&f.ContactInfo.Email, models.AdminOwnerEmail)
	if len(f.KeyFeatures) == 0 {
		f.KeyFeatures = []string{placeholderText}
	}
	if len(f.RevenueStreams) == 0 {
		f.RevenueStreams = []string{placeholderText}
	}
	if len(f.RequiredSkills) == 0 {
		f.RequiredSkills = []string{placeholderText}
	}
}

func applyFields(idea *models.Idea, f *dto.IdeaFields) {
	idea.Title = f.Title
	idea.Description = f.Description
	idea.Category = f.Category
	idea.InvestmentRange = f.InvestmentRange
	idea.TimeToStart = f.TimeToStart
	idea.TargetAudience = f.TargetAudience
	idea.KeyFeatures = f.KeyFeatures
	idea.BusinessModel = f.BusinessModel
	idea.RevenueStreams = f.RevenueStreams
	idea.CompetitiveAdvantage = f.CompetitiveAdvantage
	idea.Challenges = f.Challenges
	idea.MarketSize = f.MarketSize
	idea.RequiredSkills = f.RequiredSkills
	idea.ContactInfo = models.ContactInfo{Email: f.ContactInfo.Email, Phone: f.ContactInfo.Phone}
	idea.ImageURL = f.ImageURL
	idea.Tags = f.Tags
	if idea.Tags == nil {
		idea.Tags = []string{}
	}
}

// Create stores a new idea. With req.IsAdmin the idea is admin-curated and callerIsAdmin must
// be true; otherwise it is a community submission owned by caller (or by the owner fields of
// the payload when the request is anonymous).
func (s *IdeaService) Create(ctx context.Context, req *dto.CreateIdeaRequest, caller *models.User, callerIsAdmin bool) (*models.Idea, error) {
	normalizeFields(&req.IdeaFields)

	if req.IsAdmin {
		return s.createAdmin(ctx, req, callerIsAdmin)
	}

	if err := validateStruct(&req.IdeaFields); err != nil {
		return nil, err
	}
	if caller != nil {
		req.UserID = caller.ID.String()
		req.UserEmail = caller.Email
		req.UserName = caller.Name
	}
	req.UserEmail = normalizeEmail(req.UserEmail)
	req.UserName = strings.TrimSpace(req.UserName)
	if err := validateStruct(&req.IdeaOwnerInput); err != nil {
		return nil, err
	}
	ownerID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, invalid("userId", "userId must be a valid id")
	}

	idea := models.Idea{
		ID:        uuid.New(),
		Status:    models.IdeaStatusPublished,
		UserID:    ownerID,
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		Origin:    models.OriginCommunity,
	}
	applyFields(&idea, &req.IdeaFields)

	if err := s.ideas.Create(ctx, &idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	return &idea, nil
}

func (s *IdeaService) createAdmin(ctx context.Context, req *dto.CreateIdeaRequest, callerIsAdmin bool) (*models.Idea, error) {
	if !callerIsAdmin {
		return nil, ErrAdminOnly
	}
	fillAdminDefaults(&req.IdeaFields)
	if err := validateStruct(&req.IdeaFields); err != nil {
		return nil, err
	}

	idea := models.Idea{
		ID:          uuid.New(),
		Status:      models.IdeaStatusPublished,
		UserID:      uuid.New(),
		UserEmail:   models.AdminOwnerEmail,
		UserName:    models.AdminOwnerName,
		IsAdminIdea: true,
		Origin:      models.OriginAdmin,
		IsFeatured:  req.IsFeatured,
	}
	applyFields(&idea, &req.IdeaFields)

	if err := s.ideas.Create(ctx, &idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	return s.find(ctx, idea.ID)
}

// Update replaces the business fields. Owner, origin and counters are kept.
func (s *IdeaService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateIdeaRequest) (*models.Idea, error) {
	idea, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	normalizeFields(&req.IdeaFields)
	if err := validateStruct(&req.IdeaFields); err != nil {
		return nil, err
	}
	if req.Status != "" {
		if !models.IdeaStatuses[req.Status] {
			return nil, invalid("status", "status must be one of: "+strings.Join(sortedKeys(models.IdeaStatuses), ", "))
		}
		idea.Status = req.Status
	}
	applyFields(idea, &req.IdeaFields)

	if err := s.ideas.Update(ctx, idea); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}
	return idea, nil
}

func (s *IdeaService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.ideas.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrIdeaNotFound
		}
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	return nil
}

// SetFeatured flags an idea for the static listing's featured filter. A nil Featured means true.
func (s *IdeaService) SetFeatured(ctx context.Context, req *dto.SetFeaturedRequest) (*models.Idea, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	id, _ := uuid.Parse(req.IdeaID)
	featured := true
	if req.Featured != nil {
		featured = *req.Featured
	}
	if err := s.ideas.SetFeatured(ctx, id, featured); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}
	return s.find(ctx, id)
}

func (s *IdeaService) ToggleSave(ctx context.Context, ideaID, userID uuid.UUID) (bool, error) {
	saved, err := s.ideas.ToggleSave(ctx, ideaID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrIdeaNotFound
		}
		return false, fmt.Errorf("failed to toggle save: %w", err)
	}
	return saved, nil
}

// ExistsByTitle reports whether an admin-curated idea with exactly this title exists.
func (s *IdeaService) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	_, total, err := s.ideas.List(ctx, repository.IdeaFilter{Title: title, AdminOnly: true, Limit: 1})
	if err != nil {
		return false, err
	}
	return total > 0, nil
}
