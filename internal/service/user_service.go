package service

import (
	"context"
	"sort"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// UserService handles business logic for user operations.
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser registers a new profile with default visibility and a zeroed
// rating aggregate.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Location:      req.Location,
		ProfilePhoto:  req.ProfilePhoto,
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
		IsPublic:      true,
		Status:        models.UserStatusActive,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns users matching the filter. Visibility and location are
// resolved by the repository; the skill filter is applied here as a
// case-insensitive substring match over both skill lists.
func (s *UserService) ListUsers(ctx context.Context, filter models.ListUsersFilter) ([]models.User, error) {
	users, err := s.repo.Find(ctx, filter.PublicOnly, filter.Location)
	if err != nil {
		return nil, err
	}

	if filter.Skill == "" {
		return users, nil
	}

	matched := []models.User{}
	for _, user := range users {
		if hasSkill(user, filter.Skill) {
			matched = append(matched, user)
		}
	}

	return matched, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser applies a partial update to a profile.
func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	return s.repo.Update(ctx, id, req)
}

// SearchSkills collects the deduplicated union of skills offered and wanted
// across public profiles, keeps those containing the query (case
// insensitive), and returns them alphabetically sorted.
func (s *UserService) SearchSkills(ctx context.Context, query string) ([]string, error) {
	users, err := s.repo.Find(ctx, true, "")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	needle := strings.ToLower(query)

	skills := []string{}
	for _, user := range users {
		for _, skill := range append(user.SkillsOffered, user.SkillsWanted...) {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}

			if strings.Contains(strings.ToLower(skill), needle) {
				skills = append(skills, skill)
			}
		}
	}

	sort.Strings(skills)
	return skills, nil
}

// hasSkill reports whether the skill query matches any entry of the user's
// offered or wanted skills, case insensitively.
func hasSkill(user models.User, skill string) bool {
	needle := strings.ToLower(skill)
	for _, s := range append(user.SkillsOffered, user.SkillsWanted...) {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
