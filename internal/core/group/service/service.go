package groupapp

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"yatube/internal/core/apperr"
	groupEntity "yatube/internal/core/group"
	groupPort "yatube/internal/ports/group"
)

type GroupService struct {
	GroupRepository groupPort.GroupRepository
	logger          *zap.Logger
}

func NewGroupService(repo groupPort.GroupRepository, logger *zap.Logger) *GroupService {
	return &GroupService{GroupRepository: repo, logger: logger}
}

// CreateGroup is the administrative path for adding a group.
func (s *GroupService) CreateGroup(ctx context.Context, in groupPort.GroupInput) (*groupPort.GroupDTO, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	if err := apperr.Validate(in); err != nil {
		return nil, err
	}

	_, err := s.GroupRepository.FindBySlug(ctx, in.Slug)
	switch {
	case err == nil:
		return nil, apperr.NewValidationError("slug", "Group with this slug already exists.")
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, err
	}

	g, err := s.GroupRepository.Create(ctx, &groupEntity.Group{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Group created", zap.String("slug", g.Slug))
	return groupPort.ToGroupDTO(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, groupPort.ToGroupDTO(g))
	}
	return dtos, nil
}
