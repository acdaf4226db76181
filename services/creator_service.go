package services // Use-case layer; orchestrates business rules, not HTTP/DB details.

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdulwakil1/Creatorverse/core"
	"github.com/Abdulwakil1/Creatorverse/models"
	"github.com/Abdulwakil1/Creatorverse/repositories"
	"github.com/Abdulwakil1/Creatorverse/utils/redislog"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

var (
	ErrCreatorNotFound = errors.New("creator not found")
	ErrNameRequired    = errors.New("name is required")
)

// CreatorService lists the use-cases handlers can call.
type CreatorService interface {
	CreateCreator(ctx context.Context, req models.CreateCreatorRequest) (*models.Creator, error)
	GetCreator(ctx context.Context, id uint) (*models.Creator, error)
	ViewCreator(ctx context.Context, id uint) (*models.CreatorView, error)
	UpdateCreator(ctx context.Context, id uint, req models.UpdateCreatorRequest) (*models.Creator, error)
	DeleteCreator(ctx context.Context, id uint) error
	ListCreators(ctx context.Context) ([]models.Creator, error)
	ListCreatorViews(ctx context.Context) (*models.CreatorList, error)
	RecentActivity(ctx context.Context, n int64) ([]redislog.Entry, error)
}

type creatorService struct {
	repo  repositories.CreatorRepository
	log   *zap.Logger
	audit *redislog.Logger // may be nil
}

// NewCreatorService wires the repository, the process logger and the audit log.
func NewCreatorService(repo repositories.CreatorRepository, log *zap.Logger, audit *redislog.Logger) CreatorService {
	if log == nil {
		log = zap.NewNop()
	}
	return &creatorService{repo: repo, log: log.Named("creators"), audit: audit}
}

func idField(id uint) map[string]string {
	return map[string]string{"creator_id": fmt.Sprint(id)}
}

// validate enforces the write-time invariants: a name, and social fields
// that point at their own platform.
func (s *creatorService) validate(ctx context.Context, c *models.Creator) error {
	if c.Name == "" {
		return ErrNameRequired
	}
	if err := c.Socials().Validate(); err != nil {
		var fe *core.FieldError
		if errors.As(err, &fe) {
			s.log.Info("social field rejected", zap.String("field", fe.Field), zap.Uint("creator_id", c.ID))
			s.audit.Warn(ctx, "creator rejected", map[string]string{"field": fe.Field, "creator_id": fmt.Sprint(c.ID)})
		}
		return err
	}
	return nil
}

func (s *creatorService) CreateCreator(ctx context.Context, req models.CreateCreatorRequest) (*models.Creator, error) {
	c := req.ToCreator()
	if err := s.validate(ctx, c); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.log.Error("create failed", zap.String("name", c.Name), zap.Error(err))
		s.audit.Error(ctx, "creator create failed", map[string]string{"name": c.Name, "err": err.Error()})
		return nil, fmt.Errorf("create creator: %w", err)
	}

	s.log.Info("creator created", zap.Uint("creator_id", c.ID), zap.String("name", c.Name))
	s.audit.Info(ctx, "creator created", map[string]string{"creator_id": fmt.Sprint(c.ID), "name": c.Name})
	return c, nil
}

func (s *creatorService) GetCreator(ctx context.Context, id uint) (*models.Creator, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrCreatorNotFound
		}
		s.log.Error("fetch failed", zap.Uint("creator_id", id), zap.Error(err))
		return nil, fmt.Errorf("get creator %d: %w", id, err)
	}
	return c, nil
}

func (s *creatorService) ViewCreator(ctx context.Context, id uint) (*models.CreatorView, error) {
	c, err := s.GetCreator(ctx, id)
	if err != nil {
		return nil, err
	}
	v := models.NewCreatorView(*c)
	return &v, nil
}

// UpdateCreator applies the provided fields and validates the merged record
// before writing it back.
func (s *creatorService) UpdateCreator(ctx context.Context, id uint, req models.UpdateCreatorRequest) (*models.Creator, error) {
	c, err := s.GetCreator(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(c)
	if err := s.validate(ctx, c); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		s.log.Error("update failed", zap.Uint("creator_id", id), zap.Error(err))
		s.audit.Error(ctx, "creator update failed", map[string]string{"creator_id": fmt.Sprint(id), "err": err.Error()})
		return nil, fmt.Errorf("update creator %d: %w", id, err)
	}

	s.log.Info("creator updated", zap.Uint("creator_id", id))
	s.audit.Info(ctx, "creator updated", idField(id))
	return c, nil
}

func (s *creatorService) DeleteCreator(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return ErrCreatorNotFound
		}
		s.log.Error("delete failed", zap.Uint("creator_id", id), zap.Error(err))
		s.audit.Error(ctx, "creator delete failed", map[string]string{"creator_id": fmt.Sprint(id), "err": err.Error()})
		return fmt.Errorf("delete creator %d: %w", id, err)
	}

	s.log.Info("creator deleted", zap.Uint("creator_id", id))
	s.audit.Info(ctx, "creator deleted", idField(id))
	return nil
}

func (s *creatorService) ListCreators(ctx context.Context) ([]models.Creator, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("list failed", zap.Error(err))
		return nil, fmt.Errorf("list creators: %w", err)
	}
	return items, nil
}

// ListCreatorViews resolves every record's socials. Resolution is pure, so the
// records are processed in parallel; output order matches the store's order.
func (s *creatorService) ListCreatorViews(ctx context.Context) (*models.CreatorList, error) {
	items, err := s.ListCreators(ctx)
	if err != nil {
		return nil, err
	}
	views := iter.Map(items, func(c *models.Creator) models.CreatorView {
		return models.NewCreatorView(*c)
	})
	return &models.CreatorList{Items: views, Total: len(views)}, nil
}

// RecentActivity returns the newest audit entries, or nothing when Redis is off.
func (s *creatorService) RecentActivity(ctx context.Context, n int64) ([]redislog.Entry, error) {
	if n <= 0 || n > 100 {
		n = 20
	}
	return s.audit.Recent(ctx, n)
}
