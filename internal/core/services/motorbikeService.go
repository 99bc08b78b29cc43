package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"motor-rental-api/internal/core/domain"
	"motor-rental-api/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const detailCacheTTL = 15 * time.Minute

type MotorbikeService struct {
	motorRepo ports.MotorbikeRepository
	logger    ports.LoggerPort
	validate  *validator.Validate
	cache     ports.CachePort
}

func NewMotorbikeService(
	motorRepo ports.MotorbikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *MotorbikeService {
	return &MotorbikeService{
		motorRepo: motorRepo,
		logger:    logger,
		validate:  validate,
		cache:     cache,
	}
}

func (s *MotorbikeService) AddMotorbike(ctx context.Context, motorbike *domain.Motorbike) (*domain.Motorbike, error) {
	if err := s.validate.Struct(motorbike); err != nil {
		s.logger.Error("Motorbike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	if motorbike.ID == uuid.Nil {
		motorbike.ID = uuid.New()
	}

	created, err := s.motorRepo.Add(ctx, motorbike)
	if err != nil {
		s.logger.Error("Failed to add motorbike", map[string]interface{}{
			"error":   err.Error(),
			"user_id": motorbike.UserID,
		})
		return nil, err
	}

	s.logger.Info("Motorbike added successfully", map[string]interface{}{
		"motorbike_id": created.ID,
		"user_id":      created.UserID,
	})

	return created, nil
}

func (s *MotorbikeService) GetMotorbikeByID(ctx context.Context, id string) (*domain.MotorbikeDetail, error) {
	motorID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"motorbike_id": id,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid motorbike id", domain.ErrInvalidArgument)
	}

	cacheKey := fmt.Sprintf("motorbike:%s", id)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cached domain.MotorbikeDetail
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			s.logger.Info("Motorbike found in cache", map[string]interface{}{
				"motorbike_id": id,
			})
			return &cached, nil
		}
	}

	detail, err := s.motorRepo.GetByID(ctx, motorID)
	if err != nil {
		s.logger.Error("Failed to get motorbike", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": id,
		})
		return nil, err
	}

	detailData, err := json.Marshal(detail)
	if err != nil {
		s.logger.Warn("Failed to marshal motorbike for cache", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": id,
		})
	} else if err := s.cache.Set(cacheKey, detailData, detailCacheTTL); err != nil {
		s.logger.Warn("Failed to cache motorbike", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": id,
		})
	}

	return detail, nil
}

func (s *MotorbikeService) GetMotorbikeForOwner(ctx context.Context, id string, userID uuid.UUID) (*domain.Motorbike, error) {
	motorID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"motorbike_id": id,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid motorbike id", domain.ErrInvalidArgument)
	}

	motorbike, err := s.motorRepo.GetByIDAndUserID(ctx, motorID, userID)
	if err != nil {
		s.logger.Warn("Owner check failed", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": id,
			"user_id":      userID,
		})
		return nil, err
	}

	return motorbike, nil
}

func (s *MotorbikeService) GetAllMotorbikes(ctx context.Context, criteria domain.FindCriteria, sortBy domain.SortBy, ownerID *uuid.UUID) ([]domain.MotorbikeSummary, error) {
	motorbikes, err := s.motorRepo.GetAll(ctx, criteria, sortBy, ownerID)
	if err != nil {
		s.logger.Error("Failed to list motorbikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Motorbikes listed", map[string]interface{}{
		"count": len(motorbikes),
	})

	return motorbikes, nil
}

func (s *MotorbikeService) UpdateMotorbike(ctx context.Context, motorbike *domain.Motorbike, afterSuccess bool) (*domain.Motorbike, error) {
	if afterSuccess {
		if err := s.validate.Struct(motorbike); err != nil {
			s.logger.Error("Motorbike validation failed", map[string]interface{}{
				"error": err.Error(),
			})
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
		}
	}

	updated, err := s.motorRepo.Update(ctx, motorbike, afterSuccess)
	if err != nil {
		s.logger.Error("Failed to update motorbike", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": motorbike.ID,
		})
		return nil, err
	}

	cacheKey := fmt.Sprintf("motorbike:%s", motorbike.ID.String())
	if err := s.cache.Delete(cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate motorbike cache", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": motorbike.ID.String(),
		})
	}

	s.logger.Info("Motorbike updated successfully", map[string]interface{}{
		"motorbike_id": motorbike.ID,
	})

	return updated, nil
}

func (s *MotorbikeService) DeleteMotorbike(ctx context.Context, id string, userID uuid.UUID) (*domain.Motorbike, error) {
	motorID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"motorbike_id": id,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid motorbike id", domain.ErrInvalidArgument)
	}

	deleted, err := s.motorRepo.DeleteByID(ctx, motorID, userID)
	if err != nil {
		s.logger.Error("Failed to delete motorbike", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": id,
		})
		return nil, err
	}

	cacheKey := fmt.Sprintf("motorbike:%s", id)
	if err := s.cache.Delete(cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate motorbike cache", map[string]interface{}{
			"error":        err.Error(),
			"motorbike_id": id,
		})
	}

	s.logger.Info("Motorbike deleted successfully", map[string]interface{}{
		"motorbike_id": id,
	})

	return deleted, nil
}
