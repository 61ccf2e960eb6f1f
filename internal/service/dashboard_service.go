package service

import (
	"context"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/repository"
)

// DashboardStats are the headline counts on the dashboard home page.
type DashboardStats struct {
	TotalPackages  int `json:"totalPackages"`
	TotalCustomers int `json:"totalCustomers"`
	TotalTrainers  int `json:"totalTrainers"`
	TotalRequests  int `json:"totalRequests"`
}

// DashboardService aggregates the home-page counters.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	userRepo    repository.UserRepository
	packageRepo repository.PackageRepository
	requestRepo repository.RequestRepository
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(
	userRepo repository.UserRepository,
	packageRepo repository.PackageRepository,
	requestRepo repository.RequestRepository,
) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		packageRepo: packageRepo,
		requestRepo: requestRepo,
	}
}

// Stats counts packages, requests and users split by role.
func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	pkgs, err := s.packageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalPackages: len(pkgs),
		TotalRequests: len(requests),
	}
	for _, u := range users {
		switch u.Role {
		case domain.RoleCustomer:
			stats.TotalCustomers++
		case domain.RoleTrainer:
			stats.TotalTrainers++
		}
	}
	return stats, nil
}
