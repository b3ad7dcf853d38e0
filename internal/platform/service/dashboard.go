package service

import "github.com/bettoyou/bettoyou/internal/platform/domain"

type DashboardService struct{}

// ForUserType returns the dashboard for a chosen user type. A pending user
// has to pick a type first.
func (DashboardService) ForUserType(userType string) (domain.Dashboard, error) {
	ut, err := domain.ParseUserType(userType)
	if err != nil {
		return domain.Dashboard{}, ErrInvalidUserType
	}
	if ut == domain.UserTypePending {
		return domain.Dashboard{}, ErrUserTypeRequired
	}

	d, ok := domain.DashboardFor(ut)
	if !ok {
		return domain.Dashboard{}, ErrInvalidUserType
	}
	return d, nil
}
