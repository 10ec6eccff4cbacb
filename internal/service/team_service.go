package service

import (
	"strings"

	"github.com/laga-admin/internal/models"
	"github.com/laga-admin/internal/repository"
)

// TeamService 队伍服务
type TeamService struct {
	repo repository.TeamRepository
}

// NewTeamService 创建队伍服务
func NewTeamService(repo repository.TeamRepository) *TeamService {
	return &TeamService{repo: repo}
}

// TeamInput 创建/更新队伍输入
type TeamInput struct {
	Name    string
	Captain string
	Phone   string
	City    string
	Logo    string
	TShirts models.TShirtList
}

func (input TeamInput) validate() error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrTeamInvalid
	}
	for _, t := range input.TShirts {
		if strings.TrimSpace(t.Size) == "" || t.Quantity < 0 {
			return ErrTeamInvalid
		}
	}
	return nil
}

// List 队伍列表
func (s *TeamService) List(filter repository.TeamListFilter) ([]models.Team, int64, error) {
	return s.repo.List(filter)
}

// Get 队伍详情
func (s *TeamService) Get(id uint) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}
	return team, nil
}

// Create 创建队伍
func (s *TeamService) Create(input TeamInput) (*models.Team, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	team := &models.Team{
		Name:    strings.TrimSpace(input.Name),
		Captain: strings.TrimSpace(input.Captain),
		Phone:   strings.TrimSpace(input.Phone),
		City:    strings.TrimSpace(input.City),
		Logo:    strings.TrimSpace(input.Logo),
		TShirts: input.TShirts,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, err
	}
	return team, nil
}

// Update 更新队伍
func (s *TeamService) Update(id uint, input TeamInput) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	team.Name = strings.TrimSpace(input.Name)
	team.Captain = strings.TrimSpace(input.Captain)
	team.Phone = strings.TrimSpace(input.Phone)
	team.City = strings.TrimSpace(input.City)
	team.Logo = strings.TrimSpace(input.Logo)
	team.TShirts = input.TShirts

	if err := s.repo.Update(team); err != nil {
		return nil, err
	}
	return team, nil
}

// Delete 删除队伍
func (s *TeamService) Delete(id uint) error {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
