package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"faculty_hub_backend/internal/config"
	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"
	"faculty_hub_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// PublicationSyncService pulls each faculty member's publication list from
// the external scholar feed and replaces the stored project list wholesale.
// The feed is append-only upstream, so replacement keeps ordering stable.
type PublicationSyncService struct {
	FacultyRepo *repository.FacultyRepository
	Cfg         *config.ScholarConfig
	client      *http.Client
	limiter     *rate.Limiter
}

func NewPublicationSyncService(facultyRepo *repository.FacultyRepository, cfg *config.ScholarConfig) *PublicationSyncService {
	budget := cfg.RequestBudget
	if budget <= 0 {
		budget = 30
	}
	return &PublicationSyncService{
		FacultyRepo: facultyRepo,
		Cfg:         cfg,
		client:      &http.Client{Timeout: 15 * time.Second},
		limiter:     rate.NewLimiter(rate.Every(time.Minute/time.Duration(budget)), budget),
	}
}

// scholarPublication is one entry of the upstream feed.
type scholarPublication struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year"`
}

func (s *PublicationSyncService) Enabled() bool {
	return s.Cfg.BaseURL != ""
}

// SyncFaculty refreshes one faculty member's project list from the feed.
// Faculty without a scholar profile are skipped, not failed.
func (s *PublicationSyncService) SyncFaculty(ctx context.Context, facultyID string) error {
	faculty, err := s.FacultyRepo.FindByID(facultyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrFacultyNotFound
	}
	if err != nil {
		return err
	}
	if faculty.ScholarProfile == "" {
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	pubs, err := s.fetch(ctx, faculty.ScholarProfile)
	if err != nil {
		return err
	}

	projects := make([]model.Project, 0, len(pubs))
	for _, p := range pubs {
		projects = append(projects, model.Project{
			Title:       p.Title,
			Year:        p.Year,
			ExternalRef: p.ID,
		})
	}

	return s.FacultyRepo.ReplaceProjects(facultyID, projects)
}

// SyncAll walks the directory; per-faculty failures are logged and skipped
// so one bad profile does not stall the run.
func (s *PublicationSyncService) SyncAll(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}

	faculty, err := s.FacultyRepo.List("")
	if err != nil {
		return err
	}

	for _, f := range faculty {
		if f.ScholarProfile == "" {
			continue
		}
		if err := s.SyncFaculty(ctx, f.ID); err != nil {
			if ctx.Err() != nil {
				return err
			}
			logger.Log.Error("Publication sync failed",
				zap.String("facultyId", f.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *PublicationSyncService) fetch(ctx context.Context, profile string) ([]scholarPublication, error) {
	endpoint := fmt.Sprintf("%s/publications?profile=%s", s.Cfg.BaseURL, url.QueryEscape(profile))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.Cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.Cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scholar feed returned status %d", resp.StatusCode)
	}

	var pubs []scholarPublication
	if err := json.NewDecoder(resp.Body).Decode(&pubs); err != nil {
		return nil, err
	}
	return pubs, nil
}
