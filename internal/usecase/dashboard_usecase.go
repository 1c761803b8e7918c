package usecase

import (
	"context"
	"time"

	"github.com/hafizhramadhan/company-profile-api/internal/dto"
	"github.com/hafizhramadhan/company-profile-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

const trailingMonths = 6

// DashboardUsecase is the one read path that spans every resource:
// summary counts plus a small time series for the admin chart.
type DashboardUsecase struct {
	jobs         *repository.JobRepository
	applications *repository.ApplicationRepository
	projects     *repository.ProjectRepository
	services     *repository.ServiceRepository
	contacts     *repository.ContactRepository
}

func NewDashboardUsecase(
	jobs *repository.JobRepository,
	applications *repository.ApplicationRepository,
	projects *repository.ProjectRepository,
	services *repository.ServiceRepository,
	contacts *repository.ContactRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		jobs:         jobs,
		applications: applications,
		projects:     projects,
		services:     services,
		contacts:     contacts,
	}
}

// Stats fetches all five collections concurrently and buckets job and
// project creation times into the trailing six calendar months.
func (uc *DashboardUsecase) Stats(ctx context.Context, now time.Time) (*dto.DashboardStats, error) {
	since := monthStart(now).AddDate(0, -(trailingMonths - 1), 0)

	var (
		counts       dto.DashboardCounts
		jobTimes     []time.Time
		projectTimes []time.Time
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Jobs, err = uc.jobs.Count()
		return err
	})
	g.Go(func() (err error) {
		counts.Applications, err = uc.applications.Count()
		return err
	})
	g.Go(func() (err error) {
		counts.Projects, err = uc.projects.Count()
		return err
	})
	g.Go(func() (err error) {
		counts.Services, err = uc.services.Count()
		return err
	})
	g.Go(func() (err error) {
		counts.Contacts, err = uc.contacts.Count()
		return err
	})
	g.Go(func() (err error) {
		jobTimes, err = uc.jobs.CreationTimes(since)
		return err
	})
	g.Go(func() (err error) {
		projectTimes, err = uc.projects.CreationTimes(since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		Counts:  counts,
		Monthly: bucketMonthly(now, jobTimes, projectTimes),
	}, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

type yearMonth struct {
	year  int
	month time.Month
}

func bucketMonthly(now time.Time, jobTimes, projectTimes []time.Time) []dto.MonthlyStat {
	jobsByMonth := groupByMonth(jobTimes)
	projectsByMonth := groupByMonth(projectTimes)

	base := monthStart(now)
	monthly := make([]dto.MonthlyStat, 0, trailingMonths)
	for i := trailingMonths - 1; i >= 0; i-- {
		m := base.AddDate(0, -i, 0)
		key := yearMonth{m.Year(), m.Month()}
		monthly = append(monthly, dto.MonthlyStat{
			Name:     m.Format("Jan"),
			Jobs:     jobsByMonth[key],
			Projects: projectsByMonth[key],
		})
	}
	return monthly
}

func groupByMonth(times []time.Time) map[yearMonth]int {
	grouped := make(map[yearMonth]int, len(times))
	for _, t := range times {
		grouped[yearMonth{t.Year(), t.Month()}]++
	}
	return grouped
}
