package repo

import (
	"github.com/GlebRadaev/talentbank/internal/pg"
	applicationrepo "github.com/GlebRadaev/talentbank/internal/repo/application-repo"
	contributionrepo "github.com/GlebRadaev/talentbank/internal/repo/contribution-repo"
	historyrepo "github.com/GlebRadaev/talentbank/internal/repo/history-repo"
	placerepo "github.com/GlebRadaev/talentbank/internal/repo/place-repo"
	talentrepo "github.com/GlebRadaev/talentbank/internal/repo/talent-repo"
	userrepo "github.com/GlebRadaev/talentbank/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	TalentRepo       *talentrepo.Repository
	ApplicationRepo  *applicationrepo.Repository
	PlaceRepo        *placerepo.Repository
	ContributionRepo *contributionrepo.Repository
	HistoryRepo      *historyrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		TalentRepo:       talentrepo.New(conn),
		ApplicationRepo:  applicationrepo.New(conn),
		PlaceRepo:        placerepo.New(conn),
		ContributionRepo: contributionrepo.New(conn),
		HistoryRepo:      historyrepo.New(conn),
	}
}
