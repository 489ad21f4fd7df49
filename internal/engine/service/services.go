package service

import (
	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/internal/engine/repo"
	"github.com/go-arcade/ats/internal/pkg/storage"
	"github.com/go-arcade/ats/pkg/metrics"
)

// Services groups every service
type Services struct {
	Identity  *IdentityService
	Shop      *ShopService
	Applicant *ApplicantService
	Pipeline  *PipelineService
	Note      *NoteService
	Intake    *IntakeService
	Upload    *UploadService
}

func NewServices(
	repos *repo.Repositories,
	presigner storage.Presigner,
	storageConf *storage.Storage,
	pipelineConf config.PipelineConfig,
	intakeConf config.IntakeConfig,
	recorder *metrics.Recorder,
) *Services {
	shopService := NewShopService(repos.Shop)
	pipelineService := NewPipelineService(repos.Applicant, pipelineConf, recorder)
	applicantService := NewApplicantService(repos.Applicant, pipelineService, pipelineConf, intakeConf)

	return &Services{
		Identity:  NewIdentityService(repos.Operator),
		Shop:      shopService,
		Applicant: applicantService,
		Pipeline:  pipelineService,
		Note:      NewNoteService(repos.Applicant, repos.Note, recorder),
		Intake:    NewIntakeService(shopService, applicantService, recorder),
		Upload:    NewUploadService(presigner, storageConf, recorder),
	}
}
