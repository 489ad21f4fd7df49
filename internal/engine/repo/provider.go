package repo

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewRepositories,
	ProvideShopRepo,
	ProvideOperatorRepo,
	ProvideApplicantRepo,
	ProvideNoteRepo,
)

func ProvideShopRepo(r *Repositories) IShopRepository {
	return r.Shop
}

func ProvideOperatorRepo(r *Repositories) IOperatorRepository {
	return r.Operator
}

func ProvideApplicantRepo(r *Repositories) IApplicantRepository {
	return r.Applicant
}

func ProvideNoteRepo(r *Repositories) INoteRepository {
	return r.Note
}
