package model

import "github.com/go-arcade/ats/pkg/database"

func init() {
	database.RegisterModels(&Shop{}, &Operator{}, &Applicant{}, &Note{})
}
