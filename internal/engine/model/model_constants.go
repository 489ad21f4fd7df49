package model

import (
	"slices"

	"github.com/go-arcade/ats/pkg/statemachine"
)

var Positions = []string{
	"Master Technician (A-Tech)", "B-Tech", "C-Tech", "Lube Technician",
	"Transmission Technician", "GS Technician", "Tire Technician",
	"Service Advisor", "Service Writer (Junior Advisor)", "Service Manager",
	"General Manager", "Customer Service Agent", "Parts Manager",
	"Parts Runner", "Shop Foreman / Lead Tech", "Shop Porter",
	"Bookkeeper", "Marketing Coordinator", "Other",
}

var Sources = []string{
	"Website", "Google", "Indeed", "Facebook", "TikTok",
	"Referral", "Walk-in", "ZipRecruiter", "Returning Applicant", "Other",
}

func IsPosition(p string) bool {
	return slices.Contains(Positions, p)
}

func IsSource(s string) bool {
	return slices.Contains(Sources, s)
}

// Constants is served to the public apply form.
type Constants struct {
	Positions []string             `json:"positions"`
	Statuses  []statemachine.Stage `json:"statuses"`
	Sources   []string             `json:"sources"`
}

func GetConstants() *Constants {
	return &Constants{
		Positions: slices.Clone(Positions),
		Statuses:  slices.Clone(statemachine.OrderedStages),
		Sources:   slices.Clone(Sources),
	}
}
