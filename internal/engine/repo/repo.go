// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repo

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/pkg/cache"
	"github.com/go-arcade/ats/pkg/database"
	"gorm.io/gorm"
)

// Repositories groups every repository
type Repositories struct {
	Shop      IShopRepository
	Operator  IOperatorRepository
	Applicant IApplicantRepository
	Note      INoteRepository
}

func NewRepositories(db database.IDatabase, c cache.ICache) *Repositories {
	return &Repositories{
		Shop:      NewShopRepo(db, c),
		Operator:  NewOperatorRepo(db),
		Applicant: NewApplicantRepo(db),
		Note:      NewNoteRepo(db),
	}
}

// translate maps gorm and driver errors onto the service error kinds.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae
	}
	var netErr net.Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return apperr.Wrap(apperr.KindConflict, err, entity+" already exists")
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, driver.ErrBadConn),
		errors.As(err, &netErr):
		return apperr.Upstream(err, "database unavailable")
	}
	return apperr.Internal(err)
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "Duplicate entry")
}

const likeEscape = "!"

// likePattern builds a lower-cased substring pattern for LIKE ... ESCAPE '!'.
func likePattern(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return "%" + strings.ToLower(r.Replace(s)) + "%"
}
