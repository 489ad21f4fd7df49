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

package service

import (
	"context"

	"github.com/go-arcade/ats/internal/engine/repo"
	"github.com/go-arcade/ats/internal/pkg/apperr"
	"github.com/go-arcade/ats/pkg/log"
)

// Principal is the authenticated caller of an operation. It is passed
// explicitly into every tenant scoped call.
type Principal struct {
	UserId string
	Email  string
	ShopId string
}

// Tenant returns the shop the caller operates, Forbidden when it has none.
func (p *Principal) Tenant() (string, error) {
	if p == nil || p.ShopId == "" {
		return "", apperr.Forbidden("no shop associated with user")
	}
	return p.ShopId, nil
}

// IdentityService resolves a verified token subject to its shop.
type IdentityService struct {
	operatorRepo repo.IOperatorRepository
}

func NewIdentityService(operatorRepo repo.IOperatorRepository) *IdentityService {
	return &IdentityService{operatorRepo: operatorRepo}
}

// Resolve looks up the operator profile of userId. A caller that never
// onboarded resolves to a Principal without a shop.
func (is *IdentityService) Resolve(ctx context.Context, userId, email string) (p *Principal, err error) {
	ctx, span := tracer.Start(ctx, "IdentityService.Resolve")
	defer func() { endSpan(span, err) }()

	if userId == "" {
		return nil, apperr.Unauthorized("missing subject")
	}

	op, err := is.operatorRepo.GetByUserId(ctx, userId)
	switch apperr.KindOf(err) {
	case "":
	case apperr.KindNotFound:
		return &Principal{UserId: userId, Email: email}, nil
	case apperr.KindInternal:
		log.WithContext(ctx).Errorw("resolve operator failed", "userId", userId, "error", err)
		return nil, apperr.Upstream(err, "identity resolver unavailable")
	default:
		return nil, err
	}

	if email == "" {
		email = op.Email
	}
	return &Principal{UserId: userId, Email: email, ShopId: op.ShopId}, nil
}
