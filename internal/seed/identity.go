package seed

import (
	"fmt"
	"strings"

	"volunteerhub_backend/internal/appErrors"
	"volunteerhub_backend/internal/models"
)

// Зарезервированное окно: первые пользователи каждого прогона получают
// фиксированные роли и предсказуемые email, чтобы тестовые учетные
// записи существовали после любой генерации.
const (
	ReservedAdminCount = 2
	ReservedHRCount    = 4
	ReservedLeadCount  = 9

	ReservedWindowSize = ReservedAdminCount + ReservedHRCount + ReservedLeadCount
)

// Identity - личность будущего пользователя: имя, email, роль.
type Identity struct {
	FirstName string
	LastName  string
	Email     string
	Role      models.UserRole
}

// IdentityAllocator выдает уникальные email и коды верификации
// в пределах одного прогона генерации.
type IdentityAllocator struct {
	sampler     *Sampler
	domain      string
	seenEmails  map[string]struct{}
	seenCodes   map[string]struct{}
	emailSerial int
}

func NewIdentityAllocator(sampler *Sampler, domain string) *IdentityAllocator {
	return &IdentityAllocator{
		sampler:    sampler,
		domain:     domain,
		seenEmails: make(map[string]struct{}),
		seenCodes:  make(map[string]struct{}),
	}
}

// PlanUsers распределяет total личностей: зарезервированное окно
// (admin, hr, lead_project с фиксированными email), затем волонтеры
// со случайными, но уникальными личностями.
//
// total, не превышающий окно, - жесткая ошибка: молчаливое урезание
// ярусов ломало бы ожидаемый набор тестовых учетных записей.
func (a *IdentityAllocator) PlanUsers(total int) ([]Identity, error) {
	if total <= ReservedWindowSize {
		return nil, appErrors.DependencyMissing("users", "reserved identity window", ReservedWindowSize+1, total)
	}

	identities := make([]Identity, 0, total)

	tiers := []struct {
		role      models.UserRole
		firstName string
		count     int
	}{
		{models.UserRoleAdmin, "Admin", ReservedAdminCount},
		{models.UserRoleHR, "HR", ReservedHRCount},
		{models.UserRoleLeadProject, "Project Lead", ReservedLeadCount},
	}

	for _, tier := range tiers {
		for i := 1; i <= tier.count; i++ {
			email := fmt.Sprintf("%s_%d@%s", tier.role, i, a.domain)
			if err := a.claimEmail(email); err != nil {
				return nil, err
			}
			identities = append(identities, Identity{
				FirstName: tier.firstName,
				LastName:  fmt.Sprintf("Account %d", i),
				Email:     email,
				Role:      tier.role,
			})
		}
	}

	for len(identities) < total {
		identity, err := a.randomIdentity(models.UserRoleVolunteer)
		if err != nil {
			return nil, err
		}
		identities = append(identities, identity)
	}

	return identities, nil
}

// randomIdentity собирает случайную личность с гарантированно
// уникальным email.
func (a *IdentityAllocator) randomIdentity(role models.UserRole) (Identity, error) {
	firstName, err := Choice(a.sampler, FirstNames)
	if err != nil {
		return Identity{}, err
	}
	lastName, err := Choice(a.sampler, LastNames)
	if err != nil {
		return Identity{}, err
	}

	a.emailSerial++
	email := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(firstName), strings.ToLower(lastName), a.emailSerial, a.domain)
	if err := a.claimEmail(email); err != nil {
		return Identity{}, err
	}

	return Identity{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      role,
	}, nil
}

func (a *IdentityAllocator) claimEmail(email string) error {
	if _, taken := a.seenEmails[email]; taken {
		return appErrors.UniquenessViolation("users", "email", email)
	}
	a.seenEmails[email] = struct{}{}
	return nil
}

// VerificationCode возвращает уникальный в пределах прогона код
// верификации документа.
func (a *IdentityAllocator) VerificationCode() (string, error) {
	const maxAttempts = 100
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code := fmt.Sprintf("DOC-%s", strings.ToUpper(a.sampler.Alphanumeric(10)))
		if _, taken := a.seenCodes[code]; taken {
			continue
		}
		a.seenCodes[code] = struct{}{}
		return code, nil
	}
	return "", appErrors.UniquenessViolation("documents", "verification_code", "exhausted attempts")
}
