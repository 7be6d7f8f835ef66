package seed

import (
	"fmt"
	"time"

	"volunteerhub_backend/internal/appErrors"
	"volunteerhub_backend/internal/models"

	"gorm.io/gorm"
)

func (s *Seeder) generateProjects(tx *gorm.DB, st *state) error {
	leads := usersWithRole(st.Users, models.UserRoleLeadProject)
	if len(leads) == 0 {
		return appErrors.DependencyMissing("projects", "lead-eligible users", 1, 0)
	}

	now := time.Now()
	projects := make([]models.Project, 0, s.cfg.ProjectCount)
	for i := 0; i < s.cfg.ProjectCount; i++ {
		lead, err := Choice(s.sampler, leads)
		if err != nil {
			return err
		}
		name, err := Choice(s.sampler, ProjectNames)
		if err != nil {
			return err
		}
		status, err := Choice(s.sampler, models.AllProjectStatuses)
		if err != nil {
			return err
		}
		maxSize, err := s.sampler.IntRange(4, 8)
		if err != nil {
			return err
		}
		currentSize, err := s.sampler.IntRange(0, maxSize)
		if err != nil {
			return err
		}
		createdAt, err := s.sampler.DateBetween(now.AddDate(-1, 0, 0), now)
		if err != nil {
			return err
		}

		project := models.Project{
			Name:            fmt.Sprintf("%s #%d", name, i+1),
			LeadID:          lead.ID,
			Status:          status,
			MaxTeamSize:     maxSize,
			CurrentTeamSize: currentSize,
		}
		project.CreatedAt = createdAt

		if s.sampler.Bool(0.5) {
			deadline, err := s.sampler.DateBetween(now, now.AddDate(0, 6, 0))
			if err != nil {
				return err
			}
			project.Deadline = &deadline
		}

		projects = append(projects, project)
	}

	if err := tx.CreateInBatches(projects, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert projects")
	}
	st.Projects = projects
	return nil
}

// generateTeams создает по одной основной команде на проект;
// лидер и границы размера наследуются от проекта.
func (s *Seeder) generateTeams(tx *gorm.DB, st *state) error {
	if len(st.Projects) == 0 {
		return appErrors.DependencyMissing("teams", "projects", 1, 0)
	}

	teams := make([]models.Team, 0, len(st.Projects))
	for _, project := range st.Projects {
		teams = append(teams, models.Team{
			ProjectID: project.ID,
			Name:      project.Name + " Team",
			LeadID:    project.LeadID,
			MaxSize:   project.MaxTeamSize,
		})
	}

	if err := tx.CreateInBatches(teams, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert teams")
	}
	st.Teams = teams
	return nil
}

func (s *Seeder) generateTeamMembers(tx *gorm.DB, st *state) error {
	if len(st.Teams) == 0 {
		return appErrors.DependencyMissing("team_members", "teams", 1, 0)
	}
	if len(st.Users) < 2 {
		return appErrors.DependencyMissing("team_members", "users", 2, len(st.Users))
	}

	now := time.Now()
	members := make([]models.TeamMember, 0, len(st.Teams)*4)
	for i := range st.Teams {
		team := &st.Teams[i]

		size, err := s.sampler.IntRange(2, min(team.MaxSize, len(st.Users)))
		if err != nil {
			return err
		}
		picked, err := SampleDistinct(s.sampler, st.Users, size)
		if err != nil {
			return err
		}

		for j, user := range picked {
			// первый выбранный - лидер, остальные случайно mentor/member
			role := models.TeamRoleLead
			if j > 0 {
				role, err = Choice(s.sampler, []models.TeamMemberRole{models.TeamRoleMember, models.TeamRoleMentor})
				if err != nil {
					return err
				}
			}
			joinedAt, err := s.sampler.DateBetween(team.CreatedAt, now)
			if err != nil {
				return err
			}
			members = append(members, models.TeamMember{
				TeamID:   team.ID,
				UserID:   user.ID,
				Role:     role,
				JoinedAt: joinedAt,
			})
		}

		// current_size отражает фактический состав
		team.CurrentSize = size
		if err := tx.Model(&models.Team{}).Where("id = ?", team.ID).Update("current_size", size).Error; err != nil {
			return appErrors.Wrap(err, appErrors.CodeConstraintViolation, "failed to update team size")
		}
	}

	if err := tx.CreateInBatches(members, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert team members")
	}
	st.Counts["team_members"] = len(members)
	return nil
}

func (s *Seeder) generateTeamSkillRequirements(tx *gorm.DB, st *state) error {
	if len(st.Teams) == 0 {
		return appErrors.DependencyMissing("team_skill_requirements", "teams", 1, 0)
	}
	if len(st.Skills) == 0 {
		return appErrors.DependencyMissing("team_skill_requirements", "skills", 1, 0)
	}

	requirements := make([]models.TeamSkillRequirement, 0, len(st.Teams)*2)
	for _, team := range st.Teams {
		k, err := s.sampler.IntRange(1, min(3, len(st.Skills)))
		if err != nil {
			return err
		}
		skills, err := SampleDistinct(s.sampler, st.Skills, k)
		if err != nil {
			return err
		}

		for _, skill := range skills {
			priority, err := Choice(s.sampler, models.AllRequirementLevels)
			if err != nil {
				return err
			}
			requirements = append(requirements, models.TeamSkillRequirement{
				TeamID:   team.ID,
				SkillID:  skill.ID,
				Required: s.sampler.Bool(0.5),
				Priority: priority,
			})
		}
	}

	if err := tx.CreateInBatches(requirements, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert team skill requirements")
	}
	st.Counts["team_skill_requirements"] = len(requirements)
	return nil
}

func (s *Seeder) generateTasks(tx *gorm.DB, st *state) error {
	if len(st.Projects) == 0 {
		return appErrors.DependencyMissing("tasks", "projects", 1, 0)
	}
	if len(st.Users) == 0 {
		return appErrors.DependencyMissing("tasks", "users", 1, 0)
	}

	now := time.Now()
	tasks := make([]models.Task, 0, s.cfg.TaskCount)
	for i := 0; i < s.cfg.TaskCount; i++ {
		project, err := Choice(s.sampler, st.Projects)
		if err != nil {
			return err
		}
		creator, err := Choice(s.sampler, st.Users)
		if err != nil {
			return err
		}
		title, err := Choice(s.sampler, TaskTitles)
		if err != nil {
			return err
		}
		status, err := Choice(s.sampler, models.AllTaskStatuses)
		if err != nil {
			return err
		}
		priority, err := Choice(s.sampler, models.AllTaskPriorities)
		if err != nil {
			return err
		}
		estimated, err := s.sampler.IntRange(1, 40)
		if err != nil {
			return err
		}
		createdAt, err := s.sampler.DateBetween(now.AddDate(0, -6, 0), now)
		if err != nil {
			return err
		}

		task := models.Task{
			ProjectID:      project.ID,
			Title:          title,
			CreatedBy:      creator.ID,
			Status:         status,
			Priority:       priority,
			EstimatedHours: estimated,
		}
		task.CreatedAt = createdAt

		if s.sampler.Bool(0.7) {
			assignee, err := Choice(s.sampler, st.Users)
			if err != nil {
				return err
			}
			task.AssignedTo = &assignee.ID
		}

		// фактические часы ограничены сверху оценкой + 10
		if status == models.TaskStatusDone || status == models.TaskStatusReview || status == models.TaskStatusTesting {
			actual, err := s.sampler.IntRange(1, estimated+10)
			if err != nil {
				return err
			}
			task.ActualHours = &actual
		}

		if s.sampler.Bool(0.6) {
			dueDate, err := s.sampler.DateAfter(createdAt, now.AddDate(0, 3, 0))
			if err != nil {
				return err
			}
			task.DueDate = &dueDate
		}

		tasks = append(tasks, task)
	}

	if err := tx.CreateInBatches(tasks, insertBatchSize).Error; err != nil {
		return appErrors.Wrap(err, appErrors.CodeUniquenessViolation, "failed to insert tasks")
	}
	st.Counts["tasks"] = len(tasks)
	return nil
}

// usersWithRole фильтрует пользователей по роли.
func usersWithRole(users []models.User, role models.UserRole) []models.User {
	var filtered []models.User
	for _, user := range users {
		if user.Role == role {
			filtered = append(filtered, user)
		}
	}
	return filtered
}
